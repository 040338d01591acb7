package ldc3114

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

// regFile is an in-memory register file behind the i2c.Bus interface.
// A write lands at the addressed register; a read starts there and
// advances through the address space.
type regFile struct {
	mem [256]byte
}

func (f *regFile) String() string {
	return "regfile"
}

func (f *regFile) SetSpeed(physic.Frequency) error {
	return nil
}

func (f *regFile) Tx(addr uint16, w, r []byte) error {
	if addr != I2CAddr {
		return fmt.Errorf("unexpected device address %#x", addr)
	}
	if len(w) == 0 {
		return errors.New("missing register address")
	}
	reg := int(w[0])
	if len(r) == 0 {
		for i, b := range w[1:] {
			f.mem[reg+i] = b
		}
		return nil
	}
	for i := range r {
		r[i] = f.mem[reg+i]
	}
	return nil
}

func TestWriteToReadOnlyRegister(t *testing.T) {
	rec := &i2ctest.Record{}
	d := New(rec)
	for reg := range registerNames {
		if !reg.ReadOnly() {
			continue
		}
		err := d.WriteRegister(reg, 0xFF)
		if !errors.Is(err, ErrWriteToReadOnly) {
			t.Errorf("%s: got %v, want ErrWriteToReadOnly", reg, err)
		}
	}
	if len(rec.Ops) != 0 {
		t.Errorf("rejected writes issued %d bus transactions", len(rec.Ops))
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	// A Record without a backing bus fails reads.
	d := New(&i2ctest.Record{})
	_, err := d.ReadRegister(RegStatus)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if errors.Is(err, ErrWriteToReadOnly) || errors.Is(err, ErrInvalidParameter) {
		t.Errorf("transport error misclassified: %v", err)
	}
}

func TestInvalidChannel(t *testing.T) {
	rec := &i2ctest.Record{}
	d := New(rec)
	calls := []struct {
		name string
		call func() error
	}{
		{"SetChannelMode", func() error { return d.SetChannelMode(4, ChannelModeNormal) }},
		{"SetChannelGain", func() error { return d.SetChannelGain(4, 0x10) }},
		{"SetBaselineTrackingPause", func() error { return d.SetBaselineTrackingPause(4, true) }},
		{"IncludeInMaxWin", func() error { return d.IncludeInMaxWin(4, true) }},
		{"IncludeInAntiCommon", func() error { return d.IncludeInAntiCommon(4, true) }},
		{"IncludeInAntiDeform", func() error { return d.IncludeInAntiDeform(4, true) }},
		{"SetOutputPolarity", func() error { return d.SetOutputPolarity(4, OutputActiveHigh) }},
		{"SetDataPolarity", func() error { return d.SetDataPolarity(4, DataNormal) }},
		{"SetCounterScale", func() error { return d.SetCounterScale(4, CounterScale1) }},
		{"SetFastTrackingFactor", func() error { return d.SetFastTrackingFactor(4, FastTrackingFactor1) }},
		{"SetSensorConfig", func() error { return d.SetSensorConfig(4, &SensorConfig{}) }},
		{"ConfigureChannel", func() error { return d.ConfigureChannel(4, &ChannelConfig{}) }},
		{"ReadButtonData", func() error { _, err := d.ReadButtonData(4); return err }},
		{"ReadRawData", func() error { _, err := d.ReadRawData(4); return err }},
		{"ReadRawFrequency", func() error { _, err := d.ReadRawFrequency(4); return err }},
		{"ReadFrequency", func() error { _, err := d.ReadFrequency(4); return err }},
	}
	for _, tt := range calls {
		if err := tt.call(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: got %v, want ErrInvalidParameter", tt.name, err)
		}
	}
	if len(rec.Ops) != 0 {
		t.Errorf("rejected calls issued %d bus transactions", len(rec.Ops))
	}
}

func TestSetChannelGain(t *testing.T) {
	for ch := Channel0; ch <= Channel3; ch++ {
		rf := &regFile{}
		rec := &i2ctest.Record{Bus: rf}
		d := New(rec)
		if err := d.SetChannelGain(ch, 0x3F); err != nil {
			t.Fatalf("channel %d: %v", ch, err)
		}
		if got := rf.mem[uint8(channelRegs[ch].gain)]; got != 0x3F {
			t.Errorf("channel %d: gain register holds %#x, want 0x3f", ch, got)
		}
		if len(rec.Ops) != 1 {
			t.Errorf("channel %d: %d bus transactions, want 1", ch, len(rec.Ops))
		}
		if err := d.SetChannelGain(ch, 0x40); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("channel %d: gain 0x40: got %v, want ErrInvalidParameter", ch, err)
		}
		if len(rec.Ops) != 1 {
			t.Errorf("channel %d: rejected gain reached the bus", ch)
		}
	}
}

func TestSetThenClearRegisterBits(t *testing.T) {
	for _, start := range []uint8{0x00, 0x5A, 0xFF} {
		rf := &regFile{}
		rf.mem[uint8(RegEn)] = start
		d := New(rf)
		if err := d.SetRegisterBits(RegEn, 0x04); err != nil {
			t.Fatal(err)
		}
		if got := rf.mem[uint8(RegEn)]; got != start|0x04 {
			t.Errorf("start %#02x: set left %#02x, want %#02x", start, got, start|0x04)
		}
		if err := d.ClearRegisterBits(RegEn, 0x04); err != nil {
			t.Fatal(err)
		}
		if got := rf.mem[uint8(RegEn)]; got != start&^uint8(0x04) {
			t.Errorf("start %#02x: clear left %#02x, want %#02x", start, got, start&^uint8(0x04))
		}
	}
}

func TestSetChannelModeTransitions(t *testing.T) {
	rf := &regFile{}
	d := New(rf)
	if err := d.SetChannelMode(Channel1, ChannelModeNormalAndLowPower); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegEn)]; got != 0x22 {
		t.Errorf("normal+lp: EN = %#02x, want 0x22", got)
	}
	if err := d.SetChannelMode(Channel1, ChannelModeNormal); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegEn)]; got != 0x02 {
		t.Errorf("normal: EN = %#02x, want 0x02 with the low power bit cleared", got)
	}
	if err := d.SetChannelMode(Channel1, ChannelModeDisabled); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegEn)]; got != 0x00 {
		t.Errorf("disabled: EN = %#02x, want 0x00", got)
	}

	// Other channels keep their bits through a disable.
	rf.mem[uint8(RegEn)] = 0xFF
	if err := d.SetChannelMode(Channel2, ChannelModeDisabled); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegEn)]; got != 0xBB {
		t.Errorf("disabled: EN = %#02x, want 0xbb", got)
	}
}

func TestInvertedEnableBits(t *testing.T) {
	rf := &regFile{}
	rf.mem[uint8(RegIntPol)] = 0xFF
	d := New(rf)
	if err := d.EnableButtonTimeout(true); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegIntPol)]; got != 0xFD {
		t.Errorf("timeout on: INTPOL = %#02x, want 0xfd with the disable bit cleared", got)
	}
	if err := d.EnableMaxOutCheck(true); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegIntPol)]; got != 0xFC {
		t.Errorf("maxout on: INTPOL = %#02x, want 0xfc with the disable bit cleared", got)
	}
	if err := d.EnableButtonTimeout(false); err != nil {
		t.Fatal(err)
	}
	if err := d.EnableMaxOutCheck(false); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegIntPol)]; got != 0xFF {
		t.Errorf("both off: INTPOL = %#02x, want 0xff with the disable bits set", got)
	}
}

// nonDefaultConfig exercises every configuration field with distinct
// per channel values.
func nonDefaultConfig() *DeviceConfig {
	cfg := &DeviceConfig{
		ScanRate:              ScanRateHighest,
		LowPowerScanRate:      LowPowerScanRateLow,
		InterruptPolarity:     InterruptActiveHigh,
		MaxOutCheck:           false,
		ButtonTimeout:         true,
		ButtonAlgorithm:       true,
		BaselineTrackingReset: false,
		NormalBaseIncrement:   1,
		LowPowerBaseIncrement: 2,
		LCDivider:             4,
		Hysteresis:            0x0F,
		AntiTwist:             5,
	}
	cfg.Channels[0] = ChannelConfig{
		Mode:               ChannelModeNormalAndLowPower,
		Gain:               0x3F,
		OutputPolarity:     OutputActiveHigh,
		DataPolarity:       DataInverted,
		CounterScale:       CounterScale3,
		FastTrackingFactor: FastTrackingFactor2,
		Sensor: SensorConfig{
			RpRange:        RpRange800OhmTo10kOhm,
			FrequencyRange: FreqRange3_3MHzTo10MHz,
			CycleCount:     10,
		},
		AntiCommon: true,
		MaxWin:     true,
	}
	cfg.Channels[1] = ChannelConfig{
		Mode:               ChannelModeDisabled,
		Gain:               0x01,
		DataPolarity:       DataNormal,
		CounterScale:       CounterScale1,
		FastTrackingFactor: FastTrackingFactor1,
		Sensor:             DefaultSensorConfig(),
		AntiDeform:         true,
	}
	cfg.Channels[2] = ChannelConfig{
		Mode:                  ChannelModeNormal,
		Gain:                  0x02,
		DataPolarity:          DataNormal,
		CounterScale:          CounterScale2,
		FastTrackingFactor:    FastTrackingFactor3,
		Sensor:                DefaultSensorConfig(),
		BaselineTrackingPause: true,
	}
	cfg.Channels[3] = ChannelConfig{
		Mode:                  ChannelModeNormalAndLowPower,
		Gain:                  0x30,
		OutputPolarity:        OutputActiveHigh,
		DataPolarity:          DataInverted,
		CounterScale:          CounterScale0,
		FastTrackingFactor:    FastTrackingFactor0,
		Sensor:                SensorConfig{CycleCount: 31},
		AntiCommon:            true,
		AntiDeform:            true,
		MaxWin:                true,
		BaselineTrackingPause: true,
	}
	return cfg
}

func TestSetDeviceConfigurationEncoding(t *testing.T) {
	rf := &regFile{}
	d := New(rf)
	if err := d.SetDeviceConfiguration(nonDefaultConfig()); err != nil {
		t.Fatal(err)
	}
	want := []struct {
		reg   Register
		value uint8
	}{
		{RegEn, 0x9D},
		{RegGain0, 0x3F},
		{RegGain1, 0x01},
		{RegGain2, 0x02},
		{RegGain3, 0x30},
		{RegNPScanRate, 0x08},
		{RegLPScanRate, 0x03},
		{RegIntPol, 0x0D},
		{RegNPBaseInc, 0x01},
		{RegLPBaseInc, 0x02},
		{RegBTPauseMaxWin, 0xC9},
		{RegLCDivider, 0x04},
		{RegHyst, 0x0F},
		{RegTwist, 0x05},
		{RegCommonDeform, 0x9A},
		{RegOpolDpol, 0x96},
		{RegCntsc, 0x27},
		{RegSensor0Config, 0xAA},
		{RegSensor1Config, 0x04},
		{RegSensor2Config, 0x04},
		{RegSensor3Config, 0x1F},
		{RegFTF0, 0x04},
		{RegFTF1_2, 0xD0},
		{RegFTF3, 0x00},
	}
	for _, tt := range want {
		if got := rf.mem[uint8(tt.reg)]; got != tt.value {
			t.Errorf("%s: %#02x, want %#02x", tt.reg, got, tt.value)
		}
	}
}

func TestCounterScalePacking(t *testing.T) {
	// A previous revision of the bulk encoder OR'd channel 1's scale
	// into the offset 0 field, clobbering channel 0's value. Channel
	// 0's own value must land in bits 1:0.
	rf := &regFile{}
	d := New(rf)
	cfg := nonDefaultConfig()
	if err := d.SetDeviceConfiguration(cfg); err != nil {
		t.Fatal(err)
	}
	got := rf.mem[uint8(RegCntsc)]
	if got&0x03 != uint8(cfg.Channels[0].CounterScale) {
		t.Errorf("CNTSC bits 1:0 hold %d, want channel 0's scale %d", got&0x03, cfg.Channels[0].CounterScale)
	}
	if (got&0x0C)>>2 != uint8(cfg.Channels[1].CounterScale) {
		t.Errorf("CNTSC bits 3:2 hold %d, want channel 1's scale %d", (got&0x0C)>>2, cfg.Channels[1].CounterScale)
	}
}

func TestSetDeviceConfigurationWriteOrder(t *testing.T) {
	rf := &regFile{}
	rec := &i2ctest.Record{Bus: rf}
	d := New(rec)
	if err := d.SetDeviceConfiguration(DefaultDeviceConfig()); err != nil {
		t.Fatal(err)
	}
	// The dedicated FTF registers are updated with a read followed by a
	// write; everything else is a single write.
	want := []Register{
		RegEn,
		RegGain0, RegGain1, RegGain2, RegGain3,
		RegNPScanRate, RegLPScanRate,
		RegIntPol,
		RegNPBaseInc, RegLPBaseInc,
		RegBTPauseMaxWin,
		RegLCDivider, RegHyst, RegTwist,
		RegCommonDeform, RegOpolDpol, RegCntsc,
		RegSensor0Config, RegSensor1Config, RegSensor2Config, RegSensor3Config,
		RegFTF0, RegFTF0,
		RegFTF3, RegFTF3,
		RegFTF1_2,
	}
	if len(rec.Ops) != len(want) {
		t.Fatalf("%d bus transactions, want %d", len(rec.Ops), len(want))
	}
	for i, op := range rec.Ops {
		if got := Register(op.W[0]); got != want[i] {
			t.Errorf("transaction %d addressed %s, want %s", i, got, want[i])
		}
	}
}

func TestSetDeviceConfigurationStopsAtFirstError(t *testing.T) {
	rf := &regFile{}
	rec := &i2ctest.Record{Bus: rf}
	d := New(rec)
	cfg := DefaultDeviceConfig()
	cfg.Channels[2].Gain = 0x40
	err := d.SetDeviceConfiguration(cfg)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("got %v, want ErrInvalidParameter", err)
	}
	// EN and the first two gains were already written, nothing after.
	if len(rec.Ops) != 3 {
		t.Errorf("%d bus transactions, want 3", len(rec.Ops))
	}
	if got := rf.mem[uint8(RegGain1)]; got != cfg.Channels[1].Gain {
		t.Errorf("GAIN1 = %#02x, want the committed %#02x", got, cfg.Channels[1].Gain)
	}
}

func TestDeviceConfigurationRoundTrip(t *testing.T) {
	rf := &regFile{}
	d := New(rf)
	cfg := nonDefaultConfig()
	if err := d.SetDeviceConfiguration(cfg); err != nil {
		t.Fatal(err)
	}
	got, err := d.ReadDeviceConfiguration()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("configuration did not round trip:\ngot  %+v\nwant %+v", got, cfg)
	}
}

func TestDefaultConfigurationRoundTrip(t *testing.T) {
	rf := &regFile{}
	d := New(rf)
	cfg := DefaultDeviceConfig()
	if err := d.SetDeviceConfiguration(cfg); err != nil {
		t.Fatal(err)
	}
	got, err := d.ReadDeviceConfiguration()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("configuration did not round trip:\ngot  %+v\nwant %+v", got, cfg)
	}
}

func TestConfigureChannelIsolation(t *testing.T) {
	rf := &regFile{}
	rf.mem[uint8(RegEn)] = 0x11
	rf.mem[uint8(RegBTPauseMaxWin)] = 0x11
	rf.mem[uint8(RegOpolDpol)] = 0x11
	rf.mem[uint8(RegCommonDeform)] = 0x11
	rf.mem[uint8(RegCntsc)] = 0x03
	rf.mem[uint8(RegFTF1_2)] = 0x30
	d := New(rf)
	err := d.ConfigureChannel(Channel2, &ChannelConfig{
		Mode:               ChannelModeNormal,
		Gain:               0x15,
		OutputPolarity:     OutputActiveHigh,
		DataPolarity:       DataNormal,
		CounterScale:       CounterScale2,
		FastTrackingFactor: FastTrackingFactor1,
		Sensor:             SensorConfig{CycleCount: 6},
		AntiCommon:         true,
		MaxWin:             true,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		reg   Register
		value uint8
	}{
		{RegEn, 0x15},
		{RegGain2, 0x15},
		{RegOpolDpol, 0x55},
		{RegCntsc, 0x23},
		{RegFTF1_2, 0x70},
		{RegSensor2Config, 0x06},
		{RegBTPauseMaxWin, 0x15},
		{RegCommonDeform, 0x51},
	}
	for _, tt := range want {
		if got := rf.mem[uint8(tt.reg)]; got != tt.value {
			t.Errorf("%s: %#02x, want %#02x with the other channels' bits preserved", tt.reg, got, tt.value)
		}
	}
}

func TestModeWrites(t *testing.T) {
	rf := &regFile{}
	d := New(rf)
	if err := d.ConfigMode(); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegReset)]; got != 0x01 {
		t.Errorf("RESET = %#02x after ConfigMode, want 0x01", got)
	}
	if err := d.FullReset(); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegReset)]; got != 0x10 {
		t.Errorf("RESET = %#02x after FullReset, want 0x10", got)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegReset)]; got != 0x01 {
		t.Errorf("RESET = %#02x after Halt, want 0x01", got)
	}
}

func TestNormalModeRefreshesShadows(t *testing.T) {
	rf := &regFile{}
	rf.mem[uint8(RegRawData0_3)] = 0xE8
	rf.mem[uint8(RegRawData0_2)] = 0x03
	d := New(rf)

	// Power on values: cycle count 4, divider 3.
	f, err := d.ReadRawFrequency(Channel0)
	if err != nil {
		t.Fatal(err)
	}
	if f != 631898112 {
		t.Errorf("frequency %d, want 631898112 from the power on conversion values", f)
	}

	if err := d.ConfigMode(); err != nil {
		t.Fatal(err)
	}
	if err := d.SetSensorConfig(Channel0, &SensorConfig{CycleCount: 7}); err != nil {
		t.Fatal(err)
	}
	if err := d.SetLCDivider(2); err != nil {
		t.Fatal(err)
	}

	// Not yet committed by a NormalMode transition.
	f, err = d.ReadRawFrequency(Channel0)
	if err != nil {
		t.Fatal(err)
	}
	if f != 631898112 {
		t.Errorf("frequency %d, want 631898112 until NormalMode refreshes the mirrors", f)
	}

	if err := d.NormalMode(); err != nil {
		t.Fatal(err)
	}
	if got := rf.mem[uint8(RegReset)]; got != 0x00 {
		t.Errorf("RESET = %#02x after NormalMode, want 0x00", got)
	}
	f, err = d.ReadRawFrequency(Channel0)
	if err != nil {
		t.Fatal(err)
	}
	if f != 2223505408 {
		t.Errorf("frequency %d, want 2223505408 from the committed conversion values", f)
	}
}

func TestReadStatus(t *testing.T) {
	p := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: I2CAddr, W: []byte{0x00}, R: []byte{0xA5}},
		},
	}
	d := New(p)
	st, err := d.ReadStatus()
	if err != nil {
		t.Fatal(err)
	}
	want := Status{
		OutputStatus: true,
		ReadyToWrite: true,
		LCWatchdog:   true,
		RegisterFlag: true,
	}
	if st != want {
		t.Errorf("status %+v, want %+v", st, want)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStatusPolls(t *testing.T) {
	rf := &regFile{}
	d := New(rf)
	rf.mem[uint8(RegStatus)] = 0x40
	ready, err := d.IsChipReady()
	if err != nil {
		t.Fatal(err)
	}
	if !ready {
		t.Error("IsChipReady = false with the chip ready bit set")
	}
	ready, err = d.IsReadyToWrite()
	if err != nil {
		t.Fatal(err)
	}
	if ready {
		t.Error("IsReadyToWrite = true without the ready to write bit")
	}
	rf.mem[uint8(RegStatus)] = 0x20
	ready, err = d.IsReadyToWrite()
	if err != nil {
		t.Fatal(err)
	}
	if !ready {
		t.Error("IsReadyToWrite = false with the ready to write bit set")
	}
}

func TestReadOutputLogicStates(t *testing.T) {
	p := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: I2CAddr, W: []byte{0x01}, R: []byte{0x1A}},
		},
	}
	d := New(p)
	states, err := d.ReadOutputLogicStates()
	if err != nil {
		t.Fatal(err)
	}
	want := OutputLogicStates{
		NewDataAvailable: true,
		Out:              [4]bool{false, true, false, true},
	}
	if states != want {
		t.Errorf("states %+v, want %+v", states, want)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadButtonData(t *testing.T) {
	p := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: I2CAddr, W: []byte{0x04}, R: []byte{0xFE, 0xFF}},
		},
	}
	d := New(p)
	v, err := d.ReadButtonData(Channel1)
	if err != nil {
		t.Fatal(err)
	}
	if v != -2 {
		t.Errorf("button data %d, want -2", v)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadRawData(t *testing.T) {
	p := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: I2CAddr, W: []byte{0x5F}, R: []byte{0xE8, 0x03, 0x00}},
		},
	}
	d := New(p)
	v, err := d.ReadRawData(Channel2)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1000 {
		t.Errorf("raw data %d, want 1000", v)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadRawFrequencyZero(t *testing.T) {
	rf := &regFile{}
	d := New(rf)
	for ch := Channel0; ch <= Channel3; ch++ {
		f, err := d.ReadRawFrequency(ch)
		if err != nil {
			t.Fatalf("channel %d: %v", ch, err)
		}
		if f != 0 {
			t.Errorf("channel %d: frequency %d from a zero raw reading, want 0", ch, f)
		}
	}
}

func TestReadFrequency(t *testing.T) {
	rf := &regFile{}
	rf.mem[uint8(RegRawData0_3)] = 0xE8
	rf.mem[uint8(RegRawData0_2)] = 0x03
	d := New(rf)
	f, err := d.ReadFrequency(Channel0)
	if err != nil {
		t.Fatal(err)
	}
	if want := 631898112 * physic.Hertz; f != want {
		t.Errorf("frequency %s, want %s", f, want)
	}
}

func TestReadManufacturerID(t *testing.T) {
	p := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: I2CAddr, W: []byte{0xFC}, R: []byte{0x49, 0x54}},
		},
	}
	d := New(p)
	id, err := d.ReadManufacturerID()
	if err != nil {
		t.Fatal(err)
	}
	if id != ManufacturerID {
		t.Errorf("manufacturer ID %#04x, want %#04x", id, ManufacturerID)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadDeviceID(t *testing.T) {
	p := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: I2CAddr, W: []byte{0xFE}, R: []byte{0x14, 0x31}},
		},
	}
	d := New(p)
	id, err := d.ReadDeviceID()
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x3114 {
		t.Errorf("device ID %#04x, want 0x3114", id)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}
