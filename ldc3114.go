// Package ldc3114 provides a driver for the Texas Instruments LDC3114
// four channel inductive touch and proximity sensing IC.
//
// Datasheet: https://www.ti.com/lit/ds/symlink/ldc3114.pdf
package ldc3114

import (
	"encoding/binary"
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// I2CAddr is the fixed bus address of the device.
const I2CAddr uint16 = 0x2A

// ManufacturerID is the value a genuine device reports from its
// manufacturer identification registers.
const ManufacturerID uint16 = 0x5449

// Errors returned by the driver, wrapped with the device name.
var (
	// ErrWriteToReadOnly is returned when writing a read only register.
	ErrWriteToReadOnly = errors.New("write to read only register")
	// ErrInvalidParameter is returned when a value does not fit its
	// register field.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// New returns a handle to an LDC3114 on the given bus. No bus traffic
// happens until the first operation.
//
// The frequency conversion mirrors start at the power on cycle count
// and LC divider values; NormalMode refreshes them from the device.
func New(b i2c.Bus) *Dev {
	return &Dev{
		c:          &i2c.Dev{Bus: b, Addr: I2CAddr},
		cycleCount: [4]uint8{4, 4, 4, 4},
		lcDivider:  3,
	}
}

// Dev is a handle to an LDC3114.
type Dev struct {
	c conn.Conn

	// Mirrors of the committed cycle count and LC divider fields,
	// consumed by the frequency conversion. Stale until the first
	// NormalMode call.
	cycleCount [4]uint8
	lcDivider  uint8
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("LDC3114{%s}", d.c)
}

// Halt pauses scanning by entering configuration mode.
//
// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	return d.ConfigMode()
}

// ReadRegister returns the current value of reg.
func (d *Dev) ReadRegister(reg Register) (uint8, error) {
	var buf [1]byte
	if err := d.c.Tx([]byte{uint8(reg)}, buf[:]); err != nil {
		return 0, d.wrap(err)
	}
	return buf[0], nil
}

// WriteRegister writes value to reg. Writing a read only register fails
// with ErrWriteToReadOnly before any bus traffic.
func (d *Dev) WriteRegister(reg Register, value uint8) error {
	if reg.ReadOnly() {
		return d.wrap(fmt.Errorf("%w: %s", ErrWriteToReadOnly, reg))
	}
	if err := d.c.Tx([]byte{uint8(reg), value}, nil); err != nil {
		return d.wrap(err)
	}
	return nil
}

// ModifyRegister reads reg, applies f to the value and writes the
// result back. The read and the write are separate bus transactions;
// the register must not change in between.
func (d *Dev) ModifyRegister(reg Register, f func(uint8) uint8) error {
	v, err := d.ReadRegister(reg)
	if err != nil {
		return err
	}
	return d.WriteRegister(reg, f(v))
}

// SetRegisterBits sets the given bits of reg, leaving the rest alone.
func (d *Dev) SetRegisterBits(reg Register, bits uint8) error {
	return d.ModifyRegister(reg, func(v uint8) uint8 { return v | bits })
}

// ClearRegisterBits clears the given bits of reg, leaving the rest
// alone.
func (d *Dev) ClearRegisterBits(reg Register, bits uint8) error {
	return d.ModifyRegister(reg, func(v uint8) uint8 { return v &^ bits })
}

func (d *Dev) setBit(reg Register, bit uint8, on bool) error {
	if on {
		return d.SetRegisterBits(reg, bit)
	}
	return d.ClearRegisterBits(reg, bit)
}

func (d *Dev) readWord(reg Register) (uint16, error) {
	var buf [2]byte
	if err := d.c.Tx([]byte{uint8(reg)}, buf[:]); err != nil {
		return 0, d.wrap(err)
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// SetChannelMode sets the scanning mode for ch. Switching to
// ChannelModeNormal clears the low power enable bit so a channel coming
// out of ChannelModeNormalAndLowPower stops scanning in the low power
// state.
func (d *Dev) SetChannelMode(ch Channel, mode ChannelMode) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	switch mode {
	case ChannelModeDisabled:
		return d.ClearRegisterBits(RegEn, info.enBit|info.lpenBit)
	case ChannelModeNormal:
		return d.ModifyRegister(RegEn, func(v uint8) uint8 {
			return v&^info.lpenBit | info.enBit
		})
	case ChannelModeNormalAndLowPower:
		return d.SetRegisterBits(RegEn, info.enBit|info.lpenBit)
	}
	return d.wrap(fmt.Errorf("%w: channel mode %d", ErrInvalidParameter, mode))
}

// SetChannelGain sets the gain applied to ch's sensor deflection. Valid
// values are 0 through 0x3F.
func (d *Dev) SetChannelGain(ch Channel, gain uint8) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	if gain > gainMask {
		return d.wrap(fmt.Errorf("%w: gain %#x", ErrInvalidParameter, gain))
	}
	return d.WriteRegister(info.gain, gain)
}

// SetNormalScanRate sets the sample rate for the normal power state.
func (d *Dev) SetNormalScanRate(rate ScanRate) error {
	return d.WriteRegister(RegNPScanRate, uint8(rate))
}

// SetLowPowerScanRate sets the sample rate for the low power state.
func (d *Dev) SetLowPowerScanRate(rate LowPowerScanRate) error {
	return d.WriteRegister(RegLPScanRate, uint8(rate))
}

// EnableMaxOutCheck controls the maximum output code check. The
// hardware bit is a disable flag; enabling the check clears it.
func (d *Dev) EnableMaxOutCheck(enable bool) error {
	return d.setBit(RegIntPol, intPolDisMaxOut, !enable)
}

// EnableButtonTimeout controls the button press timeout. The hardware
// bit is a disable flag; enabling the timeout clears it.
func (d *Dev) EnableButtonTimeout(enable bool) error {
	return d.setBit(RegIntPol, intPolDisTimeout, !enable)
}

// SetInterruptPolarity sets the active level of the INTB pin.
func (d *Dev) SetInterruptPolarity(p InterruptPolarity) error {
	return d.setBit(RegIntPol, intPolActiveHigh, p == InterruptActiveHigh)
}

// EnableButtonAlgorithm controls the button press detection algorithm.
func (d *Dev) EnableButtonAlgorithm(enable bool) error {
	return d.setBit(RegIntPol, intPolButtonAlg, enable)
}

// EnableBaselineTrackingReset controls the reset of baseline tracking
// on a button press.
func (d *Dev) EnableBaselineTrackingReset(enable bool) error {
	return d.setBit(RegIntPol, intPolBaselineReset, enable)
}

// SetNormalBaseIncrement sets the baseline tracking increment for the
// normal power state. Valid values are 0 through 7.
func (d *Dev) SetNormalBaseIncrement(inc uint8) error {
	if inc > baseIncMask {
		return d.wrap(fmt.Errorf("%w: base increment %d", ErrInvalidParameter, inc))
	}
	return d.WriteRegister(RegNPBaseInc, inc)
}

// SetLowPowerBaseIncrement sets the baseline tracking increment for the
// low power state. Valid values are 0 through 7.
func (d *Dev) SetLowPowerBaseIncrement(inc uint8) error {
	if inc > baseIncMask {
		return d.wrap(fmt.Errorf("%w: base increment %d", ErrInvalidParameter, inc))
	}
	return d.WriteRegister(RegLPBaseInc, inc)
}

// SetBaselineTrackingPause freezes or resumes baseline tracking for ch.
func (d *Dev) SetBaselineTrackingPause(ch Channel, pause bool) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.setBit(RegBTPauseMaxWin, info.btPauseBit, pause)
}

// IncludeInMaxWin controls ch's membership in the max win algorithm: of
// the included channels only the strongest response asserts its button
// output.
func (d *Dev) IncludeInMaxWin(ch Channel, include bool) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.setBit(RegBTPauseMaxWin, info.maxWinBit, include)
}

// SetLCDivider sets the sensor clock divider. Valid values are 0
// through 7.
func (d *Dev) SetLCDivider(div uint8) error {
	if div > lcDividerMask {
		return d.wrap(fmt.Errorf("%w: lc divider %d", ErrInvalidParameter, div))
	}
	return d.WriteRegister(RegLCDivider, div)
}

// SetHysteresis sets the button press detection hysteresis. Valid
// values are 0 through 15.
func (d *Dev) SetHysteresis(hyst uint8) error {
	if hyst > hystMask {
		return d.wrap(fmt.Errorf("%w: hysteresis %d", ErrInvalidParameter, hyst))
	}
	return d.WriteRegister(RegHyst, hyst)
}

// SetAntiTwist sets the antitwist threshold. Valid values are 0
// through 7.
func (d *Dev) SetAntiTwist(twist uint8) error {
	if twist > twistMask {
		return d.wrap(fmt.Errorf("%w: antitwist %d", ErrInvalidParameter, twist))
	}
	return d.WriteRegister(RegTwist, twist)
}

// IncludeInAntiCommon controls ch's membership in the anticommon
// algorithm, which rejects deflections common to all included channels.
func (d *Dev) IncludeInAntiCommon(ch Channel, include bool) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.setBit(RegCommonDeform, info.antiComBit, include)
}

// IncludeInAntiDeform controls ch's membership in the antideform
// algorithm, which rejects case deformation patterns.
func (d *Dev) IncludeInAntiDeform(ch Channel, include bool) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.setBit(RegCommonDeform, info.antiDeformBit, include)
}

// SetOutputPolarity sets the active level of ch's OUT pin.
func (d *Dev) SetOutputPolarity(ch Channel, p OutputPolarity) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.setBit(RegOpolDpol, info.opolBit, p == OutputActiveHigh)
}

// SetDataPolarity sets how ch's data value tracks the sensor frequency.
func (d *Dev) SetDataPolarity(ch Channel, p DataPolarity) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.setBit(RegOpolDpol, info.dpolBit, p == DataNormal)
}

// SetCounterScale sets ch's button data code range scale.
func (d *Dev) SetCounterScale(ch Channel, scale CounterScale) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.ModifyRegister(RegCntsc, func(v uint8) uint8 {
		return v&^info.cntscMask | uint8(scale)<<info.cntscOffset&info.cntscMask
	})
}

// SetFastTrackingFactor sets how quickly ch's baseline tracking follows
// rapid input shifts.
func (d *Dev) SetFastTrackingFactor(ch Channel, factor FastTrackingFactor) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	return d.ModifyRegister(info.ftf, func(v uint8) uint8 {
		return v&^info.ftfMask | uint8(factor)<<info.ftfOffset&info.ftfMask
	})
}

// SetSensorConfig configures ch's sensor parameters in a single write.
func (d *Dev) SetSensorConfig(ch Channel, config *SensorConfig) error {
	info, err := d.channel(ch)
	if err != nil {
		return err
	}
	if config.CycleCount > sensorCycleMask {
		return d.wrap(fmt.Errorf("%w: cycle count %d", ErrInvalidParameter, config.CycleCount))
	}
	return d.WriteRegister(info.sensorConfig, config.CycleCount|uint8(config.RpRange)|uint8(config.FrequencyRange))
}

// SetDeviceConfiguration writes config to the device in a fixed
// register order, encoding the channel shared registers as whole byte
// writes. The device must be in configuration mode.
//
// The sequence stops at the first failure; registers written by
// earlier steps keep their new values.
func (d *Dev) SetDeviceConfiguration(config *DeviceConfig) error {
	var en, pauseWin, comDeform, opolDpol, cntsc, ftf12 uint8
	for ch := Channel0; ch <= Channel3; ch++ {
		cc := &config.Channels[ch]
		info := &channelRegs[ch]

		en |= enBits(info, cc.Mode)
		if cc.BaselineTrackingPause {
			pauseWin |= info.btPauseBit
		}
		if cc.MaxWin {
			pauseWin |= info.maxWinBit
		}
		if cc.AntiCommon {
			comDeform |= info.antiComBit
		}
		if cc.AntiDeform {
			comDeform |= info.antiDeformBit
		}
		opolDpol |= opolDpolBits(info, cc.OutputPolarity, cc.DataPolarity)
		cntsc |= uint8(cc.CounterScale) << info.cntscOffset & info.cntscMask
		if info.ftf == RegFTF1_2 {
			ftf12 |= uint8(cc.FastTrackingFactor) << info.ftfOffset & info.ftfMask
		}
	}

	var intpol uint8
	if config.BaselineTrackingReset {
		intpol |= intPolBaselineReset
	}
	if config.ButtonAlgorithm {
		intpol |= intPolButtonAlg
	}
	if config.InterruptPolarity == InterruptActiveHigh {
		intpol |= intPolActiveHigh
	}
	if !config.ButtonTimeout {
		intpol |= intPolDisTimeout
	}
	if !config.MaxOutCheck {
		intpol |= intPolDisMaxOut
	}

	if err := d.WriteRegister(RegEn, en); err != nil {
		return err
	}
	for ch := Channel0; ch <= Channel3; ch++ {
		if err := d.SetChannelGain(ch, config.Channels[ch].Gain); err != nil {
			return err
		}
	}
	if err := d.SetNormalScanRate(config.ScanRate); err != nil {
		return err
	}
	if err := d.SetLowPowerScanRate(config.LowPowerScanRate); err != nil {
		return err
	}
	if err := d.WriteRegister(RegIntPol, intpol); err != nil {
		return err
	}
	if err := d.SetNormalBaseIncrement(config.NormalBaseIncrement); err != nil {
		return err
	}
	if err := d.SetLowPowerBaseIncrement(config.LowPowerBaseIncrement); err != nil {
		return err
	}
	if err := d.WriteRegister(RegBTPauseMaxWin, pauseWin); err != nil {
		return err
	}
	if err := d.SetLCDivider(config.LCDivider); err != nil {
		return err
	}
	if err := d.SetHysteresis(config.Hysteresis); err != nil {
		return err
	}
	if err := d.SetAntiTwist(config.AntiTwist); err != nil {
		return err
	}
	if err := d.WriteRegister(RegCommonDeform, comDeform); err != nil {
		return err
	}
	if err := d.WriteRegister(RegOpolDpol, opolDpol); err != nil {
		return err
	}
	if err := d.WriteRegister(RegCntsc, cntsc); err != nil {
		return err
	}
	for ch := Channel0; ch <= Channel3; ch++ {
		if err := d.SetSensorConfig(ch, &config.Channels[ch].Sensor); err != nil {
			return err
		}
	}
	if err := d.SetFastTrackingFactor(Channel0, config.Channels[Channel0].FastTrackingFactor); err != nil {
		return err
	}
	if err := d.SetFastTrackingFactor(Channel3, config.Channels[Channel3].FastTrackingFactor); err != nil {
		return err
	}
	return d.WriteRegister(RegFTF1_2, ftf12)
}

// ConfigureChannel applies config to a single channel, leaving the
// other channels untouched. The channel shared registers are updated
// with read-modify-write cycles on ch's bits only.
func (d *Dev) ConfigureChannel(ch Channel, config *ChannelConfig) error {
	if err := d.SetChannelMode(ch, config.Mode); err != nil {
		return err
	}
	if err := d.SetChannelGain(ch, config.Gain); err != nil {
		return err
	}
	if err := d.SetOutputPolarity(ch, config.OutputPolarity); err != nil {
		return err
	}
	if err := d.SetCounterScale(ch, config.CounterScale); err != nil {
		return err
	}
	if err := d.SetFastTrackingFactor(ch, config.FastTrackingFactor); err != nil {
		return err
	}
	if err := d.SetDataPolarity(ch, config.DataPolarity); err != nil {
		return err
	}
	if err := d.SetSensorConfig(ch, &config.Sensor); err != nil {
		return err
	}
	if err := d.IncludeInMaxWin(ch, config.MaxWin); err != nil {
		return err
	}
	if err := d.IncludeInAntiCommon(ch, config.AntiCommon); err != nil {
		return err
	}
	if err := d.IncludeInAntiDeform(ch, config.AntiDeform); err != nil {
		return err
	}
	return d.SetBaselineTrackingPause(ch, config.BaselineTrackingPause)
}

// FullReset restarts the device and restores every register to its
// power on value. The caller should poll IsChipReady before touching
// the device again.
func (d *Dev) FullReset() error {
	return d.WriteRegister(RegReset, resetFull)
}

// ConfigMode pauses scanning and unlocks the configuration registers.
// The caller should poll IsReadyToWrite before writing them.
func (d *Dev) ConfigMode() error {
	return d.WriteRegister(RegReset, resetConfigMode)
}

// NormalMode leaves configuration mode and resumes scanning. Before
// switching, the committed LC divider and cycle count fields are read
// back so later frequency conversions use the values the device
// actually runs with.
func (d *Dev) NormalMode() error {
	div, err := d.ReadRegister(RegLCDivider)
	if err != nil {
		return err
	}
	d.lcDivider = div & lcDividerMask
	for ch := Channel0; ch <= Channel3; ch++ {
		sc, err := d.ReadRegister(channelRegs[ch].sensorConfig)
		if err != nil {
			return err
		}
		d.cycleCount[ch] = sc & sensorCycleMask
	}
	return d.WriteRegister(RegReset, 0)
}

// Status holds the decoded status register flags.
type Status struct {
	// OutputStatus mirrors the combined state of the button outputs.
	OutputStatus bool
	// ChipReady is set once the device finished its internal reset.
	ChipReady bool
	// ReadyToWrite is set when the configuration registers accept
	// writes.
	ReadyToWrite bool
	// MaxOut reports that a channel reached the maximum output code.
	MaxOut bool
	// FSMWatchdog reports a scanning state machine watchdog error.
	FSMWatchdog bool
	// LCWatchdog reports an LC sensor watchdog error.
	LCWatchdog bool
	// Timeout reports that a button press exceeded the press timeout.
	Timeout bool
	// RegisterFlag reports a register integrity error.
	RegisterFlag bool
}

// ReadStatus reads and decodes the status register. The device clears
// the flags on read.
func (d *Dev) ReadStatus() (Status, error) {
	v, err := d.ReadRegister(RegStatus)
	if err != nil {
		return Status{}, err
	}
	return Status{
		OutputStatus: v&statusOut != 0,
		ChipReady:    v&statusChipReady != 0,
		ReadyToWrite: v&statusRdyToWrite != 0,
		MaxOut:       v&statusMaxOut != 0,
		FSMWatchdog:  v&statusFSMWatchdog != 0,
		LCWatchdog:   v&statusLCWatchdog != 0,
		Timeout:      v&statusTimeout != 0,
		RegisterFlag: v&statusRegisterFlag != 0,
	}, nil
}

// IsChipReady reports whether the device finished its internal reset.
// It consumes a status read, clearing the other flags.
func (d *Dev) IsChipReady() (bool, error) {
	status, err := d.ReadStatus()
	if err != nil {
		return false, err
	}
	return status.ChipReady, nil
}

// IsReadyToWrite reports whether the configuration registers accept
// writes. It consumes a status read, clearing the other flags.
func (d *Dev) IsReadyToWrite() (bool, error) {
	status, err := d.ReadStatus()
	if err != nil {
		return false, err
	}
	return status.ReadyToWrite, nil
}

// OutputLogicStates holds the decoded output state register.
type OutputLogicStates struct {
	// NewDataAvailable is set while unread button data is pending.
	NewDataAvailable bool
	// Out holds the logic state of each channel's button output.
	Out [4]bool
}

// ReadOutputLogicStates reads the logic states of the four button
// outputs and the data ready flag.
func (d *Dev) ReadOutputLogicStates() (OutputLogicStates, error) {
	v, err := d.ReadRegister(RegOut)
	if err != nil {
		return OutputLogicStates{}, err
	}
	return OutputLogicStates{
		NewDataAvailable: v&outDataReady != 0,
		Out: [4]bool{
			v&out0 != 0,
			v&out1 != 0,
			v&out2 != 0,
			v&out3 != 0,
		},
	}, nil
}

// ReadButtonData reads ch's processed button data code.
func (d *Dev) ReadButtonData(ch Channel) (int16, error) {
	info, err := d.channel(ch)
	if err != nil {
		return 0, err
	}
	v, err := d.readWord(info.dataLSB)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// ReadRawData reads ch's unprocessed 24 bit sensor reading.
func (d *Dev) ReadRawData(ch Channel) (uint32, error) {
	info, err := d.channel(ch)
	if err != nil {
		return 0, err
	}
	var buf [4]byte
	if err := d.c.Tx([]byte{uint8(info.rawDataLSB)}, buf[:3]); err != nil {
		return 0, d.wrap(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadRawFrequency reads ch's sensor oscillation frequency in Hertz,
// derived from the raw reading and the mirrored cycle count and LC
// divider fields. A zero raw reading yields zero.
func (d *Dev) ReadRawFrequency(ch Channel) (uint32, error) {
	raw, err := d.ReadRawData(ch)
	if err != nil {
		return 0, err
	}
	return rawToFrequency(raw, d.cycleCount[ch], d.lcDivider), nil
}

// ReadFrequency reads ch's sensor oscillation frequency.
func (d *Dev) ReadFrequency(ch Channel) (physic.Frequency, error) {
	f, err := d.ReadRawFrequency(ch)
	if err != nil {
		return 0, err
	}
	return physic.Frequency(f) * physic.Hertz, nil
}

// ReadManufacturerID reads the manufacturer identifier. A genuine
// device reports ManufacturerID.
func (d *Dev) ReadManufacturerID() (uint16, error) {
	return d.readWord(RegManufacturerIDLSB)
}

// ReadDeviceID reads the device identifier.
func (d *Dev) ReadDeviceID() (uint16, error) {
	return d.readWord(RegDeviceIDLSB)
}

// ReadDeviceConfiguration reads the committed configuration registers
// back and decodes them into a DeviceConfig. Applying the result with
// SetDeviceConfiguration reproduces the same register contents.
func (d *Dev) ReadDeviceConfiguration() (*DeviceConfig, error) {
	cfg := &DeviceConfig{}

	en, err := d.ReadRegister(RegEn)
	if err != nil {
		return nil, err
	}
	pauseWin, err := d.ReadRegister(RegBTPauseMaxWin)
	if err != nil {
		return nil, err
	}
	comDeform, err := d.ReadRegister(RegCommonDeform)
	if err != nil {
		return nil, err
	}
	opolDpol, err := d.ReadRegister(RegOpolDpol)
	if err != nil {
		return nil, err
	}
	cntsc, err := d.ReadRegister(RegCntsc)
	if err != nil {
		return nil, err
	}

	for ch := Channel0; ch <= Channel3; ch++ {
		info := &channelRegs[ch]
		cc := &cfg.Channels[ch]

		switch {
		case en&info.enBit == 0:
			cc.Mode = ChannelModeDisabled
		case en&info.lpenBit != 0:
			cc.Mode = ChannelModeNormalAndLowPower
		default:
			cc.Mode = ChannelModeNormal
		}

		gain, err := d.ReadRegister(info.gain)
		if err != nil {
			return nil, err
		}
		cc.Gain = gain & gainMask

		cc.BaselineTrackingPause = pauseWin&info.btPauseBit != 0
		cc.MaxWin = pauseWin&info.maxWinBit != 0
		cc.AntiCommon = comDeform&info.antiComBit != 0
		cc.AntiDeform = comDeform&info.antiDeformBit != 0

		if opolDpol&info.opolBit != 0 {
			cc.OutputPolarity = OutputActiveHigh
		}
		if opolDpol&info.dpolBit != 0 {
			cc.DataPolarity = DataNormal
		}

		cc.CounterScale = CounterScale(cntsc & info.cntscMask >> info.cntscOffset)

		sensor, err := d.ReadRegister(info.sensorConfig)
		if err != nil {
			return nil, err
		}
		cc.Sensor = SensorConfig{
			RpRange:        RpRange(sensor & sensorRpRangeMask),
			FrequencyRange: FrequencyRange(sensor & sensorFreqRangeMask),
			CycleCount:     sensor & sensorCycleMask,
		}

		ftf, err := d.ReadRegister(info.ftf)
		if err != nil {
			return nil, err
		}
		cc.FastTrackingFactor = FastTrackingFactor(ftf & info.ftfMask >> info.ftfOffset)
	}

	npsr, err := d.ReadRegister(RegNPScanRate)
	if err != nil {
		return nil, err
	}
	cfg.ScanRate = ScanRate(npsr & scanRateMask)

	lpsr, err := d.ReadRegister(RegLPScanRate)
	if err != nil {
		return nil, err
	}
	cfg.LowPowerScanRate = LowPowerScanRate(lpsr & lpScanRateMask)

	intpol, err := d.ReadRegister(RegIntPol)
	if err != nil {
		return nil, err
	}
	cfg.BaselineTrackingReset = intpol&intPolBaselineReset != 0
	cfg.ButtonAlgorithm = intpol&intPolButtonAlg != 0
	if intpol&intPolActiveHigh != 0 {
		cfg.InterruptPolarity = InterruptActiveHigh
	}
	cfg.ButtonTimeout = intpol&intPolDisTimeout == 0
	cfg.MaxOutCheck = intpol&intPolDisMaxOut == 0

	npinc, err := d.ReadRegister(RegNPBaseInc)
	if err != nil {
		return nil, err
	}
	cfg.NormalBaseIncrement = npinc & baseIncMask

	lpinc, err := d.ReadRegister(RegLPBaseInc)
	if err != nil {
		return nil, err
	}
	cfg.LowPowerBaseIncrement = lpinc & baseIncMask

	div, err := d.ReadRegister(RegLCDivider)
	if err != nil {
		return nil, err
	}
	cfg.LCDivider = div & lcDividerMask

	hyst, err := d.ReadRegister(RegHyst)
	if err != nil {
		return nil, err
	}
	cfg.Hysteresis = hyst & hystMask

	twist, err := d.ReadRegister(RegTwist)
	if err != nil {
		return nil, err
	}
	cfg.AntiTwist = twist & twistMask

	return cfg, nil
}

// rawToFrequency converts a raw reading to a sensor oscillation
// frequency in Hertz, truncated to 32 bits. The scan window spans
// 128*(cycleCount+1) periods of the 44MHz reference, stretched by the
// LC divider.
func rawToFrequency(raw uint32, cycleCount, divider uint8) uint32 {
	if raw == 0 {
		return 0
	}
	window := 128 * (1 + uint64(cycleCount)) * (uint64(2) << divider)
	return uint32(30 * window * 44000000 / uint64(raw))
}

func enBits(info *channelInfo, mode ChannelMode) uint8 {
	switch mode {
	case ChannelModeNormal:
		return info.enBit
	case ChannelModeNormalAndLowPower:
		return info.enBit | info.lpenBit
	}
	return 0
}

func opolDpolBits(info *channelInfo, op OutputPolarity, dp DataPolarity) uint8 {
	var bits uint8
	if op == OutputActiveHigh {
		bits |= info.opolBit
	}
	if dp == DataNormal {
		bits |= info.dpolBit
	}
	return bits
}

// channel validates ch and returns its register table entry.
func (d *Dev) channel(ch Channel) (*channelInfo, error) {
	if ch > Channel3 {
		return nil, d.wrap(fmt.Errorf("%w: channel %d", ErrInvalidParameter, ch))
	}
	return &channelRegs[ch], nil
}

func (d *Dev) wrap(err error) error {
	return fmt.Errorf("ldc3114: %w", err)
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
