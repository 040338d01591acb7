package ldc3114

import (
	"encoding/json"
	"fmt"
)

// ChannelMode selects the operating mode of a sensing channel.
type ChannelMode uint8

const (
	// ChannelModeDisabled turns the channel off in both power states.
	ChannelModeDisabled ChannelMode = iota
	// ChannelModeNormal scans the channel in normal power state only.
	ChannelModeNormal
	// ChannelModeNormalAndLowPower scans the channel in both the normal
	// and the low power state.
	ChannelModeNormalAndLowPower
)

// ChannelModes maps strings to ChannelMode values.
var ChannelModes = map[string]ChannelMode{
	"disabled":  ChannelModeDisabled,
	"normal":    ChannelModeNormal,
	"normal+lp": ChannelModeNormalAndLowPower,
}

var channelModeStrings = map[ChannelMode]string{
	ChannelModeDisabled:          "disabled",
	ChannelModeNormal:            "normal",
	ChannelModeNormalAndLowPower: "normal+lp",
}

func (m ChannelMode) String() string {
	return channelModeStrings[m]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *ChannelMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("channel mode should be a string, got %s", data)
	}
	got, ok := ChannelModes[s]
	if !ok {
		return fmt.Errorf("invalid channel mode: %s", s)
	}
	*m = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (m ChannelMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(channelModeStrings[m])
}

// ScanRate selects the sample rate in the normal power state.
type ScanRate uint8

const (
	ScanRateHigh       ScanRate = 0x00 // 80 SPS
	ScanRateMedium     ScanRate = 0x01 // 40 SPS
	ScanRateLow        ScanRate = 0x02 // 20 SPS
	ScanRateLowest     ScanRate = 0x03 // 10 SPS
	ScanRateContinuous ScanRate = 0x04 // scan again as soon as the previous scan ends
	ScanRateHighest    ScanRate = 0x08 // 160 SPS
)

// ScanRates maps strings to ScanRate values.
var ScanRates = map[string]ScanRate{
	"continuous": ScanRateContinuous,
	"highest":    ScanRateHighest,
	"high":       ScanRateHigh,
	"medium":     ScanRateMedium,
	"low":        ScanRateLow,
	"lowest":     ScanRateLowest,
}

var scanRateStrings = map[ScanRate]string{
	ScanRateContinuous: "continuous",
	ScanRateHighest:    "highest",
	ScanRateHigh:       "high",
	ScanRateMedium:     "medium",
	ScanRateLow:        "low",
	ScanRateLowest:     "lowest",
}

func (sr ScanRate) String() string {
	return scanRateStrings[sr]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (sr *ScanRate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("scan rate should be a string, got %s", data)
	}
	got, ok := ScanRates[s]
	if !ok {
		return fmt.Errorf("invalid scan rate: %s", s)
	}
	*sr = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (sr ScanRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(scanRateStrings[sr])
}

// LowPowerScanRate selects the sample rate in the low power state.
type LowPowerScanRate uint8

const (
	LowPowerScanRateHighest LowPowerScanRate = 0x00 // 5 SPS
	LowPowerScanRateHigh    LowPowerScanRate = 0x01 // 2.5 SPS
	LowPowerScanRateMedium  LowPowerScanRate = 0x02 // 1.25 SPS
	LowPowerScanRateLow     LowPowerScanRate = 0x03 // 0.625 SPS
)

// LowPowerScanRates maps strings to LowPowerScanRate values.
var LowPowerScanRates = map[string]LowPowerScanRate{
	"highest": LowPowerScanRateHighest,
	"high":    LowPowerScanRateHigh,
	"medium":  LowPowerScanRateMedium,
	"low":     LowPowerScanRateLow,
}

var lowPowerScanRateStrings = map[LowPowerScanRate]string{
	LowPowerScanRateHighest: "highest",
	LowPowerScanRateHigh:    "high",
	LowPowerScanRateMedium:  "medium",
	LowPowerScanRateLow:     "low",
}

func (sr LowPowerScanRate) String() string {
	return lowPowerScanRateStrings[sr]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (sr *LowPowerScanRate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("low power scan rate should be a string, got %s", data)
	}
	got, ok := LowPowerScanRates[s]
	if !ok {
		return fmt.Errorf("invalid low power scan rate: %s", s)
	}
	*sr = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (sr LowPowerScanRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(lowPowerScanRateStrings[sr])
}

// InterruptPolarity selects the active level of the INTB pin.
type InterruptPolarity uint8

const (
	InterruptActiveLow  InterruptPolarity = 0
	InterruptActiveHigh InterruptPolarity = 1
)

var interruptPolarities = map[string]InterruptPolarity{
	"active-low":  InterruptActiveLow,
	"active-high": InterruptActiveHigh,
}

var interruptPolarityStrings = map[InterruptPolarity]string{
	InterruptActiveLow:  "active-low",
	InterruptActiveHigh: "active-high",
}

func (p InterruptPolarity) String() string {
	return interruptPolarityStrings[p]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *InterruptPolarity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("interrupt polarity should be a string, got %s", data)
	}
	got, ok := interruptPolarities[s]
	if !ok {
		return fmt.Errorf("invalid interrupt polarity: %s", s)
	}
	*p = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (p InterruptPolarity) MarshalJSON() ([]byte, error) {
	return json.Marshal(interruptPolarityStrings[p])
}

// OutputPolarity selects the active level of a channel's OUT pin.
type OutputPolarity uint8

const (
	OutputActiveLow  OutputPolarity = 0
	OutputActiveHigh OutputPolarity = 1
)

var outputPolarities = map[string]OutputPolarity{
	"active-low":  OutputActiveLow,
	"active-high": OutputActiveHigh,
}

var outputPolarityStrings = map[OutputPolarity]string{
	OutputActiveLow:  "active-low",
	OutputActiveHigh: "active-high",
}

func (p OutputPolarity) String() string {
	return outputPolarityStrings[p]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *OutputPolarity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("output polarity should be a string, got %s", data)
	}
	got, ok := outputPolarities[s]
	if !ok {
		return fmt.Errorf("invalid output polarity: %s", s)
	}
	*p = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (p OutputPolarity) MarshalJSON() ([]byte, error) {
	return json.Marshal(outputPolarityStrings[p])
}

// DataPolarity selects how a channel's data value tracks the sensor
// frequency.
type DataPolarity uint8

const (
	// DataInverted decreases the data value as the sensor frequency
	// increases.
	DataInverted DataPolarity = 0
	// DataNormal increases the data value as the sensor frequency
	// increases.
	DataNormal DataPolarity = 1
)

var dataPolarities = map[string]DataPolarity{
	"inverted": DataInverted,
	"normal":   DataNormal,
}

var dataPolarityStrings = map[DataPolarity]string{
	DataInverted: "inverted",
	DataNormal:   "normal",
}

func (p DataPolarity) String() string {
	return dataPolarityStrings[p]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *DataPolarity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("data polarity should be a string, got %s", data)
	}
	got, ok := dataPolarities[s]
	if !ok {
		return fmt.Errorf("invalid data polarity: %s", s)
	}
	*p = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (p DataPolarity) MarshalJSON() ([]byte, error) {
	return json.Marshal(dataPolarityStrings[p])
}

// CounterScale scales a channel's button data code range.
type CounterScale uint8

const (
	CounterScale0 CounterScale = iota
	CounterScale1
	CounterScale2
	CounterScale3
)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (cs *CounterScale) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("counter scale should be a number, got %s", data)
	}
	if v > uint8(CounterScale3) {
		return fmt.Errorf("invalid counter scale: %d", v)
	}
	*cs = CounterScale(v)
	return nil
}

// FastTrackingFactor controls how quickly a channel's baseline tracking
// follows rapid input shifts.
type FastTrackingFactor uint8

const (
	FastTrackingFactor0 FastTrackingFactor = iota
	FastTrackingFactor1
	FastTrackingFactor2
	FastTrackingFactor3
)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (ftf *FastTrackingFactor) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("fast tracking factor should be a number, got %s", data)
	}
	if v > uint8(FastTrackingFactor3) {
		return fmt.Errorf("invalid fast tracking factor: %d", v)
	}
	*ftf = FastTrackingFactor(v)
	return nil
}

// RpRange selects the supported parallel resistance range of the
// attached sensor.
type RpRange uint8

const (
	RpRange50OhmTo4kOhm   RpRange = 0x00
	RpRange800OhmTo10kOhm RpRange = 0x80
)

var rpRanges = map[string]RpRange{
	"50ohm-4kohm":   RpRange50OhmTo4kOhm,
	"800ohm-10kohm": RpRange800OhmTo10kOhm,
}

var rpRangeStrings = map[RpRange]string{
	RpRange50OhmTo4kOhm:   "50ohm-4kohm",
	RpRange800OhmTo10kOhm: "800ohm-10kohm",
}

func (r RpRange) String() string {
	return rpRangeStrings[r]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *RpRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rp range should be a string, got %s", data)
	}
	got, ok := rpRanges[s]
	if !ok {
		return fmt.Errorf("invalid rp range: %s", s)
	}
	*r = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (r RpRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(rpRangeStrings[r])
}

// FrequencyRange selects the supported sensor oscillation frequency
// range.
type FrequencyRange uint8

const (
	FreqRange1MHzTo3_3MHz  FrequencyRange = 0x00
	FreqRange3_3MHzTo10MHz FrequencyRange = 0x20
	FreqRange10MHzTo30MHz  FrequencyRange = 0x40
)

var frequencyRanges = map[string]FrequencyRange{
	"1-3.3MHz":  FreqRange1MHzTo3_3MHz,
	"3.3-10MHz": FreqRange3_3MHzTo10MHz,
	"10-30MHz":  FreqRange10MHzTo30MHz,
}

var frequencyRangeStrings = map[FrequencyRange]string{
	FreqRange1MHzTo3_3MHz:  "1-3.3MHz",
	FreqRange3_3MHzTo10MHz: "3.3-10MHz",
	FreqRange10MHzTo30MHz:  "10-30MHz",
}

func (fr FrequencyRange) String() string {
	return frequencyRangeStrings[fr]
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (fr *FrequencyRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("frequency range should be a string, got %s", data)
	}
	got, ok := frequencyRanges[s]
	if !ok {
		return fmt.Errorf("invalid frequency range: %s", s)
	}
	*fr = got
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (fr FrequencyRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(frequencyRangeStrings[fr])
}

// SensorConfig describes the LC sensor attached to a channel.
type SensorConfig struct {
	RpRange        RpRange        `json:"rp_range"`
	FrequencyRange FrequencyRange `json:"frequency_range"`
	// CycleCount sets the sensor sampling window length. Valid values
	// are 0 through 31.
	CycleCount uint8 `json:"cycle_count"`
}

// ChannelConfig holds the per channel device settings.
type ChannelConfig struct {
	Mode               ChannelMode        `json:"mode"`
	Gain               uint8              `json:"gain"`
	OutputPolarity     OutputPolarity     `json:"output_polarity"`
	DataPolarity       DataPolarity       `json:"data_polarity"`
	CounterScale       CounterScale       `json:"counter_scale"`
	Sensor             SensorConfig       `json:"sensor"`
	FastTrackingFactor FastTrackingFactor `json:"ftf"`
	// AntiCommon includes the channel in the anticommon algorithm,
	// which rejects deflections common to all included channels.
	AntiCommon bool `json:"anticommon"`
	// AntiDeform includes the channel in the antideform algorithm,
	// which rejects case deformation patterns.
	AntiDeform bool `json:"antideform"`
	// MaxWin includes the channel in the max win algorithm: of the
	// included channels, only the strongest response asserts its
	// button output.
	MaxWin bool `json:"max_win"`
	// BaselineTrackingPause freezes baseline tracking for the channel.
	BaselineTrackingPause bool `json:"baseline_pause"`
}

// DeviceConfig holds a complete device configuration.
type DeviceConfig struct {
	Channels          [4]ChannelConfig  `json:"channels"`
	ScanRate          ScanRate          `json:"scan_rate"`
	LowPowerScanRate  LowPowerScanRate  `json:"lp_scan_rate"`
	InterruptPolarity InterruptPolarity `json:"interrupt_polarity"`
	// MaxOutCheck enables the maximum output code check.
	MaxOutCheck bool `json:"maxout_check"`
	// ButtonTimeout enables the button press timeout.
	ButtonTimeout bool `json:"button_timeout"`
	// ButtonAlgorithm enables the button press detection algorithm.
	ButtonAlgorithm bool `json:"button_algorithm"`
	// BaselineTrackingReset enables the reset of baseline tracking on
	// a button press.
	BaselineTrackingReset bool `json:"baseline_reset"`
	// NormalBaseIncrement sets the baseline tracking increment in the
	// normal power state. Valid values are 0 through 7.
	NormalBaseIncrement uint8 `json:"np_base_inc"`
	// LowPowerBaseIncrement sets the baseline tracking increment in
	// the low power state. Valid values are 0 through 7.
	LowPowerBaseIncrement uint8 `json:"lp_base_inc"`
	// LCDivider sets the sensor clock divider. Valid values are 0
	// through 7.
	LCDivider uint8 `json:"lc_divider"`
	// Hysteresis sets the button press detection hysteresis. Valid
	// values are 0 through 15.
	Hysteresis uint8 `json:"hysteresis"`
	// AntiTwist sets the antitwist threshold. Valid values are 0
	// through 7.
	AntiTwist uint8 `json:"antitwist"`
}

// DefaultSensorConfig returns the power on sensor settings.
func DefaultSensorConfig() SensorConfig {
	return SensorConfig{
		RpRange:        RpRange50OhmTo4kOhm,
		FrequencyRange: FreqRange1MHzTo3_3MHz,
		CycleCount:     4,
	}
}

// DefaultChannelConfig returns the power on settings for ch. Channel 0
// defaults to scanning in both power states, the other channels to the
// normal power state only.
func DefaultChannelConfig(ch Channel) ChannelConfig {
	mode := ChannelModeNormal
	if ch <= Channel3 {
		mode = channelRegs[ch].defaultMode
	}
	return ChannelConfig{
		Mode:               mode,
		Gain:               0x28,
		OutputPolarity:     OutputActiveLow,
		DataPolarity:       DataNormal,
		CounterScale:       CounterScale1,
		Sensor:             DefaultSensorConfig(),
		FastTrackingFactor: FastTrackingFactor1,
	}
}

// DefaultDeviceConfig returns the power on configuration of the device.
func DefaultDeviceConfig() *DeviceConfig {
	cfg := &DeviceConfig{
		ScanRate:              ScanRateMedium,
		LowPowerScanRate:      LowPowerScanRateHighest,
		InterruptPolarity:     InterruptActiveLow,
		MaxOutCheck:           true,
		ButtonTimeout:         true,
		ButtonAlgorithm:       true,
		BaselineTrackingReset: true,
		NormalBaseIncrement:   3,
		LowPowerBaseIncrement: 5,
		LCDivider:             3,
		Hysteresis:            8,
		AntiTwist:             0,
	}
	for ch := Channel0; ch <= Channel3; ch++ {
		cfg.Channels[ch] = DefaultChannelConfig(ch)
	}
	return cfg
}
