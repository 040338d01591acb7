package ldc3114

import "fmt"

// Register is an LDC3114 register address.
//
// The device exposes a sparse one byte address space; the value of each
// Register constant is its bus address.
type Register uint8

// Register addresses, transcribed from the datasheet register map. The
// RAW_DATAn readings are split across three registers; the _3 register
// holds the least significant byte at the lowest address.
const (
	RegStatus            Register = 0x00
	RegOut               Register = 0x01
	RegData0LSB          Register = 0x02
	RegData0MSB          Register = 0x03
	RegData1LSB          Register = 0x04
	RegData1MSB          Register = 0x05
	RegData2LSB          Register = 0x06
	RegData2MSB          Register = 0x07
	RegData3LSB          Register = 0x08
	RegData3MSB          Register = 0x09
	RegReset             Register = 0x0A
	RegEn                Register = 0x0C
	RegNPScanRate        Register = 0x0D
	RegGain0             Register = 0x0E
	RegLPScanRate        Register = 0x0F
	RegGain1             Register = 0x10
	RegIntPol            Register = 0x11
	RegGain2             Register = 0x12
	RegLPBaseInc         Register = 0x13
	RegGain3             Register = 0x14
	RegNPBaseInc         Register = 0x15
	RegBTPauseMaxWin     Register = 0x16
	RegLCDivider         Register = 0x17
	RegHyst              Register = 0x18
	RegTwist             Register = 0x19
	RegCommonDeform      Register = 0x1A
	RegOpolDpol          Register = 0x1C
	RegCntsc             Register = 0x1E
	RegSensor0Config     Register = 0x20
	RegSensor1Config     Register = 0x22
	RegSensor2Config     Register = 0x24
	RegFTF0              Register = 0x25
	RegSensor3Config     Register = 0x26
	RegFTF1_2            Register = 0x28
	RegFTF3              Register = 0x2B
	RegRawData0_3        Register = 0x59
	RegRawData0_2        Register = 0x5A
	RegRawData0_1        Register = 0x5B
	RegRawData1_3        Register = 0x5C
	RegRawData1_2        Register = 0x5D
	RegRawData1_1        Register = 0x5E
	RegRawData2_3        Register = 0x5F
	RegRawData2_2        Register = 0x60
	RegRawData2_1        Register = 0x61
	RegRawData3_3        Register = 0x62
	RegRawData3_2        Register = 0x63
	RegRawData3_1        Register = 0x64
	RegManufacturerIDLSB Register = 0xFC
	RegManufacturerIDMSB Register = 0xFD
	RegDeviceIDLSB       Register = 0xFE
	RegDeviceIDMSB       Register = 0xFF
)

var registerNames = map[Register]string{
	RegStatus:            "STATUS",
	RegOut:               "OUT",
	RegData0LSB:          "DATA0_LSB",
	RegData0MSB:          "DATA0_MSB",
	RegData1LSB:          "DATA1_LSB",
	RegData1MSB:          "DATA1_MSB",
	RegData2LSB:          "DATA2_LSB",
	RegData2MSB:          "DATA2_MSB",
	RegData3LSB:          "DATA3_LSB",
	RegData3MSB:          "DATA3_MSB",
	RegReset:             "RESET",
	RegEn:                "EN",
	RegNPScanRate:        "NP_SCAN_RATE",
	RegGain0:             "GAIN0",
	RegLPScanRate:        "LP_SCAN_RATE",
	RegGain1:             "GAIN1",
	RegIntPol:            "INTPOL",
	RegGain2:             "GAIN2",
	RegLPBaseInc:         "LP_BASE_INC",
	RegGain3:             "GAIN3",
	RegNPBaseInc:         "NP_BASE_INC",
	RegBTPauseMaxWin:     "BTPAUSE_MAXWIN",
	RegLCDivider:         "LC_DIVIDER",
	RegHyst:              "HYST",
	RegTwist:             "TWIST",
	RegCommonDeform:      "COMMON_DEFORM",
	RegOpolDpol:          "OPOL_DPOL",
	RegCntsc:             "CNTSC",
	RegSensor0Config:     "SENSOR0_CONFIG",
	RegSensor1Config:     "SENSOR1_CONFIG",
	RegSensor2Config:     "SENSOR2_CONFIG",
	RegFTF0:              "FTF0",
	RegSensor3Config:     "SENSOR3_CONFIG",
	RegFTF1_2:            "FTF1_2",
	RegFTF3:              "FTF3",
	RegRawData0_3:        "RAW_DATA0_3",
	RegRawData0_2:        "RAW_DATA0_2",
	RegRawData0_1:        "RAW_DATA0_1",
	RegRawData1_3:        "RAW_DATA1_3",
	RegRawData1_2:        "RAW_DATA1_2",
	RegRawData1_1:        "RAW_DATA1_1",
	RegRawData2_3:        "RAW_DATA2_3",
	RegRawData2_2:        "RAW_DATA2_2",
	RegRawData2_1:        "RAW_DATA2_1",
	RegRawData3_3:        "RAW_DATA3_3",
	RegRawData3_2:        "RAW_DATA3_2",
	RegRawData3_1:        "RAW_DATA3_1",
	RegManufacturerIDLSB: "MANUFACTURER_ID_LSB",
	RegManufacturerIDMSB: "MANUFACTURER_ID_MSB",
	RegDeviceIDLSB:       "DEVICE_ID_LSB",
	RegDeviceIDMSB:       "DEVICE_ID_MSB",
}

// String returns the datasheet name of the register.
func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Register(0x%02x)", uint8(r))
}

// ReadOnly reports whether the register rejects writes. Status, output
// states, measurement data and the ID registers are fixed by the device.
func (r Register) ReadOnly() bool {
	switch r {
	case RegStatus, RegOut,
		RegData0LSB, RegData0MSB, RegData1LSB, RegData1MSB,
		RegData2LSB, RegData2MSB, RegData3LSB, RegData3MSB,
		RegRawData0_3, RegRawData0_2, RegRawData0_1,
		RegRawData1_3, RegRawData1_2, RegRawData1_1,
		RegRawData2_3, RegRawData2_2, RegRawData2_1,
		RegRawData3_3, RegRawData3_2, RegRawData3_1,
		RegManufacturerIDLSB, RegManufacturerIDMSB,
		RegDeviceIDLSB, RegDeviceIDMSB:
		return true
	}
	return false
}

// STATUS bits.
const (
	statusOut          uint8 = 0x80
	statusChipReady    uint8 = 0x40
	statusRdyToWrite   uint8 = 0x20
	statusMaxOut       uint8 = 0x10
	statusFSMWatchdog  uint8 = 0x08
	statusLCWatchdog   uint8 = 0x04
	statusTimeout      uint8 = 0x02
	statusRegisterFlag uint8 = 0x01
)

// OUT bits.
const (
	outDataReady uint8 = 0x10
	out3         uint8 = 0x08
	out2         uint8 = 0x04
	out1         uint8 = 0x02
	out0         uint8 = 0x01
)

// RESET codes.
const (
	resetFull       uint8 = 0x10
	resetConfigMode uint8 = 0x01
)

// INTPOL bits. DIS_BTN_TO and DIS_BTB_MO are disable flags: the bit set
// means the feature is off.
const (
	intPolBaselineReset uint8 = 0x10
	intPolButtonAlg     uint8 = 0x08
	intPolActiveHigh    uint8 = 0x04
	intPolDisTimeout    uint8 = 0x02
	intPolDisMaxOut     uint8 = 0x01
)

// SENSORn_CONFIG fields.
const (
	sensorRpRangeMask   uint8 = 0x80
	sensorFreqRangeMask uint8 = 0x60
	sensorCycleMask     uint8 = 0x1F
)

// Field widths of the whole byte configuration registers.
const (
	gainMask       uint8 = 0x3F
	scanRateMask   uint8 = 0x0F
	lpScanRateMask uint8 = 0x03
	baseIncMask    uint8 = 0x07
	lcDividerMask  uint8 = 0x07
	hystMask       uint8 = 0x0F
	twistMask      uint8 = 0x07
)

// Channel identifies one of the four sensing channels.
type Channel uint8

const (
	Channel0 Channel = iota
	Channel1
	Channel2
	Channel3
)

// channelInfo locates one channel's bits and registers. The channels
// share the EN, BTPAUSE_MAXWIN, OPOL_DPOL, COMMON_DEFORM and CNTSC
// registers, each claiming bit positions disjoint from the other three.
// Channels 1 and 2 additionally share the FTF1_2 register; channels 0
// and 3 have dedicated FTF registers.
type channelInfo struct {
	enBit         uint8
	lpenBit       uint8
	btPauseBit    uint8
	maxWinBit     uint8
	opolBit       uint8
	dpolBit       uint8
	antiComBit    uint8
	antiDeformBit uint8

	cntscMask   uint8
	cntscOffset uint8
	ftfMask     uint8
	ftfOffset   uint8

	gain         Register
	sensorConfig Register
	dataLSB      Register
	rawDataLSB   Register
	ftf          Register

	defaultMode ChannelMode
}

// channelRegs is the per channel register and bit assignment table,
// transcribed from the datasheet register map.
var channelRegs = [4]channelInfo{
	Channel0: {
		enBit:         0x01,
		lpenBit:       0x10,
		btPauseBit:    0x10,
		maxWinBit:     0x01,
		opolBit:       0x10,
		dpolBit:       0x01,
		antiComBit:    0x10,
		antiDeformBit: 0x01,
		cntscMask:     0x03,
		cntscOffset:   0,
		ftfMask:       0x06,
		ftfOffset:     1,
		gain:          RegGain0,
		sensorConfig:  RegSensor0Config,
		dataLSB:       RegData0LSB,
		rawDataLSB:    RegRawData0_3,
		ftf:           RegFTF0,
		defaultMode:   ChannelModeNormalAndLowPower,
	},
	Channel1: {
		enBit:         0x02,
		lpenBit:       0x20,
		btPauseBit:    0x20,
		maxWinBit:     0x02,
		opolBit:       0x20,
		dpolBit:       0x02,
		antiComBit:    0x20,
		antiDeformBit: 0x02,
		cntscMask:     0x0C,
		cntscOffset:   2,
		ftfMask:       0x30,
		ftfOffset:     4,
		gain:          RegGain1,
		sensorConfig:  RegSensor1Config,
		dataLSB:       RegData1LSB,
		rawDataLSB:    RegRawData1_3,
		ftf:           RegFTF1_2,
		defaultMode:   ChannelModeNormal,
	},
	Channel2: {
		enBit:         0x04,
		lpenBit:       0x40,
		btPauseBit:    0x40,
		maxWinBit:     0x04,
		opolBit:       0x40,
		dpolBit:       0x04,
		antiComBit:    0x40,
		antiDeformBit: 0x04,
		cntscMask:     0x30,
		cntscOffset:   4,
		ftfMask:       0xC0,
		ftfOffset:     6,
		gain:          RegGain2,
		sensorConfig:  RegSensor2Config,
		dataLSB:       RegData2LSB,
		rawDataLSB:    RegRawData2_3,
		ftf:           RegFTF1_2,
		defaultMode:   ChannelModeNormal,
	},
	Channel3: {
		enBit:         0x08,
		lpenBit:       0x80,
		btPauseBit:    0x80,
		maxWinBit:     0x08,
		opolBit:       0x80,
		dpolBit:       0x08,
		antiComBit:    0x80,
		antiDeformBit: 0x08,
		cntscMask:     0xC0,
		cntscOffset:   6,
		ftfMask:       0x03,
		ftfOffset:     0,
		gain:          RegGain3,
		sensorConfig:  RegSensor3Config,
		dataLSB:       RegData3LSB,
		rawDataLSB:    RegRawData3_3,
		ftf:           RegFTF3,
		defaultMode:   ChannelModeNormal,
	},
}
