package boards

// V3 wiring.
const (
	V3Name = "V3"

	V3I2SPort       = I2S0
	V3I2SClockPin   = 18
	V3I2SWordSelect = 13
	V3I2SDataIn     = 17
	V3I2SDataOut    = 12

	V3MutePin          = 38
	V3SpeakerEnablePin = 21

	V3LEDPin   = 11
	V3LEDCount = 6

	V3TouchLeft   TouchChannel = "T2"
	V3TouchCenter TouchChannel = "T3"
	V3TouchRight  TouchChannel = "T4"

	V3UsesPSRAM = true
)

// V3 is the onju V3 board record.
var V3 = BoardConfig{
	Name:     V3Name,
	Platform: ESP32S3,
	AudioBus: AudioBus{
		Index:         V3I2SPort,
		ClockPin:      V3I2SClockPin,
		WordSelectPin: V3I2SWordSelect,
		DataInPin:     V3I2SDataIn,
		DataOutPin:    V3I2SDataOut,
	},
	MuteControlPin:   V3MutePin,
	SpeakerEnablePin: V3SpeakerEnablePin,
	StatusLED:        StatusLED{DataPin: V3LEDPin, Count: V3LEDCount},
	Touch: TouchChannels{
		Left:   V3TouchLeft,
		Center: V3TouchCenter,
		Right:  V3TouchRight,
	},
	UsesExternalMemory: V3UsesPSRAM,
}
