package boards

// BoardConfig describes one physical board revision: which pins carry which
// role and which optional hardware is fitted. It is plain data; drivers read
// it, nothing writes it.
type BoardConfig struct {
	Name     string
	Platform Platform

	AudioBus AudioBus

	// Amplifier control lines.
	MuteControlPin   int
	SpeakerEnablePin int

	StatusLED StatusLED
	Touch     TouchChannels

	// External PSRAM fitted and enabled at boot.
	UsesExternalMemory bool
}

// AudioBus is the I2S wiring to the codec/amplifier.
type AudioBus struct {
	Index         I2SPort
	ClockPin      int // BCK
	WordSelectPin int // WS / LRCLK
	DataInPin     int
	DataOutPin    int
}

// StatusLED is an addressable (WS2812) strip.
type StatusLED struct {
	DataPin int
	Count   int
}

type TouchChannels struct {
	Left, Center, Right TouchChannel
}

// I2SPort identifies the I2S peripheral instance.
type I2SPort uint8

const (
	I2S0 I2SPort = 0
	I2S1 I2SPort = 1
)

// TouchChannel is an opaque capacitive-touch channel name as the platform
// labels it (e.g. "T2"). The GPIO behind it is the platform's business.
type TouchChannel string

// Platform describes what the SoC can do (GPIO range, touch channels).
// It must not include wiring choices.
type Platform struct {
	Name             string
	GPIOMin, GPIOMax int
	Touch            []TouchChannel
}

// HasTouch reports whether ch is a channel the platform provides.
func (p Platform) HasTouch(ch TouchChannel) bool {
	for _, t := range p.Touch {
		if t == ch {
			return true
		}
	}
	return false
}
