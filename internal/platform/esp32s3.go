//go:build esp32s3

package platform

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"onju-go/boards"
	"onju-go/errcode"
	"onju-go/internal/amp"
	"onju-go/internal/boardcheck"
	"onju-go/internal/statusled"
)

type outPin struct {
	p machine.Pin
	n int
}

func (o *outPin) Set(b bool)  { o.p.Set(b) }
func (o *outPin) Get() bool   { return o.p.Get() }
func (o *outPin) Number() int { return o.n }

func output(n int, initial bool) *outPin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(initial)
	return &outPin{p: p, n: n}
}

// Open checks cfg and claims its amplifier and LED pins. The amplifier is
// left muted with the speaker stage off.
func Open(cfg boards.BoardConfig, ap amp.Params) (*Board, error) {
	if err := boardcheck.Check(cfg); err != nil {
		return nil, err
	}
	if cfg.Platform.Name != boards.ESP32S3.Name {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "platform", Msg: "board " + cfg.Name + " targets " + cfg.Platform.Name}
	}

	mute := output(cfg.MuteControlPin, !ap.MuteActiveLow)
	enable := output(cfg.SpeakerEnablePin, ap.EnableActiveLow)

	led := output(cfg.StatusLED.DataPin, false)
	strip, err := statusled.New(ws2812.New(led.p), cfg.StatusLED)
	if err != nil {
		return nil, err
	}
	return &Board{Amp: amp.New(mute, enable, ap), Strip: strip}, nil
}
