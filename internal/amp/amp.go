// Package amp sequences the amplifier's mute and speaker-enable lines so the
// output stage never comes up or goes down unmuted.
package amp

import (
	"context"
	"time"

	"onju-go/x/timex"
)

// Pin is the slice of a GPIO output the sequencer needs.
type Pin interface {
	Set(bool)
	Get() bool
	Number() int
}

type Params struct {
	MuteActiveLow   bool
	EnableActiveLow bool
	// Settle is how long the stage is held muted around enable changes.
	Settle time.Duration
}

const DefaultSettle = 50 * time.Millisecond

type Amp struct {
	mute, enable Pin
	p            Params
}

func New(mute, enable Pin, p Params) *Amp {
	if p.Settle < 0 {
		p.Settle = 0
	}
	return &Amp{mute: mute, enable: enable, p: p}
}

func level(on, activeLow bool) bool { return on != activeLow }

func (a *Amp) setMute(on bool)   { a.mute.Set(level(on, a.p.MuteActiveLow)) }
func (a *Amp) setEnable(on bool) { a.enable.Set(level(on, a.p.EnableActiveLow)) }

func (a *Amp) Muted() bool   { return level(a.mute.Get(), a.p.MuteActiveLow) }
func (a *Amp) Enabled() bool { return level(a.enable.Get(), a.p.EnableActiveLow) }

// PowerUp mutes, enables the speaker stage, waits Settle, then unmutes.
// On cancellation the stage stays enabled and muted.
func (a *Amp) PowerUp(ctx context.Context) error {
	a.setMute(true)
	a.setEnable(true)
	if err := timex.Sleep(ctx, a.p.Settle); err != nil {
		return err
	}
	a.setMute(false)
	return nil
}

// PowerDown mutes, waits Settle, then disables the speaker stage.
// On cancellation the stage stays muted.
func (a *Amp) PowerDown(ctx context.Context) error {
	a.setMute(true)
	if err := timex.Sleep(ctx, a.p.Settle); err != nil {
		return err
	}
	a.setEnable(false)
	return nil
}
