// Package boardcheck validates a board record before drivers claim its pins.
package boardcheck

import (
	"strconv"

	"onju-go/boards"
	"onju-go/errcode"
)

const op = "boardcheck"

// PinRole names one physically distinct line on the board.
type PinRole struct {
	Role string
	Pin  int
}

// Roles lists the board's distinct pin roles in a fixed order.
func Roles(cfg boards.BoardConfig) []PinRole {
	return []PinRole{
		{"i2s_bck", cfg.AudioBus.ClockPin},
		{"i2s_ws", cfg.AudioBus.WordSelectPin},
		{"i2s_din", cfg.AudioBus.DataInPin},
		{"i2s_dout", cfg.AudioBus.DataOutPin},
		{"mute", cfg.MuteControlPin},
		{"speaker_en", cfg.SpeakerEnablePin},
		{"led_data", cfg.StatusLED.DataPin},
	}
}

// Check returns the first problem found in cfg, or nil.
func Check(cfg boards.BoardConfig) error {
	if cfg.Name == "" {
		return fail(errcode.InvalidParams, "missing board name")
	}
	p := cfg.Platform
	if p.Name == "" || p.GPIOMax <= p.GPIOMin {
		return fail(errcode.Unsupported, "board "+cfg.Name+" has no platform")
	}

	claimed := make(map[int]string, 8)
	for _, r := range Roles(cfg) {
		if r.Pin < p.GPIOMin || r.Pin > p.GPIOMax {
			return fail(errcode.UnknownPin, r.Role+" on GPIO"+strconv.Itoa(r.Pin)+" (not on "+p.Name+")")
		}
		if prev, ok := claimed[r.Pin]; ok {
			return fail(errcode.PinInUse, r.Role+" and "+prev+" share GPIO"+strconv.Itoa(r.Pin))
		}
		claimed[r.Pin] = r.Role
	}

	if cfg.StatusLED.Count < 1 {
		return fail(errcode.InvalidParams, "led count "+strconv.Itoa(cfg.StatusLED.Count))
	}

	touched := make(map[boards.TouchChannel]string, 3)
	for _, t := range []struct {
		role string
		ch   boards.TouchChannel
	}{
		{"touch_left", cfg.Touch.Left},
		{"touch_center", cfg.Touch.Center},
		{"touch_right", cfg.Touch.Right},
	} {
		if !p.HasTouch(t.ch) {
			return fail(errcode.Unsupported, t.role+" channel "+strconv.Quote(string(t.ch))+" not on "+p.Name)
		}
		if prev, ok := touched[t.ch]; ok {
			return fail(errcode.PinInUse, t.role+" and "+prev+" share "+string(t.ch))
		}
		touched[t.ch] = t.role
	}
	return nil
}

func fail(c errcode.Code, msg string) error {
	return &errcode.E{C: c, Op: op, Msg: msg}
}
