// Package statusled keeps the colour buffer for the board's status strip.
package statusled

import (
	"image/color"
	"strconv"

	"onju-go/boards"
	"onju-go/errcode"
)

// Writer pushes a full frame to the strip. ws2812.Device satisfies it.
type Writer interface {
	WriteColors(buf []color.RGBA) error
}

type Strip struct {
	w   Writer
	buf []color.RGBA
}

// New sizes the buffer from the board's LED count.
func New(w Writer, cfg boards.StatusLED) (*Strip, error) {
	if cfg.Count < 1 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "statusled", Msg: "led count " + strconv.Itoa(cfg.Count)}
	}
	return &Strip{w: w, buf: make([]color.RGBA, cfg.Count)}, nil
}

func (s *Strip) Len() int { return len(s.buf) }

func (s *Strip) Set(i int, c color.RGBA) error {
	if i < 0 || i >= len(s.buf) {
		return &errcode.E{C: errcode.InvalidParams, Op: "statusled", Msg: "index " + strconv.Itoa(i)}
	}
	s.buf[i] = c
	return nil
}

func (s *Strip) Fill(c color.RGBA) {
	for i := range s.buf {
		s.buf[i] = c
	}
}

func (s *Strip) Clear() { s.Fill(color.RGBA{}) }

// Show writes the buffer to the strip.
func (s *Strip) Show() error {
	if err := s.w.WriteColors(s.buf); err != nil {
		return &errcode.E{C: errcode.MapDriverErr(err), Op: "statusled", Msg: "write", Err: err}
	}
	return nil
}

// Colors returns a copy of the current buffer.
func (s *Strip) Colors() []color.RGBA {
	return append([]color.RGBA(nil), s.buf...)
}
