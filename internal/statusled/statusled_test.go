package statusled

import (
	"errors"
	"image/color"
	"testing"

	"onju-go/boards"
	"onju-go/errcode"
)

type fakeWriter struct {
	frames [][]color.RGBA
	err    error
}

func (f *fakeWriter) WriteColors(buf []color.RGBA) error {
	f.frames = append(f.frames, append([]color.RGBA(nil), buf...))
	return f.err
}

var red = color.RGBA{R: 0xff, A: 0xff}

func TestNewSizesFromBoard(t *testing.T) {
	s, err := New(&fakeWriter{}, boards.V3.StatusLED)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 6 {
		t.Fatalf("Len = %d, want 6", s.Len())
	}
}

func TestNewRejectsEmptyStrip(t *testing.T) {
	_, err := New(&fakeWriter{}, boards.StatusLED{DataPin: 11})
	if errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v, want invalid_params", err)
	}
}

func TestSetFillShow(t *testing.T) {
	w := &fakeWriter{}
	s, _ := New(w, boards.StatusLED{DataPin: 11, Count: 3})

	if err := s.Set(1, red); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(3, red); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("Set(3) err = %v", err)
	}
	if err := s.Set(-1, red); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("Set(-1) err = %v", err)
	}
	if err := s.Show(); err != nil {
		t.Fatal(err)
	}
	if got := w.frames[0]; got[0] != (color.RGBA{}) || got[1] != red || got[2] != (color.RGBA{}) {
		t.Fatalf("frame = %v", got)
	}

	s.Fill(red)
	_ = s.Show()
	for i, c := range w.frames[1] {
		if c != red {
			t.Fatalf("led %d = %v after Fill", i, c)
		}
	}

	s.Clear()
	for i, c := range s.Colors() {
		if c != (color.RGBA{}) {
			t.Fatalf("led %d = %v after Clear", i, c)
		}
	}
}

func TestColorsIsCopy(t *testing.T) {
	s, _ := New(&fakeWriter{}, boards.StatusLED{Count: 2})
	c := s.Colors()
	c[0] = red
	if s.Colors()[0] == red {
		t.Fatal("Colors exposed the internal buffer")
	}
}

func TestShowMapsDriverError(t *testing.T) {
	cause := errors.New("rmt busy")
	s, _ := New(&fakeWriter{err: cause}, boards.StatusLED{Count: 1})
	err := s.Show()
	if errcode.Of(err) != errcode.DriverFailed {
		t.Fatalf("err = %v, want driver_failed", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause lost")
	}
}
