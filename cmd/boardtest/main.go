//go:build esp32s3

// cmd/boardtest brings up the selected board: pin checks, amplifier
// sequencing and a status LED chase.
package main

import (
	"context"
	"image/color"
	"time"

	"onju-go/boards"
	"onju-go/errcode"
	"onju-go/internal/amp"
	"onju-go/internal/platform"
	"onju-go/x/timex"
)

const (
	chaseStep = 120 * time.Millisecond
	dwellUp   = 2 * time.Second
	dwellDown = 1 * time.Second

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

var (
	green = color.RGBA{G: 0x30, A: 0xff}
	red   = color.RGBA{R: 0x30, A: 0xff}
	blue  = color.RGBA{B: 0x30, A: 0xff}
)

func logf(a ...any) {
	print(timex.NowMs(), " [boardtest]")
	for _, v := range a {
		print(" ", v)
	}
	println()
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}

func chase(ctx context.Context, b *platform.Board, c color.RGBA) error {
	for i := 0; i < b.Strip.Len(); i++ {
		b.Strip.Clear()
		if err := b.Strip.Set(i, c); err != nil {
			return err
		}
		if err := b.Strip.Show(); err != nil {
			return err
		}
		if err := timex.Sleep(ctx, chaseStep); err != nil {
			return err
		}
	}
	return nil
}

func flash(b *platform.Board, c color.RGBA) {
	b.Strip.Fill(c)
	if err := b.Strip.Show(); err != nil {
		logf("led write failed:", string(errcode.Of(err)))
	}
}

func main() {
	ctx := context.Background()

	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	if !boards.HasSelected {
		logf("no board selected; build with -tags onju_v3")
		halt()
	}
	cfg := boards.Selected
	logf("board", cfg.Name, "psram", cfg.UsesExternalMemory)

	b, err := platform.Open(cfg, amp.Params{Settle: amp.DefaultSettle})
	if err != nil {
		logf("open failed:", err.Error())
		halt()
	}

	cycle := 0
	for {
		cycle++
		logf("cycle", cycle)

		if err := b.Amp.PowerUp(ctx); err != nil {
			logf("amp up:", err.Error())
		}
		pass := b.Amp.Enabled() && !b.Amp.Muted()
		if err := chase(ctx, b, blue); err != nil {
			logf("chase:", err.Error())
			pass = false
		}
		time.Sleep(dwellUp)

		if err := b.Amp.PowerDown(ctx); err != nil {
			logf("amp down:", err.Error())
		}
		pass = pass && !b.Amp.Enabled() && b.Amp.Muted()

		if pass {
			logf("[PASS] amp sequenced; strip of", b.Strip.Len(), "written")
			flash(b, green)
		} else {
			logf("[FAIL] amp or strip")
			flash(b, red)
		}
		time.Sleep(dwellDown)

		if cyclesToRun > 0 && cycle >= cyclesToRun {
			logf("completed", cycle, "cycles; halting")
			b.Strip.Clear()
			_ = b.Strip.Show()
			halt()
		}
	}
}
