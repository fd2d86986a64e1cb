// Package platform binds a board record to the SoC's pins and drivers.
package platform

import (
	"onju-go/internal/amp"
	"onju-go/internal/statusled"
)

// Board is the set of board-level outputs the firmware drives directly.
type Board struct {
	Amp   *amp.Amp
	Strip *statusled.Strip
}
