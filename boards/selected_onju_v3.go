//go:build onju_v3

package boards

const HasSelected = true

// Selected is the board this build targets.
var Selected = V3
