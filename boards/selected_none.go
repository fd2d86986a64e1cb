//go:build !onju_v3

package boards

// No board tag: nothing selected.
const HasSelected = false

var Selected = BoardConfig{}
