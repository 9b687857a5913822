// Package input translates raw key, touch and pointer events into headings.
package input

import "snake-arcade/internal/core"

// Keymap maps key names to headings.
type Keymap map[string]core.Heading

// DefaultKeymap returns arrow keys plus WASD in either case.
func DefaultKeymap() Keymap {
	return Keymap{
		"ArrowUp":    core.HeadingUp,
		"ArrowDown":  core.HeadingDown,
		"ArrowLeft":  core.HeadingLeft,
		"ArrowRight": core.HeadingRight,
		"w":          core.HeadingUp,
		"W":          core.HeadingUp,
		"s":          core.HeadingDown,
		"S":          core.HeadingDown,
		"a":          core.HeadingLeft,
		"A":          core.HeadingLeft,
		"d":          core.HeadingRight,
		"D":          core.HeadingRight,
	}
}

// Lookup returns the heading bound to key.
func (k Keymap) Lookup(key string) (core.Heading, bool) {
	h, ok := k[key]
	return h, ok
}

// Rune returns the heading bound to a typed character.
func (k Keymap) Rune(r rune) (core.Heading, bool) {
	return k.Lookup(string(r))
}
