// Package falling is the shared engine behind the reflex mini-games:
// targets spawn at the top of a normalized 0-100 field, fall at a speed
// fixed at creation, and are either destroyed by an aimed shot or escape
// past the bottom boundary. Arcade Mode, the installer shooter and the
// survival challenge are all parameterizations of this package.
package falling

import "github.com/digiresist/reboot-arcade/internal/core"

// Kind is one category in the weighted target table.
type Kind struct {
	Name   string
	Icon   rune
	Points int
	Color  core.Color
}

// BloatwareKinds returns the standard threat table, point values rising
// with severity.
func BloatwareKinds() []Kind {
	return []Kind{
		{Name: "ADS", Icon: '#', Points: 10, Color: core.ColorYellow},
		{Name: "TELEMETRY", Icon: 'o', Points: 15, Color: core.ColorMagenta},
		{Name: "UPDATES", Icon: '@', Points: 20, Color: core.ColorCyan},
		{Name: "BLOAT", Icon: '&', Points: 25, Color: core.ColorRed},
		{Name: "TRACKER", Icon: '+', Points: 30, Color: core.ColorOrange},
	}
}

// Entity is one falling target.
//
// Speed is assigned once at spawn and never changes for the entity's
// lifetime; it is the only per-entity difficulty variance within a level.
type Entity struct {
	ID    int
	X     float64 // 0-100 across the field
	Y     float64 // negative start, >100 means escaped
	Speed float64 // field units per movement tick
	Kind  Kind
}
