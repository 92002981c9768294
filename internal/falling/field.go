package falling

// EscapeY is the default boundary: targets whose Y exceeds it have
// reached the bottom and are removed with a penalty.
const EscapeY = 100.0

// Field owns the active target set for one mini-game session.
//
// Movement and escape are resolved together in Advance, player shots are
// resolved synchronously in ShootAt; an entity removed by either path is
// gone immediately, so nothing can be both destroyed and escaped within
// a tick.
type Field struct {
	entities []Entity
	escapeY  float64
}

// NewField creates an empty field with the given escape boundary.
func NewField(escapeY float64) *Field {
	return &Field{
		entities: make([]Entity, 0, 16),
		escapeY:  escapeY,
	}
}

// Add places a freshly spawned target on the field.
func (f *Field) Add(e Entity) {
	f.entities = append(f.entities, e)
}

// Advance moves every target down by its own speed, removes the ones
// past the boundary and returns them. Each entity is considered exactly
// once per call.
func (f *Field) Advance() []Entity {
	var escaped []Entity

	remaining := f.entities[:0]
	for _, e := range f.entities {
		e.Y += e.Speed
		if e.Y > f.escapeY {
			escaped = append(escaped, e)
			continue
		}
		remaining = append(remaining, e)
	}
	f.entities = remaining
	return escaped
}

// ShootAt removes and returns the target closest to (x, y) within the
// given radius. Returns false when the shot hits nothing.
func (f *Field) ShootAt(x, y, radius float64) (Entity, bool) {
	bestIdx := -1
	bestDist := radius * radius

	for i, e := range f.entities {
		dx := e.X - x
		dy := e.Y - y
		d := dx*dx + dy*dy
		if d <= bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return Entity{}, false
	}

	hit := f.entities[bestIdx]
	f.entities = append(f.entities[:bestIdx], f.entities[bestIdx+1:]...)
	return hit, true
}

// ShootColumn removes and returns the lowest visible target within dx of
// the given x position. This is the keyboard aiming path: the cannon
// sweeps horizontally and fires straight up.
func (f *Field) ShootColumn(x, dx float64) (Entity, bool) {
	bestIdx := -1
	bestY := -1e9

	for i, e := range f.entities {
		if e.Y < 0 {
			continue // still above the visible field
		}
		off := e.X - x
		if off < -dx || off > dx {
			continue
		}
		if e.Y > bestY {
			bestY = e.Y
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return Entity{}, false
	}

	hit := f.entities[bestIdx]
	f.entities = append(f.entities[:bestIdx], f.entities[bestIdx+1:]...)
	return hit, true
}

// Entities returns the live target set. The slice is owned by the field;
// callers must not retain it across ticks.
func (f *Field) Entities() []Entity {
	return f.entities
}

// Len returns the number of live targets.
func (f *Field) Len() int {
	return len(f.entities)
}

// Clear removes every target, for session restarts.
func (f *Field) Clear() {
	f.entities = f.entities[:0]
}
