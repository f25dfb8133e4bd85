package input

// Snapshot is the per-tick view of the keyboard: which keys are held and
// which went down since the previous tick.
type Snapshot struct {
	pressed     [keyCount]bool
	justPressed [keyCount]bool
}

func (s *Snapshot) Pressed(k Key) bool {
	return k < keyCount && s.pressed[k]
}

func (s *Snapshot) JustPressed(k Key) bool {
	return k < keyCount && s.justPressed[k]
}

// AnyPressed reports whether any of keys is held.
func (s *Snapshot) AnyPressed(keys []Key) bool {
	for _, k := range keys {
		if s.Pressed(k) {
			return true
		}
	}
	return false
}

// AnyJustPressed reports whether any of keys went down this tick.
func (s *Snapshot) AnyJustPressed(keys []Key) bool {
	for _, k := range keys {
		if s.JustPressed(k) {
			return true
		}
	}
	return false
}

// Tracker turns successive "currently pressed" reports into snapshots with
// press edges.
type Tracker struct {
	current Snapshot
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Capture records the keys held this tick and returns the new snapshot.
func (t *Tracker) Capture(held []Key) *Snapshot {
	var next Snapshot
	for _, k := range held {
		if k == KeyUnknown || k >= keyCount {
			continue
		}
		next.pressed[k] = true
		if !t.current.pressed[k] {
			next.justPressed[k] = true
		}
	}
	t.current = next
	return &t.current
}

// Snapshot returns the most recent capture.
func (t *Tracker) Snapshot() *Snapshot { return &t.current }
