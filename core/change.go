package core

// ChangeTracker counts modifications reported by controls. A tracking scope
// compares the count before and after its body, so nested scopes each see
// only what happened inside them.
type ChangeTracker struct {
	reports uint64
	open    int
}

// Report records that a control modified its value.
func (t *ChangeTracker) Report() {
	t.reports++
}

// Track runs body and reports whether anything drawn inside it changed.
func (t *ChangeTracker) Track(body func()) bool {
	before := t.reports
	t.open++
	defer func() { t.open-- }()
	body()
	return t.reports != before
}

// Tracking reports whether a Track scope is currently open.
func (t *ChangeTracker) Tracking() bool { return t.open > 0 }
