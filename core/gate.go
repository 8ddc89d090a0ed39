package core

const DefaultDisabledMessage = "Editor not enabled!"

// EnablementGate is a stack of interaction states. Each scope ANDs its own value
// with the enclosing one and popping restores exactly the enclosing value.
type EnablementGate struct {
	stack []bool
}

// Enabled reports whether controls drawn now accept input. Outside any scope it is true.
func (g *EnablementGate) Enabled() bool {
	if n := len(g.stack); n > 0 {
		return g.stack[n-1]
	}
	return true
}

func (g *EnablementGate) Depth() int { return len(g.stack) }

// Push opens a scope and returns the func that closes it. Calling the returned
// func more than once has no further effect.
func (g *EnablementGate) Push(enabled bool) func() {
	g.stack = append(g.stack, g.Enabled() && enabled)
	depth := len(g.stack)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		if len(g.stack) >= depth {
			g.stack = g.stack[:depth-1]
		}
	}
}

func (g *EnablementGate) reset() {
	g.stack = g.stack[:0]
}

// truncate drops scopes above depth, used when a pass aborts mid-scope.
func (g *EnablementGate) truncate(depth int) {
	if depth < len(g.stack) {
		g.stack = g.stack[:max(0, depth)]
	}
}
