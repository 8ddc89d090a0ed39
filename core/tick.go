package core

import "slices"

// TickRegistry holds the callbacks the host runs once per frame.
type TickRegistry struct {
	order []string
	fns   map[string]func()
}

func NewTickRegistry() *TickRegistry {
	return &TickRegistry{fns: make(map[string]func())}
}

func (r *TickRegistry) Register(key string, fn func()) {
	if _, ok := r.fns[key]; !ok {
		r.order = append(r.order, key)
	}
	r.fns[key] = fn
}

// Unregister is a no-op for keys that are not registered.
func (r *TickRegistry) Unregister(key string) {
	if _, ok := r.fns[key]; !ok {
		return
	}
	delete(r.fns, key)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == key })
}

func (r *TickRegistry) Registered(key string) bool {
	_, ok := r.fns[key]
	return ok
}

func (r *TickRegistry) Len() int { return len(r.fns) }

// Fire runs every registered callback. A callback registered during Fire first
// runs on the next call; one unregistered during Fire is skipped.
func (r *TickRegistry) Fire() {
	keys := slices.Clone(r.order)
	for _, k := range keys {
		if fn, ok := r.fns[k]; ok {
			fn()
		}
	}
}
