package core

import "testing"

func TestTickRegistryFireOrderAndMutation(t *testing.T) {
	r := NewTickRegistry()
	var got []string
	r.Register("a", func() {
		got = append(got, "a")
		r.Register("c", func() { got = append(got, "c") })
		r.Unregister("b")
	})
	r.Register("b", func() { got = append(got, "b") })

	r.Fire()
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("first fire: %v", got)
	}
	got = nil
	r.Fire()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("second fire: %v", got)
	}
	r.Unregister("missing")
	r.Unregister("c")
	r.Unregister("c")
	if r.Len() != 1 || r.Registered("c") {
		t.Fatalf("unexpected registrations: %d", r.Len())
	}
}
