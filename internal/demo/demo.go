// Package demo provides the sample object kinds the inspector ships with.
package demo

import (
	"encoding/json"

	"github.com/jask/inspector/core"
	"github.com/jask/inspector/internal/database"
	"github.com/jask/inspector/internal/database/repository"
	"github.com/jask/inspector/internal/host"
)

// Kinds lists the demo kinds. playing reports whether the scene is in play mode.
func Kinds(playing func() bool) []host.Kind {
	return []host.Kind{
		{
			Name:  "Lamp",
			New:   func() any { return &Lamp{} },
			Panel: func(t any) core.Definition { return &LampPanel{Lamp: t.(*Lamp)} },
		},
		{
			Name:  "Door",
			New:   func() any { return &Door{} },
			Panel: func(t any) core.Definition { return &DoorPanel{Door: t.(*Door), Playing: playing} },
		},
		{
			Name:  "Spawner",
			New:   func() any { return &Spawner{} },
			Panel: func(t any) core.Definition { return &SpawnerPanel{Spawner: t.(*Spawner)} },
		},
		{
			Name: "Crate",
			New:  func() any { return &Crate{} },
		},
	}
}

func Register(reg *host.Registry, playing func() bool) {
	for _, k := range Kinds(playing) {
		reg.Register(k)
	}
}

// Defaults are the assets seeded into an empty store.
func Defaults() []repository.Entity {
	assets := []struct {
		kind, name string
		v          any
	}{
		{"Lamp", "Desk Lamp", Lamp{Name: "Desk Lamp", Lit: true, Brightness: 60, Color: "#ffd27f"}},
		{"Door", "Front Door", Door{Name: "Front Door", Locked: true, KeyID: "brass"}},
		{"Spawner", "Crate Spawner", Spawner{Name: "Crate Spawner", Prefab: "Crate", Rate: 2}},
		{"Crate", "Supply Crate", Crate{Label: "supplies", Weight: 12}},
	}
	out := make([]repository.Entity, 0, len(assets))
	for _, a := range assets {
		payload, err := json.Marshal(a.v)
		if err != nil {
			panic(err)
		}
		out = append(out, repository.Entity{
			ID:      database.EntityID(a.kind, a.name),
			Kind:    a.kind,
			Name:    a.name,
			Payload: payload,
		})
	}
	return out
}
