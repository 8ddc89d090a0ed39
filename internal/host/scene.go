package host

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jask/inspector/core"
	"github.com/jask/inspector/internal/database"
	"github.com/jask/inspector/internal/database/repository"
	"github.com/jask/inspector/internal/logging"
)

// Object is one editable thing in the scene.
type Object struct {
	ID     string
	Name   string
	Target any
}

func (o *Object) Kind() string { return core.TypeName(o.Target) }

// Scene is the editor state panels run against. It implements core.Host.
type Scene struct {
	ctx      context.Context
	repo     *repository.EntityRepo
	log      *log.Logger
	objects  []*Object
	byTarget map[any]*Object
	dirty    map[string]*Object
	repaint  bool
	playing  bool
}

func NewScene(ctx context.Context, repo *repository.EntityRepo, logger *log.Logger) *Scene {
	if logger == nil {
		logger = logging.Discard
	}
	return &Scene{
		ctx:      ctx,
		repo:     repo,
		log:      logger,
		byTarget: make(map[any]*Object),
		dirty:    make(map[string]*Object),
	}
}

// Add places an unsaved instance of target in the scene.
func (s *Scene) Add(name string, target any) *Object {
	return s.add(&Object{ID: uuid.NewString(), Name: name, Target: target})
}

// Instantiate adds an unsaved copy of o to the scene.
func (s *Scene) Instantiate(o *Object) (*Object, error) {
	t := reflect.TypeOf(o.Target)
	if t.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("instantiate %s: target is not a pointer", o.Name)
	}
	raw, err := json.Marshal(o.Target)
	if err != nil {
		return nil, fmt.Errorf("instantiate %s: %w", o.Name, err)
	}
	clone := reflect.New(t.Elem()).Interface()
	if err := json.Unmarshal(raw, clone); err != nil {
		return nil, fmt.Errorf("instantiate %s: %w", o.Name, err)
	}
	return s.Add(o.Name+" (copy)", clone), nil
}

func (s *Scene) add(o *Object) *Object {
	s.objects = append(s.objects, o)
	s.byTarget[o.Target] = o
	return o
}

func (s *Scene) Objects() []*Object { return s.objects }
func (s *Scene) Len() int           { return len(s.objects) }
func (s *Scene) Playing() bool      { return s.playing }
func (s *Scene) SetPlaying(p bool)  { s.playing = p }
func (s *Scene) DirtyCount() int    { return len(s.dirty) }

func (s *Scene) Lookup(target any) (*Object, bool) {
	o, ok := s.byTarget[target]
	return o, ok
}

// Load adds every persisted asset whose kind newTarget knows.
func (s *Scene) Load(newTarget func(kind string) (any, bool)) error {
	entities, err := s.repo.List(s.ctx, "")
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	for _, e := range entities {
		target, ok := newTarget(e.Kind)
		if !ok {
			s.log.Warn("skipping asset of unknown kind", "kind", e.Kind, "id", e.ID)
			continue
		}
		if err := json.Unmarshal(e.Payload, target); err != nil {
			return fmt.Errorf("decode %s %s: %w", e.Kind, e.ID, err)
		}
		s.add(&Object{ID: e.ID, Name: e.Name, Target: target})
	}
	return nil
}

// IsAsset reports whether target is persisted in the asset store.
func (s *Scene) IsAsset(target any) bool {
	o, ok := s.byTarget[target]
	if !ok {
		return false
	}
	exists, err := s.repo.Exists(s.ctx, o.ID)
	if err != nil {
		s.log.Error("asset lookup", "id", o.ID, "err", err)
		return false
	}
	return exists
}

// Destroy removes target from the scene. Persisted assets are left alone.
func (s *Scene) Destroy(target any) error {
	o, ok := s.byTarget[target]
	if !ok {
		return fmt.Errorf("destroy %s: not in scene", core.TypeName(target))
	}
	delete(s.byTarget, target)
	delete(s.dirty, o.ID)
	s.objects = slices.DeleteFunc(s.objects, func(x *Object) bool { return x == o })
	s.log.Info("destroyed", "kind", o.Kind(), "name", o.Name)
	return nil
}

func (s *Scene) MarkDirty(target any) {
	if o, ok := s.byTarget[target]; ok {
		s.dirty[o.ID] = o
	}
}

func (s *Scene) Repaint(*core.Panel) { s.repaint = true }

// TakeRepaint reports and clears a pending repaint request.
func (s *Scene) TakeRepaint() bool {
	r := s.repaint
	s.repaint = false
	return r
}

// Save writes every dirty asset back to the store in one transaction. Changes
// to unsaved scene instances stay in memory. When the write fails nothing is
// cleared, so the edits can be saved again.
func (s *Scene) Save() (int, error) {
	if len(s.dirty) == 0 {
		return 0, nil
	}
	var settled []string
	saved := 0
	err := database.WithTx(s.ctx, s.repo.Conn(), func(tx *sql.Tx) error {
		repo := s.repo.WithTx(tx)
		for id, o := range s.dirty {
			exists, err := repo.Exists(s.ctx, id)
			if err != nil {
				return err
			}
			if exists {
				payload, err := json.Marshal(o.Target)
				if err != nil {
					return fmt.Errorf("encode %s: %w", o.Name, err)
				}
				if err := repo.Upsert(s.ctx, repository.Entity{ID: id, Kind: o.Kind(), Name: o.Name, Payload: payload}); err != nil {
					return err
				}
				saved++
			}
			settled = append(settled, id)
		}
		return nil
	})
	if err != nil {
		s.log.Error("save rolled back", "dirty", len(s.dirty), "err", err)
		return 0, fmt.Errorf("save: %w", err)
	}
	for _, id := range settled {
		delete(s.dirty, id)
	}
	return saved, nil
}
