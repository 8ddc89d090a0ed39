package repository

import (
	"encoding/json"
	"time"
)

// Entity is a persisted asset: the serialized state of one editable target.
type Entity struct {
	ID        string
	Kind      string
	Name      string
	Payload   json.RawMessage
	Revision  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
