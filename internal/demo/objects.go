package demo

// Lamp is a plain scene object with a dedicated panel.
type Lamp struct {
	Name       string `json:"name"`
	Lit        bool   `json:"lit"`
	Brightness int    `json:"brightness"`
	Color      string `json:"color"`
}

// Door can only be edited while the scene is playing.
type Door struct {
	Name   string `json:"name"`
	Locked bool   `json:"locked"`
	Open   bool   `json:"open"`
	KeyID  string `json:"key_id"`
}

// Spawner only exists as a persisted asset.
type Spawner struct {
	Name    string `json:"name"`
	Prefab  string `json:"prefab"`
	Rate    int    `json:"rate"`
	Enabled bool   `json:"enabled"`
}

// Crate has no panel of its own and is drawn field by field.
type Crate struct {
	Label  string `json:"label"`
	Sealed bool   `json:"sealed"`
	Weight int    `json:"weight"`
}

const maxBrightness = 100
