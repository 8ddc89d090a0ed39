// Package scaffold writes boilerplate panel definitions for Go source files.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/charmbracelet/log"

	"github.com/jask/inspector/core"
	"github.com/jask/inspector/internal/logging"
)

var (
	ErrNotGoSource = errors.New("not a .go source file")
	ErrExists      = errors.New("panel file already exists")
)

const panelsDir = "panels"

var panelTemplate = template.Must(template.New("panel").Parse(`package {{.Package}}

import "github.com/jask/inspector/core"

// {{.Type}}Panel inspects a {{.Type}}.
type {{.Type}}Panel struct {
	Target any
}

func (p *{{.Type}}Panel) Title() core.Content { return core.Plain("{{.Title}}") }

func (p *{{.Type}}Panel) Body(c *core.Context) {
	c.DrawFields(p.Target)
}
`))

type Generator struct {
	// Dir overrides the output directory. Empty means the panels directory
	// next to the source file.
	Dir string
	Log *log.Logger
}

// Generate writes the panel file for the source file at path with default settings.
func Generate(path string) (string, error) {
	return Generator{}.Generate(path)
}

// Target is the file Generate would write for path.
func (g Generator) Target(path string) (string, error) {
	if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
		return "", fmt.Errorf("%s: %w", path, ErrNotGoSource)
	}
	dir := g.Dir
	if dir == "" {
		dir = filepath.Dir(path)
		if filepath.Base(dir) != panelsDir {
			dir = filepath.Join(dir, panelsDir)
		}
	}
	base := strings.TrimSuffix(filepath.Base(path), ".go")
	return filepath.Join(dir, base+"_panel.go"), nil
}

func (g Generator) Generate(path string) (string, error) {
	logger := g.Log
	if logger == nil {
		logger = logging.Discard
	}
	out, err := g.Target(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(out); err == nil {
		return "", fmt.Errorf("%s: %w", out, ErrExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat %s: %w", out, err)
	}

	title := core.Nicify(strings.TrimSuffix(filepath.Base(path), ".go"))
	typ := strings.ReplaceAll(title, " ", "")
	if typ == "" {
		return "", fmt.Errorf("%s: no type name in file name", path)
	}
	var buf bytes.Buffer
	err = panelTemplate.Execute(&buf, struct{ Package, Type, Title string }{
		Package: packageName(filepath.Dir(out)),
		Type:    typ,
		Title:   title,
	})
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("format %s: %w", out, err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	if _, err := f.Write(src); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	logger.Info("created panel", "file", out, "type", typ)
	return out, nil
}

func packageName(dir string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, filepath.Base(dir))
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return panelsDir
	}
	return name
}
