package core

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
)

// SourceLocation is where a type is defined.
type SourceLocation struct {
	File string
	Line int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Binary reports whether l points at something that cannot be opened as source:
// nothing resolved, a non-Go file, or a file that is not on disk.
func (l SourceLocation) Binary() bool {
	if l.File == "" || filepath.Ext(l.File) != ".go" {
		return true
	}
	if _, err := os.Stat(l.File); err != nil {
		return true
	}
	return false
}

// SourceLocator lets a type report its own definition site.
type SourceLocator interface {
	SourceLocation() SourceLocation
}

// Locator resolves the definition site of a value's type.
type Locator func(v any) (SourceLocation, bool)

// LocateType finds the file of the first method declared on v's type.
// Types without methods cannot be located.
func LocateType(v any) (SourceLocation, bool) {
	if v == nil {
		return SourceLocation{}, false
	}
	if s, ok := v.(SourceLocator); ok {
		return s.SourceLocation(), true
	}
	base := reflect.TypeOf(v)
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	for _, t := range []reflect.Type{base, reflect.PointerTo(base)} {
		for i := 0; i < t.NumMethod(); i++ {
			fn := runtime.FuncForPC(t.Method(i).Func.Pointer())
			if fn == nil {
				continue
			}
			file, line := fn.FileLine(fn.Entry())
			if file == "" || filepath.Base(file) == "<autogenerated>" {
				continue
			}
			return SourceLocation{File: file, Line: line}, true
		}
	}
	return SourceLocation{}, false
}

// SourceEntry is one item of the header's source menu.
type SourceEntry struct {
	Label    string
	Location SourceLocation
}

// Opener is the host collaborator that shows source files and links.
type Opener interface {
	Open(loc SourceLocation) error
	OpenURL(url string) error
}
