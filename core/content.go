package core

import (
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultHeaderTitle = "Default Header Title"

type ContentKind int

const (
	PlainText ContentKind = iota
	RichContent
)

// Content is either plain text or text decorated with an icon glyph and a tooltip.
// Callers pick the kind once; controls never inspect arbitrary values.
type Content struct {
	Kind    ContentKind
	Text    string
	Icon    string
	Tooltip string
}

func Plain(s string) Content { return Content{Kind: PlainText, Text: s} }

func Rich(text, icon, tooltip string) Content {
	return Content{Kind: RichContent, Text: text, Icon: icon, Tooltip: tooltip}
}

func (c Content) IsZero() bool {
	return c.Text == "" && c.Icon == ""
}

// Label is the text a control draws for c.
func (c Content) Label() string {
	if c.Kind == RichContent && c.Icon != "" {
		if c.Text == "" {
			return c.Icon
		}
		return c.Icon + " " + c.Text
	}
	return c.Text
}

// TypeName is the bare name of v's type, dereferencing pointers and dropping type parameters.
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// Nicify turns an identifier into a display title:
// "lampPost" -> "Lamp Post", "HTTPProxy" -> "HTTP Proxy", "m_speed" -> "Speed".
func Nicify(name string) string {
	name = strings.TrimPrefix(name, "m_")
	name = strings.TrimLeft(name, "_")
	if len(name) > 1 && name[0] == 'k' && unicode.IsUpper(rune(name[1])) {
		name = name[1:]
	}
	rs := []rune(name)
	var b strings.Builder
	space := false
	for i, r := range rs {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			if b.Len() > 0 && !space {
				b.WriteRune(' ')
				space = true
			}
			continue
		}
		if i > 0 && !space && wordBreak(rs, i) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		space = false
	}
	out := strings.TrimSpace(b.String())
	return cases.Title(language.Und, cases.NoLower).String(out)
}

func wordBreak(rs []rune, i int) bool {
	prev, cur := rs[i-1], rs[i]
	switch {
	case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
		return true
	case unicode.IsUpper(cur) && unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
		return true
	case unicode.IsDigit(cur) && unicode.IsLetter(prev):
		return true
	}
	return false
}

// DefaultTitle is the header title used when a definition does not provide one.
func DefaultTitle(target any) string {
	if name := TypeName(target); name != "" {
		return Nicify(name)
	}
	return DefaultHeaderTitle
}
