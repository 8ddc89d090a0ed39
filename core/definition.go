package core

// Definition describes a panel for one kind of target. Body is the only required
// hook; everything else is an optional capability discovered by type assertion.
type Definition interface {
	Body(c *Context)
}

type Titler interface {
	Title() Content
}

type Iconer interface {
	Icon() string
}

// HeaderContent draws inline content after the title.
type HeaderContent interface {
	HeaderContent(c *Context)
}

// HeaderButtons draws extra buttons before the header's spacer.
type HeaderButtons interface {
	HeaderButtons(c *Context)
}

type BeforeBody interface {
	BeforeBody(c *Context)
}

type AfterBody interface {
	AfterBody(c *Context)
}

// Footer enables the footer band; without it no footer is drawn.
type Footer interface {
	Footer(c *Context)
}

// Enabler is evaluated once per pass. When it returns false the body is drawn
// but does not accept input.
type Enabler interface {
	Enabled() bool
}

type DisabledMessenger interface {
	DisabledMessage() string
}

// AssetOnly marks definitions whose targets may only exist as persisted assets.
type AssetOnly interface {
	AssetOnly() bool
}

type Activator interface {
	OnActivate()
}

type Deactivator interface {
	OnDeactivate()
}

// Updater runs on every host tick while the panel is active.
type Updater interface {
	Update()
}

// Changer replaces the default change handling. markDirty performs the default;
// not calling it opts out.
type Changer interface {
	OnChange(markDirty func())
}

// Summarizer supplies a help box drawn above the body.
type Summarizer interface {
	Summary() string
}

// SupportLinker adds a Help action to the header that opens the URL.
type SupportLinker interface {
	SupportURL() string
}

type LabelWidther interface {
	LabelWidth() int
}
