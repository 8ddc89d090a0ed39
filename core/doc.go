// Package core contains the immediate-mode composition engine and panel lifecycle.
//
// Allowed here:
// - the per-pass draw Context: region stack, enablement gate, change tracker, focus
// - header/footer decoration and the generic controls that report changes
// - the panel attach/active/detach state machine and its capability interfaces
//
// Not allowed here:
// - concrete target types or panel definitions
// - host concerns such as persistence, key bindings, or the bubbletea program
package core
