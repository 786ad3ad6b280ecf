// Package widget is the widget host: it re-reads the shared store, derives
// the stats snapshot and renders it as a small fixed-shape card.
//
// The host never writes the store. It refreshes on a passive timer and when
// the journal asks it to through the widget center; the timer is what
// repairs a lost request.
package widget
