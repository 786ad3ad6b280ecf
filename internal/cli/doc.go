// Package cli is the interactive journal: a small REPL over the
// services.Journal query API. It holds no journal logic of its own.
package cli
