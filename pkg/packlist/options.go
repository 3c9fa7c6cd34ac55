// Package packlist turns a flat purchasing table into a multi-sheet
// packing-list workbook, grouped by class and lesson, with an INDEX sheet
// summarizing the breakdown.
package packlist

import (
	"go.uber.org/zap"

	"packlist/pkg/packlist/roles"
)

// Options configures generation behavior.
type Options struct {
	// Logger receives coercion and collision events. If nil, logging is
	// disabled.
	Logger *zap.Logger
	// Phrases overrides the phrase table used for role inference. If nil,
	// the built-in table is used.
	Phrases roles.PhraseTable
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) phrases() roles.PhraseTable {
	if o.Phrases != nil {
		return o.Phrases
	}
	return roles.DefaultPhrases()
}
