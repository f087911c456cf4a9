// Package exsite builds a site provisioning record from a spreadsheet.
package exsite

import (
	"github.com/ukaji3/exsite-go/pkg/exsite/discovery"
	"github.com/ukaji3/exsite-go/pkg/exsite/record"
	"github.com/ukaji3/exsite-go/pkg/exsite/variables"
	"go.uber.org/zap"
)

// Options configures extraction behavior.
type Options struct {
	// MinIdentifierLength is the minimum trimmed length of a site identifier.
	MinIdentifierLength int
	// ExcludeKeywords removes sheets whose name contains any keyword.
	ExcludeKeywords []string
	// TemplateSheet names the sheet holding variable defaults.
	TemplateSheet string
	// StartMarker delays variable collection until the named row.
	// Empty collects from the first row.
	StartMarker string
	// Group is the site group name copied into the record.
	Group string
	// Logger receives progress and warnings. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	d := discovery.DefaultOptions()
	return Options{
		MinIdentifierLength: d.MinIdentifierLength,
		ExcludeKeywords:     d.ExcludeKeywords,
		TemplateSheet:       variables.DefaultSheet,
		Group:               record.DefaultGroup,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) discoveryOptions() discovery.Options {
	return discovery.Options{
		MinIdentifierLength: o.MinIdentifierLength,
		ExcludeKeywords:     o.ExcludeKeywords,
		Logger:              o.Logger,
	}
}

func (o Options) variableOptions() variables.Options {
	return variables.Options{
		SheetName:   o.TemplateSheet,
		StartMarker: o.StartMarker,
		Logger:      o.Logger,
	}
}
