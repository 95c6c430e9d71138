// Package pcapgen drives test fixtures for a pcap ingestion pipeline: for
// each requested mode it writes a sample capture file into the watched source
// directory and/or appends a matching (or deliberately broken) record to the
// CSV ledger the pipeline consumes.
package pcapgen

import (
	"github.com/mah11/pcapgen/internal/config"
	"github.com/mah11/pcapgen/internal/ledger"
	"github.com/mah11/pcapgen/internal/output"
)

type VerbosityLevel int

const (
	DefaultVerbosity VerbosityLevel = iota
	VerboseMode
	QuietMode
)

// CreateConfig holds presentation switches for a session. The zero value is a
// sensible default.
type CreateConfig struct {
	Verbosity    VerbosityLevel
	AllowEscapes bool //ANSI formatting in terminal output
}

// Session is one interactive generator run bound to a loaded configuration.
// It owns the single ledger writer of the process; the ledger itself may be
// tailed concurrently by the pipeline under test.
type Session struct {
	cfg     config.Config
	ledger  *ledger.Writer
	printer output.Printer
}

// New creates a session. The configuration must already be loaded and its
// directories ensured (see config.Load and Config.EnsureDirs), both of which
// are fatal before the control loop by design.
func New(cfg config.Config, setup CreateConfig) *Session {
	classes := []output.Class{output.Required, output.Error, output.Normal}
	switch setup.Verbosity {
	case VerboseMode:
		classes = append(classes, output.Verbose)
	case QuietMode:
		classes = []output.Class{output.Required, output.Error}
	}
	return &Session{
		cfg:     cfg,
		ledger:  ledger.New(cfg.LedgerPath),
		printer: output.NewPrinter(classes, setup.AllowEscapes),
	}
}
