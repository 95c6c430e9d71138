package pcapgen

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mah11/pcapgen/internal/fixture"
	"github.com/mah11/pcapgen/internal/output"
	"github.com/mah11/pcapgen/internal/payload"
	"github.com/mah11/pcapgen/internal/record"
)

type actionKind int

const (
	actValid actionKind = iota
	actMalformed
	actPathFail
	actTruncate
	actStatus
	actQuit
)

// action is a tagged selector target: exactly one of the kind-specific fields
// is meaningful, according to kind.
type action struct {
	kind     actionKind
	malform  record.MalformKind
	pathFail record.PathFailKind
	describe string
}

var selectors = map[rune]action{
	' ': {kind: actValid, describe: "valid"},
	'1': {kind: actMalformed, malform: record.MissingField, describe: "error (missing_field)"},
	'2': {kind: actMalformed, malform: record.EmptyPath, describe: "error (empty_path)"},
	'3': {kind: actMalformed, malform: record.ExtraRow, describe: "error (extra_row)"},
	'4': {kind: actMalformed, malform: record.Garbled, describe: "error (garbled)"},
	'r': {kind: actPathFail, pathFail: record.Relative, describe: "fail (relative path)"},
	'o': {kind: actPathFail, pathFail: record.Outside, describe: "fail (outside path)"},
	's': {kind: actStatus, describe: "status"},
	't': {kind: actTruncate, describe: "truncate"},
	'q': {kind: actQuit, describe: "quit"},
}

// Run executes the dispatch loop: read one selector, perform its action,
// report the outcome, repeat. The loop is memoryless between iterations,
// unrecognized selectors are silent no-ops, and the quit selector (or key
// source exhaustion) is the only exit. Per-action I/O failures are reported
// and leave the loop waiting for the next selector.
func (s *Session) Run(keys KeySource) error {
	s.printBanner()
	for {
		key, err := keys.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading control input failed: %w", err)
		}
		act, known := selectors[unicode.ToLower(key)]
		if !known {
			continue //intentional permissiveness for an interactive tool
		}

		switch act.kind {
		case actQuit:
			s.printer.Out(output.Normal, "\nQuitting test data generator.\n")
			return nil
		case actTruncate:
			//never triggers an append
			if err := s.ledger.Truncate(); err != nil {
				s.printer.Out(output.Error, "%s\n", s.printer.Alert(err.Error()))
				continue
			}
			s.printer.Out(output.Normal, "Ledger truncated.\n")
		case actStatus:
			s.printStatus()
		default:
			block, err := s.formatBlock(act)
			if err != nil {
				s.printer.Out(output.Error, "%s\n", s.printer.Alert(err.Error()))
				continue
			}
			if err := s.ledger.Append(block); err != nil {
				s.printer.Out(output.Error, "appending %s record: %s\n", act.describe, s.printer.Alert(err.Error()))
				continue
			}
			s.printer.Out(output.Normal, "Appended %s record: %s\n", act.describe, strings.ReplaceAll(strings.TrimSuffix(block, "\n"), "\n", " / "))
		}
	}
}

// formatBlock produces the ledger text for one appending action. Only the
// valid action touches the filesystem; its fixture write happens first so a
// failure suppresses the record and no line ever references a file missing
// due to a write error.
func (s *Session) formatBlock(act action) (string, error) {
	switch act.kind {
	case actValid:
		fix, err := fixture.Write(s.cfg.SourceDir, payload.Bytes())
		if err != nil {
			return "", newActionError("fixture suppressed", err)
		}
		s.printer.Out(output.Verbose, "Created file: %s\n", fix.Path)
		return record.Valid(fix.Epoch, fix.Path, payload.Digest()), nil
	case actMalformed:
		epoch, filename := fixture.Stamp()
		return record.Malformed(act.malform, epoch, s.cfg.SourceDir, filename, payload.Digest()), nil
	case actPathFail:
		epoch, filename := fixture.Stamp()
		return record.PathFail(act.pathFail, epoch, filename, payload.Digest()), nil
	}
	return "", newActionError(fmt.Sprintf("no formatter for %s action", act.describe), nil)
}

func (s *Session) printBanner() {
	s.printer.Out(output.Normal, "\nTest data generator\n")
	s.printer.Out(output.Normal, "  Source directory: %s\n", s.cfg.SourceDir)
	s.printer.Out(output.Normal, "  Ledger file:      %s\n", s.ledger.Path())
	s.printer.Out(output.Normal, "Press a key:\n")
	s.printer.Out(output.Normal, "  SPACE : create valid fixture file and append matching record\n")
	s.printer.Out(output.Normal, "  Malformed CSV records (no file created):\n")
	s.printer.Out(output.Normal, "    1   : missing_field\n")
	s.printer.Out(output.Normal, "    2   : empty_path\n")
	s.printer.Out(output.Normal, "    3   : extra_row\n")
	s.printer.Out(output.Normal, "    4   : garbled\n")
	s.printer.Out(output.Normal, "  Path-failure records (valid CSV, no file created):\n")
	s.printer.Out(output.Normal, "    r   : relative path\n")
	s.printer.Out(output.Normal, "    o   : path outside source directory\n")
	s.printer.Out(output.Normal, "  Other:\n")
	s.printer.Out(output.Normal, "    s   : show source directory and ledger status\n")
	s.printer.Out(output.Normal, "    t   : truncate the ledger\n")
	s.printer.Out(output.Normal, "    q   : quit\n")
}
