// Package record renders the ledger lines the ingestion pipeline under test
// is fed with. Formatters are pure: they never touch the filesystem, they only
// decide what text one requested action appends to the ledger.
//
// Structural validity and path validity are deliberately orthogonal: a
// malformed record corrupts the CSV shape but never the path policy in a way
// that conflates the two failure classes, and a path-failure record is always
// syntactically perfect CSV. This lets a consumer's CSV parser and its path
// sandboxing be tested independently.
package record

import (
	"fmt"
	"os"
	"path/filepath"
)

// MalformKind selects one deliberate corruption of the CSV structure.
type MalformKind int

const (
	MissingField MalformKind = iota //only the epoch field, no path, no digest
	EmptyPath                       //path field empty, i.e. double comma
	ExtraRow                        //valid-shaped line followed by a stray second row
	Garbled                         //no comma-delimited structure at all
)

func (k MalformKind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case EmptyPath:
		return "empty_path"
	case ExtraRow:
		return "extra_row"
	case Garbled:
		return "garbled"
	}
	return fmt.Sprintf("malform(%d)", int(k))
}

// PathFailKind selects one path-acceptability violation.
type PathFailKind int

const (
	Relative PathFailKind = iota //bare filename, no directory component
	Outside                      //absolute but lexically outside the source directory
)

func (k PathFailKind) String() string {
	switch k {
	case Relative:
		return "relative"
	case Outside:
		return "outside"
	}
	return fmt.Sprintf("pathfail(%d)", int(k))
}

// Valid renders the canonical record shape. It is the only formatter whose
// output must pass the consumer's path-existence and digest checks, so it
// must be called with the path of a fixture file that has been written
// successfully and with the digest of the fixed payload.
func Valid(epoch int64, absPath string, digest string) string {
	return fmt.Sprintf("%d,%s,%s\n", epoch, absPath, digest)
}

// Malformed renders a structurally corrupted record block. No fixture file
// backs the output; where a path appears it is a plausible-looking but
// nonexistent location under sourceDir. The result can span more than one
// physical line and must then still be appended as one block.
func Malformed(kind MalformKind, epoch int64, sourceDir string, filename string, digest string) string {
	switch kind {
	case MissingField:
		return fmt.Sprintf("%d\n", epoch)
	case EmptyPath:
		return fmt.Sprintf("%d,,%s\n", epoch, digest)
	case ExtraRow:
		return fmt.Sprintf("%d,%s,%s\nEXTRA,ROW,DATA\n", epoch, filepath.Join(sourceDir, filename), digest)
	case Garbled:
		return "garbled data, not, even close\nto csv format!\n"
	}
	//unknown kinds degrade to the nearest well-formed shape, the control
	//surface never produces them
	return Valid(epoch, filepath.Join(sourceDir, filename), digest)
}

// PathFail renders a syntactically perfect record whose path field violates
// path-acceptability policy. No fixture file backs the output.
func PathFail(kind PathFailKind, epoch int64, filename string, digest string) string {
	if kind == Outside {
		return Valid(epoch, filepath.Join(os.TempDir(), filename), digest)
	}
	//Relative, and the defensive fallback for unknown kinds
	return fmt.Sprintf("%d,%s,%s\n", epoch, filename, digest)
}
