// Package fixture creates the on-disk artifacts that valid ledger records
// reference.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const namePattern = "MAH11-%s.pcap"
const nameTimeLayout = "20060102-150405"

// Fixture describes one written fixture file.
type Fixture struct {
	Path  string //absolute
	Epoch int64  //seconds, taken from the same clock sample as the filename
}

// Filename renders the fixture filename for the given local time.
func Filename(local time.Time) string {
	return fmt.Sprintf(namePattern, local.Format(nameTimeLayout))
}

// Stamp captures a single clock sample as the epoch/filename pair. Both
// values derive from the same reading so a record and the file it names can
// never disagree across a second boundary.
func Stamp() (epoch int64, filename string) {
	now := time.Now()
	return now.Unix(), Filename(now)
}

// Write creates a new fixture file under sourceDir containing content,
// creating the directory first if necessary. On failure no fixture exists and
// the caller must not append a ledger record for it.
func Write(sourceDir string, content []byte) (Fixture, error) {
	epoch, filename := Stamp()
	if err := os.MkdirAll(sourceDir, 0755); err != nil {
		return Fixture{}, fmt.Errorf("preparing source directory (%s) failed: %w", sourceDir, err)
	}
	path := filepath.Join(sourceDir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return Fixture{}, fmt.Errorf("creating fixture file (%s) failed: %w", path, err)
	}
	return Fixture{Path: path, Epoch: epoch}, nil
}
