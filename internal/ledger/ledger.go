// Package ledger writes the flat append-only record file an external tailer
// consumes while this process is running.
package ledger

import (
	"bytes"
	"fmt"
	"os"
)

// Writer is bound to one ledger file. It is the single writer of that file,
// an external reader may tail it concurrently. The only guarantee it provides
// for that reader is write granularity: one Append call is one write syscall,
// so a record block is never observable half-written.
type Writer struct {
	path string
}

func New(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) Path() string {
	return w.path
}

// Append adds one record block to the ledger. Multi-line blocks (the
// extra-row and garbled shapes) are still a single write so a tailer cannot
// observe only their first physical line.
func (w *Writer) Append(block string) error {
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening ledger (%s) for append failed: %w", w.path, err)
	}
	if _, err := file.Write([]byte(block)); err != nil {
		file.Close()
		return fmt.Errorf("appending to ledger (%s) failed: %w", w.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing ledger (%s) after append failed: %w", w.path, err)
	}
	return nil
}

// Truncate reduces the ledger to zero length. The directory entry survives,
// which matters for a tailer holding the file open.
func (w *Writer) Truncate() error {
	file, err := os.OpenFile(w.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("truncating ledger (%s) failed: %w", w.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing ledger (%s) after truncate failed: %w", w.path, err)
	}
	return nil
}

// Lines reports the current number of physical ledger lines. A missing ledger
// counts as empty.
func (w *Writer) Lines() (int, error) {
	content, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading ledger (%s) failed: %w", w.path, err)
	}
	return bytes.Count(content, []byte("\n")), nil
}
