package pcapgen

import (
	"io/fs"
	"path/filepath"

	"github.com/mah11/pcapgen/internal/output"
)

// printStatus renders the source directory as a tree alongside the ledger's
// current line count. Read-only, never writes to either artifact.
func (s *Session) printStatus() {
	tree := output.NewFileTree(s.cfg.SourceDir)
	fileCount := 0
	var totalSize int64

	walkErr := filepath.WalkDir(s.cfg.SourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		relative, relErr := filepath.Rel(s.cfg.SourceDir, path)
		if relErr != nil {
			return relErr
		}
		suffix := ""
		if info, infoErr := entry.Info(); infoErr == nil {
			totalSize += info.Size()
			suffix = " " + s.printer.Dim("("+output.Filesize(info.Size())+")")
		}
		tree.InsertPath(relative, suffix)
		fileCount++
		return nil
	})
	if walkErr != nil {
		s.printer.Out(output.Error, "scanning source directory: %s\n", s.printer.Alert(walkErr.Error()))
		return
	}

	s.printer.Out(output.Required, "%s", tree.Render())
	s.printer.Out(output.Required, "%d %s (%s total)\n", fileCount, output.Plural(fileCount, "fixture file", "fixture files"), output.Filesize(totalSize))

	lines, err := s.ledger.Lines()
	if err != nil {
		s.printer.Out(output.Error, "%s\n", s.printer.Alert(err.Error()))
		return
	}
	s.printer.Out(output.Required, "Ledger has %d %s.\n", lines, output.Plural(lines, "line", "lines"))
}
