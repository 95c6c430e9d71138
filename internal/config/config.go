// Package config reads the generator's INI configuration. The result is an
// explicit value constructed once at startup and handed to whoever needs it,
// there is no package-level state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Config is the effective process-wide configuration. It is immutable after
// Load, no hot-reload.
type Config struct {
	SourceDir  string //absolute, fixture files are written directly below
	LedgerPath string //absolute path of the CSV ledger file
}

// Load reads and validates the INI file at path. The required layout is
//
//	[Directories]
//	source_dir = ...
//	csv_dir    = ...
//	[Files]
//	csv_filename = ...
//
// A missing file or a missing/empty required key is an error; the process is
// expected to exit before entering the control loop in that case.
func Load(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading configuration (%s) failed: %w", path, err)
	}

	required := func(section string, key string) (string, error) {
		sec, err := file.GetSection(section)
		if err != nil {
			return "", fmt.Errorf("configuration (%s) is missing section [%s]", path, section)
		}
		k, err := sec.GetKey(key)
		if err != nil {
			return "", fmt.Errorf("configuration (%s) is missing key %s in section [%s]", path, key, section)
		}
		value := strings.TrimSpace(k.String())
		if value == "" {
			return "", fmt.Errorf("configuration (%s) has empty key %s in section [%s]", path, key, section)
		}
		return value, nil
	}

	sourceDir, err := required("Directories", "source_dir")
	if err != nil {
		return Config{}, err
	}
	ledgerDir, err := required("Directories", "csv_dir")
	if err != nil {
		return Config{}, err
	}
	ledgerName, err := required("Files", "csv_filename")
	if err != nil {
		return Config{}, err
	}
	if strings.ContainsRune(ledgerName, os.PathSeparator) {
		return Config{}, fmt.Errorf("configuration (%s) has csv_filename with a directory component: %s", path, ledgerName)
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolving source_dir (%s) failed: %w", sourceDir, err)
	}
	absLedgerDir, err := filepath.Abs(ledgerDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolving csv_dir (%s) failed: %w", ledgerDir, err)
	}

	return Config{
		SourceDir:  absSourceDir,
		LedgerPath: filepath.Join(absLedgerDir, ledgerName),
	}, nil
}

// EnsureDirs creates the source and ledger directories if absent. Safe to
// call when they already exist.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.SourceDir, filepath.Dir(c.LedgerPath)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory (%s) failed: %w", dir, err)
		}
	}
	return nil
}
