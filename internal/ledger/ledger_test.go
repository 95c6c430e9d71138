package ledger

import (
	"os"
	"path/filepath"
	"testing"
)

func scratchLedger(t *testing.T) (*Writer, func()) {
	tmpDir, err := os.MkdirTemp("", "pcapgen-test-*")
	if err != nil {
		t.Fatal(err)
	}
	return New(filepath.Join(tmpDir, "records.csv")), func() {
		os.RemoveAll(tmpDir)
	}
}

func TestAppendCreatesAndGrows(t *testing.T) {
	w, cleanup := scratchLedger(t)
	defer cleanup()

	lines, err := w.Lines()
	if err != nil || lines != 0 {
		t.Fatalf("missing ledger must count as empty, got %d lines (%v)", lines, err)
	}

	previous := 0
	for _, block := range []string{"1,/a,x\n", "2,/b,y\n", "3,/c,z\n"} {
		if err := w.Append(block); err != nil {
			t.Fatal(err)
		}
		lines, err := w.Lines()
		if err != nil {
			t.Fatal(err)
		}
		if lines <= previous {
			t.Fatalf("ledger line count did not grow: %d after %d", lines, previous)
		}
		previous = lines
	}
	if previous != 3 {
		t.Fatalf("expected 3 lines, got %d", previous)
	}
}

func TestMultiLineBlockIsOneAppend(t *testing.T) {
	w, cleanup := scratchLedger(t)
	defer cleanup()

	block := "1700000000,/abs/src/x.pcap,feed\nEXTRA,ROW,DATA\n"
	if err := w.Append(block); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != block {
		t.Fatalf("ledger content differs from appended block: %q", content)
	}
}

func TestTruncateIsIdempotent(t *testing.T) {
	w, cleanup := scratchLedger(t)
	defer cleanup()

	//truncating a missing/empty ledger leaves it empty
	if err := w.Truncate(); err != nil {
		t.Fatal(err)
	}
	stat, err := os.Stat(w.Path())
	if err != nil {
		t.Fatal("truncate must leave the directory entry in place")
	}
	if stat.Size() != 0 {
		t.Fatalf("empty ledger has size %d after truncate", stat.Size())
	}

	w.Append("1,/a,x\n")
	w.Append("2,/b,y\n")
	if err := w.Truncate(); err != nil {
		t.Fatal(err)
	}
	stat, err = os.Stat(w.Path())
	if err != nil {
		t.Fatal(err)
	}
	if stat.Size() != 0 {
		t.Fatalf("non-empty ledger has size %d after truncate", stat.Size())
	}
}
