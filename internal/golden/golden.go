// Package golden is a small golden-file test harness: list the source files
// in a testdata directory, compare generated output against a golden sibling
// file via godebug's line-oriented diff, and support regenerating the golden
// files with a -update flag when the output is expected to change.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/kylelemons/godebug/diff"
)

var update = flag.Bool("update", false, "update golden files instead of comparing against them")

// SourceFiles returns the source files in dir with the given extension
// (".lox"), sorted by name (os.ReadDir's own order).
func SourceFiles(t *testing.T, dir, ext string) []os.DirEntry {
	t.Helper()
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}

	dents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var res []os.DirEntry
	for _, dent := range dents {
		if !dent.Type().IsRegular() {
			continue
		}
		if ext != "" && filepath.Ext(dent.Name()) != ext {
			continue
		}
		res = append(res, dent)
	}
	return res
}

// Diff validates that got matches the golden file dir/name+goldExt. With
// -update, it rewrites the golden file with got instead of comparing.
func Diff(t *testing.T, dir, name, goldExt, got string) {
	t.Helper()
	goldFile := filepath.Join(dir, name+goldExt)

	if *update {
		if err := os.WriteFile(goldFile, []byte(got), 0o600); err != nil {
			t.Fatal(err)
		}
		return
	}

	wantb, err := os.ReadFile(goldFile)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	want := string(wantb)
	if patch := diff.Diff(want, got); patch != "" {
		t.Errorf("golden mismatch for %s:\n%s", name, patch)
	}
}
