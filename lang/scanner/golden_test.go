package scanner_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loxlang/rlox/internal/golden"
	"github.com/loxlang/rlox/lang/report"
	"github.com/loxlang/rlox/lang/scanner"
	"github.com/stretchr/testify/require"
)

// TestScanGolden tokenizes every testdata/*.lox file and compares the
// formatted token stream against its golden testdata/*.tokens.want sibling.
func TestScanGolden(t *testing.T) {
	const dir = "testdata"
	for _, fi := range golden.SourceFiles(t, dir, ".lox") {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(dir, fi.Name()))
			require.NoError(t, err)

			r := &report.Reporter{Stderr: &bytes.Buffer{}}
			toks := scanner.New(string(src), r).ScanTokens()

			var out strings.Builder
			for _, tok := range toks {
				fmt.Fprintf(&out, "%d %s %q\n", tok.Line, tok.Kind, tok.Lexeme)
			}

			golden.Diff(t, dir, strings.TrimSuffix(fi.Name(), ".lox"), ".tokens.want", out.String())
		})
	}
}
