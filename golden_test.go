package tagtree

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-tagtree/internal/testutil"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := testutil.Inputs()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := testutil.ReadTestData(file)
			require.NoError(t, err)

			var actual string
			doc, err := ParseBytes(src)
			if err != nil {
				// Malformed inputs keep the error message as their golden output.
				actual = err.Error() + "\n"
			} else {
				out, err := Marshal(doc, Indent(2))
				require.NoError(t, err)
				actual = string(out) + "\n"
			}

			goldenFile := strings.Replace(file, ".xml", ".golden", 1)
			if *update {
				path := filepath.Join("internal", "testutil", "testdata", goldenFile)
				require.NoError(t, os.WriteFile(path, []byte(actual), 0o644))
				return
			}

			expected, err := testutil.ReadTestData(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), actual, "Output does not match golden file.")
		})
	}
}
