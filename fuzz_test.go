//go:build go1.18

package tagtree_test

import (
	"testing"

	tagtree "github.com/KimNorgaard/go-tagtree"
	"github.com/KimNorgaard/go-tagtree/internal/testutil"
	"github.com/stretchr/testify/require"
)

func FuzzRoundTrip(f *testing.F) {
	// Seed the corpus with the golden inputs.
	files, err := testutil.Inputs()
	if err != nil {
		f.Fatalf("failed to list seed files: %v", err)
	}
	for _, file := range files {
		data, err := testutil.ReadTestData(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(string(data))
	}

	f.Add("")
	f.Add("<a/>")
	f.Add("<a>foo <b>bar</b> baz</a>")
	f.Add(`<?xml version="1.0"?><a x=1 y='2' z="3"></a>`)
	f.Add("<a><!-- c -->t</a>")

	f.Fuzz(func(t *testing.T, input string) {
		doc, err := tagtree.Parse(input)
		if err != nil {
			// Malformed input is expected; the fuzzer is looking for
			// panics and hangs.
			return
		}

		out, err := tagtree.Marshal(doc)
		if err != nil {
			// Unquoted values may hold both quote characters and
			// cannot be written back.
			return
		}

		again, err := tagtree.ParseBytes(out)
		require.NoError(t, err, "Parse failed on our own output %q", out)
		require.Equal(t, doc, again, "Tree is not the same after a format/parse round trip")
	})
}
