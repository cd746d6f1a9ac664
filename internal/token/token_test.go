package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"", EOF},
		{"hello", Text},
		{" <a>", Text},
		{"<!-- c -->", Comment},
		{"<!-", OpenTag},
		{"<?xml?>", Declaration},
		{"</a>", CloseTag},
		{"<a>", OpenTag},
		{"<", OpenTag},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, Classify(tt.input))
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "OPEN_TAG", OpenTag.String())
	require.Equal(t, "EOF", EOF.String())
	require.Equal(t, "ILLEGAL", Kind(42).String())
}
