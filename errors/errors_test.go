package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/KimNorgaard/go-tagtree/errors"
	"github.com/stretchr/testify/require"
)

func TestParseErrorsMessage(t *testing.T) {
	errs := errors.ParseErrors{
		{Message: "unterminated comment", Line: 3, Column: 7, Offset: 20},
		{Message: "ignored", Line: 9, Column: 1},
	}
	require.Equal(t, "tagtree: parsing error at line 3, column 7: unterminated comment", errs.Error())
	require.Equal(t, "line 3, column 7: unterminated comment", errs[0].Error())
}

func TestParseErrorsEmpty(t *testing.T) {
	require.Empty(t, errors.ParseErrors{}.Error())
}

func TestParseErrorsAs(t *testing.T) {
	var err error = fmt.Errorf("loading: %w", errors.ParseErrors{{Message: "boom", Line: 1, Column: 2}})

	var perrs errors.ParseErrors
	require.True(t, stderrors.As(err, &perrs))
	require.Len(t, perrs, 1)
	require.Equal(t, 2, perrs[0].Column)
}
