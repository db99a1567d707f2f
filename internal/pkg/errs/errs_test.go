//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"styleapp-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	errPriceNotPositive := errs.Mark(errs.New("price must be greater than zero"), errs.ErrValidation)
	errRequestNotOpen := errs.Mark(errs.New("service request is no longer open"), errs.ErrConflict)

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "marked validation", err: errPriceNotPositive, expected: errs.ErrValidation},
		{name: "wrapped conflict keeps category", err: errs.Wrap(errRequestNotOpen, "accept bid"), expected: errs.ErrConflict},
		{name: "category sentinel itself", err: errs.ErrNotFound, expected: errs.ErrNotFound},
		{name: "plain error has none", err: errors.New("boom"), expected: nil},
		{name: "nil has none", err: nil, expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.Category(tc.err))
		})
	}
}

func TestIs_MarkedErrorMatchesOriginal(t *testing.T) {
	base := errs.Mark(errs.New("bid is not pending"), errs.ErrInvalidState)
	wrapped := errs.Wrap(base, "reject bid")

	assert.True(t, errs.Is(wrapped, base))
	assert.True(t, errs.Is(wrapped, errs.ErrInvalidState))
	assert.False(t, errs.Is(wrapped, errs.ErrConflict))
}

func TestMark_NilReturnsMarker(t *testing.T) {
	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

func TestCause_ReturnsLeafMessage(t *testing.T) {
	base := errs.Mark(errs.New("service request is no longer open"), errs.ErrConflict)
	wrapped := errs.Wrap(errs.Wrap(base, "accept bid"), "tx")

	assert.Equal(t, "service request is no longer open", errs.Cause(wrapped).Error())
	assert.Nil(t, errs.Cause(nil))
}
