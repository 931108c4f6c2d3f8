package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTodoNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrTodoNotFound)))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
}

func TestTodoFilterNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         TodoFilter
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"zero values get defaults", TodoFilter{}, 1, 10, 0},
		{"negative page clamps", TodoFilter{Page: -3, Limit: 20}, 1, 20, 0},
		{"limit above max clamps", TodoFilter{Page: 2, Limit: 500}, 2, 100, 100},
		{"valid values pass through", TodoFilter{Page: 3, Limit: 25}, 3, 25, 50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := tt.in
			f.Normalize()
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantLimit, f.Limit)
			assert.Equal(t, tt.wantOffset, f.Offset())
		})
	}
}
