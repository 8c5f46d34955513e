package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		name string
		msg  string
		want string
	}{
		{
			name: "with wrapped error",
			msg:  "model configuration is incomplete",
			err:  ErrMissingAPIKey,
			want: "model configuration is incomplete: missing model API key",
		},
		{
			name: "message only",
			msg:  "products file is empty",
			want: "products file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUserError(tt.msg, tt.err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestUserErrorUnwrap(t *testing.T) {
	err := NewUserError("model configuration is incomplete", ErrMissingAPIKey)
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "model configuration is incomplete", userErr.UserMessage)
}

func TestUserErrorUnwrapNil(t *testing.T) {
	err := NewUserError("nothing underneath", nil)
	assert.False(t, errors.Is(err, ErrMissingAPIKey))
}
