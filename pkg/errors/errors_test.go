package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotrs/dotrs/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "profile_not_found",
			code:    errors.ErrProfileNotFound,
			message: "no profile exists with name work",
			wantStr: "[PROFILE_NOT_FOUND] no profile exists with name work",
		},
		{
			name:    "stage_not_initialized",
			code:    errors.ErrStageNotInitialized,
			message: "dotfiles stage has not been initialized",
			wantStr: "[STAGE_NOT_INITIALIZED] dotfiles stage has not been initialized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrFileWrite, "failed writing %s", "/home/u/.zshrc")
		require.NotNil(t, err)
		assert.Equal(t, errors.ErrFileWrite, err.Code)
		assert.Same(t, base, err.Wrapped)
		assert.Equal(t, "[FILE_WRITE] failed writing /home/u/.zshrc: permission denied", err.Error())
		assert.ErrorIs(t, err, base)
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %d", 1))
	})
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDecrypt, "one")
	err2 := errors.New(errors.ErrDecrypt, "two")
	err3 := errors.New(errors.ErrEncrypt, "three")

	assert.True(t, stderrors.Is(err1, err2))
	assert.False(t, stderrors.Is(err1, err3))
}

func TestIsErrorCode(t *testing.T) {
	decrypt := errors.New(errors.ErrDecrypt, "tag mismatch")

	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", decrypt, errors.ErrDecrypt, true},
		{"different_code", decrypt, errors.ErrEncrypt, false},
		{"nested_code", errors.Wrap(decrypt, errors.ErrProfileDecode, "resolve"), errors.ErrDecrypt, true},
		{"fmt_wrapped", fmt.Errorf("apply: %w", decrypt), errors.ErrDecrypt, true},
		{"standard_error", stderrors.New("plain"), errors.ErrDecrypt, false},
		{"nil_error", nil, errors.ErrDecrypt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrGitNonZeroExit, "git failed").WithDetail("code", 128)

	assert.Equal(t, errors.ErrGitNonZeroExit, errors.GetErrorCode(err))
	assert.Equal(t, 128, errors.GetErrorDetails(err)["code"])
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(nil))
}
