package newslens_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/newslens"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := newslens.Errorf(newslens.EUNAVAILABLE, "backend %q not reachable", "gemini")

	assert.Equal(t, newslens.EUNAVAILABLE, newslens.ErrorCode(err))
	assert.Equal(t, "backend \"gemini\" not reachable", newslens.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newslens.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, newslens.ErrorMessage(nil))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, newslens.EINTERNAL, newslens.ErrorCode(err))
	assert.Equal(t, "Internal error.", newslens.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading models: %w", newslens.Errorf(newslens.EINVALID, "api key required"))

	assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(err))
	assert.Equal(t, "api key required", newslens.ErrorMessage(err))
}

func TestErrNoURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, newslens.EINVALID, newslens.ErrorCode(newslens.ErrNoURL))
	assert.Equal(t, "no URL provided", newslens.ErrorMessage(newslens.ErrNoURL))
}
