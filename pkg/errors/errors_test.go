package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorFormat(t *testing.T) {
	e := New(ErrCodeCaseNotFound, "case not found")
	assert.Equal(t, "[GA_001] case not found", e.Error())

	withDetail := e.WithDetail("reference=1234567890123456")
	assert.Equal(t, "[GA_001] case not found: reference=1234567890123456", withDetail.Error())
	// WithDetail clones; the original is untouched.
	assert.Empty(t, e.Detail)
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeDatabaseError, "query failed"))
}

func TestWrap_PreservesCodeOnUnknown(t *testing.T) {
	inner := New(ErrCodeTemplateUnresolved, "no template for scenario")
	wrapped := Wrap(fmt.Errorf("dispatch: %w", inner), ErrCodeUnknown, "plan failed")
	assert.Equal(t, ErrCodeTemplateUnresolved, wrapped.Code)
}

func TestUnwrapChain(t *testing.T) {
	root := errors.New("connection refused")
	e := Wrap(root, ErrCodeDatabaseError, "failed to load case")
	require.ErrorIs(t, e, root)
	assert.True(t, IsCode(e, ErrCodeDatabaseError))
	assert.False(t, IsCode(e, ErrCodeCacheError))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeCaseNotFound, "missing")))
	assert.True(t, IsNotFound(New(ErrCodeDocumentNotFound, "missing")))
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.False(t, IsNotFound(Internal("boom")))
	assert.False(t, IsNotFound(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, ErrCodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, ErrCodeDispatchFailed, GetCode(New(ErrCodeDispatchFailed, "send failed")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, ErrCodeCaseNotFound.HTTPStatus())
	assert.Equal(t, 422, ErrCodeRecipientMissing.HTTPStatus())
	assert.Equal(t, 500, ErrorCode("NOPE").HTTPStatus())
}
