package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/gildedrose/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{"fixture_load_error", errors.ErrFixtureLoad, "bad fixture", "[FIXTURE_LOAD] bad fixture"},
		{"invalid_input_error", errors.ErrInvalidInput, "invalid configuration", "[INVALID_INPUT] invalid configuration"},
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

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrFormatUnknown, "unknown format: %s", "xml")
	assert.Equal(t, "unknown format: xml", err.Message)
}

func TestWrap(t *testing.T) {
	base := stderrors.New("boom")

	err := errors.Wrap(base, errors.ErrConfigLoad, "loading config")
	require.NotNil(t, err)
	assert.Equal(t, "[CONFIG_LOAD] loading config: boom", err.Error())
	assert.ErrorIs(t, err, base)

	assert.Nil(t, errors.Wrap(nil, errors.ErrConfigLoad, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrConfigLoad, "nothing %d", 1))
}

func TestWrapf(t *testing.T) {
	err := errors.Wrapf(stderrors.New("eof"), errors.ErrConfigParse, "parsing %s", "config.toml")
	assert.Equal(t, "[CONFIG_PARSE] parsing config.toml: eof", err.Error())
}

func TestIsByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrRender, "write failed"))

	assert.ErrorIs(t, err, errors.New(errors.ErrRender, "any message"))
	assert.NotErrorIs(t, err, errors.New(errors.ErrInternal, "any message"))
}

func TestErrorCodeHelpers(t *testing.T) {
	err := fmt.Errorf("outer: %w",
		errors.New(errors.ErrConfigInvalid, "bad format").WithDetail("format", "xml"))

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.False(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Equal(t, errors.ErrConfigInvalid, errors.GetErrorCode(err))
	assert.Equal(t, "xml", errors.GetErrorDetails(err)["format"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}
