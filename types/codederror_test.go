package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodedErrorFormatting(t *testing.T) {
	err := NewCodedError("BP07.ASSEMBLY.NON_MANIFOLD_EDGE", "%d bad edges", 3)
	assert.Equal(t, "BP07.ASSEMBLY.NON_MANIFOLD_EDGE: 3 bad edges", err.Error())
	assert.Equal(t, "BP07.ASSEMBLY.NON_MANIFOLD_EDGE", CodeOf(err))
}

func TestCodedErrorWrapping(t *testing.T) {
	base := errors.New("boom")
	err := WrapCoded("BP00.CANCELLED", base)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "BP00.CANCELLED", CodeOf(err))

	// Codes survive further wrapping.
	wrapped := fmt.Errorf("stage failed: %w", err)
	assert.Equal(t, "BP00.CANCELLED", CodeOf(wrapped))

	assert.Nil(t, WrapCoded("X", nil))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}
