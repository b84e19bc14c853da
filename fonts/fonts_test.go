package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Small, Score, Title} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, Score.Get().Metrics().Height.Ceil(), Small.Get().Metrics().Height.Ceil())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("bad", []byte("not a font"), 10))
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
