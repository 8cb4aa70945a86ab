package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoVersionTag(t *testing.T) {
	err := NoVersionTag()
	require.EqualError(t, err, "Error: No version tag provided.")
	require.True(t, IsNoVersionTag(err))
	require.False(t, IsConfigNotFound(err))
}

func TestConfigNotFound(t *testing.T) {
	err := ConfigNotFound("release.yaml not found in /src")
	require.True(t, IsConfigNotFound(err))
	require.Equal(t, CodeConfigNotFound, Code(err))
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, "", Code(fmt.Errorf("boom")))
	require.False(t, IsNoVersionTag(fmt.Errorf("boom")))
}
