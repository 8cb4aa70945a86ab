package image

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	ref, err := Reference("aolifu/meetspot", "v1.0.0")
	require.NoError(t, err)
	require.Equal(t, "aolifu/meetspot:v1.0.0", ref)

	ref, err = Reference("aolifu/meetspot", "latest")
	require.NoError(t, err)
	require.Equal(t, "aolifu/meetspot:latest", ref)

	ref, err = Reference("registry.example.com/aolifu/meetspot", "2024-06-01")
	require.NoError(t, err)
	require.Equal(t, "registry.example.com/aolifu/meetspot:2024-06-01", ref)
}

func TestReferenceRejectsInvalidVersions(t *testing.T) {
	_, err := Reference("aolifu/meetspot", "v1 .0")
	require.Error(t, err)
}

func TestRegistryHost(t *testing.T) {
	host, err := RegistryHost("aolifu/meetspot:v1.0.0")
	require.NoError(t, err)
	require.Equal(t, "index.docker.io", host)

	host, err = RegistryHost("registry.example.com/aolifu/meetspot:v1.0.0")
	require.NoError(t, err)
	require.Equal(t, "registry.example.com", host)
}
