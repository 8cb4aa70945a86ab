package docker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAuthorizationFailedError(t *testing.T) {
	for _, msg := range []string{
		"no basic auth credentials",
		"failed to push: authorization failed",
		"received unexpected HTTP status: 401 Unauthorized",
		"unauthorized: authentication required",
	} {
		require.True(t, IsAuthorizationFailedError(errors.New(msg)), msg)
	}

	require.False(t, IsAuthorizationFailedError(errors.New("connection refused")))
}

func TestIsImageNotFoundError(t *testing.T) {
	require.True(t, IsImageNotFoundError(errors.New("Error: No such image: aolifu/meetspot:v9")))
	require.False(t, IsImageNotFoundError(errors.New("i/o timeout")))
}
