package docker

import "strings"

// Error messages vary between backends (dockerd, containerd, podman,
// orbstack) and versions of docker. These helpers normalize the check so
// callers can react without caring about the underlying implementation.

func IsAuthorizationFailedError(err error) bool {
	msg := err.Error()

	// registry requires auth and none were provided
	if strings.Contains(msg, "no basic auth credentials") {
		return true
	}

	// registry rejected the provided auth
	if strings.Contains(msg, "authorization failed") ||
		strings.Contains(msg, "401 Unauthorized") ||
		strings.Contains(msg, "unauthorized: authentication required") {
		return true
	}

	return false
}

func IsImageNotFoundError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "image does not exist") ||
		strings.Contains(msg, "An image does not exist locally with the tag") ||
		strings.Contains(msg, "No such image")
}
