package image

import (
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
)

// Reference builds the full image reference for a release. The returned
// string is plain repository + ":" + version concatenation so the exact same
// bytes are handed to build and push; go-containerregistry only validates it.
func Reference(repository string, version string) (string, error) {
	ref := repository + ":" + version
	if _, err := name.NewTag(ref, name.WeakValidation); err != nil {
		return "", fmt.Errorf("invalid image reference %q: %w", ref, err)
	}
	return ref, nil
}

// RegistryHost returns the registry an image reference resolves to,
// e.g. index.docker.io for bare Docker Hub repositories.
func RegistryHost(ref string) (string, error) {
	tag, err := name.NewTag(ref, name.WeakValidation)
	if err != nil {
		return "", fmt.Errorf("invalid image reference %q: %w", ref, err)
	}
	return tag.RegistryStr(), nil
}
