// Package command defines the interface between the release flow and the
// Docker tooling it delegates to, so the flow can be exercised without a
// Docker daemon.
package command

import "context"

type Command interface {
	// Build builds an image from the project's build context and tags it
	// with options.ImageName.
	Build(ctx context.Context, options BuildOptions) error
	// Push uploads a local image to the remote registry.
	Push(ctx context.Context, ref string) error
	// ImageExists reports whether an image is present in the local daemon.
	ImageExists(ctx context.Context, ref string) (bool, error)
}

type BuildOptions struct {
	WorkingDir     string
	Dockerfile     string
	ImageName      string
	Platform       string
	BuildArgs      map[string]string
	Labels         map[string]string
	NoCache        bool
	ProgressOutput string
}

// UserInfo holds registry credentials resolved from the local Docker
// configuration.
type UserInfo struct {
	Username string
	Token    string
}
