package image

import (
	"context"

	"github.com/one-answer/MeetSpot/pkg/config"
	"github.com/one-answer/MeetSpot/pkg/docker/command"
	"github.com/one-answer/MeetSpot/pkg/util/console"
)

const versionLabel = "org.opencontainers.image.version"

type BuildOptions struct {
	NoCache        bool
	ProgressOutput string
}

// Build builds the release image from the project directory's build context.
// The build error is returned unmodified so the caller decides whether to
// keep going; nothing past the docker invocation is retried or inspected.
func Build(ctx context.Context, cfg *config.Config, projectDir string, imageRef string, version string, options BuildOptions, dockerCommand command.Command) error {
	console.Infof("Building Docker image %s...", imageRef)

	labels := make(map[string]string, len(cfg.Labels)+1)
	for k, v := range cfg.Labels {
		labels[k] = v
	}
	labels[versionLabel] = version

	return dockerCommand.Build(ctx, command.BuildOptions{
		WorkingDir:     projectDir,
		Dockerfile:     cfg.Dockerfile,
		ImageName:      imageRef,
		Platform:       cfg.Platform,
		BuildArgs:      cfg.BuildArgs,
		Labels:         labels,
		NoCache:        options.NoCache,
		ProgressOutput: options.ProgressOutput,
	})
}
