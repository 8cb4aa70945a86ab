package docker

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/one-answer/MeetSpot/pkg/docker/command"
	"github.com/one-answer/MeetSpot/pkg/util/console"
)

// DockerCommand drives the docker CLI. Build and push output is streamed
// straight through so the user sees exactly what the tools print.
type DockerCommand struct{}

func NewDockerCommand() *DockerCommand {
	return &DockerCommand{}
}

func (c *DockerCommand) Build(ctx context.Context, options command.BuildOptions) error {
	cmd := exec.CommandContext(ctx, "docker", buildArgs(options)...)
	cmd.Dir = options.WorkingDir
	cmd.Stdout = os.Stderr // build output is all messaging, keep stdout clean
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("Failed to build %s: %w", options.ImageName, err)
	}
	return nil
}

func (c *DockerCommand) Push(ctx context.Context, ref string) error {
	cmd := exec.CommandContext(ctx, "docker", "push", ref)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	return cmd.Run()
}

func (c *DockerCommand) ImageExists(ctx context.Context, ref string) (bool, error) {
	cmd := exec.CommandContext(ctx, "docker", "image", "inspect", ref)
	cmd.Env = os.Environ()

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if _, err := cmd.Output(); err != nil {
		// inspect failures almost always mean the image isn't there
		return false, nil
	}
	return true, nil
}

func buildArgs(options command.BuildOptions) []string {
	args := []string{"buildx", "build"}

	if options.Platform != "" {
		args = append(args, "--platform", options.Platform, "--load")
	}
	if options.NoCache {
		args = append(args, "--no-cache")
	}
	for _, k := range sortedKeys(options.BuildArgs) {
		args = append(args, "--build-arg", fmt.Sprintf("%s=%s", k, options.BuildArgs[k]))
	}
	for _, k := range sortedKeys(options.Labels) {
		// Docker splits on the first '=', the rest is the label value.
		args = append(args, "--label", fmt.Sprintf("%s=%s", k, options.Labels[k]))
	}
	if options.ProgressOutput != "" {
		args = append(args, "--progress", options.ProgressOutput)
	}

	args = append(args,
		"--file", options.Dockerfile,
		"--tag", options.ImageName,
		".",
	)
	return args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
