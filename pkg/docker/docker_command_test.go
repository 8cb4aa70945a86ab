package docker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/one-answer/MeetSpot/pkg/docker/command"
)

func TestBuildArgs(t *testing.T) {
	args := buildArgs(command.BuildOptions{
		WorkingDir: "/src/meetspot",
		Dockerfile: "Dockerfile",
		ImageName:  "aolifu/meetspot:v1.0.0",
	})
	require.Equal(t, []string{
		"buildx", "build",
		"--file", "Dockerfile",
		"--tag", "aolifu/meetspot:v1.0.0",
		".",
	}, args)
}

func TestBuildArgsFull(t *testing.T) {
	args := buildArgs(command.BuildOptions{
		Dockerfile:     "docker/Dockerfile.release",
		ImageName:      "aolifu/meetspot:latest",
		Platform:       "linux/amd64",
		NoCache:        true,
		ProgressOutput: "plain",
		BuildArgs:      map[string]string{"B": "2", "A": "1"},
		Labels:         map[string]string{"org.opencontainers.image.version": "latest"},
	})
	require.Equal(t, []string{
		"buildx", "build",
		"--platform", "linux/amd64", "--load",
		"--no-cache",
		"--build-arg", "A=1",
		"--build-arg", "B=2",
		"--label", "org.opencontainers.image.version=latest",
		"--progress", "plain",
		"--file", "docker/Dockerfile.release",
		"--tag", "aolifu/meetspot:latest",
		".",
	}, args)
}
