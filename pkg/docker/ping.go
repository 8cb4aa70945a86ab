package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/client"
)

const pingTimeout = 5 * time.Second

// Ping verifies that a Docker daemon is reachable before any build work
// starts, so a stopped daemon fails fast with a useful message.
func Ping(ctx context.Context) error {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return fmt.Errorf("failed to create docker client: %w", err)
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := cli.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping docker, please try restarting the docker daemon: %w", err)
	}
	return nil
}
