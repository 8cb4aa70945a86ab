package docker

import (
	"context"

	"github.com/one-answer/MeetSpot/pkg/docker/command"
)

func Push(ctx context.Context, ref string, dockerCommand command.Command) error {
	return dockerCommand.Push(ctx, ref)
}
