package dockertest

import (
	"context"

	"github.com/one-answer/MeetSpot/pkg/docker/command"
)

// MockCommand records every Build and Push invocation so tests can assert on
// the exact references handed to the external tooling.
type MockCommand struct {
	BuildError       error
	PushError        error
	ImageExistsValue bool

	BuildCalls []command.BuildOptions
	PushCalls  []string
}

func NewMockCommand() *MockCommand {
	return &MockCommand{
		ImageExistsValue: true,
	}
}

func (c *MockCommand) Build(ctx context.Context, options command.BuildOptions) error {
	c.BuildCalls = append(c.BuildCalls, options)
	return c.BuildError
}

func (c *MockCommand) Push(ctx context.Context, ref string) error {
	c.PushCalls = append(c.PushCalls, ref)
	return c.PushError
}

func (c *MockCommand) ImageExists(ctx context.Context, ref string) (bool, error) {
	return c.ImageExistsValue, nil
}
