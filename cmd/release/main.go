package main

import (
	"errors"
	"os"
	"os/exec"

	"github.com/one-answer/MeetSpot/pkg/cli"
	"github.com/one-answer/MeetSpot/pkg/util/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err = cmd.Execute(); err != nil {
		// When docker itself failed, exit with its status so callers in CI
		// can tell build/push failures apart from our own.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			console.Error(err.Error())
			os.Exit(exitErr.ExitCode())
		}
		console.Fatalf("%s", err)
	}
}
