package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/one-answer/MeetSpot/pkg/global"
	"github.com/one-answer/MeetSpot/pkg/util/console"
)

func NewRootCommand() (*cobra.Command, error) {
	rootCmd := cobra.Command{
		Use:     "release <version>",
		Short:   "Build the MeetSpot image and push it to the registry",
		Example: "  release v1.0.0",
		Version: fmt.Sprintf("%s (built %s)", global.Version, global.BuildTime),
		Args:    cobra.MaximumNArgs(1),
		RunE:    releaseCommand,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.Verbose {
				console.SetLevel(console.DebugLevel)
			}
			cmd.SilenceUsage = true
		},
		// Errors are printed in cmd/release/main.go
		SilenceErrors: true,
	}
	setPersistentFlags(&rootCmd)
	addReleaseFlags(&rootCmd)

	return &rootCmd, nil
}

func setPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "Verbose output")
}
