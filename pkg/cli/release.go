package cli

import (
	"context"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/one-answer/MeetSpot/pkg/config"
	"github.com/one-answer/MeetSpot/pkg/docker"
	"github.com/one-answer/MeetSpot/pkg/docker/command"
	"github.com/one-answer/MeetSpot/pkg/errors"
	"github.com/one-answer/MeetSpot/pkg/image"
	"github.com/one-answer/MeetSpot/pkg/util/console"
	"github.com/one-answer/MeetSpot/pkg/util/files"
)

var (
	projectDirFlag      string
	buildNoCache        bool
	buildProgressOutput string
	buildOnly           bool
)

func addReleaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&projectDirFlag, "project-dir", "D", "", "Project directory, defaults to current working directory")
	cmd.Flags().BoolVar(&buildNoCache, "no-cache", false, "Do not use cache when building the image")
	cmd.Flags().BoolVar(&buildOnly, "build-only", false, "Build and tag the image without pushing it")
	addBuildProgressOutputFlag(cmd)
}

func addBuildProgressOutputFlag(cmd *cobra.Command) {
	defaultOutput := "auto"
	if os.Getenv("TERM") == "dumb" || !console.IsTerminal() {
		defaultOutput = "plain"
	}
	cmd.Flags().StringVar(&buildProgressOutput, "progress", defaultOutput, "Set type of build progress output, 'auto' (default), 'tty' or 'plain'")
}

func releaseCommand(cmd *cobra.Command, args []string) error {
	version := ""
	if len(args) > 0 {
		version = args[0]
	}
	if version == "" {
		return errors.NoVersionTag()
	}

	cfg, projectDir, err := config.GetConfig(projectDirFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := docker.Ping(ctx); err != nil {
		return err
	}

	return runRelease(ctx, cfg, projectDir, version, docker.NewDockerCommand())
}

// runRelease is the whole release flow: construct the image reference, build,
// then push the byte-identical reference. Push only happens when the build
// succeeded; the first failing step's error is returned as-is.
func runRelease(ctx context.Context, cfg *config.Config, projectDir string, version string, dockerCommand command.Command) error {
	imageRef, err := image.Reference(cfg.Repository, version)
	if err != nil {
		return err
	}

	checkDockerfile(cfg, projectDir)

	if err := image.Build(ctx, cfg, projectDir, imageRef, version, image.BuildOptions{
		NoCache:        buildNoCache,
		ProgressOutput: buildProgressOutput,
	}, dockerCommand); err != nil {
		return err
	}
	console.Infof("\nImage built as %s", imageRef)

	if buildOnly {
		return nil
	}

	if exists, err := dockerCommand.ImageExists(ctx, imageRef); err == nil && !exists {
		return errors.ImageNotBuilt(imageRef)
	}

	warnIfNotLoggedIn(ctx, imageRef)

	console.Infof("\nPushing image '%s'...", imageRef)
	if err := docker.Push(ctx, imageRef, dockerCommand); err != nil {
		if docker.IsAuthorizationFailedError(err) {
			console.Info("The registry rejected our credentials. Run 'docker login' and try again.")
		} else if docker.IsImageNotFoundError(err) {
			console.Infof("The image %s disappeared between build and push.", imageRef)
		}
		return err
	}
	console.Infof("Image '%s' pushed", imageRef)

	return nil
}

// The docker build would fail anyway, but a missing Dockerfile is worth a
// pointed warning before a lot of context upload output scrolls past.
func checkDockerfile(cfg *config.Config, projectDir string) {
	exists, err := files.Exists(path.Join(projectDir, cfg.Dockerfile))
	if err == nil && !exists {
		console.Warnf("%s does not exist in %s. Are you in the right directory?", cfg.Dockerfile, projectDir)
	}
}

func warnIfNotLoggedIn(ctx context.Context, imageRef string) {
	host, err := image.RegistryHost(imageRef)
	if err != nil {
		return
	}
	userInfo, err := docker.LoadUserInformation(ctx, host)
	if err != nil || userInfo.Token == "" {
		console.Warnf("No registry credentials found for %s. If the push fails, run 'docker login'.", host)
	}
}
