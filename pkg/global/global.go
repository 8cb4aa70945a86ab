package global

var (
	// Version and BuildTime are set at link time.
	Version   = "0.0.1"
	BuildTime = "none"
	Verbose   = false

	// ConfigFilename is the optional per-project release configuration.
	ConfigFilename = "release.yaml"

	// DefaultRepository is where MeetSpot images are published.
	DefaultRepository = "aolifu/meetspot"

	// DefaultDockerfile is the build specification relative to the project root.
	DefaultDockerfile = "Dockerfile"
)
