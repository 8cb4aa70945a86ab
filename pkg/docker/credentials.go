package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/docker/cli/cli/config"
	"github.com/docker/cli/cli/config/configfile"

	"github.com/one-answer/MeetSpot/pkg/docker/command"
	"github.com/one-answer/MeetSpot/pkg/util/console"
)

// Docker Hub credentials are stored under the legacy index server key rather
// than the registry hostname.
const (
	dockerHubHost    = "index.docker.io"
	dockerHubAuthKey = "https://index.docker.io/v1/"
)

// LoadUserInformation resolves the credentials the docker CLI would use for
// registryHost, from the config file or the configured credential helper.
func LoadUserInformation(ctx context.Context, registryHost string) (*command.UserInfo, error) {
	conf := config.LoadDefaultConfigFile(os.Stderr)
	credsStore := conf.CredentialsStore
	if credsStore == "" {
		return loadAuthFromConfig(conf, registryHost)
	}
	return loadAuthFromCredentialsStore(ctx, credsStore, registryHost)
}

func loadAuthFromConfig(conf *configfile.ConfigFile, registryHost string) (*command.UserInfo, error) {
	authConf := conf.AuthConfigs[authKey(registryHost)]
	return &command.UserInfo{
		Username: authConf.Username,
		Token:    authConf.Password,
	}, nil
}

func loadAuthFromCredentialsStore(ctx context.Context, credsStore string, registryHost string) (*command.UserInfo, error) {
	var out strings.Builder
	binary := dockerCredentialBinary(credsStore)
	cmd := exec.CommandContext(ctx, binary, "get")
	cmd.Env = os.Environ()
	cmd.Stdout = &out
	cmd.Stderr = &out
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	defer stdin.Close()

	console.Debug("$ " + strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(stdin, authKey(registryHost)); err != nil {
		return nil, err
	}
	if err := stdin.Close(); err != nil {
		return nil, err
	}
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("%s failed: %w", binary, err)
	}

	var helperResponse credentialHelperResponse
	if err := json.Unmarshal([]byte(out.String()), &helperResponse); err != nil {
		return nil, err
	}

	return &command.UserInfo{
		Username: helperResponse.Username,
		Token:    helperResponse.Secret,
	}, nil
}

type credentialHelperResponse struct {
	Username  string
	Secret    string
	ServerURL string
}

func authKey(registryHost string) string {
	if registryHost == dockerHubHost {
		return dockerHubAuthKey
	}
	return registryHost
}

func dockerCredentialBinary(credsStore string) string {
	return "docker-credential-" + credsStore
}
