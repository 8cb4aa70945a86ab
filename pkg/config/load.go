package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/one-answer/MeetSpot/pkg/errors"
	"github.com/one-answer/MeetSpot/pkg/global"
	"github.com/one-answer/MeetSpot/pkg/util/files"
)

const maxSearchDepth = 100

// GetConfig loads the release configuration for the project.
//
// When projectDir is empty the search starts at the current working directory
// and walks up until a release.yaml is found. A project without release.yaml
// is valid: it gets DefaultConfig rooted at the starting directory.
func GetConfig(projectDir string) (*Config, string, error) {
	startDir, err := resolveStartDir(projectDir)
	if err != nil {
		return nil, "", err
	}

	rootDir, err := findProjectRootDir(startDir)
	if err != nil {
		if errors.IsConfigNotFound(err) {
			return DefaultConfig(), startDir, nil
		}
		return nil, "", err
	}

	config, err := loadConfigFromFile(path.Join(rootDir, global.ConfigFilename))
	if err != nil {
		return nil, "", err
	}
	if err := config.ValidateAndComplete(); err != nil {
		return nil, "", err
	}
	return config, rootDir, nil
}

func resolveStartDir(projectDir string) (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return cwd, nil
}

func loadConfigFromFile(file string) (*Config, error) {
	contents, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s: %w", file, err)
	}
	return FromYAML(contents)
}

// Walk up the directory tree to find the root of the project. The project
// root is defined as the directory housing a release.yaml file.
func findProjectRootDir(startDir string) (string, error) {
	dir := startDir
	for i := 0; i < maxSearchDepth; i++ {
		switch _, err := findConfigPathInDirectory(dir); {
		case err != nil && !errors.IsConfigNotFound(err):
			return "", err
		case err == nil:
			return dir, nil
		case dir == "." || dir == filepath.Dir(dir):
			return "", errors.ConfigNotFound(fmt.Sprintf("%s not found in %s (or in any parent directories)", global.ConfigFilename, startDir))
		}
		dir = filepath.Dir(dir)
	}
	return "", errors.ConfigNotFound(fmt.Sprintf("%s not found, stopping search after %d directories", global.ConfigFilename, maxSearchDepth))
}

func findConfigPathInDirectory(dir string) (configPath string, err error) {
	filePath := path.Join(dir, global.ConfigFilename)
	exists, err := files.Exists(filePath)
	if err != nil {
		return "", fmt.Errorf("Failed to scan directory %s for %s: %w", dir, filePath, err)
	} else if exists {
		return filePath, nil
	}

	return "", errors.ConfigNotFound(fmt.Sprintf("%s not found in %s", global.ConfigFilename, dir))
}
