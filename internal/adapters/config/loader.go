// Package config provides the settings loader for nix-bisect.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/creasty/defaults"
	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/nixbisect/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Log formats accepted in settings and on the command line.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at path, or the nearest .nix-bisect.yaml at or above cwd.
// Without a settings file the defaults are returned.
func (l *Loader) Load(cwd, path string) (domain.Settings, error) {
	if path == "" {
		path = findSettings(cwd)
	}

	var file Settingsfile
	if err := defaults.Set(&file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	baseDir := cwd
	if path != "" {
		if err := readAndUnmarshalYAML(path, &file); err != nil {
			return domain.Settings{}, zerr.With(err, "path", path)
		}
		baseDir = filepath.Dir(path)
		l.Logger.Debug("loaded settings from " + path)
	}

	return toSettings(file, baseDir)
}

func findSettings(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

func toSettings(file Settingsfile, baseDir string) (domain.Settings, error) {
	if file.MaxRebuilds != nil && *file.MaxRebuilds < 0 {
		return domain.Settings{}, zerr.With(domain.ErrInvalidMaxRebuilds, "max_rebuilds", *file.MaxRebuilds)
	}

	switch file.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		err := zerr.With(domain.ErrConfigParseFailed, "field", "logFormat")
		return domain.Settings{}, zerr.With(err, "value", file.LogFormat)
	}

	names := make([]string, 0, len(file.BuildOptions))
	for name := range file.BuildOptions {
		names = append(names, name)
	}
	slices.Sort(names)

	options := make([]domain.BuildOption, 0, len(names))
	for _, name := range names {
		opt := domain.BuildOption{Name: name, Value: file.BuildOptions[name]}
		if err := opt.Validate(); err != nil {
			return domain.Settings{}, zerr.With(err, "option", name)
		}
		options = append(options, opt)
	}

	cacheDir := file.CacheDir
	if cacheDir == "" {
		cacheDir = domain.DefaultCacheRoot()
	} else {
		cacheDir = resolvePath(baseDir, cacheDir)
	}

	return domain.Settings{
		CacheDir:     cacheDir,
		NixFile:      resolvePath(baseDir, file.NixFile),
		System:       file.System,
		MaxRebuilds:  file.MaxRebuilds,
		FailureLine:  file.FailureLine,
		BuildOptions: options,
		LogFormat:    file.LogFormat,
	}, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user or found by discovery
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
