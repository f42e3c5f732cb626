// Package config provides the configuration loader for depcache.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads a configuration file from the given path and returns a domain.Config.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var depfile Depfile
	if err := yaml.Unmarshal(data, &depfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return l.toDomain(&depfile, filepath.Dir(domain.CanonicalLocation(path)))
}

func (l *Loader) toDomain(depfile *Depfile, baseDir string) (*domain.Config, error) {
	if len(depfile.Steps) == 0 {
		return nil, domain.ErrNoSteps
	}

	cfg := &domain.Config{
		Parameters:   domain.Parameters{},
		MetadataPath: resolvePath(baseDir, depfile.MetadataFile),
		Steps:        make([]domain.Step, 0, len(depfile.Steps)),
	}
	if cfg.MetadataPath == "" {
		cfg.MetadataPath = filepath.Join(baseDir, domain.DefaultMetadataPath())
	}
	for k, v := range depfile.Parameters {
		cfg.Parameters[k] = v
	}

	seen := make(map[string]bool, len(depfile.Steps))
	for _, dto := range depfile.Steps {
		if dto.ID == "" {
			return nil, domain.ErrMissingStepID
		}
		if seen[dto.ID] {
			return nil, zerr.With(domain.ErrDuplicateStepID, "step_id", dto.ID)
		}
		seen[dto.ID] = true

		workingDir := resolvePath(baseDir, dto.WorkingDir)
		if workingDir == "" {
			workingDir = baseDir
		}
		home := resolvePath(baseDir, dto.GradleUserHome)
		if home == "" && l.logger != nil {
			l.logger.Warn("step " + dto.ID + " has no gradleUserHome, its dependencies will not be cached")
		}

		cfg.Steps = append(cfg.Steps, domain.Step{
			ID:             dto.ID,
			WorkingDir:     workingDir,
			GradleUserHome: home,
		})
	}

	return cfg, nil
}

// resolvePath expands a leading "~/" and joins relative paths onto baseDir.
func resolvePath(baseDir, p string) string {
	if p == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
