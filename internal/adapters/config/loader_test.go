package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcache/internal/adapters/config"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad_Success(t *testing.T) {
	configPath := writeConfig(t, `
version: "1"
metadataFile: state/metadata.json
parameters:
  teamcity.internal.depcache.buildFeature.gradle.enabled: true
  teamcity.internal.depcache.gradle.invalidationDataSearchDepthLimit: 3
steps:
  - id: gradle_step
    workingDir: project
    gradleUserHome: /opt/gradle-home
  - id: second_step
    gradleUserHome: home
`)
	baseDir := filepath.Dir(configPath)
	ctrl := gomock.NewController(t)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(configPath)
	require.NoError(t, err)

	assert.True(t, cfg.Parameters.CacheEnabled())
	assert.Equal(t, 3, cfg.Parameters.SearchDepthLimit())
	assert.Equal(t, filepath.Join(baseDir, "state", "metadata.json"), cfg.MetadataPath)

	require.Len(t, cfg.Steps, 2)
	assert.Equal(t, domain.Step{
		ID:             "gradle_step",
		WorkingDir:     filepath.Join(baseDir, "project"),
		GradleUserHome: "/opt/gradle-home",
	}, cfg.Steps[0])
	assert.Equal(t, baseDir, cfg.Steps[1].WorkingDir)
	assert.Equal(t, filepath.Join(baseDir, "home"), cfg.Steps[1].GradleUserHome)
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, `
steps:
  - id: gradle_step
    gradleUserHome: home
`)
	ctrl := gomock.NewController(t)

	cfg, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(configPath), domain.DefaultMetadataPath()), cfg.MetadataPath)
	assert.NotNil(t, cfg.Parameters)
	assert.False(t, cfg.Parameters.CacheEnabled())
}

func TestLoad_MissingGradleUserHomeWarns(t *testing.T) {
	configPath := writeConfig(t, `
steps:
  - id: gradle_step
`)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := config.NewLoader(mockLogger).Load(configPath)
	require.NoError(t, err)
	assert.Empty(t, cfg.Steps[0].GradleUserHome)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "no steps",
			content: "version: \"1\"\n",
			want:    domain.ErrNoSteps,
		},
		{
			name:    "missing id",
			content: "steps:\n  - workingDir: .\n",
			want:    domain.ErrMissingStepID,
		},
		{
			name:    "duplicate id",
			content: "steps:\n  - id: a\n    gradleUserHome: h\n  - id: a\n    gradleUserHome: h\n",
			want:    domain.ErrDuplicateStepID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			_, err := config.NewLoader(mockLogger).Load(writeConfig(t, tt.content))

			require.Error(t, err)
			require.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(writeConfig(t, "steps: [unclosed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}
