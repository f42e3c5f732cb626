package config

// Depfile represents the structure of the depcache.yaml configuration file.
type Depfile struct {
	Version      string            `yaml:"version"`
	MetadataFile string            `yaml:"metadataFile"`
	Parameters   map[string]string `yaml:"parameters"`
	Steps        []StepDTO         `yaml:"steps"`
}

// StepDTO represents a Gradle step definition in the configuration.
type StepDTO struct {
	ID             string `yaml:"id"`
	WorkingDir     string `yaml:"workingDir"`
	GradleUserHome string `yaml:"gradleUserHome"`
}
