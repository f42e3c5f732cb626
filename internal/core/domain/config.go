package domain

// Step is a Gradle build step whose dependency cache is managed.
type Step struct {
	ID             string
	WorkingDir     string
	GradleUserHome string
}

// Config is the loaded depcache configuration.
type Config struct {
	Parameters   Parameters
	MetadataPath string
	Steps        []Step
}
