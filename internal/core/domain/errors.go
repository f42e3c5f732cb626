package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkDirUnreadable is returned when the project working directory cannot be listed.
	ErrWorkDirUnreadable = zerr.New("failed to read working directory")

	// ErrDirUnreadable is returned when a directory below the working directory cannot be listed.
	ErrDirUnreadable = zerr.New("failed to read directory")

	// ErrFileHashFailed is returned when a dependency file cannot be hashed.
	ErrFileHashFailed = zerr.New("failed to hash file")

	// ErrChecksumComputationFailed is returned when the asynchronous checksum computation fails.
	ErrChecksumComputationFailed = zerr.New("checksum computation failed")

	// ErrChecksumAwaitTimeout is returned when the checksum is not ready within the await timeout.
	ErrChecksumAwaitTimeout = zerr.New("timed out awaiting checksum")

	// ErrComputerStopped is returned when work is submitted to, or awaited from, a stopped computer.
	ErrComputerStopped = zerr.New("checksum computer is stopped")

	// ErrRecordMarshalFailed is returned when an invalidation record cannot be encoded.
	ErrRecordMarshalFailed = zerr.New("failed to marshal invalidation record")

	// ErrRecordUnmarshalFailed is returned when an invalidation record cannot be decoded.
	ErrRecordUnmarshalFailed = zerr.New("failed to unmarshal invalidation record")

	// ErrRecordShapeMismatch is returned when a stored record lacks the expected checksum field.
	ErrRecordShapeMismatch = zerr.New("invalidation record has unexpected shape")

	// ErrStoreReadFailed is returned when the metadata store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read metadata store")

	// ErrStoreUnmarshalFailed is returned when the metadata store file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal metadata store")

	// ErrStoreMarshalFailed is returned when the metadata store cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal metadata store")

	// ErrStoreWriteFailed is returned when the metadata store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write metadata store")

	// ErrStoreCreateFailed is returned when the metadata store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create metadata store directory")

	// ErrCacheRootCreateFailed is returned when the Gradle caches directory cannot be created.
	ErrCacheRootCreateFailed = zerr.New("failed to create cache root directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingStepID is returned when a configured step has no id.
	ErrMissingStepID = zerr.New("step id is required")

	// ErrDuplicateStepID is returned when two configured steps share an id.
	ErrDuplicateStepID = zerr.New("duplicate step id")

	// ErrNoSteps is returned when the configuration declares no steps.
	ErrNoSteps = zerr.New("no steps configured")
)
