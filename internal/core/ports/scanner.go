// Package ports defines the core interfaces for the application.
package ports

// WarnFunc receives recoverable diagnostics that must not fail the operation.
type WarnFunc func(msg string)

// Scanner computes content digests of a project's dependency-declaration files.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan walks root up to depthLimit directory levels and returns a map of
	// "/"-separated relative path to lowercase hex SHA-256 digest.
	//
	// Files that disappear or are not regular are reported through warn and skipped.
	// An error is returned only when a directory cannot be listed.
	Scan(root string, depthLimit int, warn WarnFunc) (map[string]string, error)
}
