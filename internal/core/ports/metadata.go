package ports

// MetadataStore holds opaque invalidation metadata blobs attached to a cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataStore interface {
	// Get returns the blob published under key by the previous build.
	// The boolean is false when nothing was published yet.
	Get(key string) ([]byte, bool, error)

	// Publish stores the blob under key, overwriting any previous value.
	Publish(key string, value []byte) error
}
