package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the metadata store Graft node.
const NodeID graft.ID = "adapter.metadata_store"

// Factory opens metadata stores at a path chosen at run time.
// Problems with the existing file are reported through warn.
type Factory func(path string, warn ports.WarnFunc) ports.MetadataStore

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return Open, nil
		},
	})
}

// Open opens the store at path, falling back to the default location when path is empty.
func Open(path string, warn ports.WarnFunc) ports.MetadataStore {
	if path == "" {
		path = domain.DefaultMetadataPath()
	}
	return NewStore(path, warn)
}
