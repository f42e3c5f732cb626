package depcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the checksum builder Graft node.
const NodeID graft.ID = "engine.depcache.checksum_builder"

func init() {
	graft.Register(graft.Node[*ChecksumBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ScannerNodeID},
		Run: func(ctx context.Context) (*ChecksumBuilder, error) {
			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecksumBuilder(scanner), nil
		},
	})
}
