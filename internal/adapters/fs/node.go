package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/internal/core/ports"
)

// HasherNodeID is the graft node that provides the content hasher.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
