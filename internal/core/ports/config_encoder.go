package ports

import "go.trai.ch/meowstrap/internal/core/domain"

// ConfigEncoder serializes a BootstrapConfig into the package manager's configuration format.
//
//go:generate mockgen -source=config_encoder.go -destination=mocks/mock_config_encoder.go -package=mocks
type ConfigEncoder interface {
	// Encode returns the serialized document. Equal inputs give byte-identical output.
	Encode(cfg domain.BootstrapConfig) ([]byte, error)
}
