package meow

import (
	"bytes"
	"errors"

	"github.com/BurntSushi/toml"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigEncoder = (*Encoder)(nil)

// Document is the on-disk layout of meow.toml. Field order fixes key order.
type Document struct {
	Index    string   `toml:"index"`
	Packages []string `toml:"packages"`
	Keys     []string `toml:"keys,omitempty"`
}

// Encoder serializes a BootstrapConfig as meow.toml.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode returns the TOML document for cfg.
func (e *Encoder) Encode(cfg domain.BootstrapConfig) ([]byte, error) {
	if len(cfg.Packages) == 0 {
		return nil, zerr.Wrap(domain.ErrEmptyPackageList, "encode config")
	}

	var buf bytes.Buffer
	doc := Document{Index: cfg.Index, Packages: cfg.Packages, Keys: cfg.Keys}
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, errors.Join(domain.ErrConfigEncodeFailed, err)
	}
	return buf.Bytes(), nil
}

// Decode parses a meow.toml document.
func Decode(data []byte) (Document, error) {
	var doc Document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Document{}, zerr.Wrap(err, "failed to parse meow.toml")
	}
	return doc, nil
}
