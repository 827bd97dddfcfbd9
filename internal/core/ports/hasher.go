package ports

// Hasher defines the interface for computing content fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashBytes returns the fingerprint of data.
	HashBytes(data []byte) string

	// HashFile returns the fingerprint of the file at path.
	HashFile(path string) (string, error)
}
