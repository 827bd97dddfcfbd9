package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsafeRoot is returned when the target root resolves to a host system path.
	ErrUnsafeRoot = zerr.New("refusing to bootstrap into a host system path")

	// ErrInvalidRoot is returned when the target root cannot be resolved to an absolute path.
	ErrInvalidRoot = zerr.New("invalid target root")

	// ErrPathEscapesRoot is returned when a path inside the root resolves outside of it.
	ErrPathEscapesRoot = zerr.New("path escapes target root")

	// ErrPreparationFailed is returned when the directory skeleton cannot be created.
	ErrPreparationFailed = zerr.New("failed to prepare root skeleton")

	// ErrConfigEncodeFailed is returned when the bootstrap configuration cannot be serialized.
	ErrConfigEncodeFailed = zerr.New("failed to encode bootstrap configuration")

	// ErrConfigWriteFailed is returned when the bootstrap configuration cannot be written to the root.
	ErrConfigWriteFailed = zerr.New("failed to write bootstrap configuration")

	// ErrSyncFailed is returned when the package manager reports a failed sync.
	ErrSyncFailed = zerr.New("package sync failed")

	// ErrSelfInstallFailed is returned when the package manager binary cannot be installed into the root.
	ErrSelfInstallFailed = zerr.New("failed to install package manager into root")

	// ErrCleanupFailed is reported (not returned) when the scratch area cannot be removed.
	ErrCleanupFailed = zerr.New("failed to remove scratch area")

	// ErrResetFailed is reported (not returned) when wiping the root fails.
	ErrResetFailed = zerr.New("failed to reset root")

	// ErrEmptyPackageList is returned when the curated package list has no packages.
	ErrEmptyPackageList = zerr.New("package list is empty")

	// ErrMissingIndex is returned when no package index URL is configured.
	ErrMissingIndex = zerr.New("package index is not set")

	// ErrPackageManagerMissing is returned when the package manager binary is absent or not executable.
	ErrPackageManagerMissing = zerr.New("package manager binary not found")

	// ErrManifestReadFailed is returned when the installer manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read installer manifest")

	// ErrManifestParseFailed is returned when the installer manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse installer manifest")

	// ErrPrivilegedCommandFailed is returned when a command run through the privilege gateway fails.
	ErrPrivilegedCommandFailed = zerr.New("privileged command failed")
)
