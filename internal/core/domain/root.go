// Package domain holds the core types of the bootstrap protocol.
package domain

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ToolName is the name of the package manager being bootstrapped.
	ToolName = "meow"

	// ConfigFileName is the name of the synthesized configuration file under etc/<ToolName>.
	ConfigFileName = ToolName + ".toml"

	// DirMode is the mode used for every directory of the root skeleton.
	DirMode os.FileMode = 0o755

	// BinaryMode is the mode of the package manager binary installed into the root.
	BinaryMode os.FileMode = 0o755

	// ConfigMode is the mode of the synthesized configuration file.
	ConfigMode os.FileMode = 0o644
)

// forbiddenRoots are host paths that must never be bootstrapped into.
// /usr/bin and friends are listed because merged-usr hosts resolve /bin there.
var forbiddenRoots = []string{
	"/",
	"/bin",
	"/boot",
	"/dev",
	"/etc",
	"/home",
	"/lib",
	"/lib64",
	"/opt",
	"/proc",
	"/root",
	"/run",
	"/sbin",
	"/srv",
	"/sys",
	"/tmp",
	"/usr",
	"/usr/bin",
	"/usr/lib",
	"/usr/local",
	"/usr/sbin",
	"/var",
}

// ForbiddenRoots returns a copy of the host paths that ResolveRoot rejects.
func ForbiddenRoots() []string {
	return slices.Clone(forbiddenRoots)
}

// IsForbiddenRoot reports whether path is byte-equal to a forbidden host path.
func IsForbiddenRoot(path string) bool {
	return slices.Contains(forbiddenRoots, path)
}

// TargetRoot is the absolute, symlink-resolved path of the filesystem tree being bootstrapped.
type TargetRoot struct {
	path string
}

// ResolveRoot canonicalizes input and rejects it if it names a host system path.
//
// The target does not have to exist yet: symlinks are resolved on the longest
// existing prefix, dangling links are followed to their targets, and the
// remaining components are appended as given.
// ResolveRoot never touches the filesystem beyond reading it.
func ResolveRoot(input string) (TargetRoot, error) {
	if strings.TrimSpace(input) == "" {
		return TargetRoot{}, zerr.With(zerr.Wrap(ErrInvalidRoot, "empty path"), "input", input)
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return TargetRoot{}, zerr.With(errors.Join(ErrInvalidRoot, err), "input", input)
	}

	if IsForbiddenRoot(abs) {
		return TargetRoot{}, zerr.With(zerr.Wrap(ErrUnsafeRoot, "target root "+abs), "input", input)
	}

	resolved, err := evalExistingPrefix(abs)
	if err != nil {
		return TargetRoot{}, zerr.With(errors.Join(ErrInvalidRoot, err), "input", input)
	}

	if IsForbiddenRoot(resolved) {
		err := zerr.With(zerr.Wrap(ErrUnsafeRoot, "target root "+resolved), "input", input)
		return TargetRoot{}, zerr.With(err, "resolved", resolved)
	}

	return TargetRoot{path: resolved}, nil
}

// maxSymlinkHops bounds how many dangling links evalExistingPrefix follows.
const maxSymlinkHops = 255

// evalExistingPrefix resolves symlinks in the longest existing prefix of path.
// A dangling link is followed through its target so the result names the
// location a later mkdir would actually create.
func evalExistingPrefix(path string) (string, error) {
	var missing []string
	current := path
	hops := 0
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		target, isLink, err := danglingLink(current)
		if err != nil {
			return "", err
		}
		if isLink {
			hops++
			if hops > maxSymlinkHops {
				return "", zerr.With(zerr.New("too many levels of symbolic links"), "path", path)
			}
			current = target
			continue
		}

		parent := filepath.Dir(current)
		if parent == current {
			return filepath.Join(append([]string{current}, missing...)...), nil
		}
		missing = append([]string{filepath.Base(current)}, missing...)
		current = parent
	}
}

// danglingLink returns the absolute target of path when path is a symlink.
// Relative targets are anchored at the resolved parent directory.
func danglingLink(path string) (string, bool, error) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return "", false, nil
	}

	target, err := os.Readlink(path)
	if err != nil {
		return "", false, err
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target), true, nil
	}

	dir, err := filepath.EvalSymlinks(filepath.Dir(path))
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, target), true, nil
}

// Confine resolves path the way ResolveRoot does and fails if the result
// lies outside the root.
func (r TargetRoot) Confine(path string) error {
	resolved, err := evalExistingPrefix(path)
	if err != nil {
		return zerr.With(errors.Join(ErrPathEscapesRoot, err), "path", path)
	}
	if resolved == r.path || strings.HasPrefix(resolved, r.path+string(filepath.Separator)) {
		return nil
	}

	err = zerr.With(zerr.Wrap(ErrPathEscapesRoot, path+" resolves to "+resolved), "path", path)
	return zerr.With(err, "root", r.path)
}

// Path returns the resolved absolute path of the root.
func (r TargetRoot) Path() string {
	return r.path
}

// String implements fmt.Stringer.
func (r TargetRoot) String() string {
	return r.path
}

// IsZero reports whether the root was never resolved.
func (r TargetRoot) IsZero() bool {
	return r.path == ""
}

// Join returns a path inside the root.
func (r TargetRoot) Join(elem ...string) string {
	return filepath.Join(append([]string{r.path}, elem...)...)
}

// TempDir is the scratch area used by the package manager during sync.
func (r TargetRoot) TempDir() string {
	return r.Join("tmp", ToolName)
}

// StateDir is the persistent package manager state area.
func (r TargetRoot) StateDir() string {
	return r.Join("var", "lib", ToolName)
}

// ConfigDir is the package manager configuration area.
func (r TargetRoot) ConfigDir() string {
	return r.Join("etc", ToolName)
}

// ConfigPath is where the synthesized configuration document is written.
func (r TargetRoot) ConfigPath() string {
	return filepath.Join(r.ConfigDir(), ConfigFileName)
}

// BinaryPath is where the package manager binary is installed.
func (r TargetRoot) BinaryPath() string {
	return r.Join("usr", "bin", ToolName)
}

// Skeleton lists the directories that must exist before the package manager can run.
func (r TargetRoot) Skeleton() []string {
	return []string{r.TempDir(), r.StateDir(), r.ConfigDir()}
}
