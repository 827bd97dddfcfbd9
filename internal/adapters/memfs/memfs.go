// Package memfs provides an in-memory ports.PrivilegedFS for tests.
//
// It records every call, keeps a tree of directories and files, and can be told
// to fail specific operations. Nothing touches the host filesystem except
// CopyFile, which falls back to reading its source from the host.
package memfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PrivilegedFS = (*FS)(nil)

// Op names a PrivilegedFS operation.
type Op string

// Operations recorded by FS.
const (
	OpMkdirAll       Op = "mkdir-all"
	OpWriteFile      Op = "write-file"
	OpRemoveAll      Op = "remove-all"
	OpRemoveContents Op = "remove-contents"
	OpCopyFile       Op = "copy-file"
	OpRun            Op = "run"
)

// Call is one recorded operation.
type Call struct {
	Op   Op
	Args []string
}

// File is an in-memory regular file.
type File struct {
	Data []byte
	Mode os.FileMode
}

// RunFunc handles a Run call.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) error

// ExitError simulates a child process that exited with Code.
type ExitError struct {
	Code int
}

// Error implements error.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the simulated exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

type failure struct {
	op   Op
	path string
	err  error
}

// FS is an in-memory PrivilegedFS.
type FS struct {
	mu       sync.Mutex
	dirs     map[string]os.FileMode
	files    map[string]File
	calls    []Call
	failures []failure
	run      RunFunc
}

// New creates an FS containing only the root directory.
func New() *FS {
	return &FS{
		dirs:  map[string]os.FileMode{"/": 0o755},
		files: make(map[string]File),
	}
}

// OnRun installs the handler used by Run.
func (f *FS) OnRun(fn RunFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.run = fn
}

// FailOn makes op on path return err. An empty path matches every path.
func (f *FS) FailOn(op Op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, failure{op: op, path: path, err: err})
}

// AddFile seeds a file, creating its parent directories.
func (f *FS) AddFile(path string, data []byte, mode os.FileMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mkdirAll(filepath.Dir(path), 0o755)
	f.files[filepath.Clean(path)] = File{Data: slices.Clone(data), Mode: mode}
}

// AddDir seeds a directory and its parents.
func (f *FS) AddDir(path string, mode os.FileMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mkdirAll(path, mode)
}

// Calls returns every recorded operation in order.
func (f *FS) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// Ops returns the recorded operation names in order.
func (f *FS) Ops() []Op {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make([]Op, len(f.calls))
	for i, c := range f.calls {
		ops[i] = c.Op
	}
	return ops
}

// ReadFile returns the file at path.
func (f *FS) ReadFile(path string) (File, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[filepath.Clean(path)]
	return file, ok
}

// Dir returns the mode of the directory at path.
func (f *FS) Dir(path string) (os.FileMode, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mode, ok := f.dirs[filepath.Clean(path)]
	return mode, ok
}

// Exists reports whether path is a file or directory.
func (f *FS) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exists(filepath.Clean(path))
}

// MkdirAll implements ports.PrivilegedFS.
func (f *FS) MkdirAll(_ context.Context, path string, mode os.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	path = filepath.Clean(path)
	if err := f.record(OpMkdirAll, path); err != nil {
		return err
	}

	for p := path; ; p = filepath.Dir(p) {
		if _, ok := f.files[p]; ok {
			return f.fail(OpMkdirAll, path, zerr.With(zerr.New("not a directory"), "conflict", p))
		}
		if p == filepath.Dir(p) {
			break
		}
	}
	f.mkdirAll(path, mode)
	return nil
}

// WriteFile implements ports.PrivilegedFS.
func (f *FS) WriteFile(_ context.Context, path string, data []byte, mode os.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	path = filepath.Clean(path)
	if err := f.record(OpWriteFile, path); err != nil {
		return err
	}

	if _, ok := f.dirs[filepath.Dir(path)]; !ok {
		return f.fail(OpWriteFile, path, iofs.ErrNotExist)
	}
	if _, ok := f.dirs[path]; ok {
		return f.fail(OpWriteFile, path, zerr.New("is a directory"))
	}
	f.files[path] = File{Data: slices.Clone(data), Mode: mode}
	return nil
}

// RemoveAll implements ports.PrivilegedFS.
func (f *FS) RemoveAll(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	path = filepath.Clean(path)
	if err := f.record(OpRemoveAll, path); err != nil {
		return err
	}

	f.removeBelow(path)
	delete(f.files, path)
	if path != "/" {
		delete(f.dirs, path)
	}
	return nil
}

// RemoveContents implements ports.PrivilegedFS.
func (f *FS) RemoveContents(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	path = filepath.Clean(path)
	if err := f.record(OpRemoveContents, path); err != nil {
		return err
	}

	if _, ok := f.dirs[path]; !ok {
		return f.fail(OpRemoveContents, path, iofs.ErrNotExist)
	}
	f.removeBelow(path)
	return nil
}

// CopyFile implements ports.PrivilegedFS.
func (f *FS) CopyFile(_ context.Context, src, dst string, mode os.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if err := f.record(OpCopyFile, src, dst); err != nil {
		return err
	}

	data, ok := f.files[src]
	if !ok {
		hostData, err := os.ReadFile(src) //nolint:gosec // test double reading a caller-provided path
		if err != nil {
			return f.fail(OpCopyFile, dst, err)
		}
		data = File{Data: hostData}
	}

	f.mkdirAll(filepath.Dir(dst), 0o755)
	f.files[dst] = File{Data: slices.Clone(data.Data), Mode: mode}
	return nil
}

// Run implements ports.PrivilegedFS.
func (f *FS) Run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	f.mu.Lock()
	var path string
	if len(argv) > 0 {
		path = argv[0]
	}
	err := f.record(OpRun, argv...)
	if err == nil {
		err = f.injected(OpRun, path)
	}
	run := f.run
	f.mu.Unlock()

	if err != nil {
		return f.wrap(OpRun, argv, err)
	}
	if run == nil {
		return nil
	}
	if err := run(ctx, argv, stdout, stderr); err != nil {
		return f.wrap(OpRun, argv, err)
	}
	return nil
}

// record appends a call and returns an injected failure for it, if any.
// Run checks injected failures separately so the handler is never called.
func (f *FS) record(op Op, args ...string) error {
	f.calls = append(f.calls, Call{Op: op, Args: slices.Clone(args)})
	if op == OpRun {
		return nil
	}
	if err := f.injected(op, lastArg(args)); err != nil {
		return f.wrap(op, args, err)
	}
	return nil
}

func (f *FS) injected(op Op, path string) error {
	for _, fl := range f.failures {
		if fl.op == op && (fl.path == "" || filepath.Clean(fl.path) == path) {
			return fl.err
		}
	}
	return nil
}

func (f *FS) fail(op Op, path string, err error) error {
	return f.wrap(op, []string{path}, err)
}

func (f *FS) wrap(op Op, args []string, err error) error {
	return zerr.With(errors.Join(domain.ErrPrivilegedCommandFailed, err), "argv", append([]string{string(op)}, args...))
}

func (f *FS) exists(path string) bool {
	if _, ok := f.dirs[path]; ok {
		return true
	}
	_, ok := f.files[path]
	return ok
}

func (f *FS) mkdirAll(path string, mode os.FileMode) {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, ok := f.dirs[p]; !ok {
			f.dirs[p] = mode
		}
		if p == filepath.Dir(p) {
			return
		}
	}
}

func (f *FS) removeBelow(path string) {
	prefix := strings.TrimSuffix(path, "/") + "/"
	for p := range f.dirs {
		if p != path && strings.HasPrefix(p, prefix) {
			delete(f.dirs, p)
		}
	}
	for p := range f.files {
		if strings.HasPrefix(p, prefix) {
			delete(f.files, p)
		}
	}
}

func lastArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[len(args)-1]
}
