// Package fs provides the filesystem operations cscycle needs, behind an
// interface so commands can be tested against fakes.
//
// The main types are:
//   - [FS]: interface for filesystem operations
//   - [Real]: production implementation using [os] and flock
//   - [Locker]: a held inter-process lock
//
// Example usage:
//
//	fsys := fs.NewReal()
//	lock, err := fsys.Lock(path)
//	if err != nil {
//	    return err
//	}
//	defer lock.Close()
//
//	data, err := fsys.ReadFile(path)
package fs

import (
	"io"
	"os"
)

// Locker represents a held file lock.
// Call [Locker.Close] to release the lock.
//
// Example:
//
//	lock, err := fsys.Lock("alacritty.yml")
//	if err != nil {
//	    return err // lock contention or timeout
//	}
//	defer lock.Close() // always release
//
//	// ... exclusive access to alacritty.yml ...
type Locker interface {
	io.Closer
}

// FS defines the filesystem operations used to read and rewrite a
// configuration file.
//
// All methods mirror their [os] package equivalents except
// [FS.WriteFileAtomic] and [FS.Lock].
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces the file at path with data.
	// Uses a temp file + rename so readers never observe a partial write.
	// If path already exists its mode is kept, otherwise perm is used.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// Stat returns file info. See [os.Stat].
	// Returns [os.ErrNotExist] if file doesn't exist.
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)

	// EvalSymlinks resolves symbolic links in path. See [filepath.EvalSymlinks].
	EvalSymlinks(path string) (string, error)

	// Lock acquires an exclusive lock guarding path.
	// Blocks until the lock is acquired or returns error on timeout.
	// Call [Locker.Close] to release the lock.
	//
	// Used for coordinating rewrites between concurrent processes.
	Lock(path string) (Locker, error)
}
