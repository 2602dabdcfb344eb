package fs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"golang.org/x/sys/unix"
)

// Real implements [FS] using the real filesystem.
//
// Read and metadata methods are pure passthroughs to the [os] package. The
// exceptions are [Real.Exists] which wraps [os.Stat], [Real.WriteFileAtomic]
// which uses atomic file writes, and [Real.Lock] which provides file locking.
type Real struct {
	lockTimeout time.Duration
}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{lockTimeout: defaultLockTimeout}
}

// --- File Operations ---

// A passthrough wrapper for [os.ReadFile].
func (r *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic writes data with [atomic.WriteFile] and restores the
// previous file mode, or applies perm for a new file.
func (r *Real) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	mode := perm

	info, statErr := os.Stat(path)
	if statErr == nil {
		mode = info.Mode().Perm()
	}

	err := atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return err
	}

	return os.Chmod(path, mode)
}

// --- Metadata ---

// A passthrough wrapper for [os.Stat].
func (r *Real) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a file exists using [os.Stat].
// Returns (true, nil) if the file exists, (false, nil) if it does not,
// or (false, err) for other errors.
func (r *Real) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// A passthrough wrapper for [filepath.EvalSymlinks].
func (r *Real) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// --- Locking ---

const (
	defaultLockTimeout = 2 * time.Second
	lockRetryInterval  = 10 * time.Millisecond
	lockPerms          = 0o600
)

// ErrLockTimeout is returned when another process holds the lock past the
// timeout.
var ErrLockTimeout = errors.New("lock timeout")

// realLock holds an exclusive flock on a lock file next to the guarded path.
type realLock struct {
	path string
	file *os.File
}

// Close removes the lock file while still holding the lock, then unlocks.
func (l *realLock) Close() error {
	if l.file == nil {
		return nil
	}

	_ = os.Remove(l.path)
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	err := l.file.Close()
	l.file = nil

	return err
}

// LockPath returns the lock file used to guard path: a hidden sibling named
// ".<base>.lock".
func LockPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
}

// Lock takes an exclusive flock on [LockPath] of path, polling with LOCK_NB
// until it succeeds or the timeout elapses.
//
// After acquiring, the lock file's inode is compared with the one at the path.
// If a previous holder removed it in the meantime the attempt is retried.
func (r *Real) Lock(path string) (Locker, error) {
	lockPath := LockPath(path)
	deadline := time.Now().Add(r.lockTimeout)

	for {
		file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, lockPerms)
		if err != nil {
			return nil, fmt.Errorf("open lock file: %w", err)
		}

		fd := int(file.Fd())

		err = unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			if sameInode(file, lockPath) {
				return &realLock{path: lockPath, file: file}, nil
			}

			// Lock file was replaced after we opened it, retry.
			_ = unix.Flock(fd, unix.LOCK_UN)
			_ = file.Close()

			continue
		}

		_ = file.Close()

		if !errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("flock %s: %w", lockPath, err)
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		}

		time.Sleep(lockRetryInterval)
	}
}

func sameInode(file *os.File, path string) bool {
	var openStat, pathStat unix.Stat_t

	if err := unix.Fstat(int(file.Fd()), &openStat); err != nil {
		return false
	}

	if err := unix.Stat(path, &pathStat); err != nil {
		return false
	}

	return openStat.Ino == pathStat.Ino && openStat.Dev == pathStat.Dev
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
