// pkg/manifest/lock.go
package manifest

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// lockSuffix marks advisory lock files in the packages directory so
// List never reports them as installed packages.
const lockSuffix = ".lock"

var (
	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
)

// Lock holds an exclusive advisory lock for one package name.
type Lock struct {
	file *os.File
}

// Lock acquires the advisory lock for a package, waiting up to the
// timeout for a concurrent instar process to release it. Ensure must
// have been called first. The lock file stays behind after release;
// only holding the flock matters.
func (s *Store) Lock(name string) (*Lock, error) {
	path := s.Path(name) + lockSuffix
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening lock %s: %w", path, err)
	}
	if err := flockTimeout(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	return &Lock{file: file}, nil
}

// Release unlocks and closes the lock file.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// flockTimeout acquires an exclusive lock, polling until the timeout.
func flockTimeout(file *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out after %s waiting for lock", lockWaitTimeout)
		}
		time.Sleep(lockPollEvery)
	}
}
