// pkg/install/remover.go
package install

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/instar-dev/instar/pkg/core"
	"github.com/instar-dev/instar/pkg/manifest"
)

// Remover deletes a package's installed files and prunes directories
// the deletions emptied.
type Remover struct {
	store  *manifest.Store
	logger *log.Logger
}

// NewRemover returns a Remover reading manifests from store. A nil
// logger discards debug output.
func NewRemover(store *manifest.Store, logger *log.Logger) *Remover {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Remover{store: store, logger: logger}
}

// Remove deletes every path recorded in the package manifest, prunes
// parent directories that become empty, and finally deletes the
// manifest itself. A missing recorded file aborts the removal; the
// manifest is kept so the remaining files stay accounted for.
func (rm *Remover) Remove(ctx context.Context, name, installDir string) (*Result, error) {
	res := &Result{}

	paths, err := rm.store.Read(name)
	if err != nil {
		return res, err
	}

	root, err := filepath.Abs(installDir)
	if err != nil {
		return res, fmt.Errorf("resolving install dir %s: %w", installDir, err)
	}

	rm.logger.Printf("Removing %s from %s", name, root)

	for _, path := range paths {
		info, lerr := os.Lstat(path)
		if lerr == nil && info.IsDir() {
			// Manifests record files and symlinks only; a directory
			// here means the path has been reused, leave it alone.
			rm.logger.Printf("⚠️  Skipping directory: %s", path)
			res.Skipped++
			continue
		}
		if err := os.Remove(path); err != nil {
			return res, fmt.Errorf("%w %s: %w", core.ErrFileDelete, path, err)
		}
		if lerr == nil && info.Mode()&fs.ModeSymlink != 0 {
			res.Symlinks++
		} else {
			res.Files++
		}
		rm.logger.Printf("🗑  Deleted: %s", path)

		res.Dirs += rm.prune(filepath.Dir(path), root)
	}

	if err := rm.store.Remove(name); err != nil {
		return res, err
	}

	rm.logger.Printf("✓ Removed %s: %d files, %d symlinks, %d empty dirs pruned",
		name, res.Files, res.Symlinks, res.Dirs)
	return res, nil
}

// prune removes empty directories from dir upward. The climb stops at
// a category root, at the install root, at the first directory that is
// not empty, and on any error. It returns how many directories were
// removed.
func (rm *Remover) prune(dir, root string) int {
	removed := 0
	for {
		if !strings.HasPrefix(dir, root+string(filepath.Separator)) {
			break
		}
		if core.IsCategory(filepath.Base(dir)) {
			break
		}
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := os.Remove(dir); err != nil {
			break
		}
		rm.logger.Printf("🗑  Pruned empty directory: %s", dir)
		removed++
		dir = filepath.Dir(dir)
	}
	return removed
}
