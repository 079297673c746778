// Package vault provides file access to a notes vault.
package vault

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/jira-note/internal/domain"
)

// Ensure Vault implements domain.Vault.
var _ domain.Vault = (*Vault)(nil)

// Vault reads templates and rewrites notes under a root directory.
// Relative paths are resolved against the root.
type Vault struct {
	root    string
	lockDir string
}

// New creates a Vault rooted at root.
func New(root string) *Vault {
	return &Vault{root: root, lockDir: os.TempDir()}
}

// NewWithLockDir creates a Vault that keeps its lock files in lockDir.
func NewWithLockDir(root, lockDir string) *Vault {
	return &Vault{root: root, lockDir: lockDir}
}

// Open is a domain.VaultFactory.
func Open(root string) domain.Vault {
	return New(root)
}

// Root returns the vault directory.
func (v *Vault) Root() string {
	return v.root
}

// resolve returns the absolute location of path inside the vault.
func (v *Vault) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(v.root, path)
}

// ReadTemplate reads the template at path.
func (v *Vault) ReadTemplate(path string) (string, error) {
	if path == "" {
		return "", domain.ErrTemplateNotConfigured
	}
	content, err := readRegular(v.resolve(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("read template: %w", err)
	}
	return content, nil
}

// ReadNote reads the note at path.
func (v *Vault) ReadNote(path string) (string, error) {
	content, err := readRegular(v.resolve(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrNoteNotFound, path)
		}
		return "", fmt.Errorf("read note: %w", err)
	}
	return content, nil
}

// WriteNote replaces the content of the note at path.
// Writers of the same note are serialized with an exclusive lock and the
// content is swapped in with a rename, so readers never see a partial note.
func (v *Vault) WriteNote(path, content string) error {
	target := v.resolve(path)

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrNoteNotFound, path)
		}
		return fmt.Errorf("stat note: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", domain.ErrNoteNotFound, path)
	}

	lock, err := acquireLock(v.lockPath(target))
	if err != nil {
		return err
	}
	defer releaseLock(lock)

	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// lockPath returns the lock file guarding target. Lock files live outside
// the vault and are never removed, so every writer locks the same inode.
func (v *Vault) lockPath(target string) string {
	sum := sha256.Sum256([]byte(target))
	return filepath.Join(v.lockDir, "jira-note-"+hex.EncodeToString(sum[:8])+".lock")
}

func readRegular(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory: %w", path, os.ErrNotExist)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func acquireLock(lockPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), syscall.LOCK_EX); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
