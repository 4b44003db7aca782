package afs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thatguystone/cog/cfs"
)

const ownerWrite = 0200

// IsReadOnly checks if the file can't be written by its owner
func IsReadOnly(info os.FileInfo) bool {
	return info.Mode().Perm()&ownerWrite == 0
}

// ClearReadOnly makes the given path writable by its owner, if it isn't
// already. Symlinks are left alone.
func ClearReadOnly(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}

	if info.Mode()&os.ModeSymlink != 0 || !IsReadOnly(info) {
		return nil
	}

	return os.Chmod(path, info.Mode().Perm()|ownerWrite)
}

// ClearReadOnlyTree clears the read-only attribute of everything under root,
// root included. Directories are also made listable so that their contents
// can be reached.
func ClearReadOnlyTree(root string) error {
	return filepath.Walk(root,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return os.Chmod(path, info.Mode().Perm()|0700)
			}

			return ClearReadOnly(path)
		})
}

// DirExists checks if the given path is a directory
func DirExists(path string) bool {
	exists, _ := cfs.DirExists(path)
	return exists
}

// DropRoot removes the root prefix from given path
func DropRoot(root, path string) string {
	root = filepath.Clean(root)
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}

	if strings.HasPrefix(path, root) {
		return path[len(root):]
	}

	return path
}
