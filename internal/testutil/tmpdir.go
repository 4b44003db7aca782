package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thatguystone/cog/check"
)

// A TmpDir is a throwaway project tree for tests
type TmpDir struct {
	c    *check.C
	root string
}

// NewTmpDir creates a new temp directory holding a single project directory
// named proj. Entries in files ending with a "/" are created as empty
// directories; everything else is a file with the given content.
func NewTmpDir(c *check.C, proj string, files map[string]string) *TmpDir {
	root, err := ioutil.TempDir("", "scour-test-")
	c.Must.Nil(err)

	tmp := TmpDir{
		c:    c,
		root: root,
	}

	tmp.Mkdir(proj)

	for path, content := range files {
		if strings.HasSuffix(path, "/") {
			tmp.Mkdir(filepath.Join(proj, path))
		} else {
			tmp.WriteFile(filepath.Join(proj, path), content)
		}
	}

	return &tmp
}

// Remove removes the temp dir and everything in it
func (tmp *TmpDir) Remove() {
	// Tests leave read-only things behind
	filepath.Walk(tmp.root,
		func(path string, info os.FileInfo, err error) error {
			if err == nil {
				os.Chmod(path, info.Mode().Perm()|0700)
			}
			return nil
		})

	err := os.RemoveAll(tmp.root)
	tmp.c.Nil(err)
}

// Root gets the temp dir itself, the parent of any project in it
func (tmp *TmpDir) Root() string {
	return tmp.root
}

// Path gets the path to a file in the temp dir
func (tmp *TmpDir) Path(p string) string {
	return filepath.Join(tmp.root, filepath.Clean(p))
}

// Exists checks if anything exists at the given path
func (tmp *TmpDir) Exists(p string) bool {
	_, err := os.Lstat(tmp.Path(p))
	return err == nil
}

// Tree lists everything in the temp dir, relative to it. Directories end
// with a "/".
func (tmp *TmpDir) Tree() []string {
	var paths []string

	err := filepath.Walk(tmp.root,
		func(path string, info os.FileInfo, err error) error {
			tmp.c.Must.Nil(err)

			if path == tmp.root {
				return nil
			}

			rel, err := filepath.Rel(tmp.root, path)
			tmp.c.Must.Nil(err)

			rel = filepath.ToSlash(rel)
			if info.IsDir() {
				rel += "/"
			}

			paths = append(paths, rel)
			return nil
		})
	tmp.c.Must.Nil(err)

	sort.Strings(paths)
	return paths
}

// DumpTree dumps the FS tree of the temp dir to the test's logger
func (tmp *TmpDir) DumpTree() {
	tmp.c.Helper()
	tmp.c.Logf("Tree rooted at: %q", tmp.root)

	for _, p := range tmp.Tree() {
		tmp.c.Logf("\t%s", p)
	}
}

// ReadFile reads a file from the temp dir
func (tmp *TmpDir) ReadFile(path string) string {
	b, err := ioutil.ReadFile(tmp.Path(path))
	tmp.c.Must.Nil(err)
	return string(b)
}

// WriteFile writes a file to the temp dir, creating parents as necessary
func (tmp *TmpDir) WriteFile(path string, b string) {
	path = tmp.Path(path)

	err := os.MkdirAll(filepath.Dir(path), 0750)
	tmp.c.Must.Nil(err)

	err = ioutil.WriteFile(path, []byte(b), 0640)
	tmp.c.Must.Nil(err)
}

// Mkdir creates a directory in the temp dir, with parents
func (tmp *TmpDir) Mkdir(path string) {
	err := os.MkdirAll(tmp.Path(path), 0750)
	tmp.c.Must.Nil(err)
}

// Chmod changes the mode of something in the temp dir
func (tmp *TmpDir) Chmod(path string, mode os.FileMode) {
	err := os.Chmod(tmp.Path(path), mode)
	tmp.c.Must.Nil(err)
}
