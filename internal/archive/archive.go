// Package archive zips up a project tree into a single file next to it.
package archive

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
	"github.com/thatguystone/scour/internal/afs"
	"github.com/thatguystone/scour/internal/remove"
	"github.com/thatguystone/scour/internal/walk"
)

// Ext is the extension of created archives
const Ext = ".zip"

// Directories with these names are never archived
var skipDirs = []string{
	"packages",
	".vs",
}

// An Entry is a single thing to put into an archive
type Entry struct {
	Src  string // Absolute path on disk
	Name string // Slash-separated path in the archive
	Dir  bool   // Placeholder for an empty directory; Name ends with "/"
}

// Path gets the path of the archive for the given root: a file named after
// root, in root's parent.
func Path(root string) (string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	return root + Ext, nil
}

// List lists everything that goes into root's archive, named relative to
// root's parent. Empty directories get a placeholder entry.
func List(root string) ([]Entry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	parent := filepath.Dir(root)

	var ents []Entry
	err = list(parent, root, &ents)
	return ents, err
}

func list(parent, dir string, ents *[]Entry) error {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return err
	}

	var dirs []string
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())

		if info.IsDir() {
			dirs = append(dirs, path)
			continue
		}

		// Links to files are archived as the file; links to directories and
		// dangling links are left out
		if info.Mode()&os.ModeSymlink != 0 {
			st, err := os.Stat(path)
			if err != nil || st.IsDir() {
				continue
			}
		}

		*ents = append(*ents, Entry{
			Src:  path,
			Name: name(parent, path),
		})
	}

	if len(infos) == 0 {
		*ents = append(*ents, Entry{
			Src:  dir,
			Name: name(parent, dir) + "/",
			Dir:  true,
		})
	}

	for _, path := range dirs {
		if skip(filepath.Base(path)) {
			continue
		}

		err := list(parent, path, ents)
		if err != nil {
			return err
		}
	}

	return nil
}

func name(parent, path string) string {
	return filepath.ToSlash(afs.DropRoot(parent, path))
}

func skip(name string) bool {
	for _, s := range skipDirs {
		if name == s {
			return true
		}
	}

	return false
}

// Zip archives root into the file given by Path, replacing any archive that
// is already there. On failure, whatever was written is left behind.
func Zip(root string, opts ...Option) (path string, err error) {
	z := zipper{
		progress: ioutil.Discard,
	}

	for _, opt := range opts {
		opt.applyTo(&z)
	}

	path, err = Path(root)
	if err != nil {
		return "", err
	}

	err = z.zip(root, path)
	return path, errors.Wrapf(err, "failed to create %s", path)
}

type zipper struct {
	progress io.Writer
}

func (z zipper) zip(root, path string) (err error) {
	if _, serr := os.Lstat(path); serr == nil {
		err = remove.Path(path, walk.File)
		if err != nil {
			return err
		}
	}

	ents, err := List(root)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate,
		func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.BestCompression)
		})

	for _, ent := range ents {
		err = z.add(zw, ent)
		if err != nil {
			zw.Close()
			return err
		}
	}

	return zw.Close()
}

func (z zipper) add(zw *zip.Writer, ent Entry) error {
	info, err := os.Stat(ent.Src)
	if err != nil {
		return err
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}

	hdr.Name = ent.Name
	if ent.Dir {
		hdr.Method = zip.Store
	} else {
		hdr.Method = zip.Deflate
	}

	w, err := zw.CreateHeader(hdr)
	if err != nil || ent.Dir {
		return err
	}

	src, err := os.Open(ent.Src)
	if err != nil {
		return err
	}

	defer src.Close()

	_, err = io.Copy(w, src)
	if err != nil {
		return err
	}

	_, err = io.WriteString(z.progress, ".")
	return err
}
