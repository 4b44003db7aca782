// Package walk finds everything in a tree that should be deleted, stripping
// source control bindings from files along the way.
package walk

import (
	"os"
	"path/filepath"

	"github.com/thatguystone/scour/internal/errs"
	"github.com/thatguystone/scour/internal/match"
	"github.com/thatguystone/scour/internal/strip"
)

// Kind is the type of thing an Item points to
type Kind int

const (
	// Unknown means the kind has to be looked up on the filesystem
	Unknown Kind = iota
	File
	Dir
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Dir:
		return "dir"
	default:
		return "unknown"
	}
}

// An Item is something slated for deletion
type Item struct {
	Path string // Absolute path
	Kind Kind
}

func (it Item) String() string {
	if it.Kind == Dir {
		return it.Path + string(filepath.Separator)
	}

	return it.Path
}

// A Worklist is every Item found during a walk, in the order it was found.
// No Item in it is inside of another Item.
type Worklist []Item

// Result is everything a walk found and did
type Result struct {
	Items    Worklist
	Stripped []string // Files that had bindings removed
}

type walker struct {
	pats *match.Patterns
	errs *errs.E
	res  Result
}

// Walk descends root, collecting every file and directory that matches a
// deletion pattern and stripping bindings from every file that matches the
// binding pattern. Directories marked for deletion are not descended into.
//
// Failures are recorded in es, and the walk keeps going.
func Walk(root string, pats *match.Patterns, es *errs.E) Result {
	w := walker{
		pats: pats,
		errs: es,
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		es.Add("resolve path", root, err)
		return w.res
	}

	w.dir(abs)

	return w.res
}

func (w *walker) dir(path string) {
	ents, err := os.ReadDir(path)
	if err != nil {
		w.errs.Add("list directory", path, err)
		// ReadDir returns whatever it managed to read; keep going with that
	}

	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}

		w.file(filepath.Join(path, ent.Name()), ent.Name())
	}

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		sub := filepath.Join(path, ent.Name())

		if w.pats.Dir(ent.Name()) {
			w.res.Items = append(w.res.Items, Item{Path: sub, Kind: Dir})
		} else {
			w.dir(sub)
		}
	}
}

func (w *walker) file(path, name string) {
	if w.pats.File(name) {
		w.res.Items = append(w.res.Items, Item{Path: path, Kind: File})
	}

	if w.pats.Binding(name) {
		changed, err := strip.Strip(path)
		if err != nil {
			w.errs.Add("remove source bindings", path, err)
		} else if changed {
			w.res.Stripped = append(w.res.Stripped, path)
		}
	}
}
