// Package remove deletes everything a walk found.
package remove

import (
	"os"

	"github.com/pkg/errors"
	"github.com/thatguystone/scour/internal/afs"
	"github.com/thatguystone/scour/internal/errs"
	"github.com/thatguystone/scour/internal/walk"
)

// Op is the operation recorded for deletion failures
const Op = "delete file or path"

// All deletes every item in the worklist, in order, and returns how many were
// deleted. A failure to delete one item is recorded in es and does not stop
// the others.
func All(items walk.Worklist, es *errs.E) int {
	n := 0

	for _, it := range items {
		err := Path(it.Path, it.Kind)
		if err != nil {
			es.Add(Op, it.String(), err)
		} else {
			n++
		}
	}

	return n
}

// Path deletes a single file or directory, clearing read-only attributes as
// needed. With kind walk.Unknown, the kind is looked up first.
func Path(path string, kind walk.Kind) error {
	if kind == walk.Unknown {
		info, err := os.Lstat(path)
		if err != nil {
			return err
		}

		kind = walk.File
		if info.IsDir() {
			kind = walk.Dir
		}
	}

	if kind == walk.Dir {
		return dir(path)
	}

	err := afs.ClearReadOnly(path)
	if err != nil {
		return err
	}

	return os.Remove(path)
}

func dir(path string) error {
	// RemoveAll is happy to remove things that don't exist
	_, err := os.Lstat(path)
	if err != nil {
		return err
	}

	err = os.RemoveAll(path)
	if err == nil {
		return nil
	}

	rerr := afs.ClearReadOnlyTree(path)
	if rerr != nil {
		return errors.Wrapf(err, "and failed to clear read-only (%v)", rerr)
	}

	return os.RemoveAll(path)
}
