// Package scour cleans build output, editor state, and source control bindings
// out of a project tree, optionally zipping up what's left.
package scour

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/thatguystone/scour/internal/afs"
	"github.com/thatguystone/scour/internal/archive"
	"github.com/thatguystone/scour/internal/errs"
	"github.com/thatguystone/scour/internal/match"
	"github.com/thatguystone/scour/internal/remove"
	"github.com/thatguystone/scour/internal/walk"
)

// ErrInvalidRoot is returned when the root to clean isn't a directory
var ErrInvalidRoot = errors.New("invalid root")

// OpZip is the operation recorded for a failed archive
const OpZip = "create zip file"

// A Failure is a single thing that went wrong during a run
type Failure = errs.Failure

// Result describes what a run did
type Result struct {
	Deleted  int      // Number of files and directories removed
	Stripped []string // Files that had source control bindings removed
	Archive  string   // Path to the archive, if one was requested
	Failures []Failure
}

// Ok is true when nothing went wrong
func (r Result) Ok() bool {
	return len(r.Failures) == 0
}

// Run cleans the tree at root. Files and directories matching pats are
// deleted after the whole tree has been walked, and bindings are stripped
// while walking. Failures along the way are collected into the Result and
// never stop the run.
//
// The only error returned is for a root that doesn't exist or isn't a
// directory, in which case nothing was touched.
func Run(root string, pats *match.Patterns, opts ...Option) (res Result, err error) {
	r := runner{
		progress: ioutil.Discard,
	}
	for _, opt := range opts {
		opt.applyTo(&r)
	}

	if !afs.DirExists(root) {
		return res, errors.Wrapf(ErrInvalidRoot, "%s is not a directory", root)
	}

	es := errs.New(r.log)

	wres := walk.Walk(root, pats, es)
	res.Stripped = wres.Stripped
	res.Deleted = remove.All(wres.Items, es)

	if r.zip {
		path, err := archive.Zip(root, archive.Progress(r.progress))
		res.Archive = path
		if err != nil {
			es.Add(OpZip, path, errors.Cause(err))
		}
	}

	res.Failures = es.Failures()
	return res, nil
}
