package scour

import (
	"io"

	"github.com/thatguystone/cog/clog"
)

type runner struct {
	zip      bool
	progress io.Writer
	log      *clog.Logger
}

// An Option is passed to Run() to change default options
type Option interface {
	applyTo(r *runner)
}

type option func(r *runner)

func (o option) applyTo(r *runner) { o(r) }

// Zip sets if the tree should be archived after it's cleaned
func Zip(zip bool) Option {
	return option(func(r *runner) {
		r.zip = zip
	})
}

// Progress sets where archive progress is written
func Progress(w io.Writer) Option {
	return option(func(r *runner) {
		r.progress = w
	})
}

// Logger sets where failures are logged as they happen
func Logger(log *clog.Logger) Option {
	return option(func(r *runner) {
		r.log = log
	})
}
