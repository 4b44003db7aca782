package archive

import "io"

// An Option is passed to Zip() to change default options
type Option interface {
	applyTo(z *zipper)
}

type option func(z *zipper)

func (o option) applyTo(z *zipper) { o(z) }

// Progress sets where a "." is written for every file archived
func Progress(w io.Writer) Option {
	return option(func(z *zipper) {
		z.progress = w
	})
}
