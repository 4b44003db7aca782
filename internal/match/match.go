// Package match classifies directory and file names against the configured
// patterns.
package match

import (
	"regexp"

	"github.com/pkg/errors"
)

// ErrEmptyPattern is returned for a pattern that is empty. An empty regexp
// matches every name, which is never what's wanted.
var ErrEmptyPattern = errors.New("empty pattern")

// Patterns holds the three compiled, case-insensitive name matchers. It is
// immutable once created.
type Patterns struct {
	dir     *regexp.Regexp
	file    *regexp.Regexp
	binding *regexp.Regexp
}

// New compiles the directory-deletion, file-deletion, and file-binding
// patterns.
func New(dir, file, binding string) (*Patterns, error) {
	var err error
	p := &Patterns{}

	p.dir, err = compile("directory deletion", dir)
	if err != nil {
		return nil, err
	}

	p.file, err = compile("file deletion", file)
	if err != nil {
		return nil, err
	}

	p.binding, err = compile("file binding", binding)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func compile(what, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, errors.Wrapf(ErrEmptyPattern, "%s pattern", what)
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s pattern", what)
	}

	return re, nil
}

// Dir checks if a directory with the given name should be deleted
func (p *Patterns) Dir(name string) bool {
	return p.dir.MatchString(name)
}

// File checks if a file with the given name should be deleted
func (p *Patterns) File(name string) bool {
	return p.file.MatchString(name)
}

// Binding checks if a file with the given name might carry source control
// bindings
func (p *Patterns) Binding(name string) bool {
	return p.binding.MatchString(name)
}
