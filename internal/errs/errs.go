package errs

import (
	"bytes"
	"fmt"

	"github.com/thatguystone/cog/clog"
	"github.com/thatguystone/cog/stringc"
)

// Indent is used when dumping an underlying error below its path
const Indent = "    "

// A Failure is a single recoverable error tied to the path it happened on
type Failure struct {
	Op   string // What was being done, eg. "delete file or path"
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("failed to %s: %s: %v", f.Op, f.Path, f.Err)
}

// E collects Failures. Nothing recorded here stops the operation that
// recorded it.
type E struct {
	log   *clog.Logger
	fails []Failure
}

// New creates a new E that reports each Failure to log as it is added. log
// may be nil.
func New(log *clog.Logger) *E {
	return &E{
		log: log,
	}
}

// Add records a failure
func (e *E) Add(op, path string, err error) {
	f := Failure{
		Op:   op,
		Path: path,
		Err:  err,
	}

	e.fails = append(e.fails, f)

	if e.log != nil {
		e.log.Errorf("failed to %s\n  %s\n%s",
			op, path, stringc.Indent(err.Error(), Indent))
	}
}

// Ok is true when nothing has failed
func (e *E) Ok() bool {
	return len(e.fails) == 0
}

// Failures gets everything recorded so far, in order
func (e *E) Failures() []Failure {
	return append([]Failure(nil), e.fails...)
}

func (e *E) String() string {
	b := bytes.Buffer{}

	for _, f := range e.fails {
		fmt.Fprintf(&b, "failed to %s\n  %s\n", f.Op, f.Path)
		b.WriteString(stringc.Indent(f.Err.Error(), Indent))
		b.WriteString("\n")
	}

	return b.String()
}
