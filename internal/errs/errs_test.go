package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/thatguystone/cog/check"
	"github.com/thatguystone/cog/check/chlog"
)

func TestBasic(t *testing.T) {
	c, log := chlog.New(t)
	errs := New(log.Get(""))

	c.True(errs.Ok())

	errs.Add("delete file or path", "/some/file", errors.New("this failed"))
	c.False(errs.Ok())
	c.Len(errs.Failures(), 1)
}

func TestNoLogger(t *testing.T) {
	c := check.New(t)
	errs := New(nil)

	errs.Add("list directory", "/a", errors.New("one"))
	errs.Add("delete file or path", "/b", errors.New("two"))

	fails := errs.Failures()
	c.Must.Equal(len(fails), 2)
	c.Equal(fails[0].Path, "/a")
	c.Equal(fails[1].Op, "delete file or path")
	c.Equal(fails[1].Error(), "failed to delete file or path: /b: two")

	s := errs.String()
	c.Contains(s, "failed to list directory\n  /a\n")
	c.Contains(s, Indent+"two")
}

func TestFailuresCopy(t *testing.T) {
	c := check.New(t)
	errs := New(nil)

	errs.Add("op", "/a", errors.New("one"))

	fails := errs.Failures()
	fails[0].Path = "/changed"

	c.Equal(errs.Failures()[0].Path, "/a")
}
