package strip

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/thatguystone/cog/check"
	"golang.org/x/text/encoding/unicode"
)

const sln = "Microsoft Visual Studio Solution File, Format Version 9.00\r\n" +
	"Project(\"{FAE04EC0}\") = \"App\", \"App.csproj\", \"{1}\"\r\n" +
	"\tSccProjectName = \"SAK\"\r\n" +
	"\tSccLocalPath = \"SAK\"\r\n" +
	"EndProject\r\n" +
	"Global\r\n" +
	"\tGlobalSection(SourceCodeControl) = preSolution\r\n" +
	"\t\tSccNumberOfProjects = 2\r\n" +
	"\t\tSccProjectName0 = Perforce\\u0020Project\r\n" +
	"\tEndGlobalSection\r\n" +
	"\tGlobalSection(SolutionConfiguration) = preSolution\r\n" +
	"\t\tDebug = Debug\r\n" +
	"\tEndGlobalSection\r\n" +
	"EndGlobal\r\n"

const slnStripped = "Microsoft Visual Studio Solution File, Format Version 9.00\r\n" +
	"Project(\"{FAE04EC0}\") = \"App\", \"App.csproj\", \"{1}\"\r\n" +
	"EndProject\r\n" +
	"Global\r\n" +
	"\tGlobalSection(SolutionConfiguration) = preSolution\r\n" +
	"\t\tDebug = Debug\r\n" +
	"\tEndGlobalSection\r\n" +
	"EndGlobal\r\n"

func tmpFile(c *check.C, content []byte, mode os.FileMode) (string, func()) {
	dir, err := ioutil.TempDir("", "scour-strip-")
	c.Must.Nil(err)

	path := filepath.Join(dir, "App.sln")
	err = ioutil.WriteFile(path, content, mode)
	c.Must.Nil(err)

	return path, func() { os.RemoveAll(dir) }
}

func TestBytes(t *testing.T) {
	c := check.New(t)

	tests := []struct {
		in  string
		out string
	}{
		{
			in:  sln,
			out: slnStripped,
		},
		{
			in:  "a\n  SccAuxPath = x\nb\n",
			out: "a\nb\n",
		},
		{
			in:  "Scc = 1\nSCC = 2\nxScc = 3\n",
			out: "SCC = 2\nxScc = 3\n",
		},
		{
			in:  "a\n\tSccLast = 1",
			out: "a\n",
		},
		{
			in:  "GlobalSection(Other)\nSccInside\nEndGlobalSection\n",
			out: "GlobalSection(Other)\nEndGlobalSection\n",
		},
		{
			in: "x\n GlobalSection(SourceCodeControl)\n a\n EndGlobalSection\n" +
				"y\n GlobalSection(SourceCodeControl)\n b\n EndGlobalSection\nz",
			out: "x\ny\nz",
		},
		{
			in:  "nothing to see here\r\n",
			out: "nothing to see here\r\n",
		},
	}

	for _, test := range tests {
		c.Equal(string(Bytes([]byte(test.in))), test.out)
	}
}

func TestStripIdempotent(t *testing.T) {
	c := check.New(t)

	path, cleanup := tmpFile(c, []byte(sln), 0640)
	defer cleanup()

	changed, err := Strip(path)
	c.Must.Nil(err)
	c.True(changed)

	b, err := ioutil.ReadFile(path)
	c.Must.Nil(err)
	c.Equal(string(b), slnStripped)

	changed, err = Strip(path)
	c.Must.Nil(err)
	c.False(changed)

	b, err = ioutil.ReadFile(path)
	c.Must.Nil(err)
	c.Equal(string(b), slnStripped)
}

func TestStripUnchangedNoWrite(t *testing.T) {
	c := check.New(t)

	path, cleanup := tmpFile(c, []byte(slnStripped), 0440)
	defer cleanup()

	changed, err := Strip(path)
	c.Must.Nil(err)
	c.False(changed)

	info, err := os.Stat(path)
	c.Must.Nil(err)
	c.Equal(info.Mode().Perm(), os.FileMode(0440))
}

func TestStripReadOnly(t *testing.T) {
	c := check.New(t)

	path, cleanup := tmpFile(c, []byte(sln), 0440)
	defer cleanup()

	changed, err := Strip(path)
	c.Must.Nil(err)
	c.True(changed)

	b, err := ioutil.ReadFile(path)
	c.Must.Nil(err)
	c.Equal(string(b), slnStripped)
}

func TestStripUTF8BOM(t *testing.T) {
	c := check.New(t)

	bom := "\xef\xbb\xbf"
	path, cleanup := tmpFile(c, []byte(bom+sln), 0640)
	defer cleanup()

	_, err := Strip(path)
	c.Must.Nil(err)

	b, err := ioutil.ReadFile(path)
	c.Must.Nil(err)
	c.Equal(string(b), bom+slnStripped)
}

func TestStripUTF16(t *testing.T) {
	c := check.New(t)

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

	in, err := enc.NewEncoder().Bytes([]byte(sln))
	c.Must.Nil(err)
	c.Equal(in[:2], []byte{0xff, 0xfe})

	path, cleanup := tmpFile(c, in, 0640)
	defer cleanup()

	changed, err := Strip(path)
	c.Must.Nil(err)
	c.True(changed)

	b, err := ioutil.ReadFile(path)
	c.Must.Nil(err)
	c.Equal(b[:2], []byte{0xff, 0xfe})

	out, err := enc.NewDecoder().Bytes(b)
	c.Must.Nil(err)
	c.Equal(string(out), slnStripped)
}

func TestStripMissing(t *testing.T) {
	c := check.New(t)

	changed, err := Strip(filepath.Join(os.TempDir(), "scour-does-not-exist.sln"))
	c.NotNil(err)
	c.False(changed)
}
