// Package strip removes source control bindings from solution and project
// files.
package strip

import (
	"bytes"
	"io/ioutil"
	"regexp"

	"github.com/pkg/errors"
	"github.com/thatguystone/scour/internal/afs"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var (
	rxControlBlock = regexp.MustCompile(
		`(?s)\s*GlobalSection\(SourceCodeControl\).+?EndGlobalSection`)
	rxSccLine = regexp.MustCompile(
		`(?m)^[ \t]*Scc[^\r\n\f]*(?:\r\n|[\n\r\f]|\z)`)

	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// Bytes removes every SourceCodeControl global section and then every line
// keyed with "Scc" from the given text.
func Bytes(b []byte) []byte {
	b = rxControlBlock.ReplaceAll(b, nil)
	return rxSccLine.ReplaceAll(b, nil)
}

// Strip removes source control bindings from the file at path, rewriting it
// only when something was removed. UTF-16 files (identified by their BOM)
// are written back as UTF-16; anything else is treated as bytes.
func Strip(path string) (changed bool, err error) {
	orig, err := ioutil.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(err, "failed to read file")
	}

	enc := detect(orig)

	text := orig
	if enc != nil {
		text, err = enc.NewDecoder().Bytes(orig)
		if err != nil {
			return false, errors.Wrap(err, "failed to decode file")
		}
	}

	stripped := Bytes(text)
	if bytes.Equal(stripped, text) {
		return false, nil
	}

	if enc != nil {
		stripped, err = enc.NewEncoder().Bytes(stripped)
		if err != nil {
			return false, errors.Wrap(err, "failed to encode file")
		}
	}

	err = afs.ClearReadOnly(path)
	if err != nil {
		return false, errors.Wrap(err, "failed to clear read-only")
	}

	err = ioutil.WriteFile(path, stripped, 0640)
	if err != nil {
		return false, errors.Wrap(err, "failed to write file")
	}

	return true, nil
}

func detect(b []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(b, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)

	case bytes.HasPrefix(b, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	}

	return nil
}
