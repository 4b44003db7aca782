package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/thatguystone/scour/internal/match"
	"gopkg.in/yaml.v2"
)

// C stands for "config".
type C struct {
	// Names of directories that are deleted outright, without looking inside
	DirDeletion string `yaml:"dir_deletion_pattern"`

	// Names of files that are deleted
	FileDeletion string `yaml:"file_deletion_pattern"`

	// Names of files that have source control bindings removed
	FileBinding string `yaml:"file_binding_pattern"`
}

// New gets the default config
func New() *C {
	return &C{
		DirDeletion: `^(bin|obj|setup|debug|release|_ReSharper\..*|TestResults)$`,
		FileDeletion: `(\.(suo|user|vssscc|vspscc|scc|ncb|aps|cache|resharper)` +
			`|^Thumbs\.db)$`,
		FileBinding: `\.(sln|csproj|vbproj|vcproj|vcxproj|fsproj|vdproj|etp)$`,
	}
}

// Load extra configs on top of this config.
func (c *C) Load(files ...string) error {
	for _, file := range files {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return errors.Wrap(err, "failed to read config file")
		}

		err = yaml.UnmarshalStrict(b, c)
		if err != nil {
			return errors.Wrapf(err, "failed to unmarshal config file %s", file)
		}
	}

	return nil
}

// Compile compiles the configured patterns
func (c C) Compile() (*match.Patterns, error) {
	return match.New(c.DirDeletion, c.FileDeletion, c.FileBinding)
}
