package identity

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrAliasFile indicates an alias file that cannot be read or decoded.
var ErrAliasFile = errors.New("identity: invalid alias file")

//go:embed defaults.yaml
var defaultAliasesYAML []byte

// Aliases maps free-text country names to canonical identifiers.
type Aliases map[string]string

// aliasFile is the on-disk YAML layout.
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// DefaultAliases returns the built-in alias table covering the common
// mismatches between the borders file and the country name file.
func DefaultAliases() Aliases {
	a, err := ParseAliases(bytes.NewReader(defaultAliasesYAML))
	if err != nil {
		// The embedded table is part of the build; a decode failure is a bug.
		panic(err)
	}

	return a
}

// ParseAliases decodes a YAML alias table:
//
//	aliases:
//	  United States: USA
//	  Burma: MYA
func ParseAliases(r io.Reader) (Aliases, error) {
	var f aliasFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrAliasFile, err)
	}
	out := make(Aliases, len(f.Aliases))
	for name, id := range f.Aliases {
		if normalize(name) == "" || id == "" {
			return nil, fmt.Errorf("%w: empty entry %q: %q", ErrAliasFile, name, id)
		}
		out[name] = id
	}

	return out, nil
}

// LoadAliases reads a YAML alias table from path.
func LoadAliases(path string) (Aliases, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAliasFile, err)
	}
	defer f.Close()

	return ParseAliases(f)
}

// Merge returns a new table with the entries of a overridden by those of b.
func (a Aliases) Merge(b Aliases) Aliases {
	out := make(Aliases, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}

	return out
}
