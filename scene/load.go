package scene

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a YAML scene description (see document for its shape)
// from r and assembles it into a Scene.
func Load(r io.Reader) (*Scene, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return Build(doc)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
