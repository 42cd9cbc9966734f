package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"luxe-studio/data"
)

// File is the on-disk layout of a catalog source.
type File struct {
	Categories []Category `yaml:"categories"`
	Projects   []Project  `yaml:"projects"`
}

func Decode(r io.Reader) (*Catalog, error) {
	f, err := DecodeFile(r)
	if err != nil {
		return nil, err
	}
	return New(f.Categories, f.Projects)
}

// DecodeFile parses a catalog source without building a Catalog, for
// callers that copy the raw records elsewhere (database seeding).
func DecodeFile(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &f, nil
}

// Open returns the catalog source at path, or the built-in catalog when path
// is empty.
func Open(path string) (io.ReadCloser, error) {
	if path == "" {
		f, err := data.FS.Open(data.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("open built-in catalog: %w", err)
		}
		return f, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return f, nil
}

func Load(path string) (*Catalog, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Decode(r)
}
