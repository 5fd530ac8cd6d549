package population

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyCatalog is returned for catalogs without any star.
var ErrEmptyCatalog = errors.New("population: catalog has no stars")

// catalogFile is the TOML layout: one [[star]] table per star.
type catalogFile struct {
	Stars []Spec `toml:"star"`
}

// ReadCatalog decodes a TOML star catalog. Stars without a name are
// named after their position.
func ReadCatalog(r io.Reader) ([]Spec, error) {
	var f catalogFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if len(f.Stars) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i := range f.Stars {
		if f.Stars[i].Name == "" {
			f.Stars[i].Name = fmt.Sprintf("star-%04d", i+1)
		}
	}
	return f.Stars, nil
}

// LoadCatalog reads the catalog at path.
func LoadCatalog(path string) ([]Spec, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer fh.Close()

	specs, err := ReadCatalog(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// WriteCatalog encodes specs as a TOML catalog.
func WriteCatalog(w io.Writer, specs []Spec) error {
	enc := toml.NewEncoder(w)
	return enc.Encode(catalogFile{Stars: specs})
}
