package yamlfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"art-catalog-service/internal/core/domain"
	ports "art-catalog-service/internal/core/ports/output"
)

// Document is the on-disk shape of a catalog dataset.
type Document struct {
	Artists   []domain.Artist   `yaml:"artists"`
	Paintings []domain.Painting `yaml:"paintings"`
}

// Repository serves artists and paintings decoded from a YAML document.
// The file is read once, when the repository is opened.
type Repository struct {
	doc Document
}

var (
	_ ports.ArtistRepository   = (*Repository)(nil)
	_ ports.PaintingRepository = (*Repository)(nil)
)

// Open reads and decodes the dataset at path.
func Open(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a dataset document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Repository, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Repository{}, nil
		}
		return nil, fmt.Errorf("%w: decode catalog yaml: %v", domain.ErrMalformedRecord, err)
	}
	return &Repository{doc: doc}, nil
}

// Encode writes artists and paintings as a dataset document.
func Encode(w io.Writer, artists []domain.Artist, paintings []domain.Painting) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Artists: artists, Paintings: paintings}); err != nil {
		return fmt.Errorf("encode catalog yaml: %w", err)
	}
	return enc.Close()
}

func (r *Repository) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Artist(nil), r.doc.Artists...), nil
}

func (r *Repository) ListPaintings(ctx context.Context) ([]domain.Painting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Painting(nil), r.doc.Paintings...), nil
}
