package domain

// Catalog owns the artist and painting collections for one session.
// It is built once and never mutated, so it is safe for concurrent readers.
type Catalog struct {
	artists   []Artist
	paintings []Painting
}

// NewCatalog copies the given collections so later changes by the caller
// cannot leak into the catalog.
func NewCatalog(artists []Artist, paintings []Painting) *Catalog {
	return &Catalog{
		artists:   append([]Artist(nil), artists...),
		paintings: append([]Painting(nil), paintings...),
	}
}

// Artists returns the artists in insertion order. Callers must not modify the slice.
func (c *Catalog) Artists() []Artist {
	return c.artists
}

// Paintings returns the paintings in insertion order. Callers must not modify the slice.
func (c *Catalog) Paintings() []Painting {
	return c.paintings
}
