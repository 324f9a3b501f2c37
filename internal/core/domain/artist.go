package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Artist is a painter in the catalog. LastName is the key paintings refer to.
type Artist struct {
	Country     string `json:"country" yaml:"country"`
	FirstName   string `json:"first_name" yaml:"first_name"`
	LastName    string `json:"last_name" yaml:"last_name"`
	YearOfBirth int    `json:"year_of_birth" yaml:"year_of_birth"`
	YearOfDeath int    `json:"year_of_death" yaml:"year_of_death"`
}

// FullName returns "<first> <last>".
func (a Artist) FullName() string {
	return a.FirstName + " " + a.LastName
}

// String formats the artist as "<last>, <first> (<country>, <birth>-<death>)".
func (a Artist) String() string {
	return fmt.Sprintf("%s, %s (%s, %d-%d)", a.LastName, a.FirstName, a.Country, a.YearOfBirth, a.YearOfDeath)
}

// ParseArtist is the inverse of Artist.String.
func ParseArtist(line string) (Artist, error) {
	name, rest, ok := strings.Cut(line, " (")
	if !ok || !strings.HasSuffix(rest, ")") {
		return Artist{}, fmt.Errorf("%w: artist %q", ErrMalformedRecord, line)
	}
	last, first, ok := strings.Cut(name, ", ")
	if !ok {
		return Artist{}, fmt.Errorf("%w: artist name %q", ErrMalformedRecord, name)
	}

	rest = strings.TrimSuffix(rest, ")")
	sep := strings.LastIndex(rest, ", ")
	if sep < 0 {
		return Artist{}, fmt.Errorf("%w: artist details %q", ErrMalformedRecord, rest)
	}
	country, years := rest[:sep], rest[sep+2:]

	// The range separator is the first '-' after the leading character, so a
	// negative year of birth keeps its sign.
	sep = -1
	if len(years) > 1 {
		if i := strings.IndexByte(years[1:], '-'); i >= 0 {
			sep = i + 1
		}
	}
	if sep < 0 {
		return Artist{}, fmt.Errorf("%w: artist years %q", ErrMalformedRecord, years)
	}
	birthStr, deathStr := years[:sep], years[sep+1:]
	birth, err := strconv.Atoi(birthStr)
	if err != nil {
		return Artist{}, fmt.Errorf("%w: year of birth %q", ErrMalformedRecord, birthStr)
	}
	death, err := strconv.Atoi(deathStr)
	if err != nil {
		return Artist{}, fmt.Errorf("%w: year of death %q", ErrMalformedRecord, deathStr)
	}

	return Artist{
		Country:     country,
		FirstName:   first,
		LastName:    last,
		YearOfBirth: birth,
		YearOfDeath: death,
	}, nil
}
