package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const fieldSeparator = " | "

// Painting is a single work. Artist holds the painter's last name.
type Painting struct {
	Artist string `json:"artist" yaml:"artist"`
	Title  string `json:"title" yaml:"title"`
	Method string `json:"method" yaml:"method"`
	Year   int    `json:"year" yaml:"year"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// String formats the painting as "<title> | <artist> | <method> | <year> | <w> x <h>".
func (p Painting) String() string {
	return strings.Join([]string{
		p.Title,
		p.Artist,
		p.Method,
		strconv.Itoa(p.Year),
		fmt.Sprintf("%d x %d", p.Width, p.Height),
	}, fieldSeparator)
}

// ParsePainting is the inverse of Painting.String.
func ParsePainting(line string) (Painting, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 5 {
		return Painting{}, fmt.Errorf("%w: painting %q has %d fields", ErrMalformedRecord, line, len(fields))
	}

	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return Painting{}, fmt.Errorf("%w: painting year %q", ErrMalformedRecord, fields[3])
	}

	widthStr, heightStr, ok := strings.Cut(fields[4], " x ")
	if !ok {
		return Painting{}, fmt.Errorf("%w: painting size %q", ErrMalformedRecord, fields[4])
	}
	width, err := strconv.Atoi(widthStr)
	if err != nil {
		return Painting{}, fmt.Errorf("%w: painting width %q", ErrMalformedRecord, widthStr)
	}
	height, err := strconv.Atoi(heightStr)
	if err != nil {
		return Painting{}, fmt.Errorf("%w: painting height %q", ErrMalformedRecord, heightStr)
	}

	return Painting{
		Title:  fields[0],
		Artist: fields[1],
		Method: fields[2],
		Year:   year,
		Width:  width,
		Height: height,
	}, nil
}
