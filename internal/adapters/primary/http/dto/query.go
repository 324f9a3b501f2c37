package dto

import "art-catalog-service/internal/core/domain"

// LinesResponse carries the display lines produced by one query.
type LinesResponse struct {
	Query string   `json:"query"`
	Lines []string `json:"lines"`
	Count int      `json:"count"`
}

func ToLinesResponse(query string, lines []string) LinesResponse {
	if lines == nil {
		lines = []string{}
	}
	return LinesResponse{Query: query, Lines: lines, Count: len(lines)}
}

type PaintingResponse struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Method string `json:"method"`
	Year   int    `json:"year"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type OldestPaintingResponse struct {
	Painting PaintingResponse `json:"painting"`
	Line     string           `json:"line"`
}

func ToOldestPaintingResponse(p domain.Painting) OldestPaintingResponse {
	return OldestPaintingResponse{
		Painting: PaintingResponse{
			Artist: p.Artist,
			Title:  p.Title,
			Method: p.Method,
			Year:   p.Year,
			Width:  p.Width,
			Height: p.Height,
		},
		Line: p.String(),
	}
}
