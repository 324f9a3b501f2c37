package memory

import "art-catalog-service/internal/core/domain"

// SeedArtists is the built-in artist dataset.
func SeedArtists() []domain.Artist {
	return []domain.Artist{
		{Country: "France", FirstName: "Camille", LastName: "Pissarro", YearOfBirth: 1830, YearOfDeath: 1903},
		{Country: "France", FirstName: "Claude", LastName: "Monet", YearOfBirth: 1840, YearOfDeath: 1926},
		{Country: "England", FirstName: "John", LastName: "Constable", YearOfBirth: 1776, YearOfDeath: 1837},
		{Country: "Netherlands", FirstName: "Jan", LastName: "Vermeer", YearOfBirth: 1632, YearOfDeath: 1675},
		{Country: "Italy", FirstName: "Sanzio", LastName: "Raphael", YearOfBirth: 1483, YearOfDeath: 1520},
		{Country: "Spain", FirstName: "Pablo", LastName: "Picasso", YearOfBirth: 1881, YearOfDeath: 1973},
		{Country: "Norway", FirstName: "Edvard", LastName: "Munch", YearOfBirth: 1863, YearOfDeath: 1944},
		{Country: "Italy", FirstName: "Leonardo", LastName: "da Vinci", YearOfBirth: 1452, YearOfDeath: 1519},
		{Country: "Italy", FirstName: "Sandro", LastName: "Botticelli", YearOfBirth: 1445, YearOfDeath: 1510},
		{Country: "France", FirstName: "Henri", LastName: "Matisse", YearOfBirth: 1869, YearOfDeath: 1954},
		{Country: "Netherlands", FirstName: "Piet", LastName: "Mondrian", YearOfBirth: 1872, YearOfDeath: 1944},
		{Country: "United States", FirstName: "Jackson", LastName: "Pollock", YearOfBirth: 1912, YearOfDeath: 1956},
		{Country: "Netherlands", FirstName: "Vincent", LastName: "van Gogh", YearOfBirth: 1853, YearOfDeath: 1890},
	}
}

// SeedPaintings is the built-in painting dataset. Years are kept as recorded,
// including the 1825 entries for Constable and Raphael.
func SeedPaintings() []domain.Painting {
	return []domain.Painting{
		{Artist: "van Gogh", Title: "The Starry Night", Method: "Oil on canvas", Year: 1889, Width: 72, Height: 92},
		{Artist: "van Gogh", Title: "Village Street in Auvers", Method: "Oil on canvas", Year: 1890, Width: 73, Height: 92},
		{Artist: "Pissarro", Title: "Gelee Blanche", Method: "Oil on canvas", Year: 1873, Width: 65, Height: 93},
		{Artist: "Pissarro", Title: "Village Path", Method: "Oil on canvas", Year: 1875, Width: 72, Height: 92},
		{Artist: "Monet", Title: "Fishing Boats Leaving the Harbor, Le Havre", Method: "Oil on canvas", Year: 1874, Width: 60, Height: 101},
		{Artist: "Monet", Title: "Water Lilies", Method: "Oil on canvas", Year: 1906, Width: 88, Height: 93},
		{Artist: "Constable", Title: "The Leaping Horse", Method: "Oil on canvas", Year: 1825, Width: 142, Height: 187},
		{Artist: "Vermeer", Title: "Girl with a Pearl Earring", Method: "Oil on canvas", Year: 1665, Width: 45, Height: 40},
		{Artist: "Raphael", Title: "Madonna dell Granduca", Method: "Oil on wood", Year: 1505, Width: 84, Height: 55},
		{Artist: "Raphael", Title: "St. George Fighting the Dragon", Method: "Oil on wood", Year: 1825, Width: 28, Height: 21},
		{Artist: "Munch", Title: "The Scream", Method: "Tempera on paper", Year: 1893, Width: 91, Height: 74},
		{Artist: "da Vinci", Title: "The Last Supper", Method: "Tempera on plaster", Year: 1498, Width: 460, Height: 880},
		{Artist: "Botticelli", Title: "The Birth of Venus", Method: "Tempera on canvas", Year: 1485, Width: 173, Height: 280},
		{Artist: "Matisse", Title: "La Musique", Method: "Oil on canvas", Year: 1939, Width: 115, Height: 115},
		{Artist: "Mondrian", Title: "Composition with Red, Yellow and Blue", Method: "Oil on canvas", Year: 1821, Width: 40, Height: 35},
		{Artist: "Pollock", Title: "The Key", Method: "Oil on canvas", Year: 1946, Width: 84, Height: 213},
		{Artist: "Picasso", Title: "The Three Musicians", Method: "Oil on canvas", Year: 1921, Width: 200, Height: 222},
	}
}
