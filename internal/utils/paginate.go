package utils

import (
	"math"
	"strconv"
)

// Pagination is one fixed-size window over an ordered collection.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
	Offset     int
}

// Paginate resolves a raw page parameter against the collection size.
// Anything that is not a positive integer falls back to the first page and
// anything past the end lands on the last page, so a requested page is
// never empty unless the collection itself is. An empty collection is
// page 1 of 1.
func Paginate(raw string, perPage int, total int64) Pagination {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		page = 1
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Offset:     (page - 1) * perPage,
	}
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }
func (p Pagination) PrevPage() int { return p.Page - 1 }
func (p Pagination) NextPage() int { return p.Page + 1 }
