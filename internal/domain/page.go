package domain

import (
	"fmt"
	"strings"
)

// Order is a single sort instruction over an API field name.
type Order struct {
	Field string
	Desc  bool
}

// String renders the order in the "field,asc|desc" query form.
func (o Order) String() string {
	if o.Desc {
		return o.Field + ",desc"
	}
	return o.Field + ",asc"
}

// ParseOrder parses "field", "field,asc" or "field,desc".
func ParseOrder(raw string) (Order, error) {
	parts := strings.Split(raw, ",")
	field := strings.TrimSpace(parts[0])
	if field == "" {
		return Order{}, NewValidationError("sort", "field is required")
	}

	o := Order{Field: field}
	switch len(parts) {
	case 1:
	case 2:
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "", "asc":
		case "desc":
			o.Desc = true
		default:
			return Order{}, NewValidationError("sort", fmt.Sprintf("invalid direction %q", parts[1]))
		}
	default:
		return Order{}, NewValidationError("sort", fmt.Sprintf("invalid sort %q", raw))
	}
	return o, nil
}

// Pageable requests a bounded, sorted slice of a collection. Page is zero-based.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Offset returns the number of rows to skip.
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a collection plus the total number of rows.
type Page[T any] struct {
	Content []T
	Total   int64
	Page    int
	Size    int
}

// TotalPages returns the number of pages needed for Total rows.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Page+1 < p.TotalPages()
}

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool {
	return p.Page > 0
}

// Normalize applies list bounds: a zero size becomes defaultSize and a size
// above maxSize is clamped. A negative page or size is a validation error.
func (p Pageable) Normalize(defaultSize, maxSize int) (Pageable, error) {
	var verr ValidationError
	verr.Check(p.Page >= 0, "page", "must be >= 0")
	verr.Check(p.Size >= 0, "size", "must be >= 0")
	if err := verr.Err(); err != nil {
		return Pageable{}, err
	}

	if p.Size == 0 {
		p.Size = defaultSize
	}
	if maxSize > 0 && p.Size > maxSize {
		p.Size = maxSize
	}
	return p, nil
}
