package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultSize = 10
	MaxSize     = 100

	// maxOffset bounds page*size so an adversarial page value cannot
	// overflow the offset arithmetic.
	maxOffset = math.MaxInt32
)

// Page represents a zero-based page request resolved against the
// clients' query parameters. Offset is what gets handed to the store
// as a skip value.
type Page struct {
	Page   int
	Size   int
	Offset int
}

// FromQuery parses page/size query parameters. Page is zero-based.
// Bad or missing values fall back to defaults, and size is clamped
// server-side so a single request cannot pull an unbounded result set.
func FromQuery(pageStr, sizeStr string) Page {
	return FromQueryClamped(pageStr, sizeStr, MaxSize)
}

// FromQueryClamped is FromQuery with a caller-supplied size ceiling.
func FromQueryClamped(pageStr, sizeStr string, maxSize int) Page {
	if maxSize < 1 {
		maxSize = MaxSize
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		size = DefaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	if page > maxOffset/size {
		page = maxOffset / size
	}

	return Page{
		Page:   page,
		Size:   size,
		Offset: page * size,
	}
}

// Skip returns the offset as an int64 for mongo find options.
func (p Page) Skip() int64 {
	return int64(p.Offset)
}

// Limit returns the page size as an int64 for mongo find options.
func (p Page) Limit() int64 {
	return int64(p.Size)
}
