package model

import "math"

const (
	DefaultPage    int64 = 1
	DefaultPerPage int64 = 20
)

// Page is a 1-based offset pagination request.
type Page struct {
	Number  int64
	PerPage int64
}

// Normalize replaces out-of-range values with the defaults. Number is
// clamped so that Skip stays within int64; past that point the page is
// empty anyway.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if maxNumber := math.MaxInt64 / p.PerPage; p.Number > maxNumber {
		p.Number = maxNumber
	}
	return p
}

func (p Page) Skip() int64 { return (p.Number - 1) * p.PerPage }

// PageCount is ceil(total/perPage), never less than one.
func PageCount(total, perPage int64) int64 {
	if perPage < 1 || total <= 0 {
		return 1
	}
	return (total-1)/perPage + 1
}
