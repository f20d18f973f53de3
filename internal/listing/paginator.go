// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import (
	"errors"
	"fmt"
	"strconv"
)

// LastPage may be passed as the page parameter to select the final page.
const LastPage = "last"

// ErrPageNotFound is returned for a page number that is malformed, below 1
// or past the last page.
var ErrPageNotFound = errors.New("page not found")

// Page describes one window of a listing.
type Page struct {
	Number int // 1-based
	Size   int
	Total  int // items across all pages
}

// Paginate resolves the raw page parameter against a total item count.
// An empty listing still has a page 1.
func Paginate(total, size int, raw string) (Page, error) {
	p := Page{Number: 1, Size: size, Total: total}

	switch raw {
	case "":
	case LastPage:
		p.Number = max(p.NumPages(), 1)
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, fmt.Errorf("%w: %q is not a number", ErrPageNotFound, raw)
		}
		p.Number = n
	}

	if p.Number < 1 {
		return Page{}, fmt.Errorf("%w: page %d is less than 1", ErrPageNotFound, p.Number)
	}
	if p.Number > 1 && p.Number > p.NumPages() {
		return Page{}, fmt.Errorf("%w: page %d of %d", ErrPageNotFound, p.Number, p.NumPages())
	}
	return p, nil
}

// NumPages returns how many pages the listing spans; zero when it is empty.
func (p Page) NumPages() int {
	if p.Size <= 0 || p.Total == 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}

// Offset is the number of items before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Len is the number of items on this page.
func (p Page) Len() int {
	return max(0, min(p.Size, p.Total-p.Offset()))
}

// IsPaginated reports whether the listing needs more than one page.
func (p Page) IsPaginated() bool {
	return p.NumPages() > 1
}

// HasPrevious reports whether a page exists before this one.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a page exists after this one.
func (p Page) HasNext() bool {
	return p.Number < p.NumPages()
}

// Previous returns the previous page number.
func (p Page) Previous() int {
	return p.Number - 1
}

// Next returns the next page number.
func (p Page) Next() int {
	return p.Number + 1
}

// StartIndex is the 1-based position of the first item on the page, or 0
// for an empty listing.
func (p Page) StartIndex() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// EndIndex is the 1-based position of the last item on the page.
func (p Page) EndIndex() int {
	return p.Offset() + p.Len()
}

// Numbers lists every page number, for rendering page links.
func (p Page) Numbers() []int {
	nums := make([]int, p.NumPages())
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}
