// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// Page carries the shared pagination knobs for list operations.
// PerPage <= 0 disables the limit and returns the full result set.
type Page struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the page, treating page numbers below 1 as the first page.
func (p Page) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}

	return p.PerPage * (page - 1)
}
