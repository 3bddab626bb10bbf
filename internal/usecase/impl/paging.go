package impl

import "platter/internal/domain/repository"

// defaultPerPage bounds unbounded list requests.
const defaultPerPage = 20

// normalizePage clamps raw pagination input into a repository Page.
func normalizePage(page, perPage int) repository.Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	return repository.Page{Page: page, PerPage: perPage}
}

// totalPages derives the page count for a listing response.
func totalPages(total int64, perPage int) int {
	if perPage < 1 {
		if total > 0 {
			return 1
		}

		return 0
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return pages
}
