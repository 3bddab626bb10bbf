package impl

import (
	"testing"

	"platter/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, repository.Page{Page: 1, PerPage: defaultPerPage}, normalizePage(0, 0))
	assert.Equal(t, repository.Page{Page: 1, PerPage: defaultPerPage}, normalizePage(-3, -1))
	assert.Equal(t, repository.Page{Page: 4, PerPage: 50}, normalizePage(4, 50))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 20))
	assert.Equal(t, 1, totalPages(1, 20))
	assert.Equal(t, 1, totalPages(20, 20))
	assert.Equal(t, 2, totalPages(21, 20))
	assert.Equal(t, 3, totalPages(41, 20))
}
