package balancing

import (
	"github.com/kahawa/coffee-balancing/consts"
	"github.com/kahawa/coffee-balancing/entity"
)

// Paginate clamps the requested page into [1, totalPages] and returns that
// slice. Page sizes outside the selectable options fall back to the
// default.
func Paginate(rows []entity.ReconciledRow, page, pageSize int) (pageRows []entity.ReconciledRow, currentPage, totalPages int) {
	pageSize = normalizePageSize(pageSize)

	totalPages = (len(rows) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []entity.ReconciledRow{}, page, totalPages
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], page, totalPages
}

func normalizePageSize(pageSize int) int {
	for _, option := range consts.PageSizeOptions {
		if pageSize == option {
			return pageSize
		}
	}
	return consts.DefaultPageSize
}
