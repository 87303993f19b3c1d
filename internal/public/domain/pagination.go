package domain

// Page is one bounded view over an ordered shop sequence.
type Page struct {
	Items      []Shop
	Number     int
	TotalPages int
}

// Paginate slices out the requested page. TotalPages is at least 1 even for
// an empty input, and an out-of-range page number is silently clamped into
// [1, TotalPages] rather than treated as an error.
func Paginate(shops []Shop, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(shops) + pageSize - 1) / pageSize
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
	if start > len(shops) {
		start = len(shops)
	}
	end := start + pageSize
	if end > len(shops) {
		end = len(shops)
	}

	return Page{
		Items:      shops[start:end],
		Number:     page,
		TotalPages: totalPages,
	}
}
