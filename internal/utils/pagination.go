package utils

type Page struct {
	Number int
	IsLink bool
}

// Pagination is the view model for the pagination partial.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
	Pages       []Page
}

// GeneratePagination builds a pagination window around the current page,
// always including the first and last pages, with ellipsis gaps marked by
// zero-numbered entries.
func GeneratePagination(currentPage, totalPages int) *Pagination {
	if totalPages <= 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	const window = 2 // pages shown on each side of the current page

	var pages []Page
	pages = append(pages, Page{Number: 1, IsLink: true})

	if currentPage > window+2 {
		pages = append(pages, Page{}) // ellipsis
	}

	start := currentPage - window
	if start < 2 {
		start = 2
	}
	end := currentPage + window
	if end > totalPages-1 {
		end = totalPages - 1
	}
	for i := start; i <= end; i++ {
		pages = append(pages, Page{Number: i, IsLink: true})
	}

	if currentPage < totalPages-(window+1) {
		pages = append(pages, Page{}) // ellipsis
	}

	pages = append(pages, Page{Number: totalPages, IsLink: true})

	// The current page renders as plain text; drop accidental duplicates at
	// the window edges.
	final := pages[:0]
	seen := make(map[int]bool)
	for _, p := range pages {
		if p.Number == currentPage {
			p.IsLink = false
		}
		if p.Number != 0 && seen[p.Number] {
			continue
		}
		seen[p.Number] = true
		final = append(final, p)
	}

	return &Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
		PrevPage:    currentPage - 1,
		NextPage:    currentPage + 1,
		Pages:       final,
	}
}
