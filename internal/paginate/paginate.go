package paginate

// PageSize is the fixed number of rows shown per results page.
const PageSize = 20

// Page is a derived view over an ordered result sequence. It is
// recomputed on every render and never stored.
type Page[T any] struct {
	Items      []T
	Index      int
	TotalPages int
}

// Paginate slices items into the requested fixed-size page. TotalPages
// is at least 1 even for an empty input. A page beyond the end yields an
// empty slice rather than an error, so it is safe to call on every render.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Index:      page,
		TotalPages: totalPages,
	}
}
