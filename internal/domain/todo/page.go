package todo

// Page is one slice of todos, newest first, plus the metadata needed to
// navigate to the neighbouring pages.
type Page struct {
	Todos           []Todo
	PageNumber      int
	TotalPages      int
	HasPreviousPage bool
	HasNextPage     bool
}

// TotalPages returns ceil(count / pageSize). A zero count yields zero pages.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Offset returns how many todos precede the given page.
func Offset(pageNumber, pageSize int) int {
	return (pageNumber - 1) * pageSize
}

// NewPage assembles a Page for pageNumber out of totalPages.
func NewPage(todos []Todo, pageNumber, totalPages int) Page {
	return Page{
		Todos:           todos,
		PageNumber:      pageNumber,
		TotalPages:      totalPages,
		HasPreviousPage: pageNumber > 1,
		HasNextPage:     pageNumber < totalPages,
	}
}
