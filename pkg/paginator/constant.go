package paginator

const (
	// DefaultPage is the default page number when an invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page.
	DefaultLimit = 15
	// MaxLimit caps items per page to prevent excessive queries.
	MaxLimit = 100
)
