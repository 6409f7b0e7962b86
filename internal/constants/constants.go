package constants

// Pagination
const (
	// PageSize is the fixed number of rows returned by list and lookup queries.
	PageSize = 50
	// MinPage is the first page number.
	MinPage = 1
)

// Context keys
const (
	ContextKeyID = "id"
)

// Variant names
const (
	VariantJiraKiller = "jirakiller"
	VariantTest5      = "test5"
	VariantBlog       = "blog"
)
