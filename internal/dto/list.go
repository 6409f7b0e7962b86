package dto

// ListResponse is one page of a list endpoint
type ListResponse[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// OptionsResponse holds lookup options for a foreign-key field
type OptionsResponse[T any] struct {
	Options []T `json:"options"`
}
