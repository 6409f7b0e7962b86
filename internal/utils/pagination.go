package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/demodb/internal/constants"
)

// ListParams holds the list query parameters
type ListParams struct {
	Filter string
	Page   int
}

// GetListParams extracts the filter text (q) and page number from the request.
// Invalid or missing pages become the first page.
func GetListParams(c *gin.Context) ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPage)))
	if err != nil || page < constants.MinPage {
		page = constants.MinPage
	}

	return ListParams{
		Filter: strings.TrimSpace(c.Query("q")),
		Page:   page,
	}
}
