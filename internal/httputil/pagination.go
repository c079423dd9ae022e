package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DefaultPageSize is used when the size query parameter is omitted.
const DefaultPageSize = 10

// ParsePageSize parses the page and size query parameters.
// page defaults to 0 and size to DefaultPageSize. Only the integer syntax is checked
// here; bounds are enforced by the use cases.
func ParsePageSize(c *gin.Context) (page, size int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page parameter: must be an integer")
	}

	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size parameter: must be an integer")
	}

	return page, size, nil
}
