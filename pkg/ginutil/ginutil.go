package ginutil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamInt64 extracts an int64 from path parameters
// Returns the parsed int64 and error if parsing fails
func ParamInt64(c *gin.Context, key string) (int64, error) {
	valueStr := c.Param(key)
	return strconv.ParseInt(valueStr, 10, 64)
}
