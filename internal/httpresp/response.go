package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upb-facilities/cleaning-records/internal/domain/paging"
)

// Envelope wraps every successful response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// PageResponse is a paginated listing under a domain specific key.
func PageResponse(key string, items any, info paging.Info) gin.H {
	return gin.H{
		key:          items,
		"pagination": info,
	}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Status: "success", Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Status: "success", Message: message, Data: data})
}

func Message(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: "success", Message: message, Data: data})
}

func List[T any](c *gin.Context, key string, data []T) {
	if data == nil {
		data = []T{}
	}
	OK(c, gin.H{key: data, "total": len(data)})
}
