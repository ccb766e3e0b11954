package stubserver

import (
	"time"

	"github.com/gin-gonic/gin"
)

// errorJSON writes the backend's error envelope: {timestamp, status, message}.
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"timestamp": time.Now().UTC(),
		"status":    status,
		"message":   message,
	})
}

// page slices a full result set into the paged list envelope.
func page[T any](all []T, pageNum, size int) gin.H {
	if size <= 0 {
		size = 10
	}
	if pageNum < 0 {
		pageNum = 0
	}
	total := len(all)
	totalPages := (total + size - 1) / size
	start := pageNum * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	content := all[start:end]
	if content == nil {
		content = []T{}
	}
	return gin.H{
		"content":       content,
		"totalElements": total,
		"totalPages":    totalPages,
		"number":        pageNum,
		"size":          size,
	}
}
