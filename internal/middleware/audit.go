package middleware

import (
	"net/http"

	"github.com/kararha/installment/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit persists one AuditLog row per mutating API call after the
// handler finishes. Reads are not recorded.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			return
		}

		entry := models.AuditLog{
			RequestID: c.GetString(RequestIDKey),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
