package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InternalErrorMessage is the only detail a caller sees for an unexpected failure
const InternalErrorMessage = "Internal server error"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Recovery logs panics with their stack and answers with a generic 500
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.WithFields(logrus.Fields{
					"request_id": GetRequestID(c),
					"path":       c.Request.URL.Path,
					"panic":      err,
					"stack":      string(debug.Stack()),
				}).Error("Unexpected error")
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: InternalErrorMessage})
			}
		}()

		c.Next()
	}
}
