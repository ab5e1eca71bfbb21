package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/httperr"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 12

// ErrorHandler renders the last public error of a handler that aborted
// without writing a body. A bare status set by the handler is flushed as is.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
	}
}

// Recovery turns a panic into a 500 response. http.ErrAbortHandler is
// re-raised so net/http can drop the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			if !ok {
				err = errs.Newf("%v", rec)
			}
			err = errs.Wrap(err, "panic")

			slog.Error("recovered from panic",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, panicStackLines),
			)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}()
		c.Next()
	}
}
