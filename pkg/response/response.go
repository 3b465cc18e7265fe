package response

import (
	"context"
	"fmt"
	"net/http"

	pkgErrors "voice-srv/pkg/errors"
	"voice-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Accepted writes a 202 response for asynchronously processed requests.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: 0,
		Message:   "Accepted",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status and
// message; anything else becomes an opaque 500. Notifies Discord when wired.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	notify(c, notifier, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// ErrorWithMap writes an error response using a per-handler error mapping.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifier discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}
	Error(c, err, notifier)
}

// PanicError writes a 500 response for a recovered panic and notifies Discord.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	notify(c, notifier, fmt.Errorf("panic: %v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// BadRequest writes a 400 response with binding/validation details.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   "Invalid request",
		Errors:    err.Error(),
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   message,
	})
}

func notify(c *gin.Context, notifier discord.IDiscord, err error) {
	if notifier == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = notifier.SendError(ctx, "voice-srv error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}()
}
