package httperr

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
}

// Response is the public error envelope every handler renders. Status is
// carried for the logging middleware and never serialized.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError renders the envelope and records the original error on the
// context so the error middleware and request logger can see it. err carries
// the internal cause and must not be nil; msg is the client-facing text.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
