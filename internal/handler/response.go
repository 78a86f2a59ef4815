package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewMessageResponse(message string) *Response {
	return &Response{
		Status:  "success",
		Message: message,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps a service error onto its HTTP status and writes the
// error envelope. Unexpected errors are reported uniformly as a 500 and
// logged through the error middleware.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Code == apperrors.ErrInternal {
		// Keep the cause for the log, hide it from the client.
		_ = c.Error(err)
	}
	c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
}
