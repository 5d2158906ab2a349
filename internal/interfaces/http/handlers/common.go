// Package handlers implements the HTTP endpoints of the engine.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError writes err using the status mapped from its error code.
// Non-application errors become opaque 500s.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	body := errorResponse{Code: code.String(), Message: "internal error"}
	if appErr, ok := err.(*errors.AppError); ok {
		body.Message = appErr.Message
		body.Detail = appErr.Detail
	}
	c.AbortWithStatusJSON(code.HTTPStatus(), body)
}
