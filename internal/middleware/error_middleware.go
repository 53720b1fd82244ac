package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// HandleAPIError maps an application error onto a status code and message body.
// Errors carrying a StatusMsg use it verbatim; everything unrecognised is a 500.
func HandleAPIError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, dto.MsgInternalError

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status, message = http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		status, message = http.StatusConflict, "Resource already exists"
	case errors.Is(err, apperrors.ErrValidationFailed):
		status, message = http.StatusBadRequest, "Validation failed"
	}

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.StatusMsg != "" {
		message = customErr.StatusMsg
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error while serving request")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.MessageResponse{Message: message})
}

// HandleBindError answers a request whose body could not be bound.
func HandleBindError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.MessageResponse{
		Message: message,
		Details: DescribeBindError(err),
	})
}
