package server

import (
	"net/http"

	"sellegate-backend/internal/apperr"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Message string              `json:"message"`
	Code    int                 `json:"code"`
	Details map[string][]string `json:"details"`
}

type errorEnvelope struct {
	Status string    `json:"status"`
	Error  errorBody `json:"error"`
}

// ErrorHandler renders every error through the one envelope shape:
// {"status":"error","error":{"message","code","details"}}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"
	details := map[string][]string{}

	if appErr, ok := apperr.As(err); ok {
		status = appErr.HTTPStatus()
		message = appErr.Message
		if appErr.Details != nil {
			details = appErr.Details
		}
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	} else {
		c.Logger().Error(err)
	}

	envelope := errorEnvelope{
		Status: "error",
		Error: errorBody{
			Message: message,
			Code:    status,
			Details: details,
		},
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, envelope)
}
