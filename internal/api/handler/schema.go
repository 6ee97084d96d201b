package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses except validation failures, which return the raw field mapping.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// taskRequest is the payload for create and update. The id field is accepted
// but never honored: creation generates an id, replacement is keyed by the
// path id alone.
type taskRequest struct {
	ID             int64     `json:"id"`
	Titulo         string    `json:"titulo" validate:"required,max=100"`
	Concluida      bool      `json:"concluida"`
	DataVencimento time.Time `json:"data_vencimento"`
}

// validationFailed renders a *ValidationProblem as the 400 field-error
// mapping; anything else propagates to the central error handler.
func validationFailed(c echo.Context, err error) error {
	var vp *ValidationProblem
	if errors.As(err, &vp) {
		return c.JSON(http.StatusBadRequest, vp.Fields)
	}
	return err
}
