// Package respond maps domain results and errors onto the JSON wire
// contract shared by every handler.
package respond

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string              `json:"status"`           // user-level status message
	ErrorText  string              `json:"error,omitempty"`  // application-level error message, for debugging
	Fields     []entity.FieldError `json:"errors,omitempty"` // field-level validation violations
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(verr *entity.ValidationError) render.Renderer {
	return &ErrResponse{
		Err:            verr,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Validation failed.",
		Fields:         verr.Fields,
	}
}

func ErrUnauthorized(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Not authenticated.",
		ErrorText:      err.Error(),
	}
}

func ErrForbidden() render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusForbidden,
		StatusText:     "Not allowed.",
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      err.Error(),
	}
}

var ErrNotFound = &ErrResponse{HTTPStatusCode: 404, StatusText: "Resource not found."}

// PartialResponse reports an operation that changed the order but lost its
// items, so the client can warn instead of retrying blindly.
type PartialResponse struct {
	ID      int    `json:"id"`
	Warning string `json:"warning"`
}

func (p *PartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusMultiStatus)
	return nil
}

// Error translates the well-known domain errors to their responses; any
// other error is a 500.
func Error(err error) render.Renderer {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return ErrValidation(verr)
	}
	var pf *entity.PartialFailure
	if errors.As(err, &pf) {
		return &PartialResponse{ID: pf.OrderID, Warning: pf.Error()}
	}
	switch {
	case errors.Is(err, gerr.ErrOrderNotFound),
		errors.Is(err, gerr.ErrMemberNotFound),
		errors.Is(err, gerr.ErrClaimNotFound),
		errors.Is(err, gerr.ErrMasterNotFound):
		return ErrNotFound
	case errors.Is(err, gerr.ErrUsernameTaken):
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusConflict,
			StatusText:     "Username already taken.",
			ErrorText:      err.Error(),
		}
	}
	return ErrInternalServerError(err)
}
