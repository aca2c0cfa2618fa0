// Package handler exposes the query builder over HTTP.
//
// Every request is an independent call into pure functions: no state
// is shared across requests.
package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/go-faster/tfs"
)

// EncodeRequest is the loosely-typed JSON body of the encode endpoint.
// Leg values are coerced to strings, so JSON numbers are accepted.
type EncodeRequest struct {
	Legs       []map[string]any `json:"legs"`
	Seat       string           `json:"seat"`
	Passengers []string         `json:"passengers"`
	Trip       string           `json:"trip"`
	MaxStops   int              `json:"max_stops,omitempty"`
	Airlines   []string         `json:"airlines,omitempty"`
	Language   string           `json:"language,omitempty"`
	Currency   string           `json:"currency,omitempty"`
}

// EncodeResponse carries the encoded query.
type EncodeResponse struct {
	TFS string `json:"tfs"`
	URL string `json:"url"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func badRequest(c echo.Context, kind, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   kind,
		Message: message,
		Code:    http.StatusBadRequest,
	})
}

// Encode handles POST /api/v1/query/encode.
func Encode(c echo.Context) error {
	var req EncodeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "failed to parse request body: "+err.Error())
	}

	legs := make([]map[string]string, 0, len(req.Legs))
	for _, leg := range req.Legs {
		m := make(map[string]string, len(leg))
		for k, v := range leg {
			s, err := cast.ToStringE(v)
			if err != nil {
				return badRequest(c, "invalid_request", fmt.Sprintf("leg field %q: %v", k, err))
			}
			m[k] = s
		}
		legs = append(legs, m)
	}

	var opts []tfs.Option
	if req.MaxStops > 0 {
		opts = append(opts, tfs.WithMaxStops(req.MaxStops))
	}
	if len(req.Airlines) > 0 {
		opts = append(opts, tfs.WithAirlines(req.Airlines...))
	}
	if req.Language != "" {
		opts = append(opts, tfs.WithLanguage(req.Language))
	}
	if req.Currency != "" {
		opts = append(opts, tfs.WithCurrency(req.Currency))
	}

	q, err := tfs.BuildQuery(legs, req.Seat, req.Passengers, req.Trip, opts...)
	if err != nil {
		// The builder fails on user input only.
		return badRequest(c, "validation_error", err.Error())
	}

	return c.JSON(http.StatusOK, EncodeResponse{
		TFS: q.Text(),
		URL: q.URL(),
	})
}

// Health handles GET /health.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
