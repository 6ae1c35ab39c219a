package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into a wrapped sentinel. The
// server's error body ({"error": reason, "message": ...}) is used for the
// error text when present.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	detail := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		detail = body.Error
		if body.Message != "" {
			detail += ": " + body.Message
		}
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if body.Error == app.ReasonConflict {
			return fmt.Errorf("%w: %s", ErrConflict, detail)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}
