package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/service"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondFile sends a download with a Content-Disposition filename
func respondFile(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			errs[toJSONFieldName(fe.Field())] = formatValidationError(fe)
		}
	}

	respondJSON(w, http.StatusBadRequest, domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: errs,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to snake_case, the casing
// of every request body field
func toJSONFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondAPIError(w, status, getErrorType(status), message)
}

func respondAPIError(w http.ResponseWriter, status int, errType, message string) {
	respondJSON(w, status, domain.APIError{
		Type:   errType,
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	case http.StatusServiceUnavailable:
		return domain.ErrorTypeUnavailable
	default:
		return domain.ErrorTypeInternal
	}
}

// respondError maps pipeline and notification errors onto API errors. Query
// failures never carry partial data.
func respondError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	var (
		filterErr *domain.FilterValidationError
		queryErr  *domain.QueryExecutionError
		formatErr *domain.DataFormatError
		ve        validator.ValidationErrors
	)

	switch {
	case errors.As(err, &ve):
		respondValidationError(w, err)
	case errors.As(err, &filterErr):
		respondAPIError(w, http.StatusBadRequest, domain.ErrorTypeFilter, filterErr.Error())
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownNotificationKind):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSendNotConfirmed):
		respondAPIError(w, http.StatusBadRequest, domain.ErrorTypeNotConfirmed,
			"Sending requires \"confirm\": true")
	case errors.Is(err, domain.ErrTooManyRecipients):
		respondAPIError(w, http.StatusUnprocessableEntity, domain.ErrorTypeTooManyEmails, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrLogUnavailable), errors.Is(err, domain.ErrViewUnavailable):
		respondWithError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &queryErr):
		logger.Error(op+" failed", zap.Error(err))
		respondAPIError(w, http.StatusBadGateway, domain.ErrorTypeQuery, "The delivery view query failed")
	case errors.As(err, &formatErr):
		logger.Error(op+" failed", zap.Error(err))
		respondAPIError(w, http.StatusInternalServerError, domain.ErrorTypeDataFormat, "Failed to build the report")
	default:
		logger.Error(op+" failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to "+op)
	}
}

// decodeJSON reads a bounded JSON body into target, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

// parseFilter reads the filter from query parameters. List dimensions are
// repeated parameters; exclude_<dimension>=true inverts one.
func parseFilter(q url.Values) (domain.FilterModel, error) {
	var f domain.FilterModel

	for _, bound := range []struct {
		param  string
		target **time.Time
	}{
		{"date_from", &f.DateFrom},
		{"date_to", &f.DateTo},
	} {
		raw := strings.TrimSpace(q.Get(bound.param))
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return f, &domain.FilterValidationError{Field: bound.param, Value: raw, Reason: "expected YYYY-MM-DD"}
		}
		*bound.target = &t
	}

	for _, d := range domain.Dimensions {
		lf := domain.ListFilter{Values: q[string(d)]}
		if raw := q.Get("exclude_" + string(d)); raw != "" {
			exclude, err := strconv.ParseBool(raw)
			if err != nil {
				return f, &domain.FilterValidationError{Field: "exclude_" + string(d), Value: raw, Reason: "expected true or false"}
			}
			lf.Exclude = exclude
		}
		f.SetList(d, lf)
	}

	f.EPE = domain.ParseEPEFilter(q.Get("epe"))
	f.Foreign = domain.ParseForeignFilter(q.Get("foreign"))
	return f, nil
}

// intParam parses an optional integer query parameter
func intParam(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", service.ErrInvalidInput, name)
	}
	return n, nil
}
