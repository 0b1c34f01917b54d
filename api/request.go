package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
)

// userIDHeader is the dedicated header carrying the caller's identifier
const userIDHeader = "X-User-Id"

var (
	errMissingUserID  = errors.New("Missing user identifier.")
	errInvalidSavings = errors.New("Carbon saved must be a number.")
)

// earnRequest is the body of an earn call. CarbonSavedKG is kept loose so
// both JSON numbers and numeric strings are accepted.
type earnRequest struct {
	UserID        string `json:"user_id"`
	CarbonSavedKG any    `json:"carbon_saved_kg"`
}

// resolveUserID applies the ordered identifier fallback: dedicated header,
// then query parameter, then request-body field. Absence of all three is a
// request error, never a server fault.
func resolveUserID(r *http.Request, bodyUserID string) (string, error) {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id, nil
	}
	if id := r.URL.Query().Get("user_id"); id != "" {
		return id, nil
	}
	if bodyUserID != "" {
		return bodyUserID, nil
	}
	return "", errMissingUserID
}

// userIDFromRequest resolves an identifier for body-less endpoints. A JSON
// body with a user_id field is still honored as the last fallback.
func userIDFromRequest(r *http.Request) (string, error) {
	var body struct {
		UserID string `json:"user_id"`
	}
	if r.Body != nil {
		// Best effort; a missing or malformed body only skips the fallback
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	return resolveUserID(r, body.UserID)
}

// coerceSavings converts the loosely typed carbon_saved_kg field into a
// float64. A missing field, non-numeric value or non-finite number is a
// request error.
func coerceSavings(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, errInvalidSavings
		}
		return parsed, nil
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, errInvalidSavings
		}
		return parsed, nil
	default:
		return 0, errInvalidSavings
	}
}
