package api

import (
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/agentdash/internal/errors"
)

// parseBody validates that the body is a JSON object and returns it parsed.
func parseBody(endpoint string, resp *response) (gjson.Result, error) {
	if len(resp.body) == 0 || !gjson.ValidBytes(resp.body) {
		return gjson.Result{}, apierrors.NewParseError(endpoint, "response body is not valid JSON")
	}
	parsed := gjson.ParseBytes(resp.body)
	if !parsed.IsObject() {
		return gjson.Result{}, apierrors.NewParseError(endpoint, "response body is not a JSON object")
	}
	return parsed, nil
}

// failureReason picks the first non-empty reason field of a failed response.
func failureReason(parsed gjson.Result, fields ...string) string {
	for _, field := range fields {
		value := parsed.Get(field)
		if value.Exists() && value.Type == gjson.String && value.String() != "" {
			return value.String()
		}
	}
	return ""
}

// checkSuccess turns a response without success:true into a ServerError.
// The body decides; an error status with success:true still succeeds.
func checkSuccess(endpoint string, resp *response, parsed gjson.Result, reasonFields ...string) error {
	if parsed.Get(PathSuccess).Bool() {
		return nil
	}
	return apierrors.NewServerError(resp.status, endpoint, failureReason(parsed, reasonFields...))
}
