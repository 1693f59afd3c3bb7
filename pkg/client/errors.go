/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// APIError is returned for every 4xx answer of the API.
// The message is flattened from the error payload shapes documented
// on https://docs.appoptics.com/api/#response-codes-amp-errors
type APIError struct {
	Code    int
	Payload interface{}
}

func NewAPIError(code int, body []byte) *APIError {
	ans := &APIError{Code: code}

	if len(body) > 0 {
		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err == nil {
			ans.Payload = decoded
		} else {
			ans.Payload = string(body)
		}
	}

	return ans
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.parseErrorMessage())
}

func (e *APIError) parseErrorMessage() string {
	switch payload := e.Payload.(type) {
	case string:
		return payload
	case map[string]interface{}:
		// The API could return 'errors' or just 'error' with a
		// flat message.
		if msg, ok := payload["error"].(string); ok {
			return msg
		}
		if msg, ok := payload["message"].(string); ok {
			return msg
		}
		if errs, ok := payload["errors"]; ok {
			return flattenErrors(errs)
		}
	}
	return ""
}

func flattenErrors(payload interface{}) string {
	switch p := payload.(type) {
	case string:
		return p
	case []interface{}:
		return joinList(p)
	case map[string]interface{}:
		messages := []string{}
		for _, key := range sortedKeys(p) {
			switch val := p[key].(type) {
			case string:
				messages = append(messages, fmt.Sprintf("%s: %s", key, val))
			case []interface{}:
				for _, m := range val {
					messages = append(messages,
						fmt.Sprintf("%s: %v", key, m))
				}
			case map[string]interface{}:
				for _, k := range sortedKeys(val) {
					messages = append(messages,
						fmt.Sprintf("%s: %s: %s", key, k,
							flattenErrors(val[k])))
				}
			}
		}
		return strings.Join(messages, ", ")
	}
	return fmt.Sprintf("%v", payload)
}

func joinList(list []interface{}) string {
	words := []string{}
	for _, e := range list {
		words = append(words, fmt.Sprintf("%v", e))
	}
	return strings.Join(words, ", ")
}

func sortedKeys(m map[string]interface{}) []string {
	keys := []string{}
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsBadRequest(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Code == 400
}

func IsUnauthorized(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Code == 401
}

func IsForbidden(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Code == 403
}

func IsNotFound(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Code == 404
}
