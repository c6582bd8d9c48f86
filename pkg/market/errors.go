package market

import (
	"encoding/json"
	"fmt"
)

// ProviderError is returned when a response lacks the expected top-level
// key. Invalid symbols, rate limiting and malformed answers all end up
// here; Payload holds whatever the provider sent instead.
type ProviderError struct {
	Function string
	Key      string
	Payload  map[string]any
}

func newProviderError(function, key string, body []byte) *ProviderError {
	payload := map[string]any{}
	json.Unmarshal(body, &payload)
	return &ProviderError{Function: function, Key: key, Payload: payload}
}

func (e *ProviderError) Error() string {
	for _, k := range []string{"Error Message", "Note", "Information"} {
		if msg, ok := e.Payload[k].(string); ok && msg != "" {
			return fmt.Sprintf("alphavantage %s: %s", e.Function, msg)
		}
	}
	return fmt.Sprintf("alphavantage %s: response missing %q", e.Function, e.Key)
}
