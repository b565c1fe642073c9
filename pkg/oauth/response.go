package oauth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// decodeResponse reads a provider response body as a JSON object.
// Empty bodies decode to nil. A body that is not a JSON object is only an
// error for non-error statuses; error statuses are left to the status check.
func decodeResponse(resp *http.Response) (map[string]any, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("read response body: %w", err))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, nil
		}
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode response: status=%d: %w", resp.StatusCode, err))
	}
	return data, nil
}

// reasonPhrase returns the reason part of the status line.
func reasonPhrase(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

// isEmpty reports whether a decoded JSON value counts as absent:
// nil, "", "0", false, zero, or an empty list or object.
func isEmpty(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == "0"
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

func stringValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// intValue converts a decoded JSON value to an int. Strings contribute their
// leading integer digits; anything unparsable is 0.
func intValue(v any) int {
	switch v := v.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(v)
		end := 0
		for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
			end++
		}
		n, err := strconv.Atoi(s[:end])
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
