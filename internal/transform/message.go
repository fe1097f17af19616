package transform

import (
	"sort"
	"strings"
)

const fallbackErrorMessage = "An unexpected error occurred"

// messageSeparator joins accumulated violation fragments into one sentence
// stream for the UI.
const messageSeparator = ". "

// ErrorMessage renders any backend error payload as user-facing text. It is
// the last-resort error path and must not panic on malformed input.
//
// Precedence: a top-level "message", "error" or "detail" string wins;
// otherwise the payload is treated as a field-to-violations map and every
// string fragment is collected; anything else yields the generic fallback.
func ErrorMessage(payload any) string {
	switch v := payload.(type) {
	case nil:
		return fallbackErrorMessage
	case string:
		if v == "" {
			return fallbackErrorMessage
		}
		return v
	case error:
		return ErrorMessage(v.Error())
	case []any:
		// bare violation arrays arrive without a field wrapper
		var msgs []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				msgs = append(msgs, s)
			}
		}
		if len(msgs) > 0 {
			return JoinMessages(msgs)
		}
	case []string:
		if len(v) > 0 {
			return JoinMessages(v)
		}
	case map[string]any:
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s
			}
		}
		// field keys are sorted because Go maps have no stable iteration order
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var msgs []string
		for _, k := range keys {
			switch fv := v[k].(type) {
			case string:
				msgs = append(msgs, fv)
			case []string:
				msgs = append(msgs, fv...)
			case []any:
				for _, item := range fv {
					if s, ok := item.(string); ok {
						msgs = append(msgs, s)
					}
				}
			}
		}
		if len(msgs) > 0 {
			return JoinMessages(msgs)
		}
	}
	return fallbackErrorMessage
}

// JoinMessages concatenates violation messages the same way ErrorMessage
// does, so caller-side validation reads like backend validation.
func JoinMessages(msgs []string) string {
	return strings.Join(msgs, messageSeparator)
}
