package instrument

import (
	"encoding/json"
	"strings"
)

// Masked replaces the value of sensitive keys in logs and request dumps.
const Masked = "***"

// MaskKeys normalises a list of field names into a lookup set.
func MaskKeys(fields []string) map[string]struct{} {
	keys := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			keys[f] = struct{}{}
		}
	}
	return keys
}

// IsMasked reports whether key (case-insensitive) is in keys.
func IsMasked(key string, keys map[string]struct{}) bool {
	_, ok := keys[strings.ToLower(key)]
	return ok
}

// Mask walks decoded JSON (maps and slices) and hides sensitive keys.
func Mask(v any, keys map[string]struct{}) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if IsMasked(k, keys) {
				out[k] = Masked
				continue
			}
			out[k] = Mask(inner, keys)
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if IsMasked(k, keys) {
				out[k] = Masked
				continue
			}
			out[k] = inner
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = Mask(inner, keys)
		}
		return out
	default:
		return v
	}
}

// MaskJSON masks a JSON document. ok is false when payload is not a JSON object or array.
func MaskJSON(payload []byte, keys map[string]struct{}) (masked []byte, ok bool) {
	trimmed := strings.TrimSpace(string(payload))
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, false
	}

	var doc any
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return nil, false
	}

	out, err := json.Marshal(Mask(doc, keys))
	if err != nil {
		return nil, false
	}
	return out, true
}
