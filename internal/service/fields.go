package service

import (
	"encoding/json"
	"strings"
	"unicode"
)

// toColumnMap converts a raw partial update body into a column map:
// JSON names become snake_case columns, array/object values are
// JSON-encoded to match the TEXT storage of list columns. Server-owned
// fields are stripped; everything else passes through raw.
func toColumnMap(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "id", "createdAt", "updatedAt", "authorId":
			continue
		}
		switch v.(type) {
		case []any, map[string]any:
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			v = string(b)
		}
		out[toSnake(k)] = v
	}
	return out
}

func toSnake(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
