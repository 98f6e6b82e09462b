package repositories

import (
	"fmt"
	"strconv"

	"github.com/volatiletech/null/v8"
)

// Raw rows come back with driver-dependent value types and, depending on the
// store generation, either column naming convention. These helpers normalize
// both axes into the canonical entity shape.

// nullIfEmpty maps "" to SQL NULL; the store never holds empty-string
// sentinels for optional columns.
func nullIfEmpty(s string) null.String {
	return null.NewString(s, s != "")
}

func rowString(row map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			return s
		case []byte:
			return string(s)
		default:
			return fmt.Sprintf("%v", s)
		}
	}
	return ""
}

func rowNullString(row map[string]interface{}, keys ...string) null.String {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			return null.StringFrom(s)
		case []byte:
			return null.StringFrom(string(s))
		}
	}
	return null.String{}
}

func rowInt(row map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case int:
			return n
		case int32:
			return int(n)
		case int64:
			return int(n)
		case float64:
			return int(n)
		case []byte:
			if parsed, err := strconv.Atoi(string(n)); err == nil {
				return parsed
			}
		case string:
			if parsed, err := strconv.Atoi(n); err == nil {
				return parsed
			}
		}
	}
	return 0
}
