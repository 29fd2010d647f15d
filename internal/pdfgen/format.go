package pdfgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatValue renders a form value for display inside a field box. Absent
// values render as the given placeholder so every box shows something.
func FormatValue(v any, placeholder string) string {
	switch val := v.(type) {
	case nil:
		return placeholder
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case time.Time:
		return val.Format("2 January 2006")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		if strings.TrimSpace(val) == "" {
			return placeholder
		}
		return strings.TrimSpace(val)
	default:
		s := strings.TrimSpace(fmt.Sprintf("%v", val))
		if s == "" {
			return placeholder
		}
		return s
	}
}
