package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Table validates a candidate dining-room table: the name must be
// present and at least two characters, and the capacity at least one.
func Table(tableName string, capacity int) error {
	if strings.TrimSpace(tableName) == "" {
		return failf("table_name", "A 'table_name' property is required")
	}
	if utf8.RuneCountInString(tableName) < 2 {
		return failf("table_name", fmt.Sprintf("'%s' is too short; table_name must be at least 2 characters", tableName))
	}
	if capacity == 0 {
		return failf("capacity", "A 'capacity' property is required")
	}
	if capacity < 1 {
		return failf("capacity", "capacity must be at least 1")
	}
	return nil
}
