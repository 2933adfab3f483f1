package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// ParseUint parses a decimal id. Zero is rejected, ids start at 1.
func ParseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return uint(v), nil
}

// ParseUintList parses a comma separated id list like "1,2,3". Blank and
// malformed entries are skipped.
func ParseUintList(s string) []uint {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := ParseUint(p)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
