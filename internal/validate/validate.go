package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`\S+@\S+\.\S+`)
	// Digits with optional +, -, spaces; 7-15 characters total.
	rePhone = regexp.MustCompile(`^[\d+\-\s]{7,15}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return strings.ToLower(s), reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// ID validates a simple resource identifier (user/listing/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Rating parses a review rating and enforces the 1-5 window. JSON numbers
// arrive as float64; form values as strings.
func Rating(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		r := int(n)
		return r, float64(r) == n && r >= 1 && r <= 5
	case int:
		return n, n >= 1 && n <= 5
	case string:
		r, err := strconv.Atoi(strings.TrimSpace(n))
		return r, err == nil && r >= 1 && r <= 5
	default:
		return 0, false
	}
}

// Qty normalizes an order line quantity; anything below 1 becomes 1.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
