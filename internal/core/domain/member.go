package domain

import "strings"

// Member is a congregation member that donations point to.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SameName reports whether two directory names collide (case-insensitive, surrounding spaces ignored).
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
