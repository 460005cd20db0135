package entity

import (
	"slices"
	"strings"
)

// Operator is an authenticated dashboard user.
type Operator struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// AllowList gates dashboard access by operator email. An empty list admits
// every signed-in operator.
type AllowList []string

// Permits reports whether op may read and write the collection.
func (l AllowList) Permits(op *Operator) bool {
	if op == nil {
		return false
	}
	if len(l) == 0 {
		return true
	}

	return slices.ContainsFunc(l, func(email string) bool {
		return strings.TrimSpace(email) == op.Email
	})
}
