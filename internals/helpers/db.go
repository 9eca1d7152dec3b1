package helper

import "strings"

// IsUniqueViolation detects a Postgres unique violation (code 23505)
// without importing pgx/pgconn, keeping controllers portable.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
