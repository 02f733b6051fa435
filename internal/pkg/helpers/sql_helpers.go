package helpers

import "database/sql"

// GetNullString converts a string pointer to sql.NullString.
// If the pointer is nil, returns an empty NullString.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts a sql.NullString back to a string pointer.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
