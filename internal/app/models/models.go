package models

// FeeStatus describes where a student stands on fee payment.
type FeeStatus string

const (
	FeeStatusUnpaid  FeeStatus = "UNPAID"
	FeeStatusPartial FeeStatus = "PARTIAL"
	FeeStatusPaid    FeeStatus = "PAID"
)

// Grade bounds for the school. Grades are plain integers (1-12).
const (
	MinGrade = 1
	MaxGrade = 12
)
