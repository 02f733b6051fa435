package validation

import (
	"regexp"

	"github.com/kerem/schoolhub/internal/app/models"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Phone pattern - digits only, up to 15
	PhonePattern = `^\d{7,15}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidName reports whether the value fits the name length bounds.
func IsValidName(value string) bool {
	return len(value) >= NameMinLength && len(value) <= NameMaxLength
}

// IsValidGrade reports whether the grade lies within the school's range.
func IsValidGrade(grade int) bool {
	return grade >= models.MinGrade && grade <= models.MaxGrade
}

// AreValidGrades reports whether every grade in the set is valid and the set
// contains no duplicates.
func AreValidGrades(grades []int) bool {
	seen := make(map[int]struct{}, len(grades))
	for _, g := range grades {
		if !IsValidGrade(g) {
			return false
		}
		if _, dup := seen[g]; dup {
			return false
		}
		seen[g] = struct{}{}
	}
	return true
}
