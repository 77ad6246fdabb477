package domain

import "fmt"

// ValidateCategoryName checks the single field of a category payload.
func ValidateCategoryName(category any) []string {
	if isBlank(category) {
		return []string{"The category can't be undefined."}
	}
	c, ok := category.(string)
	if !ok {
		return []string{"The category must be a string."}
	}
	if len(c) > CategoryNameMaxLength {
		return []string{fmt.Sprintf("The category is too long (must have a maximum of %d characters).", CategoryNameMaxLength)}
	}
	if parsesAsNumber(c) {
		return []string{"The category can't be a number."}
	}
	return nil
}
