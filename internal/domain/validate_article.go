package domain

import "fmt"

// ValidateArticleFields checks the create/update payload of an article.
// Fields are validated independently and the messages accumulate in
// field order: title, description, body, category.
func ValidateArticleFields(title, description, article, categoryID any) []string {
	var errs []string

	switch {
	case isBlank(title):
		errs = append(errs, "The title can't be undefined.")
	default:
		t, ok := title.(string)
		switch {
		case !ok:
			errs = append(errs, "The title must be a string.")
		case len(t) > ArticleTitleMaxLength:
			errs = append(errs, fmt.Sprintf("The title is too long (must have a maximum of %d characters).", ArticleTitleMaxLength))
		case parsesAsNumber(t):
			errs = append(errs, "The title can't be a number.")
		}
	}

	switch {
	case isBlank(description):
		errs = append(errs, "The description can't be undefined.")
	default:
		d, ok := description.(string)
		switch {
		case !ok:
			errs = append(errs, "The description must be a string.")
		case len(d) > ArticleDescriptionMaxLength:
			// The trailing unit is missing here on purpose; clients
			// match this message verbatim.
			errs = append(errs, fmt.Sprintf("The description is too long (must have a maximum of %d).", ArticleDescriptionMaxLength))
		case parsesAsNumber(d):
			errs = append(errs, "The description can't be a number.")
		}
	}

	switch {
	case isBlank(article):
		errs = append(errs, "The article can't be undefined.")
	default:
		if _, ok := article.(string); !ok {
			errs = append(errs, "The article must be a string.")
		}
	}

	switch {
	case isBlank(categoryID):
		errs = append(errs, "The article category can't be undefined.")
	default:
		if _, ok := CategoryIDValue(categoryID); !ok {
			errs = append(errs, "The article category ID must be a number or a convertible string.")
		}
	}

	return errs
}

// CategoryIDValue extracts the numeric category reference from a
// decoded JSON value: a number is truncated to an integer, a string is
// accepted when it has a leading integer.
func CategoryIDValue(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case string:
		return leadingInt(t)
	}
	return 0, false
}
