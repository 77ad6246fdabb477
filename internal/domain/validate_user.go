package domain

import (
	"fmt"
	"regexp"
)

var userNamePattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// ValidateSignup checks the signup payload field by field and returns
// every failing rule's message. Length bounds and the character-class
// rule for names are evaluated independently, so a name can collect
// two messages at once.
func ValidateSignup(name, email, confirmEmail, password, confirmPassword any) []string {
	var errs []string

	switch {
	case isBlank(name):
		errs = append(errs, "The name can't be undefined.")
	default:
		n, ok := name.(string)
		if !ok {
			errs = append(errs, "The name must be a string.")
			break
		}
		if len(n) < UserNameMinLength {
			errs = append(errs, fmt.Sprintf("The name is too short (must have at least %d characters).", UserNameMinLength))
		} else if len(n) > UserNameMaxLength {
			errs = append(errs, fmt.Sprintf("The name is too long (must have a maximum of %d characters).", UserNameMaxLength))
		}
		if userNamePattern.MatchString(n) {
			errs = append(errs, "The name must have only alphanumerical characters and spaces.")
		}
	}

	errs = append(errs, validateEmail(email)...)

	switch {
	case isBlank(confirmEmail):
		errs = append(errs, "The e-mail confirmation can't be undefined.")
	default:
		c, ok := confirmEmail.(string)
		if !ok {
			errs = append(errs, "The e-mail confirmation must be a string.")
		} else if e, _ := email.(string); e != c {
			errs = append(errs, "The e-mails aren't equal.")
		}
	}

	errs = append(errs, validatePassword(password)...)

	switch {
	case isBlank(confirmPassword):
		errs = append(errs, "The password confirmation can't be undefined.")
	default:
		c, ok := confirmPassword.(string)
		if !ok {
			errs = append(errs, "The password confirmation must be a string.")
		} else if p, _ := password.(string); p != c {
			errs = append(errs, "The passwords aren't equal.")
		}
	}

	return errs
}

// ValidateLogin checks the login payload. The credential pair itself is
// verified asynchronously by the handler.
func ValidateLogin(email, password any) []string {
	var errs []string
	errs = append(errs, validateEmail(email)...)
	errs = append(errs, validatePassword(password)...)
	return errs
}

func validateEmail(email any) []string {
	if isBlank(email) {
		return []string{"The e-mail can't be undefined."}
	}
	e, ok := email.(string)
	if !ok {
		return []string{"The e-mail must be a string."}
	}
	if len(e) < UserEmailMinLength {
		return []string{fmt.Sprintf("The e-mail is too short (must have at least %d characters).", UserEmailMinLength)}
	}
	if len(e) > UserEmailMaxLength {
		return []string{fmt.Sprintf("The e-mail is too long (must have a maximum of %d characters).", UserEmailMaxLength)}
	}
	return nil
}

func validatePassword(password any) []string {
	if isBlank(password) {
		return []string{"The password can't be undefined."}
	}
	p, ok := password.(string)
	if !ok {
		return []string{"The password must be a string."}
	}
	if len(p) < UserPasswordMinLength {
		return []string{fmt.Sprintf("The password is too short (must have at least %d characters).", UserPasswordMinLength)}
	}
	if len(p) > UserPasswordMaxLength {
		return []string{fmt.Sprintf("The password is too long (must have a maximum of %d characters).", UserPasswordMaxLength)}
	}
	return nil
}
