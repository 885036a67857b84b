// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"slices"
	"strings"

	validation "github.com/jellydator/validation"
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// MultipleOf validates that an int is strictly positive and divisible by n.
func MultipleOf(n int) validation.Rule {
	return validation.By(func(value interface{}) error {
		v, ok := value.(int)
		if !ok {
			return validation.NewError("validation_multiple_of_type", "must be an integer")
		}
		if v <= 0 {
			return validation.NewError("validation_positive", "must be a positive integer")
		}
		if v%n != 0 {
			return validation.NewError(
				"validation_multiple_of",
				fmt.Sprintf("must be a positive integer that is a multiple of %d", n),
			)
		}
		return nil
	})
}

// SubsetOf validates that every element of a string slice is one of allowed.
func SubsetOf(allowed ...string) validation.Rule {
	return validation.By(func(value interface{}) error {
		values, ok := value.([]string)
		if !ok {
			return validation.NewError("validation_subset_type", "must be a list of strings")
		}
		for _, v := range values {
			if !slices.Contains(allowed, v) {
				return validation.NewError(
					"validation_subset",
					fmt.Sprintf("only %s are allowed", quoteJoin(allowed)),
				)
			}
		}
		return nil
	})
}

// Contains validates that a string slice holds every required element.
func Contains(required ...string) validation.Rule {
	return validation.By(func(value interface{}) error {
		values, ok := value.([]string)
		if !ok {
			return validation.NewError("validation_contains_type", "must be a list of strings")
		}
		for _, r := range required {
			if !slices.Contains(values, r) {
				return validation.NewError(
					"validation_contains",
					fmt.Sprintf("the minimum required names are %s", quoteJoin(required)),
				)
			}
		}
		return nil
	})
}

// quoteJoin renders names as 'a', 'b' and 'c'.
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
}
