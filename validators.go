package fluentvalidation

import (
	"cmp"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NewNotEmptyValidator fails for nil, zero values, empty or whitespace-only
// strings, and empty collections.
func NewNotEmptyValidator(opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"NotEmptyValidator",
		"'{PropertyName}' must not be empty.",
		func(vctx *ValidationContext) bool {
			return !isEmptyValue(vctx.PropertyValue)
		},
		opts...)
}

// NewNotNilValidator fails for nil, including typed nil pointers, slices,
// maps, channels, and funcs.
func NewNotNilValidator(opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"NotNilValidator",
		"'{PropertyName}' must not be empty.",
		func(vctx *ValidationContext) bool {
			return !isNilValue(vctx.PropertyValue)
		},
		opts...)
}

// NewLengthValidator checks that a string's rune length (or a collection's
// element count) lies within [min, max]. On failure it registers the
// MinLength, MaxLength, and TotalLength placeholders.
func NewLengthValidator(min, max int, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"LengthValidator",
		"'{PropertyName}' must be between {MinLength} and {MaxLength} characters. You entered {TotalLength} characters.",
		lengthPredicate(min, max),
		opts...)
}

// NewMinLengthValidator is the one-sided lower-bound variant of
// NewLengthValidator.
func NewMinLengthValidator(min int, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"MinimumLengthValidator",
		"The length of '{PropertyName}' must be at least {MinLength} characters. You entered {TotalLength} characters.",
		lengthPredicate(min, -1),
		opts...)
}

// NewMaxLengthValidator is the one-sided upper-bound variant of
// NewLengthValidator.
func NewMaxLengthValidator(max int, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"MaximumLengthValidator",
		"The length of '{PropertyName}' must be {MaxLength} characters or fewer. You entered {TotalLength} characters.",
		lengthPredicate(0, max),
		opts...)
}

func lengthPredicate(min, max int) Predicate {
	return func(vctx *ValidationContext) bool {
		length, ok := valueLength(vctx.PropertyValue)
		if ok && length >= min && (max < 0 || length <= max) {
			return true
		}
		f := vctx.MessageFormatter()
		f.AppendArgument("MinLength", min)
		f.AppendArgument("MaxLength", max)
		f.AppendArgument("TotalLength", length)
		return false
	}
}

// NewGreaterThanValidator fails unless the value is of type T and strictly
// greater than bound. Registers the ComparisonValue placeholder on failure.
func NewGreaterThanValidator[T cmp.Ordered](bound T, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"GreaterThanValidator",
		"'{PropertyName}' must be greater than '{ComparisonValue}'.",
		comparisonPredicate(bound, func(v, b T) bool { return v > b }),
		opts...)
}

// NewGreaterThanOrEqualValidator fails unless the value is of type T and
// greater than or equal to bound.
func NewGreaterThanOrEqualValidator[T cmp.Ordered](bound T, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"GreaterThanOrEqualValidator",
		"'{PropertyName}' must be greater than or equal to '{ComparisonValue}'.",
		comparisonPredicate(bound, func(v, b T) bool { return v >= b }),
		opts...)
}

// NewLessThanValidator fails unless the value is of type T and strictly less
// than bound.
func NewLessThanValidator[T cmp.Ordered](bound T, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"LessThanValidator",
		"'{PropertyName}' must be less than '{ComparisonValue}'.",
		comparisonPredicate(bound, func(v, b T) bool { return v < b }),
		opts...)
}

// NewLessThanOrEqualValidator fails unless the value is of type T and less
// than or equal to bound.
func NewLessThanOrEqualValidator[T cmp.Ordered](bound T, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"LessThanOrEqualValidator",
		"'{PropertyName}' must be less than or equal to '{ComparisonValue}'.",
		comparisonPredicate(bound, func(v, b T) bool { return v <= b }),
		opts...)
}

func comparisonPredicate[T cmp.Ordered](bound T, compare func(value, bound T) bool) Predicate {
	return func(vctx *ValidationContext) bool {
		if value, ok := vctx.PropertyValue.(T); ok && compare(value, bound) {
			return true
		}
		vctx.MessageFormatter().AppendArgument("ComparisonValue", bound)
		return false
	}
}

// NewEqualValidator fails unless the value equals expected. Equality is
// reflect.DeepEqual so slices and maps compare by content.
func NewEqualValidator(expected any, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"EqualValidator",
		"'{PropertyName}' must be equal to '{ComparisonValue}'.",
		func(vctx *ValidationContext) bool {
			if reflect.DeepEqual(vctx.PropertyValue, expected) {
				return true
			}
			vctx.MessageFormatter().AppendArgument("ComparisonValue", expected)
			return false
		},
		opts...)
}

// NewNotEqualValidator fails when the value equals forbidden.
func NewNotEqualValidator(forbidden any, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"NotEqualValidator",
		"'{PropertyName}' must not be equal to '{ComparisonValue}'.",
		func(vctx *ValidationContext) bool {
			if !reflect.DeepEqual(vctx.PropertyValue, forbidden) {
				return true
			}
			vctx.MessageFormatter().AppendArgument("ComparisonValue", forbidden)
			return false
		},
		opts...)
}

// NewMatchesValidator fails unless the value is a string matching the given
// expression. Registers the RegexPattern placeholder on failure.
func NewMatchesValidator(re *regexp.Regexp, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"RegularExpressionValidator",
		"'{PropertyName}' is not in the correct format.",
		func(vctx *ValidationContext) bool {
			if s, ok := vctx.PropertyValue.(string); ok && re.MatchString(s) {
				return true
			}
			vctx.MessageFormatter().AppendArgument("RegexPattern", re.String())
			return false
		},
		opts...)
}

// NewMustValidator wraps an arbitrary synchronous predicate. This is the raw
// form of the validator contract: everything else in this file is a
// pre-configured instance of the same shape.
func NewMustValidator(predicate Predicate, opts ...Option) *PredicateValidator {
	return NewPredicateValidator(
		"PredicateValidator",
		"The specified condition was not met for '{PropertyName}'.",
		predicate,
		opts...)
}

// NewMustValidatorWithContext wraps an arbitrary context-aware predicate,
// for checks that consult an external system.
func NewMustValidatorWithContext(predicate ContextPredicate, opts ...Option) *PredicateValidator {
	return NewContextPredicateValidator(
		"AsyncPredicateValidator",
		"The specified condition was not met for '{PropertyName}'.",
		predicate,
		opts...)
}

// isEmptyValue reports whether a value counts as empty: nil, a zero value,
// a whitespace-only string, or a zero-length collection.
func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmptyValue(rv.Elem().Interface())
	}
	return rv.IsZero()
}

// isNilValue reports whether a value is nil, including typed nils boxed in
// an interface.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// valueLength returns the rune count of a string or the element count of a
// collection. ok is false for values that have no length.
func valueLength(value any) (length int, ok bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len(), true
	case reflect.Ptr:
		if rv.IsNil() {
			return 0, false
		}
		return valueLength(rv.Elem().Interface())
	}
	return 0, false
}
