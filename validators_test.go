package fluentvalidation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateValue(t *testing.T, v *PredicateValidator, value any) []ValidationFailure {
	t.Helper()
	failures, err := v.Validate(NewValidationContext(nil, nil, "Value", "Value", value))
	require.NoError(t, err)
	return failures
}

func Test_isEmptyValue(t *testing.T) {
	var nilSlice []int
	var nilPtr *string
	filled := "x"

	tests := []struct {
		name  string
		value any
		empty bool
	}{
		{"Nil", nil, true},
		{"Empty String", "", true},
		{"Whitespace String", "   \t", true},
		{"Non-Empty String", "Alice", false},
		{"Zero Int", 0, true},
		{"Non-Zero Int", 7, false},
		{"Empty Slice", []int{}, true},
		{"Nil Slice", nilSlice, true},
		{"Non-Empty Slice", []int{1}, false},
		{"Empty Map", map[string]int{}, true},
		{"Nil Pointer", nilPtr, true},
		{"Pointer To Value", &filled, false},
		{"Zero Struct", struct{ A int }{}, true},
		{"Non-Zero Struct", struct{ A int }{A: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, isEmptyValue(tt.value))
		})
	}
}

func Test_isNilValue(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *int
	zero := 0

	assert.True(t, isNilValue(nil))
	assert.True(t, isNilValue(nilMap))
	assert.True(t, isNilValue(nilPtr))
	assert.False(t, isNilValue(0))
	assert.False(t, isNilValue(""))
	assert.False(t, isNilValue(&zero))
	assert.False(t, isNilValue([]int{}))
}

func TestNotNilValidator(t *testing.T) {
	v := NewNotNilValidator()

	assert.Len(t, validateValue(t, v, nil), 1)
	// Unlike NotEmpty, a present-but-zero value passes.
	assert.Empty(t, validateValue(t, v, ""))
	assert.Empty(t, validateValue(t, v, 0))
}

func TestLengthValidator(t *testing.T) {
	v := NewLengthValidator(2, 5)

	assert.Empty(t, validateValue(t, v, "ab"))
	assert.Empty(t, validateValue(t, v, "abcde"))
	assert.Empty(t, validateValue(t, v, []int{1, 2, 3}))

	failures := validateValue(t, v, "a")
	require.Len(t, failures, 1)
	assert.Equal(t, "'Value' must be between 2 and 5 characters. You entered 1 characters.", failures[0].ErrorMessage)

	values := failures[0].FormattedMessagePlaceholderValues
	assert.Equal(t, 2, values["MinLength"])
	assert.Equal(t, 5, values["MaxLength"])
	assert.Equal(t, 1, values["TotalLength"])
}

func TestLengthValidator_CountsRunes(t *testing.T) {
	v := NewLengthValidator(1, 3)
	assert.Empty(t, validateValue(t, v, "äöü"))
}

func TestMinAndMaxLengthValidators(t *testing.T) {
	min := NewMinLengthValidator(3)
	assert.Empty(t, validateValue(t, min, "abc"))
	failures := validateValue(t, min, "ab")
	require.Len(t, failures, 1)
	assert.Equal(t, "The length of 'Value' must be at least 3 characters. You entered 2 characters.", failures[0].ErrorMessage)

	max := NewMaxLengthValidator(3)
	assert.Empty(t, validateValue(t, max, "abc"))
	failures = validateValue(t, max, "abcd")
	require.Len(t, failures, 1)
	assert.Equal(t, "The length of 'Value' must be 3 characters or fewer. You entered 4 characters.", failures[0].ErrorMessage)
}

func TestComparisonValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator *PredicateValidator
		pass      []any
		fail      []any
	}{
		{
			name:      "GreaterThan",
			validator: NewGreaterThanValidator(18),
			pass:      []any{19, 100},
			fail:      []any{18, 3, "not an int"},
		},
		{
			name:      "GreaterThanOrEqual",
			validator: NewGreaterThanOrEqualValidator(18),
			pass:      []any{18, 19},
			fail:      []any{17},
		},
		{
			name:      "LessThan",
			validator: NewLessThanValidator(10.0),
			pass:      []any{9.5},
			fail:      []any{10.0, 11.0},
		},
		{
			name:      "LessThanOrEqual",
			validator: NewLessThanOrEqualValidator("m"),
			pass:      []any{"a", "m"},
			fail:      []any{"z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, value := range tt.pass {
				assert.Empty(t, validateValue(t, tt.validator, value), "value %v should pass", value)
			}
			for _, value := range tt.fail {
				assert.Len(t, validateValue(t, tt.validator, value), 1, "value %v should fail", value)
			}
		})
	}
}

func TestGreaterThanValidator_Message(t *testing.T) {
	v := NewGreaterThanValidator(18)

	failures := validateValue(t, v, 3)
	require.Len(t, failures, 1)
	assert.Equal(t, "'Value' must be greater than '18'.", failures[0].ErrorMessage)
	assert.Equal(t, "GreaterThanValidator", failures[0].ErrorCode)
	assert.Equal(t, 18, failures[0].FormattedMessagePlaceholderValues["ComparisonValue"])
}

func TestEqualAndNotEqualValidators(t *testing.T) {
	eq := NewEqualValidator("yes")
	assert.Empty(t, validateValue(t, eq, "yes"))
	failures := validateValue(t, eq, "no")
	require.Len(t, failures, 1)
	assert.Equal(t, "'Value' must be equal to 'yes'.", failures[0].ErrorMessage)

	// DeepEqual compares slice contents, not identity.
	eqSlice := NewEqualValidator([]int{1, 2})
	assert.Empty(t, validateValue(t, eqSlice, []int{1, 2}))
	assert.Len(t, validateValue(t, eqSlice, []int{2, 1}), 1)

	ne := NewNotEqualValidator("admin")
	assert.Empty(t, validateValue(t, ne, "user"))
	failures = validateValue(t, ne, "admin")
	require.Len(t, failures, 1)
	assert.Equal(t, "'Value' must not be equal to 'admin'.", failures[0].ErrorMessage)
}

func TestMatchesValidator(t *testing.T) {
	v := NewMatchesValidator(regexp.MustCompile(`^\d{5}$`))

	assert.Empty(t, validateValue(t, v, "10001"))

	failures := validateValue(t, v, "ABCDE")
	require.Len(t, failures, 1)
	assert.Equal(t, "'Value' is not in the correct format.", failures[0].ErrorMessage)
	assert.Equal(t, `^\d{5}$`, failures[0].FormattedMessagePlaceholderValues["RegexPattern"])

	// Non-string values never match.
	assert.Len(t, validateValue(t, v, 10001), 1)
}

func TestMustValidator(t *testing.T) {
	v := NewMustValidator(func(vctx *ValidationContext) bool {
		s, ok := vctx.PropertyValue.(string)
		return ok && s != "forbidden"
	})

	assert.Empty(t, validateValue(t, v, "fine"))

	failures := validateValue(t, v, "forbidden")
	require.Len(t, failures, 1)
	assert.Equal(t, "The specified condition was not met for 'Value'.", failures[0].ErrorMessage)
	assert.Equal(t, "PredicateValidator", failures[0].ErrorCode)
}

func TestValidatorMessageOverride(t *testing.T) {
	v := NewNotEmptyValidator(WithMessage("{PropertyName} is required"))

	failures := validateValue(t, v, "")
	require.Len(t, failures, 1)
	assert.Equal(t, "Value is required", failures[0].ErrorMessage)
}
