package fluentvalidation

// Well-known placeholder names registered by the validation core itself.
// Concrete validators are free to register additional placeholders of their
// own (for example MinLength or ComparisonValue).
const (
	PlaceholderPropertyName    = "PropertyName"
	PlaceholderPropertyValue   = "PropertyValue"
	PlaceholderCollectionIndex = "CollectionIndex"
)

// MessageFormatter collects named placeholder values for a single validation
// attempt and substitutes them into a message template. A formatter is owned
// by exactly one ValidationContext, populated incrementally while a failure
// is prepared, consumed once when the final message is built, and then
// discarded. It is not safe for concurrent use.
type MessageFormatter struct {
	placeholderValues map[string]any
	// placeholderOrder preserves insertion order so the legacy positional
	// projection is deterministic. Lookup goes through the map.
	placeholderOrder    []string
	additionalArguments []any
}

func NewMessageFormatter() *MessageFormatter {
	return &MessageFormatter{
		placeholderValues: map[string]any{},
	}
}

// AppendArgument registers a named placeholder value. Registering the same
// name again replaces the previous value without changing its position in
// the insertion order.
func (f *MessageFormatter) AppendArgument(name string, value any) {
	if _, exists := f.placeholderValues[name]; !exists {
		f.placeholderOrder = append(f.placeholderOrder, name)
	}
	f.placeholderValues[name] = value
}

// AppendPropertyName registers the PropertyName placeholder.
func (f *MessageFormatter) AppendPropertyName(name string) {
	f.AppendArgument(PlaceholderPropertyName, name)
}

// AppendPropertyValue registers the PropertyValue placeholder with the raw
// value under test. The value is not stringified here; rendering happens at
// formatting time so a template format verb can still apply.
func (f *MessageFormatter) AppendPropertyValue(value any) {
	f.AppendArgument(PlaceholderPropertyValue, value)
}

// AppendAdditionalArgument adds a positional argument.
//
// Deprecated: positional arguments exist only for compatibility with callers
// that consume ValidationFailure.FormattedMessageArguments. Use
// AppendArgument with a placeholder name instead.
func (f *MessageFormatter) AppendAdditionalArgument(value any) {
	f.additionalArguments = append(f.additionalArguments, value)
}

// HasPlaceholder reports whether a value has been registered under the given
// placeholder name.
func (f *MessageFormatter) HasPlaceholder(name string) bool {
	_, ok := f.placeholderValues[name]
	return ok
}

// PlaceholderValue returns the value registered under the given name.
func (f *MessageFormatter) PlaceholderValue(name string) (any, bool) {
	v, ok := f.placeholderValues[name]
	return v, ok
}

// PlaceholderNames returns the registered placeholder names in ascending
// order.
func (f *MessageFormatter) PlaceholderNames() []string {
	return sortedKeys(f.placeholderValues)
}

// PlaceholderValues returns a copy of the registered placeholder map.
func (f *MessageFormatter) PlaceholderValues() map[string]any {
	return copyMap(f.placeholderValues)
}

// legacyArguments builds the compatibility projection consumed by
// ValidationFailure.FormattedMessageArguments: the placeholder values in
// insertion order, followed by any deprecated positional arguments. It is
// derived from the placeholder map, not an independent source of truth.
func (f *MessageFormatter) legacyArguments() []any {
	args := make([]any, 0, len(f.placeholderOrder)+len(f.additionalArguments))
	for _, name := range f.placeholderOrder {
		args = append(args, f.placeholderValues[name])
	}
	return append(args, f.additionalArguments...)
}

// BuildMessage substitutes every registered placeholder into the template
// and returns the finished message. A malformed template is a configuration
// error and is returned to the caller unrendered.
func (f *MessageFormatter) BuildMessage(template string) (string, error) {
	return renderTemplate(template, f.placeholderValues)
}
