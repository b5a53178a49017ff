package fluentvalidation

// RootContext carries state shared across one whole validation run. It is
// created by the orchestration layer, handed to every ValidationContext in
// the run, and configured before validation starts. During validation it is
// read concurrently by in-flight property validations, so reconfiguring the
// resolver mid-run is a caller error; the collection index is written only
// by the single iterator that owns the run.
type RootContext struct {
	// Data is a free-form bag shared across the run. Ancestor logic writes
	// it, leaf validators may read it. The collection index deliberately
	// does not live here; it has a typed field below.
	Data map[string]any

	// ErrorCodeResolver maps a validator to its error code when the
	// validator carries no error-code source of its own. Nil means the
	// name-derived default.
	ErrorCodeResolver ErrorCodeResolver

	collectionIndex    int
	hasCollectionIndex bool
}

func NewRootContext() *RootContext {
	return &RootContext{
		Data: map[string]any{},
	}
}

// SetCollectionIndex records the position of the collection element
// currently being validated. Called by the each-item iterator before it
// validates element i.
func (r *RootContext) SetCollectionIndex(i int) {
	r.collectionIndex = i
	r.hasCollectionIndex = true
}

// ClearCollectionIndex removes the current collection index, typically once
// iteration has finished.
func (r *RootContext) ClearCollectionIndex() {
	r.collectionIndex = 0
	r.hasCollectionIndex = false
}

// CollectionIndex returns the current collection index, if one is set.
func (r *RootContext) CollectionIndex() (int, bool) {
	return r.collectionIndex, r.hasCollectionIndex
}

func (r *RootContext) resolveErrorCode(v PropertyValidator) string {
	if r.ErrorCodeResolver != nil {
		return r.ErrorCodeResolver.ErrorCode(v)
	}
	return DefaultErrorCodeResolver.ErrorCode(v)
}

// MessageBuilder overrides how the final failure message is produced. A rule
// that carries one takes full control of message construction; the default
// template path is still reachable through MessageBuilderContext.
type MessageBuilder func(MessageBuilderContext) (string, error)

// Rule is this core's view of the owning rule a validator is attached to.
// The rule-composition layer implements it; the core only asks whether the
// rule overrides message building.
type Rule interface {
	// MessageBuilder returns the rule's message-building override, or nil
	// when the default message path applies.
	MessageBuilder() MessageBuilder
}

// ValidationContext carries everything one property-validation attempt needs:
// the value under test, its names, the owning rule, and the run-wide root
// context. One instance serves exactly one attempt and must not be shared
// across concurrent attempts; its MessageFormatter is mutated while a
// failure is built.
type ValidationContext struct {
	Root          *RootContext
	Rule          Rule
	PropertyName  string
	DisplayName   string
	PropertyValue any

	formatter *MessageFormatter
}

// NewValidationContext creates the context for a single validation attempt.
// A nil root gets a fresh, empty RootContext. Rule may be nil when the
// validator is invoked outside rule composition.
func NewValidationContext(root *RootContext, rule Rule, propertyName, displayName string, value any) *ValidationContext {
	if root == nil {
		root = NewRootContext()
	}
	return &ValidationContext{
		Root:          root,
		Rule:          rule,
		PropertyName:  propertyName,
		DisplayName:   displayName,
		PropertyValue: value,
	}
}

// MessageFormatter returns the formatter owned by this context, creating it
// on first use.
func (c *ValidationContext) MessageFormatter() *MessageFormatter {
	if c.formatter == nil {
		c.formatter = NewMessageFormatter()
	}
	return c.formatter
}

// messageBuilder returns the owning rule's message-building override, or
// nil when there is no rule or the rule carries none.
func (c *ValidationContext) messageBuilder() MessageBuilder {
	if c.Rule == nil {
		return nil
	}
	return c.Rule.MessageBuilder()
}

// displayNameOrFallback returns the display name, falling back to the raw
// property name when no display name was supplied.
func (c *ValidationContext) displayNameOrFallback() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.PropertyName
}

// MessageBuilderContext is handed to a rule's MessageBuilder override. It
// exposes the failing validator, the configured message source, and the
// validation context, so an override can inspect which rule failed and can
// still fall back to the default message.
type MessageBuilderContext struct {
	Context         *ValidationContext
	MessageProvider MessageProvider
	Validator       PropertyValidator
}

// DefaultMessage renders the configured message source through the context's
// formatter, exactly as the default message path would.
func (c MessageBuilderContext) DefaultMessage() (string, error) {
	template := c.MessageProvider(c.Context)
	return c.Context.MessageFormatter().BuildMessage(template)
}
