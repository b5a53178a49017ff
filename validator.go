// Package fluentvalidation is the execution core of a rule-based
// object-validation library. For one property value and one rule it decides
// pass or fail, and on failure builds a fully-populated, human-readable
// failure record: rendered message, error code, optional severity and custom
// state, with placeholder substitution and collection-index context.
package fluentvalidation

import "context"

// Predicate is the synchronous validity check a concrete validator supplies.
// A false result is an ordinary validation failure, never an error.
type Predicate func(*ValidationContext) bool

// ContextPredicate is the context-aware validity check for validators that
// need to suspend, typically for a remote lookup. The predicate is
// responsible for honoring cancellation cooperatively; the core imposes no
// timeout of its own. A cancelled predicate should report itself unable to
// determine validity via the error, not report the value valid.
type ContextPredicate func(context.Context, *ValidationContext) (bool, error)

// PropertyValidator is the contract every concrete validation rule
// satisfies. PredicateValidator is the default implementation; rule types
// compose with or delegate to it rather than reimplementing the failure
// construction path.
type PropertyValidator interface {
	// Name identifies the validator, e.g. "NotEmptyValidator". The default
	// error-code resolution derives codes from it.
	Name() string

	// Options exposes the validator's read-only configuration for
	// introspection by the orchestration layer.
	Options() *ValidatorOptions

	// IsValid evaluates the synchronous predicate.
	IsValid(vctx *ValidationContext) bool

	// IsValidWithContext evaluates the context-aware predicate. When the
	// validator has none, it evaluates the synchronous predicate and
	// completes immediately, which keeps the two paths observably
	// equivalent.
	IsValidWithContext(ctx context.Context, vctx *ValidationContext) (bool, error)

	// Validate runs the synchronous path: an empty result when the
	// predicate holds, exactly one failure when it does not. The error is
	// non-nil only for configuration problems such as a failing message
	// builder, never for an ordinary failed validation.
	Validate(vctx *ValidationContext) ([]ValidationFailure, error)

	// ValidateWithContext runs the context-aware path with the same result
	// shape as Validate.
	ValidateWithContext(ctx context.Context, vctx *ValidationContext) ([]ValidationFailure, error)

	// ShouldValidateWithContext reports whether the rule runner must route
	// this validator through ValidateWithContext: true exactly when an
	// async condition is configured. The core does not self-select a path.
	ShouldValidateWithContext(vctx *ValidationContext) bool

	// PrepareMessageFormatterForValidationError loads the context's
	// formatter with the standard placeholders before a failure is built.
	PrepareMessageFormatterForValidationError(vctx *ValidationContext)

	// CreateValidationError builds the failure record for a context whose
	// predicate evaluated false, after the formatter has been prepared.
	CreateValidationError(vctx *ValidationContext) (ValidationFailure, error)
}

// PredicateValidator is the standard PropertyValidator: a required
// synchronous predicate, an optional context-aware predicate, and the
// options bag. Instances are immutable after construction, so one validator
// may serve any number of concurrent validations.
type PredicateValidator struct {
	name             string
	predicate        Predicate
	contextPredicate ContextPredicate
	options          *ValidatorOptions
}

// NewPredicateValidator builds a validator from a synchronous predicate.
// defaultTemplate is the message template used unless an option replaces it.
func NewPredicateValidator(name, defaultTemplate string, predicate Predicate, opts ...Option) *PredicateValidator {
	return &PredicateValidator{
		name:      name,
		predicate: predicate,
		options:   newValidatorOptions(defaultTemplate, opts),
	}
}

// NewContextPredicateValidator builds a validator whose real predicate needs
// a context, e.g. a remote uniqueness check. The synchronous path evaluates
// the same predicate with a background context and treats an error as
// failing, since an undeterminable value must not pass.
func NewContextPredicateValidator(name, defaultTemplate string, predicate ContextPredicate, opts ...Option) *PredicateValidator {
	v := &PredicateValidator{
		name:             name,
		contextPredicate: predicate,
		options:          newValidatorOptions(defaultTemplate, opts),
	}
	v.predicate = func(vctx *ValidationContext) bool {
		ok, err := predicate(context.Background(), vctx)
		return err == nil && ok
	}
	return v
}

func (v *PredicateValidator) Name() string { return v.name }

func (v *PredicateValidator) Options() *ValidatorOptions { return v.options }

func (v *PredicateValidator) IsValid(vctx *ValidationContext) bool {
	return v.predicate(vctx)
}

func (v *PredicateValidator) IsValidWithContext(ctx context.Context, vctx *ValidationContext) (bool, error) {
	if v.contextPredicate == nil {
		return v.predicate(vctx), nil
	}
	return v.contextPredicate(ctx, vctx)
}

func (v *PredicateValidator) ShouldValidateWithContext(vctx *ValidationContext) bool {
	return v.options.AsyncCondition() != nil
}

func (v *PredicateValidator) Validate(vctx *ValidationContext) ([]ValidationFailure, error) {
	if v.IsValid(vctx) {
		return nil, nil
	}
	return v.buildFailure(vctx)
}

func (v *PredicateValidator) ValidateWithContext(ctx context.Context, vctx *ValidationContext) ([]ValidationFailure, error) {
	ok, err := v.IsValidWithContext(ctx, vctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, nil
	}
	return v.buildFailure(vctx)
}

func (v *PredicateValidator) buildFailure(vctx *ValidationContext) ([]ValidationFailure, error) {
	v.PrepareMessageFormatterForValidationError(vctx)
	failure, err := v.CreateValidationError(vctx)
	if err != nil {
		return nil, err
	}
	return []ValidationFailure{failure}, nil
}

// PrepareMessageFormatterForValidationError registers PropertyName and the
// raw PropertyValue, then inherits the collection index from the root
// context when an element of a collection is being validated. A
// CollectionIndex the validator already registered itself wins over the
// inherited one: first write wins, so a keyed-collection validator keeps
// its own key.
func (v *PredicateValidator) PrepareMessageFormatterForValidationError(vctx *ValidationContext) {
	f := vctx.MessageFormatter()
	f.AppendPropertyName(vctx.displayNameOrFallback())
	f.AppendPropertyValue(vctx.PropertyValue)

	if idx, ok := vctx.Root.CollectionIndex(); ok && !f.HasPlaceholder(PlaceholderCollectionIndex) {
		f.AppendArgument(PlaceholderCollectionIndex, idx)
	}
}

// CreateValidationError builds the final failure record. The rule's message
// builder override, when present, replaces the default template rendering;
// error code, custom state, and severity are resolved in that order. Any
// error from a hook is a configuration error and propagates unmodified.
func (v *PredicateValidator) CreateValidationError(vctx *ValidationContext) (ValidationFailure, error) {
	msgCtx := MessageBuilderContext{
		Context:         vctx,
		MessageProvider: v.options.MessageProvider(),
		Validator:       v,
	}

	var message string
	var err error
	if builder := vctx.messageBuilder(); builder != nil {
		message, err = builder(msgCtx)
	} else {
		message, err = msgCtx.DefaultMessage()
	}
	if err != nil {
		return ValidationFailure{}, err
	}

	f := vctx.MessageFormatter()
	failure := ValidationFailure{
		PropertyName:                      vctx.PropertyName,
		ErrorMessage:                      message,
		AttemptedValue:                    vctx.PropertyValue,
		FormattedMessagePlaceholderValues: f.PlaceholderValues(),
		FormattedMessageArguments:         f.legacyArguments(),
	}

	if provider := v.options.ErrorCodeProvider(); provider != nil {
		failure.ErrorCode = provider(vctx)
	} else {
		failure.ErrorCode = vctx.Root.resolveErrorCode(v)
	}
	if provider := v.options.StateProvider(); provider != nil {
		failure.CustomState = provider(vctx)
	}
	if provider := v.options.SeverityProvider(); provider != nil {
		severity := provider(vctx)
		failure.Severity = &severity
	}
	return failure, nil
}
