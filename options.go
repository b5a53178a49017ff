package fluentvalidation

// MessageProvider produces the failure message template for a context.
type MessageProvider func(*ValidationContext) string

// ErrorCodeProvider produces the failure's error code for a context.
type ErrorCodeProvider func(*ValidationContext) string

// StateProvider produces an opaque caller-defined value attached to the
// failure as custom state.
type StateProvider func(*ValidationContext) any

// SeverityProvider produces the failure's severity for a context.
type SeverityProvider func(*ValidationContext) Severity

// AsyncCondition is a precondition that must be evaluated asynchronously
// (for example a remote lookup). Its presence on a validator forces callers
// through the context-aware validation path; the condition itself is
// invoked by the rule runner, not by this core.
type AsyncCondition func(*ValidationContext) bool

// ValidatorOptions is the per-validator configuration bag: the message
// source plus the optional hooks consulted while a failure is built. It is
// populated once during validator construction and read-only afterwards,
// which is what makes a single validator instance safe for concurrent
// validations.
type ValidatorOptions struct {
	messageProvider   MessageProvider
	asyncCondition    AsyncCondition
	errorCodeProvider ErrorCodeProvider
	stateProvider     StateProvider
	severityProvider  SeverityProvider
}

// Option configures a validator at construction time.
type Option func(*ValidatorOptions)

// WithMessage replaces the validator's default message template.
func WithMessage(template string) Option {
	return func(o *ValidatorOptions) {
		o.messageProvider = func(*ValidationContext) string { return template }
	}
}

// WithMessageProvider replaces the validator's message source with a
// context-dependent one.
func WithMessageProvider(p MessageProvider) Option {
	return func(o *ValidatorOptions) { o.messageProvider = p }
}

// WithErrorCode sets a fixed error code, overriding the resolver lookup.
func WithErrorCode(code string) Option {
	return func(o *ValidatorOptions) {
		o.errorCodeProvider = func(*ValidationContext) string { return code }
	}
}

// WithErrorCodeProvider sets a context-dependent error-code source.
func WithErrorCodeProvider(p ErrorCodeProvider) Option {
	return func(o *ValidatorOptions) { o.errorCodeProvider = p }
}

// WithState attaches a custom-state provider; its result is carried on the
// failure for the caller's own use.
func WithState(p StateProvider) Option {
	return func(o *ValidatorOptions) { o.stateProvider = p }
}

// WithSeverity sets a fixed severity for failures of this validator.
func WithSeverity(s Severity) Option {
	return func(o *ValidatorOptions) {
		o.severityProvider = func(*ValidationContext) Severity { return s }
	}
}

// WithSeverityProvider sets a context-dependent severity source.
func WithSeverityProvider(p SeverityProvider) Option {
	return func(o *ValidatorOptions) { o.severityProvider = p }
}

// WithAsyncCondition attaches an asynchronous precondition. Configuring one
// makes ShouldValidateWithContext report true so the rule runner routes this
// validator through the context-aware path.
func WithAsyncCondition(c AsyncCondition) Option {
	return func(o *ValidatorOptions) { o.asyncCondition = c }
}

func newValidatorOptions(defaultTemplate string, opts []Option) *ValidatorOptions {
	o := &ValidatorOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.messageProvider == nil {
		o.messageProvider = func(*ValidationContext) string { return defaultTemplate }
	}
	return o
}

// MessageProvider returns the configured message source. Never nil.
func (o *ValidatorOptions) MessageProvider() MessageProvider { return o.messageProvider }

// AsyncCondition returns the configured asynchronous precondition, or nil.
func (o *ValidatorOptions) AsyncCondition() AsyncCondition { return o.asyncCondition }

// ErrorCodeProvider returns the configured error-code source, or nil.
func (o *ValidatorOptions) ErrorCodeProvider() ErrorCodeProvider { return o.errorCodeProvider }

// StateProvider returns the configured custom-state provider, or nil.
func (o *ValidatorOptions) StateProvider() StateProvider { return o.stateProvider }

// SeverityProvider returns the configured severity provider, or nil.
func (o *ValidatorOptions) SeverityProvider() SeverityProvider { return o.severityProvider }
