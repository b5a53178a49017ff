package fluentvalidation

// ErrorCodeResolver maps a validator to the error code its failures carry
// when the validator has no error-code source of its own. The orchestration
// layer owns the resolver, sets it on the RootContext before a run starts,
// and must not reconfigure it while validations are in flight.
type ErrorCodeResolver interface {
	ErrorCode(v PropertyValidator) string
}

type nameErrorCodeResolver struct{}

func (nameErrorCodeResolver) ErrorCode(v PropertyValidator) string {
	return v.Name()
}

// DefaultErrorCodeResolver derives the error code from the validator's name,
// so a NotEmptyValidator fails with code "NotEmptyValidator". Used whenever
// a RootContext carries no resolver of its own.
var DefaultErrorCodeResolver ErrorCodeResolver = nameErrorCodeResolver{}

// MapErrorCodeResolver remaps validator names to caller-defined codes,
// falling back to the validator's name for anything not in the table.
type MapErrorCodeResolver struct {
	codes map[string]string
}

func NewMapErrorCodeResolver(codes map[string]string) *MapErrorCodeResolver {
	return &MapErrorCodeResolver{codes: copyMap(codes)}
}

func (m *MapErrorCodeResolver) ErrorCode(v PropertyValidator) string {
	if code, ok := m.codes[v.Name()]; ok {
		return code
	}
	return v.Name()
}
