package fluentvalidation

// Severity indicates how serious a validation failure is. Failures default
// to no severity at all; a severity only appears on a failure when the
// validator was configured with one.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	}
	return "Unknown"
}
