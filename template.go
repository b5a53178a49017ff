package fluentvalidation

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// messageTemplate is the parsed form of a failure message template such as
// "'{PropertyName}' must not be empty." A template is a flat sequence of
// literal text runs and named placeholders.
type messageTemplate struct {
	Segments []templateSegment `parser:"@@*"`
}

// templateSegment is a single run of a message template. Exactly one of the
// fields is set.
type templateSegment struct {
	Placeholder *string `parser:"@Placeholder"`
	Text        *string `parser:"| @Text"`
	Brace       *string `parser:"| @Brace"`
}

var (
	// A placeholder is "{Name}" or "{Name:format}" where format is a Go
	// fmt verb applied to the value at render time. A '{' that does not
	// open a well-formed placeholder is ordinary text.
	templateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Placeholder", Pattern: `\{[A-Za-z_][A-Za-z0-9_]*(:[^{}]+)?\}`},
		{Name: "Text", Pattern: `[^{]+`},
		{Name: "Brace", Pattern: `\{`},
	})
	templateParser = participle.MustBuild[messageTemplate](
		participle.Lexer(templateLexer),
	)
)

func parseMessageTemplate(template string) (*messageTemplate, error) {
	if template == "" {
		return &messageTemplate{}, nil
	}
	return templateParser.ParseString("", template)
}

// splitPlaceholder takes a raw placeholder token, including its braces, and
// returns the placeholder name and the optional format verb.
func splitPlaceholder(token string) (name string, format string) {
	inner := token[1 : len(token)-1]
	if idx := strings.IndexByte(inner, ':'); idx >= 0 {
		return inner[:idx], inner[idx+1:]
	}
	return inner, ""
}

// renderTemplate substitutes the given placeholder values into the template.
// Placeholders with no registered value are rendered verbatim so that a
// mistyped name stays visible in the resulting message rather than silently
// disappearing. A nil value renders as the empty string unless the
// placeholder carries an explicit format verb.
func renderTemplate(template string, values map[string]any) (string, error) {
	parsed, err := parseMessageTemplate(template)
	if err != nil {
		return "", fmt.Errorf("invalid message template %q: %w", template, err)
	}

	s := strings.Builder{}
	for _, seg := range parsed.Segments {
		switch {
		case seg.Placeholder != nil:
			name, format := splitPlaceholder(*seg.Placeholder)
			value, ok := values[name]
			if !ok {
				s.WriteString(*seg.Placeholder)
				continue
			}
			if format != "" {
				s.WriteString(fmt.Sprintf(format, value))
			} else if value != nil {
				s.WriteString(fmt.Sprintf("%v", value))
			}
		case seg.Text != nil:
			s.WriteString(*seg.Text)
		case seg.Brace != nil:
			s.WriteString(*seg.Brace)
		}
	}
	return s.String(), nil
}
