package processor

import (
	"fmt"
	"strings"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// severity maps a recognized log level prefix to its alert tag.
type severity struct {
	prefix string
	tag    string
}

// Prefix order matters: longer prefixes are never shadowed by shorter ones here,
// but the recognized set is closed.
var severities = []severity{
	{prefix: "ERROR", tag: "ALERT"},
	{prefix: "WARNING", tag: "WARNING"},
	{prefix: "INFO", tag: "INFO"},
}

// LogClassifier processes log entries with a recognized severity prefix.
type LogClassifier struct{}

// NewLogClassifier creates a new log classifier.
func NewLogClassifier() *LogClassifier {
	return &LogClassifier{}
}

// Name returns the processor kind.
func (*LogClassifier) Name() string {
	return "log-classifier"
}

// Validate reports whether input is a string starting with ERROR, WARNING, or INFO.
func (*LogClassifier) Validate(input interface{}) bool {
	s, ok := input.(string)
	if !ok {
		return false
	}
	return classify(s) != nil
}

// Process maps the entry's severity prefix to a tagged alert string carrying
// the message remainder.
func (l *LogClassifier) Process(input interface{}) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", nferrors.NewValidationError(l.Name(), "data", input, "not a log entry").
			WithHint("provide a string")
	}

	sev := classify(s)
	if sev == nil {
		return "", nferrors.NewValidationError(l.Name(), "data", input, "unrecognized severity").
			WithHint("log entries must start with ERROR, WARNING, or INFO")
	}

	// The character after the prefix is the separator and is skipped.
	rest := s[len(sev.prefix):]
	if rest != "" {
		rest = rest[1:]
	}

	return fmt.Sprintf("[%s] %s level detected:%s", sev.tag, sev.prefix, rest), nil
}

func classify(s string) *severity {
	for i := range severities {
		if strings.HasPrefix(s, severities[i].prefix) {
			return &severities[i]
		}
	}
	return nil
}
