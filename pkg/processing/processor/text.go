package processor

import (
	"fmt"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// Text processes string data.
type Text struct{}

// NewText creates a new text processor.
func NewText() *Text {
	return &Text{}
}

// Name returns the processor kind.
func (*Text) Name() string {
	return "text"
}

// Validate reports whether input is a string.
func (*Text) Validate(input interface{}) bool {
	_, ok := input.(string)
	return ok
}

// Process summarizes the input with its character and word counts. A word is
// a maximal run of non-whitespace characters.
func (t *Text) Process(input interface{}) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", nferrors.NewValidationError(t.Name(), "data", input, "not text").
			WithHint("provide a string")
	}

	charCount := 0
	wordCount := 0
	inWord := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			inWord = false
		} else if !inWord {
			wordCount++
			inWord = true
		}
		charCount++
	}

	return fmt.Sprintf("Processed text: %d characters, %d words", charCount, wordCount), nil
}
