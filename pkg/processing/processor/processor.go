package processor

// Processor is the shared contract for all data processors.
type Processor interface {
	// Name returns a unique identifier for this processor kind.
	Name() string

	// Validate reports whether input is structurally acceptable.
	Validate(input interface{}) bool

	// Process computes a textual summary of the input. It returns a
	// ValidationError when Validate reports false.
	Process(input interface{}) (string, error)
}

// FormatOutput formats a processor result for display.
func FormatOutput(result string) string {
	return "Output: " + result
}
