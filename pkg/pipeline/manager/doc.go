// Package manager provides a registry of pipelines with lookup by identifier
// and sequential chaining.
//
// Registration enforces unique pipeline identifiers so lookup is always
// unambiguous. Chaining threads each pipeline's output into the next and
// stops at the first failing step; the error is propagated as a typed error,
// never encoded into the output value.
package manager
