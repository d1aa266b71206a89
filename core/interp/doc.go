// Package interp implements the command-processing pipeline: line
// tokenization, builtin dispatch, and external-process launching with
// foreground and background wait semantics.
package interp
