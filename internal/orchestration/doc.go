// Package orchestration runs one or more multipliers concurrently on the same
// operands and compares their products. Progress display and result output
// are reached through the ProgressReporter and ResultPresenter interfaces so
// that the CLI, the REPL and the TUI share the same execution path.
package orchestration
