// Package orchestration runs one or more Fibonacci calculators for a resolved
// index and cross-checks their results. Metrics are fed through the Observer
// interface so this package does not depend on a metrics backend.
package orchestration
