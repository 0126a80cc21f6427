// Package metrics records resolution and calculation outcomes in a private
// Prometheus registry.
package metrics
