// Package metrics collects runtime memory readings and the Prometheus
// counters describing sort and search activity.
package metrics
