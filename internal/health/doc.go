// Package health derives execution-risk metrics from a task snapshot:
// per-task age, inactivity, and at-risk classification, plus aggregate
// status/ownership distributions and the daily stand-up summary.
//
// Everything here is a pure function over the snapshot and a caller-
// supplied current time. Nothing is cached and nothing mutates; every
// call recomputes from scratch.
package health
