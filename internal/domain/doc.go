// Package domain defines the core business entities and errors for the
// task tracker: the Task record, its closed status enumeration, and the
// optional-field update patch applied by the store.
package domain
