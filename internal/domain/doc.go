// Package domain holds what the task and tasklist packages share: the
// sentinel errors handlers map to status codes, ValidationError for
// per-field failures, and Optional for PATCH fields that may be absent,
// null or set.
package domain
