package model

import "time"

// Audit entry statuses.
const (
	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"
)

// AuditLog records one administrative operation against GitHub.
type AuditLog struct {
	ID           string // uuid
	Action       string // e.g. create_repository, merge_pull_request
	ResourceType string // repository, pull_request, branch, release, issue
	ResourceName string
	User         string
	Status       string
	ErrorMessage string
	Timestamp    time.Time
}
