package services

import (
	"log"
	"time"
)

// AuditEntry records one audited action.
type AuditEntry struct {
	Action    string    `json:"action"`
	Data      string    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
}

type AuditServiceInterface interface {
	LogMemberCreated(data string) AuditEntry
	LogDonationCreated(data string) AuditEntry
	LogEmailSent(data string) AuditEntry
	LogError(data string) AuditEntry
	LogAuthentication(username string, success bool) AuditEntry
}

// AuditService writes audit lines to the process log. It is the queue-side
// consumer of the created-entity events and the sink for pipeline errors.
type AuditService struct{}

func NewAuditService() AuditServiceInterface {
	return &AuditService{}
}

func (a *AuditService) record(action, data string, success bool) AuditEntry {
	if success {
		log.Printf("audit: %s: %s", action, data)
	} else {
		log.Printf("audit: %s (failed): %s", action, data)
	}
	return AuditEntry{
		Action:    action,
		Data:      data,
		Timestamp: time.Now(),
		Success:   success,
	}
}

func (a *AuditService) LogMemberCreated(data string) AuditEntry {
	return a.record("MEMBER_CREATED", data, true)
}

func (a *AuditService) LogDonationCreated(data string) AuditEntry {
	return a.record("DONATION_CREATED", data, true)
}

func (a *AuditService) LogEmailSent(data string) AuditEntry {
	return a.record("EMAIL_SENT", data, true)
}

func (a *AuditService) LogError(data string) AuditEntry {
	return a.record("ERROR_OCCURRED", data, false)
}

func (a *AuditService) LogAuthentication(username string, success bool) AuditEntry {
	return a.record("USER_AUTHENTICATION", "username: "+username, success)
}
