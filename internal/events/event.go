// Package events routes domain events ("member created", "donation created")
// from the services that emit them to their audit and notification consumers.
package events

import (
	"encoding/json"
	"time"
)

// Type identifies a domain event.
type Type string

const (
	MemberCreated   Type = "member.created"
	DonationCreated Type = "donation.created"
)

// Queue names carried on the broker. Each event type maps to exactly one
// queue.
const (
	MemberCreatedQueue   = "member.created.queue"
	DonationCreatedQueue = "donation.created.queue"
)

// QueueFor returns the broker queue carrying events of type t.
func QueueFor(t Type) string {
	switch t {
	case MemberCreated:
		return MemberCreatedQueue
	case DonationCreated:
		return DonationCreatedQueue
	}
	return string(t) + ".queue"
}

// Envelope is the wire form of an event on a queue.
type Envelope struct {
	Event   Type            `json:"event"`
	Payload json.RawMessage `json:"payload"`
	SentAt  time.Time       `json:"sent_at"`
}

func NewEnvelope(t Type, payload any) (*Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Event:   t,
		Payload: body,
		SentAt:  time.Now().UTC(),
	}, nil
}

func (e *Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
