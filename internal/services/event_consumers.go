package services

import (
	"context"
	"encoding/json"
	"fmt"

	"shepherd/internal/events"
	"shepherd/internal/models/db_models"
	"shepherd/internal/repositories"
)

// RegisterEventConsumers attaches the audit and mail consumers to the
// dispatcher. Audit consumers run on the queue side; mail consumers run
// directly in the publisher's call, matching the notification path that
// bypasses the queue.
func RegisterEventConsumers(
	dispatcher *events.Dispatcher,
	audit AuditServiceInterface,
	mail MailServiceInterface,
	memberRepo repositories.MemberRepository,
) error {

	err := dispatcher.SubscribeQueued(events.MemberCreated, events.Consumer{
		Name: "audit-member-created",
		Handle: func(ctx context.Context, payload json.RawMessage) error {
			var member db_models.Member
			if err := json.Unmarshal(payload, &member); err != nil {
				return err
			}
			audit.LogMemberCreated(fmt.Sprintf("member: %s <%s>", member.FullName(), member.Email))
			return nil
		},
	})
	if err != nil {
		return err
	}

	err = dispatcher.SubscribeQueued(events.DonationCreated, events.Consumer{
		Name: "audit-donation-created",
		Handle: func(ctx context.Context, payload json.RawMessage) error {
			var donation db_models.Donation
			if err := json.Unmarshal(payload, &donation); err != nil {
				return err
			}
			audit.LogDonationCreated(fmt.Sprintf("donation: %s %s from member %s",
				donation.Amount(), donation.DonationType, donation.MemberID))
			return nil
		},
	})
	if err != nil {
		return err
	}

	dispatcher.SubscribeDirect(events.MemberCreated, events.Consumer{
		Name: "mail-welcome",
		Handle: func(ctx context.Context, payload json.RawMessage) error {
			var member db_models.Member
			if err := json.Unmarshal(payload, &member); err != nil {
				return err
			}
			if err := mail.SendWelcomeEmail(&member); err != nil {
				return err
			}
			audit.LogEmailSent("welcome email to " + member.Email)
			return nil
		},
	})

	dispatcher.SubscribeDirect(events.DonationCreated, events.Consumer{
		Name: "mail-donation-thank-you",
		Handle: func(ctx context.Context, payload json.RawMessage) error {
			var donation db_models.Donation
			if err := json.Unmarshal(payload, &donation); err != nil {
				return err
			}
			if donation.Anonymous {
				return nil
			}
			member, err := memberRepo.FindById(ctx, donation.MemberID.String())
			if err != nil {
				return err
			}
			if member == nil {
				return fmt.Errorf("donor %s not found", donation.MemberID)
			}
			if err := mail.SendDonationThankYou(member, donation.Amount()); err != nil {
				return err
			}
			audit.LogEmailSent("donation thank-you to " + member.Email)
			return nil
		},
	})

	return nil
}

// AuditErrorSink records consumer failures as audit error entries.
func AuditErrorSink(audit AuditServiceInterface) events.ErrorSink {
	return func(event events.Type, consumer string, err error) {
		audit.LogError(fmt.Sprintf("event %s, consumer %s: %v", event, consumer, err))
	}
}
