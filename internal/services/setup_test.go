package services

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shepherd/internal/events"
	"shepherd/internal/infra"
	"shepherd/internal/models/db_models"
	"shepherd/internal/models/request_models"
	"shepherd/internal/repositories"
	"shepherd/pkg/utils"
)

func init() {
	utils.SetSigningKey([]byte("service-test-secret"))
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	return db
}

func newTestDispatcher(t *testing.T) *events.Dispatcher {
	t.Helper()
	d := events.NewDispatcher(events.NewChannelBroker(), nil)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// recordingMail counts outbound messages so tests can assert on the
// notification side effects without a wire.
type recordingMail struct {
	mu       sync.Mutex
	welcomes []string
	thanks   []string
}

func (r *recordingMail) SendEmail(to, subject, body string) error { return nil }

func (r *recordingMail) SendWelcomeEmail(member *db_models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.welcomes = append(r.welcomes, member.Email)
	return nil
}

func (r *recordingMail) SendDonationThankYou(member *db_models.Member, amount string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.thanks = append(r.thanks, member.Email+" "+amount)
	return nil
}

func seedMember(t *testing.T, db *gorm.DB, firstName, lastName, email string) *db_models.Member {
	t.Helper()

	member := &db_models.Member{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		MembershipDate: "2024-01-15",
		Active:         true,
	}
	require.NoError(t, repositories.NewMemberRepository(db).Insert(context.Background(), member))
	return member
}

func memberRequest(firstName, lastName, email string) request_models.MemberRequest {
	return request_models.MemberRequest{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		MembershipDate: "2024-03-01",
	}
}
