package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"contractapi/internal/extract"
	"contractapi/internal/lock"
	"contractapi/internal/messaging"
	msgMocks "contractapi/internal/messaging/mocks"
	"contractapi/internal/model"
	repoMocks "contractapi/internal/repository/mocks"
	storeMocks "contractapi/internal/storage/mocks"
)

// fixedNow is 2025-03-10 15:30 UTC; StartOfDay is 2025-03-10 00:00 UTC.
var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func daysFromToday(n int) *time.Time {
	t := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return &t
}

func strPtr(s string) *string { return &s }

type fakeExtractor struct {
	res *extract.Result
	err error
}

func (f fakeExtractor) Extract(context.Context, extract.Request) (*extract.Result, error) {
	return f.res, f.err
}

type fakeLocker struct {
	err      error
	released bool
}

func (f *fakeLocker) Acquire(context.Context, string, time.Duration) (func(context.Context) error, error) {
	if f.err != nil {
		return nil, f.err
	}
	return func(context.Context) error {
		f.released = true
		return nil
	}, nil
}

var _ lock.Locker = (*fakeLocker)(nil)

// deps holds every mock a service test may need.
type deps struct {
	store         *storeMocks.MockStorage
	files         *repoMocks.MockFileRepository
	contracts     *repoMocks.MockContractRepository
	users         *repoMocks.MockUserRepository
	notifications *repoMocks.MockNotificationRepository
	activities    *repoMocks.MockActivityRepository
	invitations   *repoMocks.MockInvitationRepository
	reports       *repoMocks.MockReportRepository
	sms           *msgMocks.MockSMSSender
	mailer        *msgMocks.MockMailer
}

func newDeps() *deps {
	return &deps{
		store:         new(storeMocks.MockStorage),
		files:         new(repoMocks.MockFileRepository),
		contracts:     new(repoMocks.MockContractRepository),
		users:         new(repoMocks.MockUserRepository),
		notifications: new(repoMocks.MockNotificationRepository),
		activities:    new(repoMocks.MockActivityRepository),
		invitations:   new(repoMocks.MockInvitationRepository),
		reports:       new(repoMocks.MockReportRepository),
		sms:           new(msgMocks.MockSMSSender),
		mailer:        new(msgMocks.MockMailer),
	}
}

func (d *deps) activityService() *activityService {
	s := NewActivityService(d.activities, zap.NewNop()).(*activityService)
	s.now = clock
	return s
}

func (d *deps) notificationService() *notificationService {
	s := NewNotificationService(d.notifications, d.sms, messaging.NoopPublisher{}, "US", zap.NewNop(), nil).(*notificationService)
	s.now = clock
	return s
}

func (d *deps) fileService(ex extract.Extractor) *fileService {
	s := NewFileService(FileServiceDeps{
		Store:         d.store,
		Files:         d.files,
		Contracts:     d.contracts,
		Users:         d.users,
		Extractor:     ex,
		Notifications: d.notificationService(),
		Activities:    d.activityService(),
		PresignExpiry: 15 * time.Minute,
		Log:           zap.NewNop(),
	}).(*fileService)
	s.now = clock
	return s
}

func (d *deps) contractService() ContractService {
	return NewContractService(d.contracts, d.files, d.users, d.notificationService(), d.activityService(), zap.NewNop(), nil)
}

func (d *deps) sweep(l lock.Locker) *expirySweep {
	s := NewExpirySweep(d.contracts, d.users, d.notifications, d.notificationService(), l, zap.NewNop(), nil).(*expirySweep)
	s.now = clock
	return s
}

func (d *deps) invitationService() *invitationService {
	s := NewInvitationService(d.invitations, d.users, d.mailer, d.activityService(), 0, zap.NewNop(), nil).(*invitationService)
	s.now = clock
	return s
}

// echo returns whatever was passed to a repository Create.
func echoActivity(a *model.RecentActivity) *model.RecentActivity { return a }
func echoNotification(n *model.Notification) *model.Notification { return n }
func echoContract(c *model.Contract) *model.Contract             { return c }
func echoFile(f *model.File) *model.File                         { return f }
func echoInvitation(i *model.Invitation) *model.Invitation { return i }
func echoReport(r *model.Report) *model.Report             { return r }
func echoUser(u *model.User) *model.User                   { return u }
