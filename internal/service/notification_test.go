package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contractapi/internal/messaging"
	"contractapi/internal/model"
	"contractapi/internal/repository"
)

func TestNotificationService_Notify(t *testing.T) {
	ctx := context.Background()
	in := NewNotification{UserID: "U1", Title: "Contract Assigned", Message: "You have been assigned.", Type: model.NotificationContractAssigned}
	enabled := &model.NotificationType{Name: model.NotificationContractAssigned, Enabled: true}

	tests := []struct {
		name       string
		setupMocks func(d *deps)
		wantErr    error
		wantSMS    Outcome
	}{
		{
			name: "unknown type writes nothing",
			setupMocks: func(d *deps) {
				d.notifications.On("FindType", ctx, model.NotificationContractAssigned).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrUnknownNotificationType,
		},
		{
			name: "disabled type writes nothing",
			setupMocks: func(d *deps) {
				d.notifications.On("FindType", ctx, model.NotificationContractAssigned).
					Return(&model.NotificationType{Name: model.NotificationContractAssigned}, nil)
			},
			wantErr: ErrUnknownNotificationType,
		},
		{
			name: "push disabled skips sms",
			setupMocks: func(d *deps) {
				d.notifications.On("FindType", ctx, model.NotificationContractAssigned).Return(enabled, nil)
				d.notifications.On("Create", ctx, mock.Anything).Return(echoNotification, nil)
				d.notifications.On("FindSettings", ctx, "U1").
					Return(&model.NotificationSettings{UserID: "U1", PushEnabled: false, PhoneNumber: strPtr("+14155552671")}, nil)
			},
			wantSMS: Outcome{Effect: "sms", OK: true},
		},
		{
			name: "type outside allow-list skips sms",
			setupMocks: func(d *deps) {
				d.notifications.On("FindType", ctx, model.NotificationContractAssigned).Return(enabled, nil)
				d.notifications.On("Create", ctx, mock.Anything).Return(echoNotification, nil)
				d.notifications.On("FindSettings", ctx, "U1").Return(&model.NotificationSettings{
					UserID: "U1", PushEnabled: true, PhoneNumber: strPtr("+14155552671"),
					NotificationTypes: []string{model.NotificationContractExpiry},
				}, nil)
			},
			wantSMS: Outcome{Effect: "sms", OK: true},
		},
		{
			name: "sms sent to normalized number",
			setupMocks: func(d *deps) {
				d.notifications.On("FindType", ctx, model.NotificationContractAssigned).Return(enabled, nil)
				d.notifications.On("Create", ctx, mock.Anything).Return(echoNotification, nil)
				d.notifications.On("FindSettings", ctx, "U1").
					Return(&model.NotificationSettings{UserID: "U1", PushEnabled: true, PhoneNumber: strPtr("(415) 555-2671")}, nil)
				d.sms.On("Send", ctx, messaging.SMS{To: "+14155552671", Body: "Contract Assigned: You have been assigned."}).Return(nil)
			},
			wantSMS: Outcome{Effect: "sms", OK: true},
		},
		{
			name: "sms failure keeps the notification",
			setupMocks: func(d *deps) {
				d.notifications.On("FindType", ctx, model.NotificationContractAssigned).Return(enabled, nil)
				d.notifications.On("Create", ctx, mock.Anything).Return(echoNotification, nil)
				d.notifications.On("FindSettings", ctx, "U1").
					Return(&model.NotificationSettings{UserID: "U1", PushEnabled: true, PhoneNumber: strPtr("+14155552671")}, nil)
				d.sms.On("Send", ctx, mock.Anything).Return(errors.New("twilio down"))
			},
			wantSMS: Outcome{Effect: "sms", Error: "twilio down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			tt.setupMocks(d)

			res, err := d.notificationService().Notify(ctx, in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				d.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				d.sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "U1", res.Notification.UserID)
			assert.False(t, res.Notification.Read)
			assert.Equal(t, fixedNow, res.Notification.CreatedAt)
			require.Len(t, res.SideEffects, 2)
			assert.Equal(t, tt.wantSMS.Effect, res.SideEffects[0].Effect)
			assert.Equal(t, tt.wantSMS.OK, res.SideEffects[0].OK)
			assert.Equal(t, tt.wantSMS.Error, res.SideEffects[0].Error)
			assert.Equal(t, Outcome{Effect: "event", OK: true}, res.SideEffects[1])
			d.notifications.AssertExpectations(t)
			d.sms.AssertExpectations(t)
		})
	}
}

func TestNotificationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("requires user", func(t *testing.T) {
		d := newDeps()
		_, err := d.notificationService().Create(ctx, NewNotification{Type: "anything"})
		assert.ErrorIs(t, err, ErrUserRequired)
	})

	t.Run("stores without type check", func(t *testing.T) {
		d := newDeps()
		d.notifications.On("Create", ctx, mock.MatchedBy(func(n *model.Notification) bool {
			return n.Type == "custom" && n.ID != ""
		})).Return(echoNotification, nil)

		n, err := d.notificationService().Create(ctx, NewNotification{UserID: "U1", Type: "custom"})

		require.NoError(t, err)
		assert.Equal(t, "custom", n.Type)
		d.notifications.AssertNotCalled(t, "FindType", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(d *deps)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "n-1",
			setupMocks: func(d *deps) {
				d.notifications.On("SetRead", ctx, "n-1", true).Return(nil)
			},
		},
		{
			name:       "validation - empty id",
			setupMocks: func(d *deps) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "n-x",
			setupMocks: func(d *deps) {
				d.notifications.On("SetRead", ctx, "n-x", true).Return(sql.ErrNoRows)
			},
			wantErr: ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			tt.setupMocks(d)

			err := d.notificationService().MarkRead(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			d.notifications.AssertExpectations(t)
		})
	}
}

func TestNotificationService_ListForUser(t *testing.T) {
	ctx := context.Background()
	d := newDeps()
	d.notifications.On("ListForUser", ctx, "U1", true, repository.PageQuery{Limit: 100, Offset: 0}).
		Return(&repository.PageResult[model.Notification]{Items: []model.Notification{{ID: "n-1"}}, Total: 1}, nil)

	res, err := d.notificationService().ListForUser(ctx, "U1", true, 500, -3)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	d.notifications.AssertExpectations(t)
}

func TestNotificationService_GetSettings_Defaults(t *testing.T) {
	ctx := context.Background()
	d := newDeps()
	d.notifications.On("FindSettings", ctx, "U1").Return(nil, sql.ErrNoRows)

	st, err := d.notificationService().GetSettings(ctx, "U1")

	require.NoError(t, err)
	assert.True(t, st.EmailEnabled)
	assert.False(t, st.PushEnabled)
	assert.Equal(t, "instant", st.Frequency)
	assert.Empty(t, st.NotificationTypes)
}

func TestNotificationService_UpsertSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes phone", func(t *testing.T) {
		d := newDeps()
		d.notifications.On("UpsertSettings", ctx, mock.MatchedBy(func(s *model.NotificationSettings) bool {
			return *s.PhoneNumber == "+14155552671" && s.Frequency == "instant"
		})).Return(&model.NotificationSettings{UserID: "U1", PhoneNumber: strPtr("+14155552671")}, nil)

		st, err := d.notificationService().UpsertSettings(ctx, &model.NotificationSettings{
			UserID: "U1", PushEnabled: true, PhoneNumber: strPtr("415-555-2671"),
		})

		require.NoError(t, err)
		assert.Equal(t, "+14155552671", *st.PhoneNumber)
		d.notifications.AssertExpectations(t)
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		d := newDeps()

		_, err := d.notificationService().UpsertSettings(ctx, &model.NotificationSettings{
			UserID: "U1", PhoneNumber: strPtr("12"),
		})

		assert.ErrorIs(t, err, messaging.ErrInvalidPhone)
		d.notifications.AssertNotCalled(t, "UpsertSettings", mock.Anything, mock.Anything)
	})
}

func TestPage(t *testing.T) {
	l, o := page(0, -1)
	assert.Equal(t, 10, l)
	assert.Equal(t, 0, o)

	l, o = page(250, 20)
	assert.Equal(t, 100, l)
	assert.Equal(t, 20, o)
}
