package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contractapi/internal/model"
)

func TestContractService_Assign(t *testing.T) {
	ctx := context.Background()
	by := Actor{UserID: "admin-1", UserName: "Ada"}
	dept := "Legal"
	contract := func() *model.Contract {
		return &model.Contract{ID: "c-1", ContractName: "Acme Contract", FileID: "file-1", Department: &dept}
	}

	expectAssignWrites := func(d *deps) {
		d.users.On("FindByID", ctx, "m-1").Return(&model.User{ID: "m-1", FullName: "Jane Doe"}, nil)
		d.contracts.On("UpdateAssignedManagers", ctx, "c-1", []string{"Jane Doe"}).Return(nil)
		d.files.On("MarkContract", ctx, "file-1").Return(nil)
		d.activities.On("Create", ctx, mock.MatchedBy(func(a *model.RecentActivity) bool {
			return a.Action == "Contract Assigned" && a.Type == model.ActivityContract &&
				a.Description == "Acme Contract assigned to Jane Doe" && *a.Department == "Legal"
		})).Return(echoActivity, nil)
		d.notifications.On("FindType", ctx, model.NotificationContractAssigned).
			Return(&model.NotificationType{Name: model.NotificationContractAssigned, Enabled: true}, nil)
		d.notifications.On("Create", ctx, mock.MatchedBy(func(n *model.Notification) bool {
			return n.UserID == "m-1" && n.Type == model.NotificationContractAssigned
		})).Return(echoNotification, nil)
		d.notifications.On("FindSettings", ctx, "m-1").Return(nil, sql.ErrNoRows)
	}

	tests := []struct {
		name       string
		contractID string
		fileID     string
		setupMocks func(d *deps)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:       "assign by contract id",
			contractID: "c-1",
			setupMocks: func(d *deps) {
				d.contracts.On("FindByID", ctx, "c-1").Return(contract(), nil)
				expectAssignWrites(d)
			},
		},
		{
			name:       "falls back to file id",
			contractID: "file-1",
			fileID:     "file-1",
			setupMocks: func(d *deps) {
				d.contracts.On("FindByID", ctx, "file-1").Return(nil, sql.ErrNoRows)
				d.contracts.On("FindByFileID", ctx, "file-1").Return(contract(), nil)
				expectAssignWrites(d)
			},
		},
		{
			name:       "validation - no identifiers",
			setupMocks: func(d *deps) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:       "not found by either id",
			contractID: "c-x",
			fileID:     "file-x",
			setupMocks: func(d *deps) {
				d.contracts.On("FindByID", ctx, "c-x").Return(nil, sql.ErrNoRows)
				d.contracts.On("FindByFileID", ctx, "file-x").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrContractNotFound,
		},
		{
			name:       "name without contract is rejected before any write",
			contractID: "c-2",
			setupMocks: func(d *deps) {
				d.contracts.On("FindByID", ctx, "c-2").
					Return(&model.Contract{ID: "c-2", ContractName: "Invoice March", FileID: "file-2"}, nil)
			},
			wantErr: ErrNotAContract,
		},
		{
			name:       "mark file failure is returned",
			contractID: "c-1",
			setupMocks: func(d *deps) {
				d.contracts.On("FindByID", ctx, "c-1").Return(contract(), nil)
				d.users.On("FindByID", ctx, "m-1").Return(&model.User{ID: "m-1", FullName: "Jane Doe"}, nil)
				d.contracts.On("UpdateAssignedManagers", ctx, "c-1", []string{"Jane Doe"}).Return(nil)
				d.files.On("MarkContract", ctx, "file-1").Return(errors.New("db down"))
			},
			wantErrMsg: "mark file as contract: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			tt.setupMocks(d)

			res, err := d.contractService().Assign(ctx, tt.contractID, []string{"m-1"}, tt.fileID, by)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				d.contracts.AssertNotCalled(t, "UpdateAssignedManagers", mock.Anything, mock.Anything, mock.Anything)
				d.files.AssertNotCalled(t, "MarkContract", mock.Anything, mock.Anything)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				d.activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			default:
				require.NoError(t, err)
				assert.Equal(t, []string{"Jane Doe"}, res.Contract.AssignedManagers)
				for _, o := range res.SideEffects {
					assert.True(t, o.OK, o.Effect)
				}
			}
			d.contracts.AssertExpectations(t)
			d.files.AssertExpectations(t)
			d.activities.AssertExpectations(t)
			d.notifications.AssertExpectations(t)
		})
	}
}

func TestContractService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	by := Actor{UserID: "admin-1"}
	statuses := []string{"pending-review", "action-required", "active", "inactive", "renewed"}

	tests := []struct {
		name       string
		status     string
		setupMocks func(d *deps)
		wantErr    error
		check      func(t *testing.T, d *deps, res *ContractResult)
	}{
		{
			name:   "unknown status",
			status: "archived",
			setupMocks: func(d *deps) {
				d.contracts.On("Statuses", ctx).Return(statuses, nil)
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name:   "missing contract",
			status: "inactive",
			setupMocks: func(d *deps) {
				d.contracts.On("Statuses", ctx).Return(statuses, nil)
				d.contracts.On("UpdateStatus", ctx, "c-1", "inactive").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrContractNotFound,
		},
		{
			name:   "inactive logs activity only",
			status: "inactive",
			setupMocks: func(d *deps) {
				d.contracts.On("Statuses", ctx).Return(statuses, nil)
				d.contracts.On("UpdateStatus", ctx, "c-1", "inactive").
					Return(&model.Contract{ID: "c-1", ContractName: "Acme Contract", Status: "inactive", ContractExpiryDate: daysFromToday(10)}, nil)
				d.activities.On("Create", ctx, mock.MatchedBy(func(a *model.RecentActivity) bool {
					return a.Action == "Contract Status Updated"
				})).Return(echoActivity, nil)
			},
			check: func(t *testing.T, d *deps, res *ContractResult) {
				assert.Equal(t, []Outcome{{Effect: "activity", OK: true}}, res.SideEffects)
				d.files.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "renewed notifies the file owner",
			status: "renewed",
			setupMocks: func(d *deps) {
				d.contracts.On("Statuses", ctx).Return(statuses, nil)
				d.contracts.On("UpdateStatus", ctx, "c-1", "renewed").
					Return(&model.Contract{ID: "c-1", ContractName: "Acme Contract", Status: "renewed", FileID: "file-1", ContractExpiryDate: daysFromToday(365)}, nil)
				d.activities.On("Create", ctx, mock.Anything).Return(echoActivity, nil)
				d.files.On("FindByID", ctx, "file-1").Return(&model.File{ID: "file-1", Owner: "U1"}, nil)
				d.notifications.On("FindType", ctx, model.NotificationContractRenewed).
					Return(&model.NotificationType{Name: model.NotificationContractRenewed, Enabled: true}, nil)
				d.notifications.On("Create", ctx, mock.MatchedBy(func(n *model.Notification) bool {
					return n.UserID == "U1" && n.Message == "Acme Contract was renewed. Current expiry: 2026-03-10."
				})).Return(echoNotification, nil)
				d.notifications.On("FindSettings", ctx, "U1").Return(nil, sql.ErrNoRows)
			},
			check: func(t *testing.T, d *deps, res *ContractResult) {
				assert.Equal(t, []Outcome{{Effect: "activity", OK: true}, {Effect: "notification", OK: true}}, res.SideEffects)
				d.notifications.AssertExpectations(t)
			},
		},
		{
			name:   "renewed without expiry skips notification",
			status: "renewed",
			setupMocks: func(d *deps) {
				d.contracts.On("Statuses", ctx).Return(statuses, nil)
				d.contracts.On("UpdateStatus", ctx, "c-1", "renewed").
					Return(&model.Contract{ID: "c-1", ContractName: "Acme Contract", Status: "renewed"}, nil)
				d.activities.On("Create", ctx, mock.Anything).Return(echoActivity, nil)
			},
			check: func(t *testing.T, d *deps, res *ContractResult) {
				d.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			tt.setupMocks(d)

			res, err := d.contractService().UpdateStatus(ctx, "c-1", tt.status, by)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				d.activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.status, res.Contract.Status)
				tt.check(t, d, res)
			}
			d.contracts.AssertExpectations(t)
		})
	}
}

func TestContractService_Get(t *testing.T) {
	ctx := context.Background()
	d := newDeps()
	d.contracts.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

	c, err := d.contractService().Get(ctx, "missing")

	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "nobody", joinNames(nil))
	assert.Equal(t, "A", joinNames([]string{"A"}))
	assert.Equal(t, "A and B", joinNames([]string{"A", "B"}))
	assert.Equal(t, "A, B and C", joinNames([]string{"A", "B", "C"}))
}
