package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pinklegion/stand/internal/schedule"
)

func TestService_Regenerate(t *testing.T) {
	contractID := uuid.New()

	terms := schedule.Terms{
		TotalPriceCents:  1200000,
		InstallmentCount: 12,
		FirstDueDate:     date(2024, time.January, 15),
	}

	type testCase struct {
		name      string
		terms     schedule.Terms
		setupMock func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx)
		wantErr   string
		wantLen   int
	}

	tests := []testCase{
		{
			name:  "Success",
			terms: terms,
			setupMock: func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx) {
				repo.EXPECT().BeginRegenerate(gomock.Any(), contractID).Return(tx, nil)
				tx.EXPECT().DeleteByContract(gomock.Any(), contractID).Return(nil)
				tx.EXPECT().
					InsertEntries(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entries []*schedule.Entry) error {
						require.Len(t, entries, 12)
						for _, e := range entries {
							assert.Equal(t, contractID, e.ContractID)
						}
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantLen: 12,
		},
		{
			name: "CashSaleDeletesWithoutInsert",
			terms: schedule.Terms{
				TotalPriceCents: 1200000,
			},
			setupMock: func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx) {
				repo.EXPECT().BeginRegenerate(gomock.Any(), contractID).Return(tx, nil)
				tx.EXPECT().DeleteByContract(gomock.Any(), contractID).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantLen: 0,
		},
		{
			name: "InvalidTermsNeverTouchStore",
			terms: schedule.Terms{
				TotalPriceCents:  1200000,
				DownPaymentCents: 1300000,
				InstallmentCount: 12,
				FirstDueDate:     date(2024, time.January, 15),
			},
			setupMock: func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx) {},
			wantErr:   schedule.ErrInvalidTerms.Error(),
		},
		{
			name:  "BeginFails",
			terms: terms,
			setupMock: func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx) {
				repo.EXPECT().
					BeginRegenerate(gomock.Any(), contractID).
					Return(nil, errors.New("db down"))
			},
			wantErr: "begin regenerate",
		},
		{
			name:  "DeleteFailsRollsBack",
			terms: terms,
			setupMock: func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx) {
				repo.EXPECT().BeginRegenerate(gomock.Any(), contractID).Return(tx, nil)
				tx.EXPECT().DeleteByContract(gomock.Any(), contractID).Return(errors.New("delete failed"))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: "deleting previous schedule",
		},
		{
			name:  "InsertFailsRollsBack",
			terms: terms,
			setupMock: func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx) {
				repo.EXPECT().BeginRegenerate(gomock.Any(), contractID).Return(tx, nil)
				tx.EXPECT().DeleteByContract(gomock.Any(), contractID).Return(nil)
				tx.EXPECT().InsertEntries(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: "inserting schedule",
		},
		{
			name:  "CommitFails",
			terms: terms,
			setupMock: func(repo *schedule.MockRepository, tx *schedule.MockRegenerateTx) {
				repo.EXPECT().BeginRegenerate(gomock.Any(), contractID).Return(tx, nil)
				tx.EXPECT().DeleteByContract(gomock.Any(), contractID).Return(nil)
				tx.EXPECT().InsertEntries(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(errors.New("commit failed"))
				tx.EXPECT().Rollback().Return(errors.New("already committed"))
			},
			wantErr: "commit regenerate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := schedule.NewMockRepository(ctrl)
			tx := schedule.NewMockRegenerateTx(ctrl)
			tt.setupMock(repo, tx)

			svc := schedule.NewService(repo)
			entries, err := svc.Regenerate(context.Background(), contractID, tt.terms)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Len(t, entries, tt.wantLen)
		})
	}
}

// Regenerating twice with the same terms replaces the rows with an
// identical sequence both times.
func TestService_Regenerate_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contractID := uuid.New()
	terms := schedule.Terms{
		TotalPriceCents:  1000000,
		InstallmentCount: 3,
		FirstDueDate:     date(2024, time.March, 10),
	}

	repo := schedule.NewMockRepository(ctrl)
	tx := schedule.NewMockRegenerateTx(ctrl)

	var inserted [][]*schedule.Entry

	repo.EXPECT().BeginRegenerate(gomock.Any(), contractID).Return(tx, nil).Times(2)
	tx.EXPECT().DeleteByContract(gomock.Any(), contractID).Return(nil).Times(2)
	tx.EXPECT().
		InsertEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []*schedule.Entry) error {
			inserted = append(inserted, entries)
			return nil
		}).
		Times(2)
	tx.EXPECT().Commit().Return(nil).Times(2)
	tx.EXPECT().Rollback().Return(nil).Times(2)

	svc := schedule.NewService(repo)

	_, err := svc.Regenerate(context.Background(), contractID, terms)
	require.NoError(t, err)

	_, err = svc.Regenerate(context.Background(), contractID, terms)
	require.NoError(t, err)

	require.Len(t, inserted, 2)
	require.Len(t, inserted[1], len(inserted[0]))

	for i := range inserted[0] {
		assert.Equal(t, *inserted[0][i], *inserted[1][i])
	}
}

func TestService_MarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	paidAt := date(2024, time.April, 2)

	repo := schedule.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), id, schedule.StatusPago, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ schedule.Status, got *time.Time) error {
			require.NotNil(t, got)
			assert.True(t, got.Equal(paidAt))
			return nil
		})

	svc := schedule.NewService(repo)
	require.NoError(t, svc.MarkPaid(context.Background(), id, paidAt))
}

func TestService_MarkCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := schedule.NewMockRepository(ctrl)
	repo.EXPECT().UpdateStatus(gomock.Any(), id, schedule.StatusCancelado, nil).Return(nil)

	svc := schedule.NewService(repo)
	require.NoError(t, svc.MarkCancelled(context.Background(), id))
}

func TestService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contractID := uuid.New()
	today := date(2024, time.June, 15)
	paidAt := date(2024, time.May, 2)

	entries := []*schedule.Entry{
		{Number: 1, AmountCents: 100000, DueDate: date(2024, time.May, 1), Status: schedule.StatusPago, PaidAt: &paidAt},
		{Number: 2, AmountCents: 100000, DueDate: date(2024, time.June, 1), Status: schedule.StatusPendente},
		{Number: 3, AmountCents: 100000, DueDate: date(2024, time.July, 1), Status: schedule.StatusPendente},
		{Number: 4, AmountCents: 100000, DueDate: date(2024, time.August, 1), Status: schedule.StatusCancelado},
	}

	repo := schedule.NewMockRepository(ctrl)
	repo.EXPECT().ListByContract(gomock.Any(), contractID).Return(entries, nil)

	svc := schedule.NewService(repo)

	ov, err := svc.Overview(context.Background(), contractID, today)
	require.NoError(t, err)

	assert.Equal(t, 4, ov.Total)
	assert.Equal(t, 1, ov.Paid)
	assert.Equal(t, 1, ov.Pending)
	assert.Equal(t, 1, ov.Overdue)
	assert.Equal(t, 1, ov.Cancelled)
	assert.EqualValues(t, 100000, ov.PaidCents)
	assert.EqualValues(t, 200000, ov.OutstandingCents)
}
