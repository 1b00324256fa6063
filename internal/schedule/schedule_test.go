package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinklegion/stand/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute(t *testing.T) {
	entries, err := schedule.Compute(schedule.Terms{
		TotalPriceCents:  1500000,
		DownPaymentCents: 300000,
		InstallmentCount: 12,
		FirstDueDate:     date(2024, time.January, 15),
	})
	require.NoError(t, err)
	require.Len(t, entries, 12)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Number)
		assert.EqualValues(t, 100000, e.AmountCents)
		assert.Equal(t, date(2024, time.Month(i+1), 15), e.DueDate)
		assert.Equal(t, schedule.StatusPendente, e.Status)
		assert.Nil(t, e.PaidAt)
	}
}

func TestCompute_CashSale(t *testing.T) {
	entries, err := schedule.Compute(schedule.Terms{
		TotalPriceCents:  1500000,
		DownPaymentCents: 1500000,
		InstallmentCount: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompute_RoundingDriftKept(t *testing.T) {
	entries, err := schedule.Compute(schedule.Terms{
		TotalPriceCents:  1000000,
		InstallmentCount: 3,
		FirstDueDate:     date(2024, time.March, 1),
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var sum int64
	for _, e := range entries {
		assert.EqualValues(t, 333333, e.AmountCents)
		sum += e.AmountCents
	}

	// One cent short of the financed balance; never reconciled.
	assert.EqualValues(t, 999999, sum)
}

func TestCompute_ManualInstallmentAmount(t *testing.T) {
	entries, err := schedule.Compute(schedule.Terms{
		TotalPriceCents:        1000000,
		InstallmentCount:       4,
		InstallmentAmountCents: 200000,
		FirstDueDate:           date(2024, time.June, 1),
	})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// The override is used as-is even though 4 x 2000 falls short of the
	// financed 10000.
	for _, e := range entries {
		assert.EqualValues(t, 200000, e.AmountCents)
	}
}

func TestCompute_MonthEndRollsOver(t *testing.T) {
	entries, err := schedule.Compute(schedule.Terms{
		TotalPriceCents:  600000,
		InstallmentCount: 3,
		FirstDueDate:     date(2024, time.January, 31),
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Jan 31 + 1 month normalizes to Mar 2 (2024 is a leap year), and
	// offsets from the original date keep stacking from there.
	assert.Equal(t, date(2024, time.January, 31), entries[0].DueDate)
	assert.Equal(t, date(2024, time.March, 2), entries[1].DueDate)
	assert.Equal(t, date(2024, time.March, 31), entries[2].DueDate)
}

func TestCompute_Deterministic(t *testing.T) {
	terms := schedule.Terms{
		TotalPriceCents:  1234567,
		DownPaymentCents: 234567,
		InstallmentCount: 7,
		FirstDueDate:     date(2025, time.February, 28),
	}

	a, err := schedule.Compute(terms)
	require.NoError(t, err)

	b, err := schedule.Compute(terms)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}

func TestTerms_Validate(t *testing.T) {
	type testCase struct {
		name    string
		terms   schedule.Terms
		wantErr bool
	}

	valid := schedule.Terms{
		TotalPriceCents:  1000000,
		DownPaymentCents: 200000,
		InstallmentCount: 10,
		FirstDueDate:     date(2024, time.May, 1),
	}

	tests := []testCase{
		{name: "Valid", terms: valid},
		{
			name: "CashSaleNoDueDate",
			terms: schedule.Terms{
				TotalPriceCents: 1000000,
			},
		},
		{
			name:    "ZeroTotal",
			terms:   schedule.Terms{InstallmentCount: 3, FirstDueDate: valid.FirstDueDate},
			wantErr: true,
		},
		{
			name:    "NegativeTotal",
			terms:   schedule.Terms{TotalPriceCents: -1},
			wantErr: true,
		},
		{
			name: "NegativeDownPayment",
			terms: schedule.Terms{
				TotalPriceCents:  1000000,
				DownPaymentCents: -1,
			},
			wantErr: true,
		},
		{
			name: "DownPaymentExceedsTotal",
			terms: schedule.Terms{
				TotalPriceCents:  1000000,
				DownPaymentCents: 1000001,
			},
			wantErr: true,
		},
		{
			name: "NegativeCount",
			terms: schedule.Terms{
				TotalPriceCents:  1000000,
				InstallmentCount: -1,
			},
			wantErr: true,
		},
		{
			name: "NegativeInstallmentAmount",
			terms: schedule.Terms{
				TotalPriceCents:        1000000,
				InstallmentAmountCents: -1,
			},
			wantErr: true,
		},
		{
			name: "MissingFirstDueDate",
			terms: schedule.Terms{
				TotalPriceCents:  1000000,
				InstallmentCount: 3,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.terms.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidTerms)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	today := date(2024, time.June, 15)
	paidAt := date(2024, time.June, 1)

	type testCase struct {
		name  string
		entry schedule.Entry
		want  schedule.Status
	}

	tests := []testCase{
		{
			name:  "PendingFutureDue",
			entry: schedule.Entry{Status: schedule.StatusPendente, DueDate: date(2024, time.July, 1)},
			want:  schedule.StatusPendente,
		},
		{
			name:  "PendingDueToday",
			entry: schedule.Entry{Status: schedule.StatusPendente, DueDate: today},
			want:  schedule.StatusPendente,
		},
		{
			name:  "PendingPastDue",
			entry: schedule.Entry{Status: schedule.StatusPendente, DueDate: date(2024, time.June, 14)},
			want:  schedule.StatusAtrasado,
		},
		{
			name:  "PaidIsTerminal",
			entry: schedule.Entry{Status: schedule.StatusPago, DueDate: date(2024, time.January, 1), PaidAt: &paidAt},
			want:  schedule.StatusPago,
		},
		{
			name:  "CancelledIsTerminal",
			entry: schedule.Entry{Status: schedule.StatusCancelado, DueDate: date(2024, time.January, 1)},
			want:  schedule.StatusCancelado,
		},
		{
			name:  "StoredAtrasadoBeforeDueReadsPending",
			entry: schedule.Entry{Status: schedule.StatusAtrasado, DueDate: date(2024, time.July, 1)},
			want:  schedule.StatusPendente,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.EffectiveStatus(&tt.entry, today))
		})
	}
}
