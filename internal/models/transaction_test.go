package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		AccountID:       uuid.New(),
		TransactionType: TransactionTypePayment,
		Amount:          decimal.RequireFromString("125.50"),
		TransactionDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransaction_Validate(t *testing.T) {
	increase := AdjustmentIncrease
	bogus := AdjustmentDirection("SIDEWAYS")

	tests := []struct {
		name    string
		mutate  func(tx *Transaction)
		wantErr error
		errMsg  string
	}{
		{
			name:   "valid payment",
			mutate: func(tx *Transaction) {},
		},
		{
			name: "valid adjustment with direction",
			mutate: func(tx *Transaction) {
				tx.TransactionType = TransactionTypeAdjustment
				tx.AdjustmentDirection = &increase
			},
		},
		{
			name:   "adjustment without direction",
			mutate: func(tx *Transaction) { tx.TransactionType = TransactionTypeAdjustment },
		},
		{
			name:   "missing account",
			mutate: func(tx *Transaction) { tx.AccountID = uuid.Nil },
			errMsg: "account ID is required",
		},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.TransactionType = "REFUND" },
			wantErr: ErrInvalidTransactionType,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *Transaction) { tx.Amount = decimal.Zero },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-10) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "three decimal places",
			mutate:  func(tx *Transaction) { tx.Amount = decimal.RequireFromString("10.005") },
			wantErr: ErrInvalidAmountScale,
		},
		{
			name:    "unknown direction",
			mutate:  func(tx *Transaction) { tx.AdjustmentDirection = &bogus },
			wantErr: ErrInvalidDirection,
		},
		{
			name:    "missing date",
			mutate:  func(tx *Transaction) { tx.TransactionDate = time.Time{} },
			wantErr: ErrMissingTransactionDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	for _, tt := range []TransactionType{TransactionTypePayment, TransactionTypeCharge, TransactionTypeAdjustment, TransactionTypeInterest} {
		assert.True(t, tt.IsValid(), string(tt))
	}
	assert.False(t, TransactionType("payment").IsValid())
	assert.False(t, TransactionType("").IsValid())
}

func TestParseAdjustmentDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    AdjustmentDirection
		wantErr bool
	}{
		{in: "increase", want: AdjustmentIncrease},
		{in: "DECREASE", want: AdjustmentDecrease},
		{in: "  Decrease ", want: AdjustmentDecrease},
		{in: "", wantErr: true},
		{in: "up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAdjustmentDirection(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDirection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateOf(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	in := time.Date(2026, 3, 15, 22, 30, 0, 0, est)

	got := DateOf(in)

	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), got)
}

func TestTransaction_BeforeCreate(t *testing.T) {
	tx := validTransaction()
	tx.TransactionDate = time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)

	require.NoError(t, tx.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), tx.TransactionDate)
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestTransaction_BeforeCreate_RejectsInvalid(t *testing.T) {
	tx := validTransaction()
	tx.Amount = decimal.Zero

	assert.ErrorIs(t, tx.BeforeCreate(nil), ErrInvalidAmount)
}
