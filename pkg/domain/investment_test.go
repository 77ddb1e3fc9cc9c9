package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCD(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	inv, err := NewCD(userID, date, decimal.NewFromInt(1000), decimal.NewFromFloat(4.5))
	require.NoError(t, err)
	assert.Equal(t, InvestmentTypeCD, inv.Type)
	require.NotNil(t, inv.Rate)
	assert.True(t, inv.Rate.Equal(decimal.NewFromFloat(4.5)))
	assert.Nil(t, inv.ActualCost)
}

func TestNewTBill(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	inv, err := NewTBill(userID, date, decimal.NewFromInt(1000), decimal.NewFromFloat(982.50))
	require.NoError(t, err)
	assert.Equal(t, InvestmentTypeTBill, inv.Type)
	require.NotNil(t, inv.ActualCost)
	assert.True(t, inv.ActualCost.Equal(decimal.NewFromFloat(982.50)))
	assert.Nil(t, inv.Rate)
}

func TestNewInvestment_InvalidInput(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		fn   func() (*Investment, error)
	}{
		{
			name: "missing user",
			fn: func() (*Investment, error) {
				return NewCD(uuid.Nil, date, decimal.NewFromInt(1000), decimal.NewFromFloat(4.5))
			},
		},
		{
			name: "zero date",
			fn: func() (*Investment, error) {
				return NewCD(userID, time.Time{}, decimal.NewFromInt(1000), decimal.NewFromFloat(4.5))
			},
		},
		{
			name: "zero amount",
			fn: func() (*Investment, error) {
				return NewTBill(userID, date, decimal.Zero, decimal.NewFromFloat(982.50))
			},
		},
		{
			name: "negative amount",
			fn: func() (*Investment, error) {
				return NewTBill(userID, date, decimal.NewFromInt(-5), decimal.NewFromFloat(982.50))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestInvestmentTypeValid(t *testing.T) {
	assert.True(t, InvestmentTypeCD.Valid())
	assert.True(t, InvestmentTypeTBill.Valid())
	assert.False(t, InvestmentType("bond").Valid())
	assert.False(t, InvestmentType("").Valid())
}
