// file: internals/features/finance/settlement/service/split_test.go
package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	dirmodel "edubridge_backend/internals/features/directory/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// 500000 received, 400000 university fee, 10% agent → pool 100000,
// agent 10000, consultancy 90000.
func TestComputeSplit_PercentageAgent(t *testing.T) {
	got := ComputeSplit(SplitInput{
		AmountReceived: d("500000"),
		UniversityFee:  d("400000"),
		Agent: &AgentTerms{
			CommissionType: dirmodel.CommissionTypePercentage,
			CommissionRate: d("10"),
		},
	})

	assert.True(t, got.UniversityFee.Equal(d("400000")))
	assert.True(t, got.CommissionPool.Equal(d("100000")))
	assert.True(t, got.AgentCommission.Equal(d("10000")))
	assert.True(t, got.ConsultancyProfit.Equal(d("90000")))
}

// Without an agent the consultancy takes the whole pool.
func TestComputeSplit_NoAgent(t *testing.T) {
	got := ComputeSplit(SplitInput{
		AmountReceived: d("500000"),
		UniversityFee:  d("400000"),
	})

	assert.True(t, got.AgentCommission.IsZero())
	assert.True(t, got.ConsultancyProfit.Equal(d("100000")))
}

func TestComputeSplit_FlatAgent(t *testing.T) {
	got := ComputeSplit(SplitInput{
		AmountReceived: d("500000"),
		UniversityFee:  d("400000"),
		Agent: &AgentTerms{
			CommissionType: dirmodel.CommissionTypeFlat,
			CommissionFlat: d("15000"),
		},
	})

	assert.True(t, got.AgentCommission.Equal(d("15000")))
	assert.True(t, got.ConsultancyProfit.Equal(d("85000")))
}

// Agent with percentage terms but no rate of their own falls back to the
// mapping's commission value.
func TestComputeSplit_MappingRateFallback(t *testing.T) {
	got := ComputeSplit(SplitInput{
		AmountReceived: d("500000"),
		UniversityFee:  d("400000"),
		Agent: &AgentTerms{
			CommissionType: dirmodel.CommissionTypePercentage,
		},
		MappingCommissionValue: d("5"),
	})

	assert.True(t, got.AgentCommission.Equal(d("5000")))
	assert.True(t, got.ConsultancyProfit.Equal(d("95000")))
}

// A short payment leaves a negative pool: no clamping, and the agent earns
// nothing even on flat terms.
func TestComputeSplit_NegativePool(t *testing.T) {
	got := ComputeSplit(SplitInput{
		AmountReceived: d("300000"),
		UniversityFee:  d("400000"),
		Agent: &AgentTerms{
			CommissionType: dirmodel.CommissionTypeFlat,
			CommissionFlat: d("15000"),
		},
	})

	assert.True(t, got.CommissionPool.Equal(d("-100000")))
	assert.True(t, got.AgentCommission.IsZero())
	assert.True(t, got.ConsultancyProfit.Equal(d("-100000")))
}

func TestComputeSplit_ExactPayment(t *testing.T) {
	got := ComputeSplit(SplitInput{
		AmountReceived: d("400000"),
		UniversityFee:  d("400000"),
		Agent: &AgentTerms{
			CommissionType: dirmodel.CommissionTypePercentage,
			CommissionRate: d("10"),
		},
	})

	assert.True(t, got.CommissionPool.IsZero())
	assert.True(t, got.AgentCommission.IsZero(), "no commission on a zero pool")
	assert.True(t, got.ConsultancyProfit.IsZero())
}

// university + agent + consultancy must always reassemble the received amount.
func TestComputeSplit_Conservation(t *testing.T) {
	cases := []SplitInput{
		{AmountReceived: d("500000"), UniversityFee: d("400000"),
			Agent: &AgentTerms{CommissionType: dirmodel.CommissionTypePercentage, CommissionRate: d("10")}},
		{AmountReceived: d("500000"), UniversityFee: d("400000")},
		{AmountReceived: d("750000.50"), UniversityFee: d("600000.25"),
			Agent: &AgentTerms{CommissionType: dirmodel.CommissionTypeFlat, CommissionFlat: d("20000")}},
		{AmountReceived: d("123456.78"), UniversityFee: d("100000"),
			Agent: &AgentTerms{CommissionType: dirmodel.CommissionTypePercentage, CommissionRate: d("12.5")}},
		{AmountReceived: d("300000"), UniversityFee: d("400000")},
	}

	for _, in := range cases {
		got := ComputeSplit(in)
		sum := got.UniversityFee.Add(got.AgentCommission).Add(got.ConsultancyProfit)
		assert.True(t, sum.Equal(in.AmountReceived),
			"conservation broken: %s + %s + %s != %s",
			got.UniversityFee, got.AgentCommission, got.ConsultancyProfit, in.AmountReceived)
	}
}

// Percentage commissions land on two decimal places.
func TestComputeSplit_RoundsToCents(t *testing.T) {
	got := ComputeSplit(SplitInput{
		AmountReceived: d("100001"),
		UniversityFee:  d("100000"),
		Agent: &AgentTerms{
			CommissionType: dirmodel.CommissionTypePercentage,
			CommissionRate: d("33.33"),
		},
	})

	assert.True(t, got.AgentCommission.Equal(d("0.33")))
	assert.True(t, got.ConsultancyProfit.Equal(d("0.67")))
}
