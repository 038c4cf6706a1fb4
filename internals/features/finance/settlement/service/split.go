// file: internals/features/finance/settlement/service/split.go
package service

import (
	"github.com/shopspring/decimal"

	dirmodel "edubridge_backend/internals/features/directory/model"
)

// AgentTerms carries the commission terms in effect for the optional agent on
// an admission.
type AgentTerms struct {
	CommissionType dirmodel.CommissionType
	CommissionRate decimal.Decimal // percent
	CommissionFlat decimal.Decimal // absolute amount
}

// SplitInput is everything the fee split needs, resolved from the admission's
// course mapping and agent at approval time. Later term changes never
// recompute a settlement that already happened.
type SplitInput struct {
	AmountReceived decimal.Decimal
	UniversityFee  decimal.Decimal // mapping.university_fee

	Agent *AgentTerms // nil when the admission has no agent

	// Fallback percentage from the course mapping, used when the agent has
	// percentage terms but no rate of their own.
	MappingCommissionValue decimal.Decimal
}

// Split is the computed three-way division of one received amount.
type Split struct {
	UniversityFee     decimal.Decimal
	CommissionPool    decimal.Decimal // amount - university fee; may be negative on short payment
	AgentCommission   decimal.Decimal
	ConsultancyProfit decimal.Decimal
}

// ComputeSplit divides an approved fee payment between the university, the
// agent, and the consultancy:
//
//	universityFee     = mapping fee (always owed in full)
//	pool              = amount - universityFee (not clamped)
//	agentCommission   = 0 without an agent or when the pool is not positive;
//	                    flat terms pay the flat amount, percentage terms pay
//	                    pool * rate / 100 (agent rate, else mapping fallback)
//	consultancyProfit = pool - agentCommission
//
// So universityFee + agentCommission + consultancyProfit == amount whenever
// the pool is non-negative. Callers append ledger credits only for positive
// shares.
func ComputeSplit(in SplitInput) Split {
	pool := in.AmountReceived.Sub(in.UniversityFee)

	agentCommission := decimal.Zero
	if in.Agent != nil && pool.GreaterThan(decimal.Zero) {
		switch in.Agent.CommissionType {
		case dirmodel.CommissionTypeFlat:
			agentCommission = in.Agent.CommissionFlat
		default:
			rate := in.Agent.CommissionRate
			if rate.IsZero() {
				rate = in.MappingCommissionValue
			}
			agentCommission = pool.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
		}
	}

	return Split{
		UniversityFee:     in.UniversityFee,
		CommissionPool:    pool,
		AgentCommission:   agentCommission,
		ConsultancyProfit: pool.Sub(agentCommission),
	}
}
