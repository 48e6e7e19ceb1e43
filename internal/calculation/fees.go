package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/peasim/brokerage-simulator/internal/domain"
)

// FeeSchedule maps a trade amount to the fee charged on it.
type FeeSchedule interface {
	Fee(amount decimal.Decimal) decimal.Decimal
}

// NoFee charges nothing.
type NoFee struct{}

func (NoFee) Fee(decimal.Decimal) decimal.Decimal { return decimal.Zero }

// TieredSchedule is a step function over trade amounts. The first tier whose
// inclusive upper bound covers the amount applies; amounts beyond every bound
// fall into the last tier.
type TieredSchedule struct {
	Tiers []domain.FeeTier
}

// Fee implements FeeSchedule.
func (ts TieredSchedule) Fee(amount decimal.Decimal) decimal.Decimal {
	if len(ts.Tiers) == 0 {
		return decimal.Zero
	}
	tier := ts.Tiers[len(ts.Tiers)-1]
	for _, t := range ts.Tiers {
		if t.UpTo == nil || amount.LessThanOrEqual(*t.UpTo) {
			tier = t
			break
		}
	}

	fee := tier.Flat.Add(amount.Mul(tier.RatePercent).Div(hundred))
	if tier.Max != nil && fee.GreaterThan(*tier.Max) {
		fee = *tier.Max
	}
	if tier.Min != nil && fee.LessThan(*tier.Min) {
		fee = *tier.Min
	}
	return fee
}

// FeePolicy is everything the engine needs to know about a provider's charges.
type FeePolicy interface {
	// BrokerFee is the brokerage charged on a contribution or withdrawal of amount.
	BrokerFee(amount decimal.Decimal) decimal.Decimal
	// WithdrawalFee is the extra fee charged on money leaving the account.
	WithdrawalFee(amount decimal.Decimal) decimal.Decimal
	// ExpenseRatio is the annual fund charge in percent.
	ExpenseRatio() decimal.Decimal
}

// SingleFundPolicy invests every contribution in one fund with one trade.
type SingleFundPolicy struct {
	Broker     FeeSchedule
	Withdrawal FeeSchedule
	Ratio      decimal.Decimal
}

func (p SingleFundPolicy) BrokerFee(amount decimal.Decimal) decimal.Decimal {
	return p.Broker.Fee(amount)
}

func (p SingleFundPolicy) WithdrawalFee(amount decimal.Decimal) decimal.Decimal {
	return p.Withdrawal.Fee(amount)
}

func (p SingleFundPolicy) ExpenseRatio() decimal.Decimal { return p.Ratio }

// PortfolioPolicy splits each contribution across holdings, one trade per fund.
// Holding percentages are expected to partition 100.
type PortfolioPolicy struct {
	Broker     FeeSchedule
	Withdrawal FeeSchedule
	Holdings   []domain.Holding
}

// BrokerFee charges the schedule once per fund on that fund's share of amount.
func (p PortfolioPolicy) BrokerFee(amount decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		total = total.Add(p.Broker.Fee(amount.Mul(h.Percentage).Div(hundred)))
	}
	return total
}

func (p PortfolioPolicy) WithdrawalFee(amount decimal.Decimal) decimal.Decimal {
	return p.Withdrawal.Fee(amount)
}

// ExpenseRatio is the percentage-weighted average of the fund expense ratios.
func (p PortfolioPolicy) ExpenseRatio() decimal.Decimal {
	return WeightedExpenseRatio(p.Holdings)
}

// WeightedExpenseRatio sums percentage/100 * fund expense ratio over holdings.
func WeightedExpenseRatio(holdings []domain.Holding) decimal.Decimal {
	avg := decimal.Zero
	for _, h := range holdings {
		avg = avg.Add(h.Percentage.Div(hundred).Mul(h.Fund.ExpenseRatio))
	}
	return avg
}

// NewFeeSchedule builds a schedule from its configuration, resolving presets.
func NewFeeSchedule(cfg domain.FeeScheduleConfig) (FeeSchedule, error) {
	if cfg.Preset != "" {
		preset, err := LookupSchedule(cfg.Preset)
		if err != nil {
			return nil, err
		}
		cfg = preset
	}
	if len(cfg.Tiers) == 0 {
		return NoFee{}, nil
	}
	return TieredSchedule{Tiers: cfg.Tiers}, nil
}

// NewFeePolicy selects the policy variant for a provider.
func NewFeePolicy(p domain.Provider) (FeePolicy, error) {
	broker, err := NewFeeSchedule(p.Brokerage)
	if err != nil {
		return nil, fmt.Errorf("provider %q brokerage: %w", p.Name, err)
	}
	withdrawal, err := NewFeeSchedule(p.WithdrawalFee)
	if err != nil {
		return nil, fmt.Errorf("provider %q withdrawal fee: %w", p.Name, err)
	}

	if p.HasPortfolio() {
		return PortfolioPolicy{Broker: broker, Withdrawal: withdrawal, Holdings: p.Portfolio}, nil
	}
	ratio := decimal.Zero
	if p.ExpenseRatio != nil {
		ratio = *p.ExpenseRatio
	}
	return SingleFundPolicy{Broker: broker, Withdrawal: withdrawal, Ratio: ratio}, nil
}

// EffectiveExpenseRatio returns override when present, otherwise the policy's own
// ratio. An explicit zero override is honored.
func EffectiveExpenseRatio(override *decimal.Decimal, policy FeePolicy) decimal.Decimal {
	if override != nil {
		return *override
	}
	return policy.ExpenseRatio()
}
