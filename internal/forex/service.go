// Package forex holds the two fixed conversion tables: the cedi-based
// settlement rates used when a purchase is charged to a non-cedi wallet,
// and the pairwise quote table behind the conversion calculator.
package forex

import (
	"github.com/shopspring/decimal"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
)

// FeePercent is the flat transaction fee the calculator quotes.
var FeePercent = decimal.RequireFromString("0.5")

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// SettlementRate returns how many units of currency one cedi buys on the
// settlement path. Unknown currencies, including GHC itself, settle 1:1.
func (s *Service) SettlementRate(to domain.CurrencyID) decimal.Decimal {
	if rate, ok := settlementRates[to]; ok {
		return rate
	}
	return decimal.NewFromInt(1)
}

// ConvertFromBase converts a cedi amount into the settlement currency.
func (s *Service) ConvertFromBase(amount decimal.Decimal, to domain.CurrencyID) decimal.Decimal {
	return amount.Mul(s.SettlementRate(to))
}

// FormatSettlement renders a settlement amount with the currency's
// display precision: six decimals for BTC, two for everything else.
func (s *Service) FormatSettlement(amount decimal.Decimal, currency domain.CurrencyID) string {
	if currency == domain.BTC {
		return amount.StringFixed(6)
	}
	return amount.StringFixed(2)
}

// CalculatorRate returns the quoted rate for a currency pair. Pairs
// absent from the table, including any pair involving an unknown
// currency, quote zero rather than failing.
func (s *Service) CalculatorRate(from, to domain.CurrencyID) decimal.Decimal {
	if rate, ok := calculatorRates[pair{from, to}]; ok {
		return rate
	}
	return decimal.Zero
}

// CalculatorConvert applies the pair quote to an amount. A zero rate
// yields a zero result, matching the table's missing-pair behavior.
func (s *Service) CalculatorConvert(amount decimal.Decimal, from, to domain.CurrencyID) decimal.Decimal {
	return amount.Mul(s.CalculatorRate(from, to))
}

// FormatCalculated renders a converted amount: eight decimals when the
// value is below 0.01 so small crypto amounts stay legible, two
// otherwise.
func (s *Service) FormatCalculated(amount decimal.Decimal) string {
	if amount.LessThan(decimal.RequireFromString("0.01")) {
		return amount.StringFixed(8)
	}
	return amount.StringFixed(2)
}

// FormatRate renders a quoted rate: eight decimals below 0.01, four
// otherwise.
func (s *Service) FormatRate(rate decimal.Decimal) string {
	if rate.LessThan(decimal.RequireFromString("0.01")) {
		return rate.StringFixed(8)
	}
	return rate.StringFixed(4)
}
