package forex

import (
	"github.com/shopspring/decimal"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// settlementRates convert a cedi-denominated purchase amount into the
// chosen settlement currency. Currencies without an entry settle 1:1.
var settlementRates = map[domain.CurrencyID]decimal.Decimal{
	domain.NGN:    d("22"),
	domain.BTC:    d("0.000023"),
	domain.BTCUSD: d("0.12"),
	domain.USDT:   d("0.12"),
	domain.BUSD:   d("0.12"),
}

type pair struct {
	From domain.CurrencyID
	To   domain.CurrencyID
}

// calculatorRates back the wallet's conversion calculator. This table is
// independent of settlementRates and the two deliberately disagree; the
// calculator is a standalone estimate, not the settlement path. Missing
// pairs quote zero.
var calculatorRates = map[pair]decimal.Decimal{
	{domain.NGN, domain.GHC}:   d("0.041"),
	{domain.NGN, domain.USDT}:  d("0.00067"),
	{domain.NGN, domain.BTC}:   d("0.00000002"),
	{domain.NGN, domain.BUSD}:  d("0.00067"),
	{domain.GHC, domain.NGN}:   d("24.39"),
	{domain.GHC, domain.USDT}:  d("0.016"),
	{domain.GHC, domain.BTC}:   d("0.00000049"),
	{domain.GHC, domain.BUSD}:  d("0.016"),
	{domain.USDT, domain.NGN}:  d("1489.25"),
	{domain.USDT, domain.GHC}:  d("61.11"),
	{domain.USDT, domain.BTC}:  d("0.00003"),
	{domain.USDT, domain.BUSD}: d("1"),
	{domain.BTC, domain.NGN}:   d("49641667"),
	{domain.BTC, domain.GHC}:   d("2036958"),
	{domain.BTC, domain.USDT}:  d("33333"),
	{domain.BTC, domain.BUSD}:  d("33333"),
	{domain.BUSD, domain.NGN}:  d("1489.25"),
	{domain.BUSD, domain.GHC}:  d("61.11"),
	{domain.BUSD, domain.USDT}: d("1"),
	{domain.BUSD, domain.BTC}:  d("0.00003"),
}
