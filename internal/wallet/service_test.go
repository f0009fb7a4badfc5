package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JoelOnyedika/flutterpay/internal/catalog"
	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/internal/forex"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

func newTestService() *Service {
	return NewService(catalog.NewService(), forex.NewService(), 0, logger.NewNop())
}

func TestBalances(t *testing.T) {
	svc := newTestService()

	balances := svc.Balances()
	assert.Len(t, balances, 5)
	assert.Equal(t, domain.NGN, balances[0].ID)
}

func TestConvert(t *testing.T) {
	svc := newTestService()

	quote, err := svc.Convert(decimal.NewFromInt(1000), domain.NGN, domain.GHC)
	assert.NoError(t, err)
	assert.Equal(t, "41.00", quote.Converted)
	assert.Equal(t, "0.04100000", quote.Rate)
	assert.Equal(t, "0.5", quote.FeePercent)

	// An unquoted pair converts to zero instead of erroring.
	quote, err = svc.Convert(decimal.NewFromInt(100), domain.GHC, domain.GHC)
	assert.NoError(t, err)
	assert.Equal(t, "0.00000000", quote.Converted)

	_, err = svc.Convert(decimal.Zero, domain.NGN, domain.GHC)
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
}

func TestReceiveFiat(t *testing.T) {
	svc := newTestService()

	details, err := svc.Receive(domain.GHC)
	assert.NoError(t, err)
	assert.False(t, details.IsCrypto)
	assert.Regexp(t, `^FL\d{8}$`, details.AccountNumber)
	assert.Equal(t, "FlashLink Account", details.AccountName)
	assert.Equal(t, "FlashLink", details.BankName)
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data="+details.AccountNumber, details.QRCodeURL)

	// Fiat account numbers are minted per request.
	again, err := svc.Receive(domain.GHC)
	assert.NoError(t, err)
	assert.NotEqual(t, details.AccountNumber, again.AccountNumber)
}

func TestReceiveCrypto(t *testing.T) {
	svc := newTestService()

	btc, err := svc.Receive(domain.BTC)
	assert.NoError(t, err)
	assert.True(t, btc.IsCrypto)
	assert.Equal(t, "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5", btc.AccountNumber)
	assert.Equal(t, "Bitcoin Network", btc.BankName)
	assert.Equal(t, "BTC Wallet", btc.AccountName)

	usdt, err := svc.Receive(domain.USDT)
	assert.NoError(t, err)
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", usdt.AccountNumber)
	assert.Equal(t, "ERC-20 Network", usdt.BankName)

	busd, err := svc.Receive(domain.BUSD)
	assert.NoError(t, err)
	assert.Equal(t, "0xB8c77482e45F1F44dE1745F52C74426C631bDD52", busd.AccountNumber)
	assert.Equal(t, "BEP-20 Network", busd.BankName)
}

func TestReceiveUnknownCurrency(t *testing.T) {
	svc := newTestService()

	_, err := svc.Receive("XAU")
	assert.ErrorIs(t, err, errors.ErrCurrencyNotFound)
}

func TestFund(t *testing.T) {
	svc := newTestService()

	dep, err := svc.Fund(context.Background(), domain.GHC, decimal.NewFromInt(200), "mobile-money")
	assert.NoError(t, err)
	assert.Regexp(t, `^FND-[0-9A-Z]{8}$`, dep.ReferenceID)
	assert.Equal(t, domain.GHC, dep.Currency)
	assert.Equal(t, "mobile-money", dep.Method)

	_, err = svc.Fund(context.Background(), domain.GHC, decimal.Zero, "card")
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)

	_, err = svc.Fund(context.Background(), "XAU", decimal.NewFromInt(1), "card")
	assert.ErrorIs(t, err, errors.ErrCurrencyNotFound)
}

func TestFundHonorsContext(t *testing.T) {
	svc := NewService(catalog.NewService(), forex.NewService(), time.Minute, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Fund(ctx, domain.GHC, decimal.NewFromInt(1), "card")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHistoryFilters(t *testing.T) {
	svc := newTestService()

	assert.Len(t, svc.History(HistoryFilter{}), 5)
	assert.Len(t, svc.History(HistoryFilter{Type: "deposit"}), 1)
	assert.Len(t, svc.History(HistoryFilter{Currency: domain.NGN}), 4)
	assert.Len(t, svc.History(HistoryFilter{Type: "airtime", Currency: domain.NGN}), 1)
	assert.Empty(t, svc.History(HistoryFilter{Type: "airtime", Currency: domain.USDT}))

	bySearch := svc.History(HistoryFilter{Search: "gtbank"})
	assert.Len(t, bySearch, 1)
	assert.Equal(t, "Withdrawal to Bank", bySearch[0].Title)
}
