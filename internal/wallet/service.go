// Package wallet backs the wallet dashboard: balances, the conversion
// calculator, receive details, deposits, and the mock history feed.
package wallet

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/internal/forex"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// Catalog is the wallet's window onto the static data.
type Catalog interface {
	WalletCurrencies() []domain.WalletCurrency
	WalletCurrency(id domain.CurrencyID) (domain.WalletCurrency, error)
	WalletTransactions() []domain.WalletTransaction
}

// Rates is the calculator's window onto the forex tables.
type Rates interface {
	CalculatorRate(from, to domain.CurrencyID) decimal.Decimal
	CalculatorConvert(amount decimal.Decimal, from, to domain.CurrencyID) decimal.Decimal
	FormatCalculated(amount decimal.Decimal) string
	FormatRate(rate decimal.Decimal) string
}

// Quote is one calculator result.
type Quote struct {
	From       domain.CurrencyID `json:"from"`
	To         domain.CurrencyID `json:"to"`
	Amount     decimal.Decimal   `json:"amount"`
	Converted  string            `json:"converted"`
	Rate       string            `json:"rate"`
	FeePercent string            `json:"fee_percent"`
}

// ReceiveDetails is what a sender needs to pay this wallet. Crypto
// currencies expose a chain address; fiat gets a fresh account number.
type ReceiveDetails struct {
	Currency      domain.CurrencyID `json:"currency"`
	AccountNumber string            `json:"account_number"`
	AccountName   string            `json:"account_name"`
	BankName      string            `json:"bank_name"`
	QRCodeURL     string            `json:"qr_code_url"`
	IsCrypto      bool              `json:"is_crypto"`
}

// Deposit is a pending wallet funding.
type Deposit struct {
	ReferenceID string            `json:"reference_id"`
	Currency    domain.CurrencyID `json:"currency"`
	Amount      decimal.Decimal   `json:"amount"`
	Method      string            `json:"method"`
	InitiatedAt time.Time         `json:"initiated_at"`
}

// cryptoAddresses are the fixed demo deposit addresses.
var cryptoAddresses = map[domain.CurrencyID]string{
	domain.BTC:  "3FZbgi29cpjq2GjdwV8eyHuJJnkLtktZc5",
	domain.USDT: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
	domain.BUSD: "0xB8c77482e45F1F44dE1745F52C74426C631bDD52",
}

var cryptoNetworks = map[domain.CurrencyID]string{
	domain.BTC:  "Bitcoin Network",
	domain.USDT: "ERC-20 Network",
	domain.BUSD: "BEP-20 Network",
}

type Service struct {
	catalog Catalog
	rates   Rates
	delay   time.Duration
	logger  logger.Logger
	rand    *rand.Rand
}

// NewService builds the wallet service. The delay mimics the deposit
// processing pause; tests pass zero.
func NewService(cat Catalog, rates Rates, delay time.Duration, log logger.Logger) *Service {
	return &Service{
		catalog: cat,
		rates:   rates,
		delay:   delay,
		logger:  log,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Balances returns the dashboard balance cards.
func (s *Service) Balances() []domain.WalletCurrency {
	return s.catalog.WalletCurrencies()
}

// Convert quotes one calculator conversion. Unsupported pairs quote a
// zero rate rather than failing, matching the table's behavior.
func (s *Service) Convert(amount decimal.Decimal, from, to domain.CurrencyID) (Quote, error) {
	if !amount.IsPositive() {
		return Quote{}, errors.ErrInvalidAmount
	}
	rate := s.rates.CalculatorRate(from, to)
	converted := s.rates.CalculatorConvert(amount, from, to)
	return Quote{
		From:       from,
		To:         to,
		Amount:     amount,
		Converted:  s.rates.FormatCalculated(converted),
		Rate:       s.rates.FormatRate(rate),
		FeePercent: forex.FeePercent.String(),
	}, nil
}

// Receive returns payment details for one wallet currency. Fiat account
// numbers are minted per call; crypto addresses are fixed.
func (s *Service) Receive(currency domain.CurrencyID) (ReceiveDetails, error) {
	if _, err := s.catalog.WalletCurrency(currency); err != nil {
		return ReceiveDetails{}, err
	}

	if address, ok := cryptoAddresses[currency]; ok {
		return ReceiveDetails{
			Currency:      currency,
			AccountNumber: address,
			AccountName:   fmt.Sprintf("%s Wallet", currency),
			BankName:      cryptoNetworks[currency],
			QRCodeURL:     qrCodeURL(address),
			IsCrypto:      true,
		}, nil
	}

	account := "FL" + s.digits(8)
	return ReceiveDetails{
		Currency:      currency,
		AccountNumber: account,
		AccountName:   "FlashLink Account",
		BankName:      "FlashLink",
		QRCodeURL:     qrCodeURL(account),
	}, nil
}

// Fund initiates a deposit. Like settlement, the mock waits and then
// always succeeds; the reference is display-only.
func (s *Service) Fund(ctx context.Context, currency domain.CurrencyID, amount decimal.Decimal, method string) (Deposit, error) {
	if _, err := s.catalog.WalletCurrency(currency); err != nil {
		return Deposit{}, err
	}
	if !amount.IsPositive() {
		return Deposit{}, errors.ErrInvalidAmount
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Deposit{}, ctx.Err()
		case <-timer.C:
		}
	}

	dep := Deposit{
		ReferenceID: "FND-" + strings.ToUpper(s.base36(8)),
		Currency:    currency,
		Amount:      amount,
		Method:      method,
		InitiatedAt: time.Now(),
	}
	s.logger.Info("deposit initiated", map[string]interface{}{
		"reference": dep.ReferenceID,
		"currency":  string(currency),
		"amount":    amount.String(),
	})
	return dep, nil
}

// HistoryFilter narrows the transaction feed. Zero values match all.
type HistoryFilter struct {
	Type     string
	Currency domain.CurrencyID
	Search   string
}

// History returns the mock transaction feed, filtered.
func (s *Service) History(filter HistoryFilter) []domain.WalletTransaction {
	all := s.catalog.WalletTransactions()
	out := make([]domain.WalletTransaction, 0, len(all))
	q := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, tx := range all {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Currency != "" && tx.Currency != filter.Currency {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(tx.Title), q) &&
			!strings.Contains(strings.ToLower(tx.Recipient), q) &&
			!strings.Contains(strings.ToLower(tx.Description), q) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func qrCodeURL(data string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" + data
}

func (s *Service) digits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + s.rand.Intn(10)))
	}
	return b.String()
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (s *Service) base36(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[s.rand.Intn(len(base36))])
	}
	return b.String()
}
