// Package settlement provides the engine that "executes" a confirmed
// transaction. The real processor does not exist yet; the mock engine
// waits a fixed delay, always succeeds, and fabricates a reference id.
// Callers depend on the Settler interface so the mock can be swapped for
// a real adapter without touching the flows.
package settlement

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// Request carries everything the engine needs to settle one purchase:
// the cedi amount, the wallet to charge, and the flow's reference style.
type Request struct {
	Flow            string
	ReferencePrefix string
	AmountBase      decimal.Decimal
	Currency        domain.CurrencyID
	// AmountInCurrency means AmountBase is already denominated in
	// Currency, as with wallet transfers, and must not be converted.
	AmountInCurrency bool
}

// Settler executes a settlement and returns the receipt. The context
// bounds the wait; a cancelled context abandons the settlement.
type Settler interface {
	Settle(ctx context.Context, req Request) (domain.Receipt, error)
}

// Rates is the slice of the forex service the engine needs.
type Rates interface {
	ConvertFromBase(amount decimal.Decimal, to domain.CurrencyID) decimal.Decimal
	FormatSettlement(amount decimal.Decimal, currency domain.CurrencyID) string
}

// Methods resolves the symbol shown on the receipt.
type Methods interface {
	PaymentMethod(id domain.CurrencyID) (domain.PaymentMethod, error)
}

// DefaultDelay matches the processing pause users see in production.
const DefaultDelay = 2 * time.Second

type MockEngine struct {
	delay   time.Duration
	rates   Rates
	methods Methods
	logger  logger.Logger
	rand    *rand.Rand
}

func NewMockEngine(delay time.Duration, rates Rates, methods Methods, log logger.Logger) *MockEngine {
	return &MockEngine{
		delay:   delay,
		rates:   rates,
		methods: methods,
		logger:  log,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Settle blocks for the configured delay and then succeeds
// unconditionally. Failure paths will arrive with the real processor.
func (e *MockEngine) Settle(ctx context.Context, req Request) (domain.Receipt, error) {
	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	converted := req.AmountBase
	if !req.AmountInCurrency {
		converted = e.rates.ConvertFromBase(req.AmountBase, req.Currency)
	}
	symbol := string(req.Currency)
	if m, err := e.methods.PaymentMethod(req.Currency); err == nil {
		symbol = m.Symbol()
	}

	receipt := domain.Receipt{
		ReferenceID:   e.reference(req.ReferencePrefix),
		Timestamp:     time.Now(),
		DisplayAmount: e.rates.FormatSettlement(converted, req.Currency),
		DisplaySymbol: symbol,
	}

	e.logger.Info("settlement complete", map[string]interface{}{
		"flow":      req.Flow,
		"reference": receipt.ReferenceID,
		"currency":  string(req.Currency),
		"amount":    receipt.DisplayAmount,
	})
	return receipt, nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// reference builds a display-only id. Utility bills use a timestamp
// style of their own; every other flow gets eight base36 characters.
func (e *MockEngine) reference(prefix string) string {
	if prefix == "UTL" {
		ts := fmt.Sprintf("%d", time.Now().UnixMilli())
		return fmt.Sprintf("UTL-%s-%d", ts[7:], e.rand.Intn(1000))
	}
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteByte(base36[e.rand.Intn(len(base36))])
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(b.String()))
}
