package settlement

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JoelOnyedika/flutterpay/internal/catalog"
	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/internal/forex"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

func newTestEngine(delay time.Duration) *MockEngine {
	return NewMockEngine(delay, forex.NewService(), catalog.NewService(), logger.NewNop())
}

func TestSettleAlwaysSucceeds(t *testing.T) {
	engine := newTestEngine(0)

	receipt, err := engine.Settle(context.Background(), Request{
		Flow:            "airtime",
		ReferencePrefix: "AIRTIME",
		AmountBase:      decimal.NewFromInt(50),
		Currency:        domain.GHC,
	})
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^AIRTIME-[0-9A-Z]{8}$`), receipt.ReferenceID)
	assert.Equal(t, "50.00", receipt.DisplayAmount)
	assert.Equal(t, "₵", receipt.DisplaySymbol)
	assert.WithinDuration(t, time.Now(), receipt.Timestamp, time.Second)
}

func TestSettleConvertsToSettlementCurrency(t *testing.T) {
	engine := newTestEngine(0)

	receipt, err := engine.Settle(context.Background(), Request{
		Flow:            "data",
		ReferencePrefix: "DATA",
		AmountBase:      decimal.NewFromInt(100),
		Currency:        domain.NGN,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2200.00", receipt.DisplayAmount)
	assert.Equal(t, "₦", receipt.DisplaySymbol)

	receipt, err = engine.Settle(context.Background(), Request{
		Flow:            "data",
		ReferencePrefix: "DATA",
		AmountBase:      decimal.NewFromInt(100),
		Currency:        domain.BTC,
	})
	assert.NoError(t, err)
	assert.Equal(t, "0.002300", receipt.DisplayAmount)
	assert.Equal(t, "BTC", receipt.DisplaySymbol)
}

func TestUtilityReferenceFormat(t *testing.T) {
	engine := newTestEngine(0)

	receipt, err := engine.Settle(context.Background(), Request{
		Flow:            "utility",
		ReferencePrefix: "UTL",
		AmountBase:      decimal.NewFromInt(150),
		Currency:        domain.GHC,
	})
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^UTL-\d+-\d{1,3}$`), receipt.ReferenceID)
}

func TestReferencesAreUnique(t *testing.T) {
	engine := newTestEngine(0)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		receipt, err := engine.Settle(context.Background(), Request{
			Flow:            "transfer",
			ReferencePrefix: "TRX",
			AmountBase:      decimal.NewFromInt(10),
			Currency:        domain.GHC,
		})
		assert.NoError(t, err)
		assert.False(t, seen[receipt.ReferenceID])
		seen[receipt.ReferenceID] = true
	}
}

func TestSettleHonorsContext(t *testing.T) {
	engine := newTestEngine(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := engine.Settle(ctx, Request{
		Flow:            "airtime",
		ReferencePrefix: "AIRTIME",
		AmountBase:      decimal.NewFromInt(5),
		Currency:        domain.GHC,
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSettleDelayElapses(t *testing.T) {
	engine := newTestEngine(30 * time.Millisecond)

	start := time.Now()
	_, err := engine.Settle(context.Background(), Request{
		Flow:            "airtime",
		ReferencePrefix: "AIRTIME",
		AmountBase:      decimal.NewFromInt(5),
		Currency:        domain.GHC,
	})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}
