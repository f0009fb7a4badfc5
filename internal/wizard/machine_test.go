package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JoelOnyedika/flutterpay/internal/catalog"
	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/internal/forex"
	"github.com/JoelOnyedika/flutterpay/internal/settlement"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

type toastRecorder struct {
	mu     sync.Mutex
	toasts []domain.Toast
}

func (r *toastRecorder) push(t domain.Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *toastRecorder) all() []domain.Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

func newTestMachine(t *testing.T, flow string, delay time.Duration) (*Machine, *toastRecorder) {
	t.Helper()
	deps := Deps{Catalog: catalog.NewService(), Rates: forex.NewService()}
	engine := settlement.NewMockEngine(delay, forex.NewService(), catalog.NewService(), logger.NewNop())
	rec := &toastRecorder{}
	spec, err := Flow(flow)
	assert.NoError(t, err)
	return NewMachine(spec, deps, engine, rec.push, logger.NewNop()), rec
}

func str(s string) *string                       { return &s }
func dec(s string) *decimal.Decimal              { v := decimal.RequireFromString(s); return &v }
func cur(c domain.CurrencyID) *domain.CurrencyID { return &c }

func fillAirtime(t *testing.T, m *Machine) {
	t.Helper()
	assert.NoError(t, m.Apply(DraftPatch{
		NetworkID: str("mtn"),
		Recipient: str("+233 50 123 4567"),
		Amount:    dec("50"),
	}))
}

func TestMachineStartsFresh(t *testing.T) {
	m, _ := newTestMachine(t, FlowAirtime, 0)

	snap := m.Snapshot()
	assert.Equal(t, FlowAirtime, snap.Flow)
	assert.Equal(t, domain.StepSelection, snap.Step)
	assert.Equal(t, domain.GHC, snap.Draft.SettlementCurrency)
	assert.Nil(t, snap.Summary)
	assert.Nil(t, snap.Receipt)
}

func TestGuardFailurePushesToastAndHoldsStep(t *testing.T) {
	m, rec := newTestMachine(t, FlowAirtime, 0)

	err := m.Advance()
	var rej *Rejection
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Network Required", rej.Title)

	assert.Equal(t, domain.StepSelection, m.Snapshot().Step)
	toasts := rec.all()
	assert.Len(t, toasts, 1)
	assert.Equal(t, domain.ToastDestructive, toasts[0].Severity)
	assert.Equal(t, "Please select a mobile network provider", toasts[0].Description)
}

func TestAdvanceFreezesSummary(t *testing.T) {
	m, _ := newTestMachine(t, FlowAirtime, 0)
	fillAirtime(t, m)

	assert.NoError(t, m.Advance())

	snap := m.Snapshot()
	assert.Equal(t, domain.StepReview, snap.Step)
	assert.NotNil(t, snap.Summary)
	assert.Equal(t, "MTN", snap.Summary.Detail)
	assert.Equal(t, "₵50.00", snap.Summary.AmountDisplay)
	assert.Equal(t, "Cedi Wallet", snap.Summary.PaymentMethod)

	// Drafts cannot be edited once review is reached.
	assert.ErrorIs(t, m.Apply(DraftPatch{Amount: dec("9999")}), errors.ErrInvalidStep)
	assert.ErrorIs(t, m.Advance(), errors.ErrInvalidStep)
}

func TestBackFromReviewDropsSummary(t *testing.T) {
	m, _ := newTestMachine(t, FlowAirtime, 0)
	fillAirtime(t, m)
	assert.NoError(t, m.Advance())

	assert.NoError(t, m.Back())

	snap := m.Snapshot()
	assert.Equal(t, domain.StepSelection, snap.Step)
	assert.Nil(t, snap.Summary)

	// There is nothing behind the first input step.
	assert.ErrorIs(t, m.Back(), errors.ErrInvalidStep)
}

func TestConfirmRequiresReview(t *testing.T) {
	m, _ := newTestMachine(t, FlowAirtime, 0)

	_, err := m.Confirm(context.Background())
	assert.ErrorIs(t, err, errors.ErrInvalidStep)
}

func TestConfirmSettlesAndNotifies(t *testing.T) {
	m, rec := newTestMachine(t, FlowAirtime, 0)
	fillAirtime(t, m)
	assert.NoError(t, m.Advance())

	receipt, err := m.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Regexp(t, `^AIRTIME-[0-9A-Z]{8}$`, receipt.ReferenceID)
	assert.Equal(t, "50.00", receipt.DisplayAmount)

	snap := m.Snapshot()
	assert.Equal(t, domain.StepSuccess, snap.Step)
	assert.False(t, snap.Draft.IsProcessing)
	assert.NotNil(t, snap.Receipt)
	assert.Equal(t, receipt.ReferenceID, snap.Receipt.ReferenceID)

	toasts := rec.all()
	assert.Len(t, toasts, 1)
	assert.Equal(t, "Success!", toasts[0].Title)
	assert.Equal(t, "You've successfully purchased 50 GHC airtime for +233 50 123 4567", toasts[0].Description)
}

func TestSecondConfirmWhileProcessingIsRefused(t *testing.T) {
	m, _ := newTestMachine(t, FlowAirtime, 50*time.Millisecond)
	fillAirtime(t, m)
	assert.NoError(t, m.Advance())

	done := make(chan error, 1)
	go func() {
		_, err := m.Confirm(context.Background())
		done <- err
	}()

	// Wait until the settlement is marked in flight.
	assert.Eventually(t, func() bool {
		return m.Snapshot().Draft.IsProcessing
	}, time.Second, time.Millisecond)

	_, err := m.Confirm(context.Background())
	assert.ErrorIs(t, err, errors.ErrSettlementInFlight)
	assert.ErrorIs(t, m.Back(), errors.ErrSettlementInFlight)
	assert.ErrorIs(t, m.Reset(), errors.ErrSettlementInFlight)
	assert.ErrorIs(t, m.Apply(DraftPatch{Amount: dec("1")}), errors.ErrSettlementInFlight)

	assert.NoError(t, <-done)
	assert.Equal(t, domain.StepSuccess, m.Snapshot().Step)
}

func TestResetClearsEverything(t *testing.T) {
	m, _ := newTestMachine(t, FlowAirtime, 0)
	fillAirtime(t, m)
	assert.NoError(t, m.Advance())
	_, err := m.Confirm(context.Background())
	assert.NoError(t, err)

	assert.NoError(t, m.Reset())

	snap := m.Snapshot()
	assert.Equal(t, domain.StepSelection, snap.Step)
	assert.Empty(t, snap.Draft.NetworkID)
	assert.True(t, snap.Draft.AmountBase.IsZero())
	assert.Equal(t, domain.GHC, snap.Draft.SettlementCurrency)
	assert.Nil(t, snap.Summary)
	assert.Nil(t, snap.Receipt)
}

func TestFlowLookup(t *testing.T) {
	for _, name := range []string{FlowAirtime, FlowData, FlowUtility, FlowTransfer} {
		spec, err := Flow(name)
		assert.NoError(t, err)
		assert.Equal(t, name, spec.Name)
	}
	_, err := Flow("lottery")
	assert.ErrorIs(t, err, errors.ErrFlowNotFound)
}
