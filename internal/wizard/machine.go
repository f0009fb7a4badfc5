// Package wizard implements the multi-step transaction flow shared by
// airtime, data, utility, and transfer purchases: a handful of input
// steps, a frozen review, a single settlement, and a success screen.
// One Machine owns one draft; transitions are serialized per machine.
package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/internal/settlement"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
)

// Catalog is the slice of reference data the flows validate against.
type Catalog interface {
	Network(id string) (domain.Network, error)
	DataPlan(id string) (domain.DataPlan, error)
	ServiceType(id string) (domain.ServiceType, error)
	UtilityProvider(id string) (domain.UtilityProvider, error)
	Contact(id string) (domain.Contact, error)
	PaymentMethod(id domain.CurrencyID) (domain.PaymentMethod, error)
}

// Rates is the slice of the forex service the review summary needs.
type Rates interface {
	ConvertFromBase(amount decimal.Decimal, to domain.CurrencyID) decimal.Decimal
	FormatSettlement(amount decimal.Decimal, currency domain.CurrencyID) string
}

// Deps bundles what guards and summaries read. They never write.
type Deps struct {
	Catalog Catalog
	Rates   Rates
}

// Rejection is a guard failure. It carries the toast shown to the user
// and doubles as the error returned to the caller.
type Rejection struct {
	Title       string
	Description string
}

func (r *Rejection) Error() string {
	return r.Title + ": " + r.Description
}

// ReviewSummary is the confirmation screen's content, frozen when the
// draft enters review so later edits cannot change what was approved.
type ReviewSummary struct {
	Flow           string `json:"flow"`
	RecipientLabel string `json:"recipient_label"`
	Detail         string `json:"detail"`
	AmountDisplay  string `json:"amount_display"`
	SettlementNote string `json:"settlement_note"`
	PaymentMethod  string `json:"payment_method"`
}

// Guard validates the draft before leaving a step. It may also derive
// fields, such as fixing the amount from a chosen plan. A nil return
// admits the transition.
type Guard func(deps Deps, d *domain.Draft) *Rejection

// FlowSpec is the static shape of one flow: its input steps in order,
// the guard per step, and how to present review and success.
type FlowSpec struct {
	Name            string
	ReferencePrefix string
	InputSteps      []domain.Step
	Guards          map[domain.Step]Guard
	// AmountInCurrency marks flows whose amount is entered directly in
	// the settlement currency, so settlement must not convert it.
	AmountInCurrency bool
	Summarize        func(deps Deps, d domain.Draft) ReviewSummary
	SuccessToast     func(deps Deps, d domain.Draft) domain.Toast
}

// DraftPatch is a partial draft update. Nil fields are left alone.
type DraftPatch struct {
	Recipient     *string            `json:"recipient,omitempty"`
	ContactID     *string            `json:"contact_id,omitempty"`
	NetworkID     *string            `json:"network_id,omitempty"`
	PlanID        *string            `json:"plan_id,omitempty"`
	ServiceTypeID *string            `json:"service_type_id,omitempty"`
	ProviderID    *string            `json:"provider_id,omitempty"`
	AccountNumber *string            `json:"account_number,omitempty"`
	Amount        *decimal.Decimal   `json:"amount,omitempty"`
	Currency      *domain.CurrencyID `json:"currency,omitempty"`
	Description   *string            `json:"description,omitempty"`
	SaveRecipient *bool              `json:"save_recipient,omitempty"`
}

// Snapshot is a point-in-time copy of the machine's visible state.
type Snapshot struct {
	Flow    string          `json:"flow"`
	Step    domain.Step     `json:"step"`
	Draft   domain.Draft    `json:"draft"`
	Summary *ReviewSummary  `json:"summary,omitempty"`
	Receipt *domain.Receipt `json:"receipt,omitempty"`
}

// Machine drives one draft through its flow. All methods are safe for
// concurrent use; at most one settlement can be in flight.
type Machine struct {
	mu      sync.Mutex
	spec    FlowSpec
	deps    Deps
	settler settlement.Settler
	notify  func(domain.Toast)
	logger  logger.Logger

	draft   domain.Draft
	summary *ReviewSummary
	receipt *domain.Receipt
}

func NewMachine(spec FlowSpec, deps Deps, settler settlement.Settler, notify func(domain.Toast), log logger.Logger) *Machine {
	if notify == nil {
		notify = func(domain.Toast) {}
	}
	m := &Machine{
		spec:    spec,
		deps:    deps,
		settler: settler,
		notify:  notify,
		logger:  log,
	}
	m.draft = m.freshDraft()
	return m
}

func (m *Machine) freshDraft() domain.Draft {
	return domain.Draft{
		Flow:               m.spec.Name,
		Step:               m.spec.InputSteps[0],
		SettlementCurrency: domain.GHC,
	}
}

// Apply merges a patch into the draft. Edits are only legal on input
// steps; review, success, and an in-flight settlement all reject them.
func (m *Machine) Apply(patch DraftPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft.IsProcessing {
		return errors.ErrSettlementInFlight
	}
	if !m.onInputStep() {
		return errors.ErrInvalidStep
	}

	if patch.Recipient != nil {
		m.draft.Recipient = *patch.Recipient
	}
	if patch.ContactID != nil {
		m.draft.ContactID = *patch.ContactID
	}
	if patch.NetworkID != nil {
		if m.draft.NetworkID != *patch.NetworkID {
			// Plans are network-scoped, so switching networks drops the
			// selected plan.
			m.draft.PlanID = ""
		}
		m.draft.NetworkID = *patch.NetworkID
	}
	if patch.PlanID != nil {
		m.draft.PlanID = *patch.PlanID
	}
	if patch.ServiceTypeID != nil {
		if m.draft.ServiceTypeID != *patch.ServiceTypeID {
			m.draft.ProviderID = ""
		}
		m.draft.ServiceTypeID = *patch.ServiceTypeID
	}
	if patch.ProviderID != nil {
		m.draft.ProviderID = *patch.ProviderID
	}
	if patch.AccountNumber != nil {
		m.draft.AccountNumber = *patch.AccountNumber
	}
	if patch.Amount != nil {
		m.draft.AmountBase = *patch.Amount
	}
	if patch.Currency != nil {
		m.draft.SettlementCurrency = *patch.Currency
	}
	if patch.Description != nil {
		m.draft.Description = *patch.Description
	}
	if patch.SaveRecipient != nil {
		m.draft.SaveRecipient = *patch.SaveRecipient
	}
	return nil
}

// Advance runs the current step's guard and moves forward on success.
// The last input step leads into review, where the summary freezes. A
// guard failure surfaces as a destructive toast and a *Rejection error.
func (m *Machine) Advance() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft.IsProcessing {
		return errors.ErrSettlementInFlight
	}
	if !m.onInputStep() {
		return errors.ErrInvalidStep
	}

	if guard := m.spec.Guards[m.draft.Step]; guard != nil {
		if rej := guard(m.deps, &m.draft); rej != nil {
			m.notify(newToast(rej.Title, rej.Description, domain.ToastDestructive))
			return rej
		}
	}

	idx := m.stepIndex(m.draft.Step)
	if idx == len(m.spec.InputSteps)-1 {
		m.draft.Step = domain.StepReview
		summary := m.spec.Summarize(m.deps, m.draft)
		m.summary = &summary
	} else {
		m.draft.Step = m.spec.InputSteps[idx+1]
	}
	return nil
}

// Back steps toward the previous input step. Review returns to the last
// input step and drops the frozen summary. The first input step has
// nothing behind it, and a processing draft cannot retreat.
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft.IsProcessing {
		return errors.ErrSettlementInFlight
	}

	switch {
	case m.draft.Step == domain.StepReview:
		m.draft.Step = m.spec.InputSteps[len(m.spec.InputSteps)-1]
		m.summary = nil
		return nil
	case m.onInputStep():
		idx := m.stepIndex(m.draft.Step)
		if idx == 0 {
			return errors.ErrInvalidStep
		}
		m.draft.Step = m.spec.InputSteps[idx-1]
		return nil
	default:
		return errors.ErrInvalidStep
	}
}

// Confirm executes the settlement. It is only legal from review, and a
// second call while one is in flight is refused, so each confirmed
// draft settles exactly once. The machine stays usable for reads while
// the settlement runs.
func (m *Machine) Confirm(ctx context.Context) (domain.Receipt, error) {
	m.mu.Lock()
	if m.draft.IsProcessing {
		m.mu.Unlock()
		return domain.Receipt{}, errors.ErrSettlementInFlight
	}
	if m.draft.Step != domain.StepReview {
		m.mu.Unlock()
		return domain.Receipt{}, errors.ErrInvalidStep
	}
	m.draft.IsProcessing = true
	req := settlement.Request{
		Flow:             m.spec.Name,
		ReferencePrefix:  m.spec.ReferencePrefix,
		AmountBase:       m.draft.AmountBase,
		Currency:         m.draft.SettlementCurrency,
		AmountInCurrency: m.spec.AmountInCurrency,
	}
	draft := m.draft
	m.mu.Unlock()

	receipt, err := m.settler.Settle(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.IsProcessing = false
	if err != nil {
		m.logger.Error("settlement failed", map[string]interface{}{
			"flow":  m.spec.Name,
			"error": err.Error(),
		})
		return domain.Receipt{}, errors.Wrap(err, "settle transaction")
	}

	m.draft.Step = domain.StepSuccess
	m.receipt = &receipt
	m.notify(m.spec.SuccessToast(m.deps, draft))
	return receipt, nil
}

// Reset returns the machine to a blank draft on the first input step.
func (m *Machine) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft.IsProcessing {
		return errors.ErrSettlementInFlight
	}
	m.draft = m.freshDraft()
	m.summary = nil
	m.receipt = nil
	return nil
}

// Snapshot returns a copy of the current state for rendering.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Flow:  m.spec.Name,
		Step:  m.draft.Step,
		Draft: m.draft,
	}
	if m.summary != nil {
		s := *m.summary
		snap.Summary = &s
	}
	if m.receipt != nil {
		r := *m.receipt
		snap.Receipt = &r
	}
	return snap
}

func (m *Machine) onInputStep() bool {
	return m.stepIndex(m.draft.Step) >= 0
}

func (m *Machine) stepIndex(step domain.Step) int {
	for i, s := range m.spec.InputSteps {
		if s == step {
			return i
		}
	}
	return -1
}

func newToast(title, description string, severity domain.ToastSeverity) domain.Toast {
	return domain.Toast{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   time.Now(),
	}
}
