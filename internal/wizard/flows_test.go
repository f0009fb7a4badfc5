package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
)

func TestAirtimeNonCediSettlement(t *testing.T) {
	m, rec := newTestMachine(t, FlowAirtime, 0)

	assert.NoError(t, m.Apply(DraftPatch{
		NetworkID: str("mtn"),
		Recipient: str("+233 50 123 4567"),
		Amount:    dec("100"),
		Currency:  cur(domain.NGN),
	}))
	assert.NoError(t, m.Advance())

	snap := m.Snapshot()
	assert.Equal(t, "₦2200.00 will be deducted from your NGN wallet", snap.Summary.SettlementNote)
	assert.Equal(t, "NGN Wallet", snap.Summary.PaymentMethod)

	receipt, err := m.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "2200.00", receipt.DisplayAmount)
	assert.Equal(t, "₦", receipt.DisplaySymbol)
	assert.Len(t, rec.all(), 1)
}

func TestAirtimeGuardOrder(t *testing.T) {
	m, _ := newTestMachine(t, FlowAirtime, 0)

	// Network first.
	err := m.Advance()
	var rej *Rejection
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Network Required", rej.Title)

	// Then the phone number.
	assert.NoError(t, m.Apply(DraftPatch{NetworkID: str("glo")}))
	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Invalid Phone Number", rej.Title)

	// A short number is still invalid.
	assert.NoError(t, m.Apply(DraftPatch{Recipient: str("054123")}))
	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Invalid Phone Number", rej.Title)

	// Then the amount.
	assert.NoError(t, m.Apply(DraftPatch{Recipient: str("+233 54 123 4567")}))
	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Invalid Amount", rej.Title)

	assert.NoError(t, m.Apply(DraftPatch{Amount: dec("20")}))
	assert.NoError(t, m.Advance())
	assert.Equal(t, domain.StepReview, m.Snapshot().Step)
}

func TestDataPlanFixesAmount(t *testing.T) {
	m, _ := newTestMachine(t, FlowData, 0)

	assert.NoError(t, m.Apply(DraftPatch{
		NetworkID: str("mtn"),
		Recipient: str("+233 50 123 4567"),
		PlanID:    str("mtn-monthly-4"),
		// Amounts typed by hand are overridden by the plan price.
		Amount: dec("1"),
	}))
	assert.NoError(t, m.Advance())

	snap := m.Snapshot()
	assert.Equal(t, "₵75.00", snap.Summary.AmountDisplay)
	assert.Equal(t, "20GB • 30 Days", snap.Summary.Detail)

	receipt, err := m.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Regexp(t, `^DATA-[0-9A-Z]{8}$`, receipt.ReferenceID)
	assert.Equal(t, "75.00", receipt.DisplayAmount)
}

func TestDataPlanMustMatchNetwork(t *testing.T) {
	m, _ := newTestMachine(t, FlowData, 0)

	assert.NoError(t, m.Apply(DraftPatch{
		NetworkID: str("mtn"),
		Recipient: str("+233 50 123 4567"),
		PlanID:    str("glo-daily-1"),
	}))
	err := m.Advance()
	var rej *Rejection
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Data Plan Required", rej.Title)
}

func TestSwitchingNetworkClearsPlan(t *testing.T) {
	m, _ := newTestMachine(t, FlowData, 0)

	assert.NoError(t, m.Apply(DraftPatch{NetworkID: str("mtn"), PlanID: str("mtn-daily-1")}))
	assert.NoError(t, m.Apply(DraftPatch{NetworkID: str("vodafone")}))

	assert.Empty(t, m.Snapshot().Draft.PlanID)
}

func TestUtilityGuardOrder(t *testing.T) {
	m, _ := newTestMachine(t, FlowUtility, 0)
	var rej *Rejection

	err := m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Service Type Required", rej.Title)

	assert.NoError(t, m.Apply(DraftPatch{ServiceTypeID: str("electricity")}))
	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Provider Required", rej.Title)

	// A provider from another service type does not count.
	assert.NoError(t, m.Apply(DraftPatch{ProviderID: str("dstv")}))
	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Provider Required", rej.Title)

	assert.NoError(t, m.Apply(DraftPatch{ProviderID: str("ecg")}))
	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Account Number Required", rej.Title)

	assert.NoError(t, m.Apply(DraftPatch{AccountNumber: str("12345678901")}))
	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Invalid Amount", rej.Title)

	assert.NoError(t, m.Apply(DraftPatch{Amount: dec("150")}))
	assert.NoError(t, m.Advance())
	assert.Equal(t, "Electricity Company of Ghana", m.Snapshot().Summary.Detail)
}

func TestSwitchingServiceTypeClearsProvider(t *testing.T) {
	m, _ := newTestMachine(t, FlowUtility, 0)

	assert.NoError(t, m.Apply(DraftPatch{ServiceTypeID: str("tv"), ProviderID: str("dstv")}))
	assert.NoError(t, m.Apply(DraftPatch{ServiceTypeID: str("water")}))

	assert.Empty(t, m.Snapshot().Draft.ProviderID)
}

func TestUtilityReceiptAndToast(t *testing.T) {
	m, rec := newTestMachine(t, FlowUtility, 0)

	assert.NoError(t, m.Apply(DraftPatch{
		ServiceTypeID: str("water"),
		ProviderID:    str("gwcl"),
		AccountNumber: str("98765432101"),
		Amount:        dec("85"),
	}))
	assert.NoError(t, m.Advance())

	receipt, err := m.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Regexp(t, `^UTL-\d+-\d{1,3}$`, receipt.ReferenceID)

	toasts := rec.all()
	assert.Len(t, toasts, 1)
	assert.Equal(t, "Payment Successful!", toasts[0].Title)
	assert.Equal(t, "You have successfully paid ₵85.00 to Ghana Water Company Ltd", toasts[0].Description)
}

func TestTransferTwoStepFlow(t *testing.T) {
	m, rec := newTestMachine(t, FlowTransfer, 0)

	// The recipient step refuses an empty form.
	err := m.Advance()
	var rej *Rejection
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Recipient required", rej.Title)

	assert.NoError(t, m.Apply(DraftPatch{ContactID: str("2")}))
	assert.NoError(t, m.Advance())
	assert.Equal(t, domain.StepAmount, m.Snapshot().Step)

	err = m.Advance()
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Invalid amount", rej.Title)

	assert.NoError(t, m.Apply(DraftPatch{Amount: dec("200")}))
	assert.NoError(t, m.Advance())

	snap := m.Snapshot()
	assert.Equal(t, domain.StepReview, snap.Step)
	assert.Equal(t, "Sophia Chen", snap.Summary.RecipientLabel)
	assert.Equal(t, "₵200", snap.Summary.AmountDisplay)

	receipt, err := m.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Regexp(t, `^TRX-[0-9A-Z]{8}$`, receipt.ReferenceID)
	// Transfers are denominated directly in the wallet currency.
	assert.Equal(t, "200.00", receipt.DisplayAmount)

	toasts := rec.all()
	assert.Equal(t, "Transfer successful", toasts[len(toasts)-1].Title)
	assert.Equal(t, "You have sent ₵200 to Sophia Chen", toasts[len(toasts)-1].Description)
}

func TestTransferInsufficientBalance(t *testing.T) {
	m, rec := newTestMachine(t, FlowTransfer, 0)

	assert.NoError(t, m.Apply(DraftPatch{Recipient: str("FL78901234")}))
	assert.NoError(t, m.Advance())

	// The cedi wallet holds 1200.00.
	assert.NoError(t, m.Apply(DraftPatch{Amount: dec("1500")}))
	err := m.Advance()
	var rej *Rejection
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Insufficient balance", rej.Title)

	toasts := rec.all()
	assert.Equal(t, "Your GHC balance is too low for this transfer", toasts[len(toasts)-1].Description)

	// Exactly the balance is allowed.
	assert.NoError(t, m.Apply(DraftPatch{Amount: dec("1200")}))
	assert.NoError(t, m.Advance())
	assert.Equal(t, domain.StepReview, m.Snapshot().Step)
}

func TestTransferBackBetweenInputSteps(t *testing.T) {
	m, _ := newTestMachine(t, FlowTransfer, 0)

	assert.NoError(t, m.Apply(DraftPatch{Recipient: str("FL78901234")}))
	assert.NoError(t, m.Advance())
	assert.NoError(t, m.Back())
	assert.Equal(t, domain.StepRecipient, m.Snapshot().Step)
	assert.ErrorIs(t, m.Back(), errors.ErrInvalidStep)
}

func TestTransferUnknownContact(t *testing.T) {
	m, _ := newTestMachine(t, FlowTransfer, 0)

	assert.NoError(t, m.Apply(DraftPatch{ContactID: str("42")}))
	err := m.Advance()
	var rej *Rejection
	assert.ErrorAs(t, err, &rej)
	assert.Equal(t, "Contact required", rej.Title)
}
