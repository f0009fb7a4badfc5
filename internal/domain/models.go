// Package domain holds the core types shared across the FlashLink services:
// currencies, catalog entries, transaction drafts, and settlement receipts.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyID identifies a settlement currency.
type CurrencyID string

const (
	GHC    CurrencyID = "GHC"
	NGN    CurrencyID = "NGN"
	BTC    CurrencyID = "BTC"
	BTCUSD CurrencyID = "BTCUSD"
	USDT   CurrencyID = "USDT"
	BUSD   CurrencyID = "BUSD"
)

// PaymentMethod is the closed set of balances a transaction can settle
// against. Fiat and crypto carry different display rules, so they are
// separate variants rather than one loosely shaped struct.
type PaymentMethod interface {
	MethodID() CurrencyID
	DisplayName() string
	Symbol() string
	Icon() string
	Balance() decimal.Decimal
	// DisplayDecimals is the precision used when rendering amounts in
	// this currency: 2 for fiat and USD-pegged units, 6 for BTC.
	DisplayDecimals() int32

	paymentMethod()
}

// FiatCurrency is a conventional wallet balance (cedi, naira).
type FiatCurrency struct {
	ID   CurrencyID
	Name string
	Sym  string
	Flag string
	Bal  decimal.Decimal
}

func (c FiatCurrency) MethodID() CurrencyID     { return c.ID }
func (c FiatCurrency) DisplayName() string      { return c.Name }
func (c FiatCurrency) Symbol() string           { return c.Sym }
func (c FiatCurrency) Icon() string             { return c.Flag }
func (c FiatCurrency) Balance() decimal.Decimal { return c.Bal }
func (c FiatCurrency) DisplayDecimals() int32   { return 2 }
func (FiatCurrency) paymentMethod()             {}

// CryptoCurrency is a crypto or stablecoin balance. BTC renders with six
// decimal places because a single unit is orders of magnitude larger than
// the fiat balances; pegged units behave like fiat for display.
type CryptoCurrency struct {
	ID        CurrencyID
	Name      string
	Sym       string
	Ico       string
	Bal       decimal.Decimal
	PeggedUSD bool
}

func (c CryptoCurrency) MethodID() CurrencyID     { return c.ID }
func (c CryptoCurrency) DisplayName() string      { return c.Name }
func (c CryptoCurrency) Symbol() string           { return c.Sym }
func (c CryptoCurrency) Icon() string             { return c.Ico }
func (c CryptoCurrency) Balance() decimal.Decimal { return c.Bal }
func (c CryptoCurrency) DisplayDecimals() int32 {
	if c.PeggedUSD {
		return 2
	}
	return 6
}
func (CryptoCurrency) paymentMethod() {}

// Network is a mobile network operator.
type Network struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// DataPlan is a purchasable data bundle, priced in cedi.
type DataPlan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Size        string          `json:"size"`
	Validity    string          `json:"validity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// ServiceType is a utility service category.
type ServiceType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// UtilityProvider is a biller within one service category.
type UtilityProvider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Contact is a saved transfer recipient.
type Contact struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PhoneNumber       string `json:"phone_number"`
	AccountNumber     string `json:"account_number"`
	AvatarURL         string `json:"avatar_url"`
	RecentTransaction bool   `json:"recent_transaction"`
}

// RecentNumber is a previously used airtime/data recipient.
type RecentNumber struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// RecentPayment is a previously paid utility bill, offered for quick refill.
type RecentPayment struct {
	ID           string `json:"id"`
	ProviderName string `json:"provider"`
	Account      string `json:"account"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	Type         string `json:"type"`
}

// WalletCurrency is a balance shown on the wallet dashboard. The wallet
// page carries its own balance set, distinct from the payment-method
// balances used by the purchase flows; both sets are kept as-is.
type WalletCurrency struct {
	ID      CurrencyID      `json:"id"`
	Name    string          `json:"name"`
	Symbol  string          `json:"symbol"`
	Balance decimal.Decimal `json:"balance"`
}

// WalletTransaction is one entry of the mock transaction history.
type WalletTransaction struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Amount      string     `json:"amount"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Status      string     `json:"status"`
	Currency    CurrencyID `json:"currency"`
	Recipient   string     `json:"recipient"`
	Description string     `json:"description"`
	Direction   string     `json:"direction"`
}

// Step enumerates the wizard's states. Input steps come first, in
// flow-specific order; review and success are common to every flow.
type Step string

const (
	StepRecipient Step = "recipient"
	StepSelection Step = "selection"
	StepAmount    Step = "amount"
	StepReview    Step = "review"
	StepSuccess   Step = "success"
)

// Draft is the mutable working state of one in-progress flow. A draft is
// owned by exactly one wizard instance and never outlives its session.
type Draft struct {
	Flow               string          `json:"flow"`
	Step               Step            `json:"step"`
	Recipient          string          `json:"recipient"`
	ContactID          string          `json:"contact_id"`
	NetworkID          string          `json:"network_id"`
	PlanID             string          `json:"plan_id"`
	ServiceTypeID      string          `json:"service_type_id"`
	ProviderID         string          `json:"provider_id"`
	AccountNumber      string          `json:"account_number"`
	AmountBase         decimal.Decimal `json:"amount_base"`
	SettlementCurrency CurrencyID      `json:"settlement_currency"`
	Description        string          `json:"description"`
	SaveRecipient      bool            `json:"save_recipient"`
	IsProcessing       bool            `json:"is_processing"`
}

// Receipt is the settlement result rendered on the success screen. It is
// immutable once created and exists only for display; the reference id is
// cosmetic, not a ledger key.
type Receipt struct {
	ReferenceID   string    `json:"reference_id"`
	Timestamp     time.Time `json:"timestamp"`
	DisplayAmount string    `json:"display_amount"`
	DisplaySymbol string    `json:"display_symbol"`
}

// ToastSeverity mirrors the notification variants the UI understands.
type ToastSeverity string

const (
	ToastDefault     ToastSeverity = "default"
	ToastDestructive ToastSeverity = "destructive"
)

// Toast is a transient user-visible notification.
type Toast struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    ToastSeverity `json:"severity"`
	CreatedAt   time.Time     `json:"created_at"`
}

// User is a mock account held in memory for the lifetime of the process.
type User struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
