package wizard

import (
	"fmt"
	"strings"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
)

// Flow names double as URL path segments.
const (
	FlowAirtime  = "airtime"
	FlowData     = "data"
	FlowUtility  = "utility"
	FlowTransfer = "transfer"
)

// Flows returns the flow registry. The purchase flows collect all their
// input on one form step; the transfer flow splits recipient and amount.
func Flows() map[string]FlowSpec {
	return map[string]FlowSpec{
		FlowAirtime:  airtimeFlow(),
		FlowData:     dataFlow(),
		FlowUtility:  utilityFlow(),
		FlowTransfer: transferFlow(),
	}
}

// Flow looks a spec up by name.
func Flow(name string) (FlowSpec, error) {
	spec, ok := Flows()[name]
	if !ok {
		return FlowSpec{}, errors.ErrFlowNotFound
	}
	return spec, nil
}

func airtimeFlow() FlowSpec {
	return FlowSpec{
		Name:            FlowAirtime,
		ReferencePrefix: "AIRTIME",
		InputSteps:      []domain.Step{domain.StepSelection},
		Guards: map[domain.Step]Guard{
			domain.StepSelection: func(deps Deps, d *domain.Draft) *Rejection {
				if d.NetworkID == "" {
					return &Rejection{"Network Required", "Please select a mobile network provider"}
				}
				if _, err := deps.Catalog.Network(d.NetworkID); err != nil {
					return &Rejection{"Network Required", "Please select a mobile network provider"}
				}
				if rej := checkPhone(d.Recipient); rej != nil {
					return rej
				}
				if !d.AmountBase.IsPositive() {
					return &Rejection{"Invalid Amount", "Please select or enter a valid amount"}
				}
				return nil
			},
		},
		Summarize: func(deps Deps, d domain.Draft) ReviewSummary {
			network, _ := deps.Catalog.Network(d.NetworkID)
			return ReviewSummary{
				Flow:           FlowAirtime,
				RecipientLabel: d.Recipient,
				Detail:         network.Name,
				AmountDisplay:  "₵" + d.AmountBase.StringFixed(2),
				SettlementNote: settlementNote(deps, d),
				PaymentMethod:  methodName(deps, d.SettlementCurrency),
			}
		},
		SuccessToast: func(deps Deps, d domain.Draft) domain.Toast {
			return newToast("Success!",
				fmt.Sprintf("You've successfully purchased %s GHC airtime for %s", d.AmountBase.String(), d.Recipient),
				domain.ToastDefault)
		},
	}
}

func dataFlow() FlowSpec {
	return FlowSpec{
		Name:            FlowData,
		ReferencePrefix: "DATA",
		InputSteps:      []domain.Step{domain.StepSelection},
		Guards: map[domain.Step]Guard{
			domain.StepSelection: func(deps Deps, d *domain.Draft) *Rejection {
				if d.NetworkID == "" {
					return &Rejection{"Network Required", "Please select a mobile network provider"}
				}
				if _, err := deps.Catalog.Network(d.NetworkID); err != nil {
					return &Rejection{"Network Required", "Please select a mobile network provider"}
				}
				if rej := checkPhone(d.Recipient); rej != nil {
					return rej
				}
				plan, err := deps.Catalog.DataPlan(d.PlanID)
				if err != nil || !strings.HasPrefix(d.PlanID, planPrefix(d.NetworkID)) {
					return &Rejection{"Data Plan Required", "Please select a data plan"}
				}
				// The amount is the plan's price, never free-form input.
				d.AmountBase = plan.Price
				return nil
			},
		},
		Summarize: func(deps Deps, d domain.Draft) ReviewSummary {
			plan, _ := deps.Catalog.DataPlan(d.PlanID)
			return ReviewSummary{
				Flow:           FlowData,
				RecipientLabel: d.Recipient,
				Detail:         fmt.Sprintf("%s • %s", plan.Size, plan.Validity),
				AmountDisplay:  "₵" + d.AmountBase.StringFixed(2),
				SettlementNote: settlementNote(deps, d),
				PaymentMethod:  methodName(deps, d.SettlementCurrency),
			}
		},
		SuccessToast: func(deps Deps, d domain.Draft) domain.Toast {
			plan, _ := deps.Catalog.DataPlan(d.PlanID)
			return newToast("Success!",
				fmt.Sprintf("You've successfully purchased %s data bundle for %s", plan.Size, d.Recipient),
				domain.ToastDefault)
		},
	}
}

func utilityFlow() FlowSpec {
	return FlowSpec{
		Name:            FlowUtility,
		ReferencePrefix: "UTL",
		InputSteps:      []domain.Step{domain.StepSelection},
		Guards: map[domain.Step]Guard{
			domain.StepSelection: func(deps Deps, d *domain.Draft) *Rejection {
				if d.ServiceTypeID == "" {
					return &Rejection{"Service Type Required", "Please select a utility service type"}
				}
				if _, err := deps.Catalog.ServiceType(d.ServiceTypeID); err != nil {
					return &Rejection{"Service Type Required", "Please select a utility service type"}
				}
				provider, err := deps.Catalog.UtilityProvider(d.ProviderID)
				if err != nil || provider.Type != d.ServiceTypeID {
					return &Rejection{"Provider Required", "Please select a utility provider"}
				}
				if strings.TrimSpace(d.AccountNumber) == "" {
					return &Rejection{"Account Number Required", "Please enter your account/meter number"}
				}
				if !d.AmountBase.IsPositive() {
					return &Rejection{"Invalid Amount", "Please enter a valid amount"}
				}
				return nil
			},
		},
		Summarize: func(deps Deps, d domain.Draft) ReviewSummary {
			provider, _ := deps.Catalog.UtilityProvider(d.ProviderID)
			return ReviewSummary{
				Flow:           FlowUtility,
				RecipientLabel: d.AccountNumber,
				Detail:         provider.Name,
				AmountDisplay:  "₵" + d.AmountBase.StringFixed(2),
				SettlementNote: settlementNote(deps, d),
				PaymentMethod:  methodName(deps, d.SettlementCurrency),
			}
		},
		SuccessToast: func(deps Deps, d domain.Draft) domain.Toast {
			provider, _ := deps.Catalog.UtilityProvider(d.ProviderID)
			return newToast("Payment Successful!",
				fmt.Sprintf("You have successfully paid ₵%s to %s", d.AmountBase.StringFixed(2), provider.Name),
				domain.ToastDefault)
		},
	}
}

func transferFlow() FlowSpec {
	return FlowSpec{
		Name:             FlowTransfer,
		ReferencePrefix:  "TRX",
		InputSteps:       []domain.Step{domain.StepRecipient, domain.StepAmount},
		AmountInCurrency: true,
		Guards: map[domain.Step]Guard{
			domain.StepRecipient: func(deps Deps, d *domain.Draft) *Rejection {
				if d.ContactID != "" {
					if _, err := deps.Catalog.Contact(d.ContactID); err != nil {
						return &Rejection{"Contact required", "Please select a contact to send money to"}
					}
					return nil
				}
				if strings.TrimSpace(d.Recipient) == "" {
					return &Rejection{"Recipient required", "Please enter a recipient account number"}
				}
				return nil
			},
			domain.StepAmount: func(deps Deps, d *domain.Draft) *Rejection {
				if !d.AmountBase.IsPositive() {
					return &Rejection{"Invalid amount", "Please enter a valid amount"}
				}
				method, err := deps.Catalog.PaymentMethod(d.SettlementCurrency)
				if err != nil {
					return &Rejection{"Invalid amount", "Please enter a valid amount"}
				}
				if d.AmountBase.GreaterThan(method.Balance()) {
					return &Rejection{"Insufficient balance",
						fmt.Sprintf("Your %s balance is too low for this transfer", d.SettlementCurrency)}
				}
				return nil
			},
		},
		Summarize: func(deps Deps, d domain.Draft) ReviewSummary {
			symbol := string(d.SettlementCurrency)
			if method, err := deps.Catalog.PaymentMethod(d.SettlementCurrency); err == nil {
				symbol = method.Symbol()
			}
			return ReviewSummary{
				Flow:           FlowTransfer,
				RecipientLabel: recipientLabel(deps, d),
				Detail:         d.Description,
				AmountDisplay:  symbol + d.AmountBase.String(),
				PaymentMethod:  methodName(deps, d.SettlementCurrency),
			}
		},
		SuccessToast: func(deps Deps, d domain.Draft) domain.Toast {
			symbol := string(d.SettlementCurrency)
			if method, err := deps.Catalog.PaymentMethod(d.SettlementCurrency); err == nil {
				symbol = method.Symbol()
			}
			return newToast("Transfer successful",
				fmt.Sprintf("You have sent %s%s to %s", symbol, d.AmountBase.String(), recipientLabel(deps, d)),
				domain.ToastDefault)
		},
	}
}

func checkPhone(phone string) *Rejection {
	if len(strings.TrimSpace(phone)) < 10 {
		return &Rejection{"Invalid Phone Number", "Please enter a valid phone number"}
	}
	return nil
}

// planPrefix maps a network id to its plan id prefix, which differs
// from the network id for two of the operators.
func planPrefix(networkID string) string {
	switch networkID {
	case "vodafone":
		return "voda-"
	case "airteltigo":
		return "at-"
	default:
		return networkID + "-"
	}
}

// recipientLabel prefers the saved contact's name over the raw account
// number the user typed.
func recipientLabel(deps Deps, d domain.Draft) string {
	if d.ContactID != "" {
		if contact, err := deps.Catalog.Contact(d.ContactID); err == nil {
			return contact.Name
		}
	}
	return d.Recipient
}

func methodName(deps Deps, currency domain.CurrencyID) string {
	if method, err := deps.Catalog.PaymentMethod(currency); err == nil {
		return method.DisplayName()
	}
	return string(currency)
}

// settlementNote mirrors the line under the review total that tells the
// user what will actually leave their wallet. Cedi settlements deduct
// the face amount, so the note only appears for other currencies.
func settlementNote(deps Deps, d domain.Draft) string {
	if d.SettlementCurrency == domain.GHC {
		return ""
	}
	converted := deps.Rates.ConvertFromBase(d.AmountBase, d.SettlementCurrency)
	symbol := string(d.SettlementCurrency)
	if method, err := deps.Catalog.PaymentMethod(d.SettlementCurrency); err == nil {
		symbol = method.Symbol()
	}
	return fmt.Sprintf("%s%s will be deducted from your %s wallet",
		symbol, deps.Rates.FormatSettlement(converted, d.SettlementCurrency), d.SettlementCurrency)
}
