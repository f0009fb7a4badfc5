// Package catalog serves the static reference data behind the purchase
// flows: networks, data plans, utility providers, payment methods, and
// saved contacts. All of it is fixed at compile time; there is no
// backing store.
package catalog

import (
	"sort"
	"strings"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/pkg/errors"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// PaymentMethods returns the settlement balances shared by every flow.
func (s *Service) PaymentMethods() []domain.PaymentMethod {
	out := make([]domain.PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

func (s *Service) PaymentMethod(id domain.CurrencyID) (domain.PaymentMethod, error) {
	for _, m := range paymentMethods {
		if m.MethodID() == id {
			return m, nil
		}
	}
	return nil, errors.ErrCurrencyNotFound
}

func (s *Service) Networks() []domain.Network {
	out := make([]domain.Network, len(networks))
	copy(out, networks)
	return out
}

func (s *Service) Network(id string) (domain.Network, error) {
	for _, n := range networks {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Network{}, errors.ErrNetworkNotFound
}

// PresetAmounts are the quick-pick airtime amounts, in cedi.
func (s *Service) PresetAmounts() []int {
	out := make([]int, len(presetAmounts))
	copy(out, presetAmounts)
	return out
}

func (s *Service) RecentNumbers() []domain.RecentNumber {
	out := make([]domain.RecentNumber, len(recentNumbers))
	copy(out, recentNumbers)
	return out
}

// DataPlans returns the bundles sold for one network, in catalog order.
func (s *Service) DataPlans(networkID string) ([]domain.DataPlan, error) {
	plans, ok := dataPlans[networkID]
	if !ok {
		return nil, errors.ErrNetworkNotFound
	}
	out := make([]domain.DataPlan, len(plans))
	copy(out, plans)
	return out, nil
}

// DataPlan looks a plan up across all networks. Plan ids are globally
// unique, so the network does not need to be known.
func (s *Service) DataPlan(planID string) (domain.DataPlan, error) {
	for _, plans := range dataPlans {
		for _, p := range plans {
			if p.ID == planID {
				return p, nil
			}
		}
	}
	return domain.DataPlan{}, errors.ErrPlanNotFound
}

func (s *Service) ServiceTypes() []domain.ServiceType {
	out := make([]domain.ServiceType, len(serviceTypes))
	copy(out, serviceTypes)
	return out
}

func (s *Service) ServiceType(id string) (domain.ServiceType, error) {
	for _, t := range serviceTypes {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.ServiceType{}, errors.ErrProviderNotFound
}

// UtilityProviders returns the billers for one service type, or all of
// them when serviceType is empty.
func (s *Service) UtilityProviders(serviceType string) []domain.UtilityProvider {
	out := make([]domain.UtilityProvider, 0, len(utilityProviders))
	for _, p := range utilityProviders {
		if serviceType == "" || p.Type == serviceType {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) UtilityProvider(id string) (domain.UtilityProvider, error) {
	for _, p := range utilityProviders {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.UtilityProvider{}, errors.ErrProviderNotFound
}

func (s *Service) RecentPayments() []domain.RecentPayment {
	out := make([]domain.RecentPayment, len(recentPayments))
	copy(out, recentPayments)
	return out
}

// Contacts returns saved transfer recipients matching the query, recent
// counterparties first. An empty query matches everyone.
func (s *Service) Contacts(query string) []domain.Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(c.PhoneNumber, q) ||
			strings.Contains(strings.ToLower(c.AccountNumber), q) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecentTransaction && !out[j].RecentTransaction
	})
	return out
}

func (s *Service) Contact(id string) (domain.Contact, error) {
	for _, c := range contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Contact{}, errors.ErrContactNotFound
}

func (s *Service) WalletCurrencies() []domain.WalletCurrency {
	out := make([]domain.WalletCurrency, len(walletCurrencies))
	copy(out, walletCurrencies)
	return out
}

func (s *Service) WalletCurrency(id domain.CurrencyID) (domain.WalletCurrency, error) {
	for _, c := range walletCurrencies {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.WalletCurrency{}, errors.ErrCurrencyNotFound
}

func (s *Service) WalletTransactions() []domain.WalletTransaction {
	out := make([]domain.WalletTransaction, len(walletTransactions))
	copy(out, walletTransactions)
	return out
}
