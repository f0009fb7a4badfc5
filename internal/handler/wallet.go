package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/JoelOnyedika/flutterpay/internal/domain"
	"github.com/JoelOnyedika/flutterpay/internal/wallet"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
	"github.com/JoelOnyedika/flutterpay/pkg/validator"
)

// WalletHandler serves the wallet dashboard endpoints.
type WalletHandler struct {
	service   *wallet.Service
	validator *validator.Validator
	logger    logger.Logger
}

func NewWalletHandler(service *wallet.Service, val *validator.Validator, log logger.Logger) *WalletHandler {
	return &WalletHandler{
		service:   service,
		validator: val,
		logger:    log,
	}
}

func (h *WalletHandler) Balances(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Balances())
}

// ConvertRequest is one calculator conversion.
type ConvertRequest struct {
	Amount decimal.Decimal   `json:"amount" validate:"required"`
	From   domain.CurrencyID `json:"from" validate:"required"`
	To     domain.CurrencyID `json:"to" validate:"required"`
}

func (h *WalletHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.service.Convert(req.Amount, req.From, req.To)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *WalletHandler) Receive(w http.ResponseWriter, r *http.Request) {
	currency := domain.CurrencyID(mux.Vars(r)["currency"])
	details, err := h.service.Receive(currency)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// FundRequest initiates a deposit.
type FundRequest struct {
	Currency domain.CurrencyID `json:"currency" validate:"required"`
	Amount   decimal.Decimal   `json:"amount" validate:"required"`
	Method   string            `json:"method"`
}

func (h *WalletHandler) Fund(w http.ResponseWriter, r *http.Request) {
	var req FundRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	dep, err := h.service.Fund(r.Context(), req.Currency, req.Amount, req.Method)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, dep)
}

func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := wallet.HistoryFilter{
		Type:     q.Get("type"),
		Currency: domain.CurrencyID(q.Get("currency")),
		Search:   q.Get("search"),
	}
	respondJSON(w, http.StatusOK, h.service.History(filter))
}
