package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"mortgage-calc/domain"
	"mortgage-calc/service"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type LoanHandler struct {
	service *service.LoanService
	log     *logrus.Logger
}

func NewLoanHandler(service *service.LoanService, log *logrus.Logger) *LoanHandler {
	return &LoanHandler{service: service, log: log}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.CalculateLoan)
}

func (h *LoanHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.Schedule)
}

// RepaymentTime answers 200 even when the payment is too low; the body
// carries payment_too_low so clients can show it as a normal state.
func (h *LoanHandler) RepaymentTime(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.RepaymentTime)
}

func (h *LoanHandler) Compare(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.Compare)
}

func (h *LoanHandler) ExtraRepayments(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.ExtraRepayments)
}

func (h *LoanHandler) InterestOnly(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.InterestOnly)
}

func (h *LoanHandler) BorrowingPower(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.BorrowingPower)
}

func (h *LoanHandler) Switching(w http.ResponseWriter, r *http.Request) {
	serveCalculation(w, r, h.log, h.service.Switching)
}

// RecentCalculations lists stored calculations, newest first. The optional
// limit query parameter defaults to 20 and is capped at 200.
func (h *LoanHandler) RecentCalculations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, h.log, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.service.RecentCalculations(r.Context(), limit)
	if err != nil {
		h.log.WithError(err).Error("failed to load calculation history")
		writeError(w, h.log, http.StatusInternalServerError, "internal server error")
		return
	}
	if records == nil {
		records = []domain.CalculationRecord{}
	}

	writeJSON(w, h.log, http.StatusOK, records)
}

// serveCalculation decodes a POSTed input, runs calc and maps its errors:
// invalid input is a 400, a too-low payment still returns its result with
// 200, anything else is a 500.
func serveCalculation[I, R any](
	w http.ResponseWriter,
	r *http.Request,
	log *logrus.Logger,
	calc func(context.Context, I) (R, error),
) {
	if r.Method != http.MethodPost {
		writeError(w, log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input I
	if err := decodeJSON(w, r, &input); err != nil {
		log.WithError(err).Debug("rejecting request body")
		writeError(w, log, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := calc(r.Context(), input)
	switch {
	case err == nil, errors.Is(err, domain.ErrPaymentTooLow):
		writeJSON(w, log, http.StatusOK, result)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, log, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).WithField("path", r.URL.Path).Error("calculation failed")
		writeError(w, log, http.StatusInternalServerError, "internal server error")
	}
}
