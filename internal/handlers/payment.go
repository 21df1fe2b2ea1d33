package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/kylefourie/swiftpay-gobackend/internal/services"
	"github.com/kylefourie/swiftpay-gobackend/internal/validation"
)

type PaymentHandler struct {
	payments  *services.PaymentService
	customers *services.CustomerService
}

func NewPaymentHandler(payments *services.PaymentService, customers *services.CustomerService) *PaymentHandler {
	return &PaymentHandler{payments: payments, customers: customers}
}

// CreatePayment records a pending payment for the authenticated customer.
// Ran behind RequireAuth, so claims are always present.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
		return
	}

	var req struct {
		Amount           string `json:"amount"`
		Currency         string `json:"currency"`
		Provider         string `json:"provider"`
		RecipientAccount string `json:"recipientAccount"`
		SwiftCode        string `json:"swiftCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !validation.Amount(req.Amount) {
		http.Error(w, `{"error":"Invalid amount format"}`, http.StatusBadRequest)
		return
	}
	if !validation.Currency(req.Currency) {
		http.Error(w, `{"error":"Invalid currency format"}`, http.StatusBadRequest)
		return
	}
	if !validation.Alphanumeric(req.Provider) {
		http.Error(w, `{"error":"Invalid provider format"}`, http.StatusBadRequest)
		return
	}
	if !validation.Alphanumeric(req.SwiftCode) {
		http.Error(w, `{"error":"Invalid SWIFT code format"}`, http.StatusBadRequest)
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), claims.Subject)
	if err != nil {
		if err == services.ErrNotFound {
			http.Error(w, `{"error":"Customer not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Payment failed for account %s: %v", claims.AccountNumber, err)
		http.Error(w, `{"error":"Payment failed"}`, http.StatusInternalServerError)
		return
	}

	payment, err := h.payments.CreatePayment(r.Context(), customer, req.Amount, req.Currency, req.Provider, req.RecipientAccount, req.SwiftCode)
	if err != nil {
		log.Printf("Payment failed for account %s: %v", claims.AccountNumber, err)
		http.Error(w, `{"error":"Payment failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":        "Payment successfully processed",
		"paymentDetails": payment,
	})
}

// GetPayments lists every pending payment for staff review.
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.PendingPayments(r.Context())
	if err != nil {
		log.Printf("Failed to fetch payments: %v", err)
		http.Error(w, `{"error":"Failed to fetch payments"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payments); err != nil {
		log.Printf("Failed to encode payments: %v", err)
		http.Error(w, `{"error":"Failed to fetch payments"}`, http.StatusInternalServerError)
	}
}

// VerifyPayment moves a pending payment into the transactions collection.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentID string `json:"paymentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := h.payments.VerifyPayment(r.Context(), req.PaymentID); err != nil {
		if err == services.ErrNotFound {
			http.Error(w, `{"error":"Payment not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to verify payment %s: %v", req.PaymentID, err)
		http.Error(w, `{"error":"Failed to verify payment"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Payment verified and moved to transactions"})
}

// SubmitAllToSWIFT promotes every verified transaction to the terminal swift
// collection.
func (h *PaymentHandler) SubmitAllToSWIFT(w http.ResponseWriter, r *http.Request) {
	submitted, err := h.payments.SubmitAllVerified(r.Context())
	if err != nil {
		log.Printf("Failed to submit transactions to SWIFT: %v", err)
		http.Error(w, `{"error":"Failed to submit transactions to SWIFT"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":   "All verified transactions submitted to SWIFT",
		"submitted": submitted,
	})
}
