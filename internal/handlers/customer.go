package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/kylefourie/swiftpay-gobackend/internal/auth"
	"github.com/kylefourie/swiftpay-gobackend/internal/services"
	"github.com/kylefourie/swiftpay-gobackend/internal/validation"
)

type CustomerHandler struct {
	customers *services.CustomerService
	employees *services.EmployeeService
	tokens    *auth.TokenService
}

func NewCustomerHandler(customers *services.CustomerService, employees *services.EmployeeService, tokens *auth.TokenService) *CustomerHandler {
	return &CustomerHandler{customers: customers, employees: employees, tokens: tokens}
}

// Register creates a customer account after whitelist validation.
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName      string `json:"fullName"`
		IDNumber      string `json:"idNumber"`
		AccountNumber string `json:"accountNumber"`
		Password      string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !validation.FullName(req.FullName) ||
		!validation.IDNumber(req.IDNumber) ||
		!validation.AccountNumber(req.AccountNumber) ||
		!validation.Password(req.Password) {
		http.Error(w, `{"error":"Invalid input format"}`, http.StatusBadRequest)
		return
	}

	if _, err := h.customers.Register(r.Context(), req.FullName, req.IDNumber, req.AccountNumber, req.Password); err != nil {
		log.Printf("Registration failed for account %s: %v", req.AccountNumber, err)
		http.Error(w, `{"error":"Registration failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Registration successful"})
}

// Login authenticates a customer and returns a bearer token.
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountNumber string `json:"accountNumber"`
		Password      string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	// The complexity policy is re-applied at login even though any stored
	// password already passed it at registration.
	if !validation.AccountNumber(req.AccountNumber) || !validation.Password(req.Password) {
		http.Error(w, `{"error":"Invalid input format"}`, http.StatusBadRequest)
		return
	}

	customer, err := h.customers.Authenticate(r.Context(), req.AccountNumber, req.Password)
	if err != nil {
		switch err {
		case services.ErrNotFound:
			http.Error(w, `{"error":"Customer not found"}`, http.StatusNotFound)
		case services.ErrBadCredentials:
			http.Error(w, `{"error":"Invalid password"}`, http.StatusUnauthorized)
		default:
			log.Printf("Login failed for account %s: %v", req.AccountNumber, err)
			http.Error(w, `{"error":"Login failed"}`, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.tokens.Issue(customer.ID.Hex(), customer.AccountNumber, auth.RoleCustomer)
	if err != nil {
		log.Printf("Token issue failed for account %s: %v", req.AccountNumber, err)
		http.Error(w, `{"error":"Login failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

// EmployeeLogin authenticates against the fixed operator table and returns a
// token carrying the employee role.
func (h *CustomerHandler) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountNumber string `json:"accountNumber"`
		Password      string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !validation.AccountNumber(req.AccountNumber) || !validation.Password(req.Password) {
		http.Error(w, `{"error":"Invalid input format"}`, http.StatusBadRequest)
		return
	}

	employee, err := h.employees.Authenticate(req.AccountNumber, req.Password)
	if err != nil {
		switch err {
		case services.ErrNotFound:
			http.Error(w, `{"error":"Employee not found"}`, http.StatusNotFound)
		case services.ErrBadCredentials:
			http.Error(w, `{"error":"Invalid password"}`, http.StatusUnauthorized)
		default:
			log.Printf("Employee login failed for account %s: %v", req.AccountNumber, err)
			http.Error(w, `{"error":"Login failed"}`, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.tokens.Issue(employee.ID.Hex(), employee.AccountNumber, auth.RoleEmployee)
	if err != nil {
		log.Printf("Token issue failed for employee %s: %v", req.AccountNumber, err)
		http.Error(w, `{"error":"Login failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}
