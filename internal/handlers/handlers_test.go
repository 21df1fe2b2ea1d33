package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylefourie/swiftpay-gobackend/internal/auth"
	"github.com/kylefourie/swiftpay-gobackend/internal/services"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	if header != nil {
		req.Header = header
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	// Validation runs before any store access, so no database is needed.
	handler := NewCustomerHandler(nil, nil, nil)

	valid := map[string]string{
		"fullName":      "Jane Doe",
		"idNumber":      "1234567890123",
		"accountNumber": "998877",
		"password":      "Passw0rd!",
	}

	tests := []struct {
		name  string
		field string
		value string
	}{
		{"Name with digits", "fullName", "Jane 2"},
		{"ID number too short", "idNumber", "123456789012"},
		{"ID number with letters", "idNumber", "12345678901ab"},
		{"Account with letters", "accountNumber", "99a877"},
		{"Weak password", "password", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]string{}
			for k, v := range valid {
				body[k] = v
			}
			body[tt.field] = tt.value

			rec := postJSON(t, handler.Register, "/register", body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid input format")
		})
	}
}

func TestLoginRejectsInvalidFormat(t *testing.T) {
	handler := NewCustomerHandler(nil, nil, nil)

	tests := []struct {
		name          string
		accountNumber string
		password      string
	}{
		{"Account with letters", "99a877", "Passw0rd!"},
		{"Password below policy", "998877", "weak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler.Login, "/login", map[string]string{
				"accountNumber": tt.accountNumber,
				"password":      tt.password,
			}, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEmployeeLogin(t *testing.T) {
	employeeService, err := services.NewEmployeeService()
	require.NoError(t, err)
	tokens := auth.NewTokenService("test-secret")
	handler := NewCustomerHandler(nil, employeeService, tokens)

	t.Run("Known employee gets a token", func(t *testing.T) {
		rec := postJSON(t, handler.EmployeeLogin, "/employeelogin", map[string]string{
			"accountNumber": "12345",
			"password":      "Employee1Pass#",
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp["token"])

		claims, err := tokens.Validate(resp["token"])
		require.NoError(t, err)
		assert.Equal(t, auth.RoleEmployee, claims.Role)
		assert.Equal(t, "12345", claims.AccountNumber)
	})

	t.Run("Unknown account is 404", func(t *testing.T) {
		rec := postJSON(t, handler.EmployeeLogin, "/employeelogin", map[string]string{
			"accountNumber": "11111",
			"password":      "Employee1Pass#",
		}, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Wrong password is 401", func(t *testing.T) {
		rec := postJSON(t, handler.EmployeeLogin, "/employeelogin", map[string]string{
			"accountNumber": "12345",
			"password":      "Employee2Pass#",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreatePaymentRequiresBearerToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	middleware := NewMiddleware(tokens)
	handler := NewPaymentHandler(nil, nil)
	protected := middleware.RequireAuth(handler.CreatePayment)

	rec := postJSON(t, protected, "/payment", map[string]string{"amount": "100"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePaymentRejectsInvalidFields(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	middleware := NewMiddleware(tokens)
	handler := NewPaymentHandler(nil, nil)
	protected := middleware.RequireAuth(handler.CreatePayment)

	token, err := tokens.Issue("64f000000000000000000001", "998877", auth.RoleCustomer)
	require.NoError(t, err)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	valid := map[string]string{
		"amount":           "150.75",
		"currency":         "ZAR",
		"provider":         "FNB",
		"recipientAccount": "112233",
		"swiftCode":        "FIRNZAJJ",
	}

	tests := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"Amount with three decimals", "amount", "10.505", "Invalid amount format"},
		{"Zero amount", "amount", "0.00", "Invalid amount format"},
		{"Two-letter currency", "currency", "US", "Invalid currency format"},
		{"Provider with spaces", "provider", "First Bank", "Invalid provider format"},
		{"SWIFT code with dash", "swiftCode", "FIRN-ZAJJ", "Invalid SWIFT code format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]string{}
			for k, v := range valid {
				body[k] = v
			}
			body[tt.field] = tt.value

			rec := postJSON(t, protected, "/payment", body, header)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestStaffRoutesRejectCustomerTokens(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	middleware := NewMiddleware(tokens)
	handler := NewPaymentHandler(nil, nil)
	protected := middleware.RequireEmployee(handler.VerifyPayment)

	token, err := tokens.Issue("64f000000000000000000001", "998877", auth.RoleCustomer)
	require.NoError(t, err)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	rec := postJSON(t, protected, "/paymentverify", map[string]string{"paymentId": "abc"}, header)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffRoutesRejectMissingToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	middleware := NewMiddleware(tokens)
	handler := NewPaymentHandler(nil, nil)
	protected := middleware.RequireEmployee(handler.SubmitAllToSWIFT)

	req := httptest.NewRequest(http.MethodPost, "/submitAllToSWIFT", nil)
	rec := httptest.NewRecorder()
	protected(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
