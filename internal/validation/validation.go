// Package validation holds the whitelist checks applied to every request
// field before it reaches storage. All checks are full-match regexes; input
// that fails any of them is rejected with a 400 at the route boundary.
package validation

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	fullNamePattern      = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	idNumberPattern      = regexp.MustCompile(`^\d{13}$`)
	accountNumberPattern = regexp.MustCompile(`^\d+$`)
	amountPattern        = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	currencyPattern      = regexp.MustCompile(`^[A-Za-z]{3}$`)
	alphanumericPattern  = regexp.MustCompile(`^[A-Za-z0-9]+$`)

	lowerPattern  = regexp.MustCompile(`[a-z]`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	symbolPattern = regexp.MustCompile(`\W`)
)

// FullName accepts letters and spaces only.
func FullName(s string) bool {
	return fullNamePattern.MatchString(s)
}

// IDNumber accepts exactly 13 digits.
func IDNumber(s string) bool {
	return idNumberPattern.MatchString(s)
}

// AccountNumber accepts digits only.
func AccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}

// Password enforces the complexity policy: at least 8 characters with one
// lowercase, one uppercase, one digit and one non-word symbol.
func Password(s string) bool {
	return len(s) >= 8 &&
		lowerPattern.MatchString(s) &&
		upperPattern.MatchString(s) &&
		digitPattern.MatchString(s) &&
		symbolPattern.MatchString(s)
}

// Amount accepts a positive decimal with at most two fractional digits.
// "0" and "0.00" pass the pattern but are rejected as non-positive.
func Amount(s string) bool {
	if !amountPattern.MatchString(s) {
		return false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// Currency accepts exactly three letters.
func Currency(s string) bool {
	return currencyPattern.MatchString(s)
}

// Alphanumeric accepts letters and digits only; used for provider and SWIFT
// code fields.
func Alphanumeric(s string) bool {
	return alphanumericPattern.MatchString(s)
}
