package entity

import (
	"regexp"
	"strconv"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail checks the basic shape local@domain.tld.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidTaxID checks an Ecuadorian RUC: 13 digits whose first two form a
// province code in 01..24, or 30 for foreign residents.
func IsValidTaxID(taxID string) bool {
	if len(taxID) != 13 {
		return false
	}

	for _, r := range taxID {
		if r < '0' || r > '9' {
			return false
		}
	}

	province, err := strconv.Atoi(taxID[:2])
	if err != nil {
		return false
	}

	return (province >= 1 && province <= 24) || province == 30
}
