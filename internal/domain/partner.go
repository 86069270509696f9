package domain

import "time"

// Partner is a customer or supplier registered in the invoicing subsystem.
// Its bank account list is used for counter-party resolution during
// automatic matching.
type Partner struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ID           string
	TenantID     string
	Name         string
	TaxNumber    string
	BankAccounts []string
}

// HasBankAccount reports whether the given account number is registered
// for this partner.
func (p *Partner) HasBankAccount(accountNumber string) bool {
	for _, a := range p.BankAccounts {
		if a == accountNumber {
			return true
		}
	}

	return false
}
