package entities

import (
	"time"
)

// EconomyAccount represents a user's per-process balance ledger entry.
// Accounts are created lazily on the first economy command from a user.
type EconomyAccount struct {
	UserID         string
	DisplayName    string
	Balance        int64
	LastDailyClaim *time.Time
}

// CanAfford checks if the account has sufficient balance for an amount.
func (a *EconomyAccount) CanAfford(amount int64) bool {
	return a.Balance >= amount
}
