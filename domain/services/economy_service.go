package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"jahbot/domain/entities"
	"jahbot/events"
	"jahbot/settings"

	log "github.com/sirupsen/logrus"
)

const dailyClaimWindow = 24 * time.Hour

// DailyClaimResult describes a successful daily reward claim.
type DailyClaimResult struct {
	Amount     int64
	NewBalance int64
}

// TransferResult describes a completed peer-to-peer transfer.
type TransferResult struct {
	Amount           int64
	SenderBalance    int64
	RecipientBalance int64
}

// PurchaseResult describes a completed shop purchase.
type PurchaseResult struct {
	Item       settings.ShopItem
	NewBalance int64
}

// EconomyService owns the per-user balance ledger. Accounts are created
// lazily with the configured starting balance; no balance may go negative.
type EconomyService struct {
	mu       sync.Mutex
	accounts map[string]*entities.EconomyAccount

	daily     *CooldownTracker
	store     settings.Store
	publisher events.Publisher
	now       func() time.Time
}

// NewEconomyService creates a new economy service reading live configuration
// from the settings store.
func NewEconomyService(store settings.Store, publisher events.Publisher) *EconomyService {
	return &EconomyService{
		accounts:  make(map[string]*entities.EconomyAccount),
		daily:     NewCooldownTracker(),
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// Account returns a snapshot of a user's account, creating it if needed.
func (s *EconomyService) Account(userID, displayName string) entities.EconomyAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.getOrCreateLocked(userID, displayName)
}

// ClaimDaily credits the configured daily bonus unless the user claimed less
// than 24 hours ago. The cooldown check and the credit happen inside one
// critical section so duplicate rapid invocations can never double-credit.
func (s *EconomyService) ClaimDaily(ctx context.Context, userID, displayName string) (*DailyClaimResult, error) {
	bonus := s.store.GetEconomySettings().DailyBonus

	s.mu.Lock()
	account := s.getOrCreateLocked(userID, displayName)

	remaining, ok := s.daily.TryAcquire(userID, dailyClaimWindow)
	if !ok {
		s.mu.Unlock()
		return nil, &CooldownError{Remaining: remaining}
	}

	oldBalance := account.Balance
	account.Balance += bonus
	claimedAt := s.now()
	account.LastDailyClaim = &claimedAt
	newBalance := account.Balance
	s.mu.Unlock()

	s.publishChange(ctx, userID, oldBalance, newBalance, events.TransactionTypeDailyClaim)
	return &DailyClaimResult{Amount: bonus, NewBalance: newBalance}, nil
}

// Transfer moves an amount between two users. Debit and credit happen inside
// one critical section: both succeed or neither does.
func (s *EconomyService) Transfer(ctx context.Context, fromID, fromName, toID, toName string, amount int64) (*TransferResult, error) {
	if toID == "" || fromID == toID {
		return nil, ErrInvalidTarget
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	sender := s.getOrCreateLocked(fromID, fromName)
	if !sender.CanAfford(amount) {
		s.mu.Unlock()
		return nil, ErrInsufficientFunds
	}
	recipient := s.getOrCreateLocked(toID, toName)

	senderOld := sender.Balance
	recipientOld := recipient.Balance
	sender.Balance -= amount
	recipient.Balance += amount
	result := &TransferResult{
		Amount:           amount,
		SenderBalance:    sender.Balance,
		RecipientBalance: recipient.Balance,
	}
	s.mu.Unlock()

	s.publishChange(ctx, fromID, senderOld, result.SenderBalance, events.TransactionTypeTransferOut)
	s.publishChange(ctx, toID, recipientOld, result.RecipientBalance, events.TransactionTypeTransferIn)
	return result, nil
}

// Purchase debits the price of a shop item matched by case-insensitive exact
// name. No inventory record is granted; purchases are not tracked post-sale.
func (s *EconomyService) Purchase(ctx context.Context, userID, displayName, itemName string) (*PurchaseResult, error) {
	item, found := findShopItem(s.store.GetShopItems(), itemName)
	if !found {
		return nil, ErrItemNotFound
	}

	s.mu.Lock()
	account := s.getOrCreateLocked(userID, displayName)
	if !account.CanAfford(item.Price) {
		s.mu.Unlock()
		return nil, ErrInsufficientFunds
	}
	oldBalance := account.Balance
	account.Balance -= item.Price
	newBalance := account.Balance
	s.mu.Unlock()

	s.publishChange(ctx, userID, oldBalance, newBalance, events.TransactionTypePurchase)
	return &PurchaseResult{Item: item, NewBalance: newBalance}, nil
}

// Deposit credits an amount from another engine (e.g. a game reward) and
// returns the new balance.
func (s *EconomyService) Deposit(ctx context.Context, userID, displayName string, amount int64, txType events.TransactionType) int64 {
	s.mu.Lock()
	account := s.getOrCreateLocked(userID, displayName)
	oldBalance := account.Balance
	account.Balance += amount
	newBalance := account.Balance
	s.mu.Unlock()

	s.publishChange(ctx, userID, oldBalance, newBalance, txType)
	return newBalance
}

// DailyRemaining reports how long until a user may claim again.
func (s *EconomyService) DailyRemaining(userID string) time.Duration {
	return s.daily.Remaining(userID, dailyClaimWindow)
}

func (s *EconomyService) getOrCreateLocked(userID, displayName string) *entities.EconomyAccount {
	if account, ok := s.accounts[userID]; ok {
		if displayName != "" {
			account.DisplayName = displayName
		}
		return account
	}
	account := &entities.EconomyAccount{
		UserID:      userID,
		DisplayName: displayName,
		Balance:     s.store.GetEconomySettings().StartingBalance,
	}
	s.accounts[userID] = account
	log.WithFields(log.Fields{
		"user_id": userID,
		"balance": account.Balance,
	}).Debug("Created economy account")
	return account
}

func (s *EconomyService) publishChange(ctx context.Context, userID string, oldBalance, newBalance int64, txType events.TransactionType) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, events.BalanceChangeEvent{
		UserID:          userID,
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
		ChangeAmount:    newBalance - oldBalance,
		TransactionType: txType,
	})
}

func findShopItem(items []settings.ShopItem, name string) (settings.ShopItem, bool) {
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return settings.ShopItem{}, false
}
