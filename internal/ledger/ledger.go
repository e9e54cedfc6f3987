// Package ledger implements the store owning the monthly income, the credit
// cards and the expense records.
//
// The Ledger is an explicit state container: it is created once at startup
// with the database handle and passed to everything that reads or writes the
// state. Cards and expenses only ever change through its operations.
package ledger

import (
	"errors"
	"time"

	"github.com/budgetlens/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ledger owns the process-wide financial state.
type Ledger struct {
	db *gorm.DB
}

// New returns a Ledger backed by the database handle.
func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Ping checks that the database behind the ledger is reachable.
func (l *Ledger) Ping() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Income returns the monthly income. A ledger that never had its income set
// reports zero.
func (l *Ledger) Income() (decimal.Decimal, error) {
	var setting models.Setting

	err := l.db.First(&setting).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	return setting.MonthlyIncome, nil
}

// SetIncome replaces the monthly income. The value is not validated, the
// budget rule scales with whatever is set here.
func (l *Ledger) SetIncome(income decimal.Decimal) error {
	var setting models.Setting

	err := l.db.First(&setting).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		setting.MonthlyIncome = income
		return l.db.Create(&setting).Error
	}
	if err != nil {
		return err
	}

	return l.db.Model(&setting).Update("monthly_income", income).Error
}

// Cards returns all cards in insertion order.
func (l *Ledger) Cards() ([]models.Card, error) {
	var cards []models.Card

	err := l.db.Order("created_at ASC").Find(&cards).Error
	return cards, err
}

// Card returns a single card.
func (l *Ledger) Card(id uuid.UUID) (models.Card, error) {
	var card models.Card

	err := l.db.First(&card, "id = ?", id).Error
	return card, err
}

// AddCard appends a new card.
func (l *Ledger) AddCard(name, lastFour string, limit, balance decimal.Decimal) (models.Card, error) {
	card := models.Card{
		Name:        name,
		LastFour:    lastFour,
		CreditLimit: limit,
		Balance:     balance,
	}

	err := l.db.Create(&card).Error
	return card, err
}

// RemoveCard removes a card and all expenses recorded against it. No expense
// may keep referencing a removed card.
//
// Removing an unknown id is a no-op, not an error.
func (l *Ledger) RemoveCard(id uuid.UUID) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("card_id = ?", id).Delete(&models.Expense{}).Error
		if err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Card{}).Error
	})
}

// UpdateCardBalance replaces the balance of a card. Unknown ids are a no-op.
func (l *Ledger) UpdateCardBalance(id uuid.UUID, balance decimal.Decimal) error {
	return l.db.Model(&models.Card{}).Where("id = ?", id).Update("balance", balance).Error
}

// Expenses returns all expenses in insertion order.
func (l *Ledger) Expenses() ([]models.Expense, error) {
	var expenses []models.Expense

	err := l.db.Order("created_at ASC").Find(&expenses).Error
	return expenses, err
}

// Expense returns a single expense.
func (l *Ledger) Expense(id uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	err := l.db.First(&expense, "id = ?", id).Error
	return expense, err
}

// AddExpense records an expense against a card. The budget category is
// derived from the subcategory when the record is created and stored with it.
// A zero date is stamped with the current date.
//
// The expense amount is added to the card balance in the same transaction.
// The card must exist: unlike removals, recording against an unknown card is
// an error since the expense would dangle from the start.
func (l *Ledger) AddExpense(cardID uuid.UUID, amount decimal.Decimal, description, subcategory string, date time.Time) (models.Expense, error) {
	expense := models.Expense{
		CardID:      cardID,
		Amount:      amount,
		Description: description,
		Subcategory: subcategory,
		Date:        date,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var card models.Card
		err := tx.First(&card, "id = ?", cardID).Error
		if err != nil {
			return err
		}

		err = tx.Create(&expense).Error
		if err != nil {
			return err
		}

		return tx.Model(&card).Update("balance", card.Balance.Add(amount)).Error
	})

	return expense, err
}

// RemoveExpense removes an expense. The card balance is not touched: a
// removal is a bookkeeping correction, not a refund. Unknown ids are a no-op.
func (l *Ledger) RemoveExpense(id uuid.UUID) error {
	return l.db.Where("id = ?", id).Delete(&models.Expense{}).Error
}
