package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entity identifies one of the sheets the application owns inside the
// configured spreadsheet. Each entity type maps to exactly one tab.
type Entity int

const (
	Transactions Entity = iota
	Categories
	Budgets
)

// SheetTitle returns the tab name for the entity.
func (e Entity) SheetTitle() string {
	switch e {
	case Transactions:
		return "TRANSACTIONS"
	case Categories:
		return "CATEGORIES"
	case Budgets:
		return "BUDGETS"
	}
	return ""
}

// DataRange returns the A1 range covering the entity's data rows,
// starting after the header row.
func (e Entity) DataRange() string {
	switch e {
	case Transactions:
		return "TRANSACTIONS!A2:E"
	case Categories:
		return "CATEGORIES!A2:A"
	case Budgets:
		return "BUDGETS!A2:C"
	}
	return ""
}

// HeaderRange returns the A1 range of the entity's header row.
func (e Entity) HeaderRange() string {
	switch e {
	case Transactions:
		return "TRANSACTIONS!A1:E1"
	case Categories:
		return "CATEGORIES!A1:A1"
	case Budgets:
		return "BUDGETS!A1:C1"
	}
	return ""
}

// Header returns the header row written on init.
func (e Entity) Header() []string {
	switch e {
	case Transactions:
		return []string{"DATE", "CATEGORY", "DESCRIPTION", "INCOME", "OUTCOME"}
	case Categories:
		return []string{"CATEGORY"}
	case Budgets:
		return []string{"DATE", "CATEGORY", "AMOUNT"}
	}
	return nil
}

type (
	// Transaction is a single income or outcome entry. Exactly one of
	// Income/Outcome is expected to be non-zero; the model does not
	// enforce this.
	Transaction struct {
		Date        time.Time
		Category    string
		Description string
		Income      decimal.Decimal
		Outcome     decimal.Decimal
	}

	// Category is a transaction/budget category. Names are lower-cased
	// on construction; uniqueness is enforced by the command layer.
	Category struct {
		Name string
	}

	// Budget is a planned amount for a category in the month of Date.
	Budget struct {
		Date     time.Time
		Category string
		Amount   decimal.Decimal
	}
)

// NewTransaction builds a transaction with the category lower-cased
// and both amounts at zero.
func NewTransaction(date time.Time, category, description string) Transaction {
	return Transaction{
		Date:        date,
		Category:    strings.ToLower(category),
		Description: description,
		Income:      decimal.Zero,
		Outcome:     decimal.Zero,
	}
}

// NewCategory lower-cases the name.
func NewCategory(name string) Category {
	return Category{Name: strings.ToLower(strings.TrimSpace(name))}
}

// NewBudget builds a budget with the category lower-cased.
func NewBudget(date time.Time, category string, amount decimal.Decimal) Budget {
	return Budget{Date: date, Category: strings.ToLower(category), Amount: amount}
}
