package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// formatAmount renders a currency cell preserving the scale the value
// was entered with: "1000.00" stays "1000.00", never "1000".
func formatAmount(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// ToRow serializes the transaction in sheet column order:
// date, category, description, income, outcome.
func (t Transaction) ToRow() []string {
	return []string{
		t.Date.Format(SheetDateFormat),
		t.Category,
		t.Description,
		formatAmount(t.Income),
		formatAmount(t.Outcome),
	}
}

// TransactionFromRow parses a sheet row back into a transaction.
func TransactionFromRow(row []string) (Transaction, error) {
	if len(row) < 5 {
		return Transaction{}, fmt.Errorf("transaction row has %d cells, want 5", len(row))
	}
	date, err := ParseDate(row[0])
	if err != nil {
		return Transaction{}, err
	}
	income, err := ParseAmount(row[3])
	if err != nil {
		return Transaction{}, err
	}
	outcome, err := ParseAmount(row[4])
	if err != nil {
		return Transaction{}, err
	}
	t := NewTransaction(date, row[1], row[2])
	t.Income = income
	t.Outcome = outcome
	return t, nil
}

// ToRow returns the single-cell category row.
func (c Category) ToRow() []string {
	return []string{c.Name}
}

// CategoryFromRow parses a sheet row into a category.
func CategoryFromRow(row []string) (Category, error) {
	if len(row) < 1 {
		return Category{}, fmt.Errorf("category row is empty")
	}
	return NewCategory(row[0]), nil
}

// ToRow serializes the budget as date, category, amount.
func (b Budget) ToRow() []string {
	return []string{
		b.Date.Format(SheetDateFormat),
		b.Category,
		formatAmount(b.Amount),
	}
}

// BudgetFromRow parses a sheet row back into a budget.
func BudgetFromRow(row []string) (Budget, error) {
	if len(row) < 3 {
		return Budget{}, fmt.Errorf("budget row has %d cells, want 3", len(row))
	}
	date, err := ParseDate(row[0])
	if err != nil {
		return Budget{}, err
	}
	amount, err := ParseAmount(row[2])
	if err != nil {
		return Budget{}, err
	}
	return NewBudget(date, row[1], amount), nil
}
