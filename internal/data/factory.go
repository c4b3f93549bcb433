package data

import (
	"github.com/coderustle/budgetcli/internal/config"
	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/sheets"
)

// ForEntity returns the manager bound to the given entity sheet.
func ForEntity(e core.Entity, client sheets.Client, store *config.Store) Manager {
	switch e {
	case core.Transactions:
		return NewTransactionManager(client, store)
	case core.Categories:
		return NewCategoryManager(client, store)
	case core.Budgets:
		return NewBudgetManager(client, store)
	}
	return nil
}
