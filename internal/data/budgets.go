package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coderustle/budgetcli/internal/config"
	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/sheets"
)

// BudgetManager binds the client to the BUDGETS sheet.
type BudgetManager struct {
	manager
}

func NewBudgetManager(client sheets.Client, store *config.Store) *BudgetManager {
	return &BudgetManager{manager{client: client, store: store, entity: core.Budgets}}
}

// ByMonth returns the budget rows for the (month, category) pair. At
// most one row is expected per pair; the command layer enforces that
// with a query-then-insert.
func (m *BudgetManager) ByMonth(ctx context.Context, month time.Month, category string) [][]string {
	expr := fmt.Sprintf("SELECT A, B, C WHERE %s AND B = %s",
		monthPredicate("A", month), quote(strings.ToLower(category)))
	return m.client.Query(ctx, m.entity.SheetTitle(), expr)
}

// ForMonth returns all budget rows for the month, any category.
func (m *BudgetManager) ForMonth(ctx context.Context, month time.Month) [][]string {
	expr := fmt.Sprintf("SELECT A, B, C WHERE %s", monthPredicate("A", month))
	return m.client.Query(ctx, m.entity.SheetTitle(), expr)
}
