package data

import (
	"context"
	"fmt"
	"time"

	"github.com/coderustle/budgetcli/internal/config"
	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/sheets"
)

// TransactionManager binds the client to the TRANSACTIONS sheet.
type TransactionManager struct {
	manager
}

func NewTransactionManager(client sheets.Client, store *config.Store) *TransactionManager {
	return &TransactionManager{manager{client: client, store: store, entity: core.Transactions}}
}

// ByMonth returns the transaction rows whose date falls in the given
// calendar month, filtered server-side.
func (m *TransactionManager) ByMonth(ctx context.Context, month time.Month) [][]string {
	expr := fmt.Sprintf("SELECT A, B, C, D, E WHERE %s", monthPredicate("A", month))
	return m.client.Query(ctx, m.entity.SheetTitle(), expr)
}
