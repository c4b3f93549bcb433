package commands

import (
	"context"
	"fmt"

	"github.com/coderustle/budgetcli/internal/auth"
	"github.com/coderustle/budgetcli/internal/config"
	"github.com/coderustle/budgetcli/internal/data"
	"github.com/coderustle/budgetcli/internal/sheets"
	"github.com/coderustle/budgetcli/internal/sheets/google"
)

// deps wires the authenticated client and config store the managers
// are constructed from.
type deps struct {
	store  *config.Store
	client sheets.Client
}

func newDeps(ctx context.Context) (*deps, error) {
	store, err := config.Open()
	if err != nil {
		return nil, err
	}
	spreadsheetID, ok := store.SpreadsheetID()
	if !ok {
		return nil, fmt.Errorf("spreadsheet id is not configured, run 'budgetcli config spreadsheet-id <ID>'")
	}
	httpClient, ok := auth.HTTPClient(ctx)
	if !ok {
		return nil, auth.ErrNotAuthenticated
	}
	client, err := google.New(httpClient, spreadsheetID)
	if err != nil {
		return nil, err
	}
	return &deps{store: store, client: client}, nil
}

func (d *deps) transactions() *data.TransactionManager {
	return data.NewTransactionManager(d.client, d.store)
}

func (d *deps) categories() *data.CategoryManager {
	return data.NewCategoryManager(d.client, d.store)
}

func (d *deps) budgets() *data.BudgetManager {
	return data.NewBudgetManager(d.client, d.store)
}
