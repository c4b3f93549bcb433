package actions

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/data"
	"github.com/coderustle/budgetcli/internal/sheets/memory"
)

func newManagers(store *memory.Store) (*data.TransactionManager, *data.CategoryManager, *data.BudgetManager) {
	return data.NewTransactionManager(store, nil),
		data.NewCategoryManager(store, nil),
		data.NewBudgetManager(store, nil)
}

func seedAll(store *memory.Store) {
	store.Seed("TRANSACTIONS", [][]string{core.Transactions.Header()})
	store.Seed("CATEGORIES", [][]string{core.Categories.Header()})
	store.Seed("BUDGETS", [][]string{core.Budgets.Header()})
}

func TestInit_AllSheets(t *testing.T) {
	store := memory.New()
	tm, cm, bm := newManagers(store)
	var out bytes.Buffer

	action := &Init{Managers: []data.Manager{tm, cm, bm}, Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	for _, title := range []string{"TRANSACTIONS", "CATEGORIES", "BUDGETS"} {
		assert.True(t, store.SheetExists(context.Background(), title), title)
	}
	assert.Contains(t, out.String(), "Init was completed successfully")
}

func TestInit_ReportsFailure(t *testing.T) {
	store := memory.New()
	store.FailCreate = true
	tm, cm, bm := newManagers(store)
	var out bytes.Buffer

	action := &Init{Managers: []data.Manager{tm, cm, bm}, Out: &out}
	err := action.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrInitFailed)
	assert.NotContains(t, out.String(), "successfully")
}

func TestAddTransaction_ExistingCategory(t *testing.T) {
	store := memory.New()
	seedAll(store)
	store.Seed("CATEGORIES", [][]string{core.Categories.Header(), {"salary"}})
	tm, cm, _ := newManagers(store)
	var out bytes.Buffer

	tx := core.NewTransaction(time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC), "salary", "pay")
	tx.Income = decimal.RequireFromString("200")

	action := &AddTransaction{Transactions: tm, Categories: cm, Transaction: tx, Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	// Exactly one transaction row appended, zero new category rows.
	assert.Equal(t, 1, store.RowCount("TRANSACTIONS"))
	assert.Equal(t, 1, store.RowCount("CATEGORIES"))
}

func TestAddTransaction_NewCategory(t *testing.T) {
	store := memory.New()
	seedAll(store)
	tm, cm, _ := newManagers(store)
	var out bytes.Buffer

	tx := core.NewTransaction(time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC), "Bonus", "eoy")
	tx.Income = decimal.RequireFromString("500")

	action := &AddTransaction{Transactions: tm, Categories: cm, Transaction: tx, Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	// One category row plus one transaction row.
	assert.Equal(t, 1, store.RowCount("TRANSACTIONS"))
	assert.Equal(t, 1, store.RowCount("CATEGORIES"))
	cats := store.Get(context.Background(), "CATEGORIES!A2:A")
	require.Len(t, cats, 1)
	assert.Equal(t, "bonus", cats[0][0])
}

func TestAddTransaction_AppendFailure(t *testing.T) {
	store := memory.New()
	seedAll(store)
	store.Seed("CATEGORIES", [][]string{core.Categories.Header(), {"salary"}})
	store.FailAppend = true
	tm, cm, _ := newManagers(store)
	var out bytes.Buffer

	tx := core.NewTransaction(time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC), "salary", "")
	action := &AddTransaction{Transactions: tm, Categories: cm, Transaction: tx, Out: &out}
	err := action.Execute(context.Background())
	require.Error(t, err)
	assert.NotContains(t, out.String(), "successfully")
}

func TestAddCategory_Duplicate(t *testing.T) {
	store := memory.New()
	seedAll(store)
	store.Seed("CATEGORIES", [][]string{core.Categories.Header(), {"salary"}})
	_, cm, _ := newManagers(store)
	var out bytes.Buffer

	action := &AddCategory{Categories: cm, Category: core.NewCategory("Salary"), Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	assert.Equal(t, 1, store.RowCount("CATEGORIES"))
	assert.Contains(t, out.String(), "already exists")
}

func TestAddCategory_New(t *testing.T) {
	store := memory.New()
	seedAll(store)
	_, cm, _ := newManagers(store)
	var out bytes.Buffer

	action := &AddCategory{Categories: cm, Category: core.NewCategory("Food"), Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	assert.Equal(t, 1, store.RowCount("CATEGORIES"))
	assert.Contains(t, out.String(), "added successfully")
}

func TestAddBudget_AlreadyBudgeted(t *testing.T) {
	store := memory.New()
	seedAll(store)
	store.Seed("BUDGETS", [][]string{core.Budgets.Header(), {"01-05-2023", "rent", "750"}})
	_, _, bm := newManagers(store)
	var out bytes.Buffer

	b := core.NewBudget(time.Date(2023, 5, 20, 0, 0, 0, 0, time.UTC), "rent", decimal.RequireFromString("800"))
	action := &AddBudget{Budgets: bm, Budget: b, Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	// The remote row count is unchanged.
	assert.Equal(t, 1, store.RowCount("BUDGETS"))
	assert.Contains(t, out.String(), "already budgeted")
}

func TestAddBudget_NewPair(t *testing.T) {
	store := memory.New()
	seedAll(store)
	store.Seed("BUDGETS", [][]string{core.Budgets.Header(), {"01-05-2023", "rent", "750"}})
	_, _, bm := newManagers(store)
	var out bytes.Buffer

	// Same category, different month: a new row is allowed.
	b := core.NewBudget(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), "rent", decimal.RequireFromString("800"))
	action := &AddBudget{Budgets: bm, Budget: b, Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	assert.Equal(t, 2, store.RowCount("BUDGETS"))
}

func TestListTransactions_ByMonth(t *testing.T) {
	store := memory.New()
	store.Seed("TRANSACTIONS", [][]string{
		core.Transactions.Header(),
		{"05-05-2023", "salary", "", "200", "0"},
		{"06-06-2023", "rent", "", "0", "100"},
	})
	tm, _, _ := newManagers(store)
	var out bytes.Buffer

	action := &ListTransactions{Transactions: tm, Month: "may", Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	assert.Contains(t, out.String(), "05-05-2023")
	assert.NotContains(t, out.String(), "06-06-2023")
}

func TestListTransactions_UnknownMonth(t *testing.T) {
	store := memory.New()
	tm, _, _ := newManagers(store)

	action := &ListTransactions{Transactions: tm, Month: "smarch", Out: &bytes.Buffer{}}
	assert.Error(t, action.Execute(context.Background()))
}

func TestListTransactions_RowsBound(t *testing.T) {
	store := memory.New()
	store.Seed("TRANSACTIONS", [][]string{
		core.Transactions.Header(),
		{"01-05-2023", "a", "", "1", "0"},
		{"02-05-2023", "b", "", "2", "0"},
		{"03-05-2023", "c", "", "3", "0"},
	})
	tm, _, _ := newManagers(store)
	var out bytes.Buffer

	action := &ListTransactions{Transactions: tm, Rows: 2, Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	assert.Contains(t, out.String(), "01-05-2023")
	assert.Contains(t, out.String(), "02-05-2023")
	assert.NotContains(t, out.String(), "03-05-2023")
}

func TestListCategories(t *testing.T) {
	store := memory.New()
	store.Seed("CATEGORIES", [][]string{core.Categories.Header(), {"salary"}, {"rent"}})
	_, cm, _ := newManagers(store)
	var out bytes.Buffer

	action := &ListCategories{Categories: cm, Rows: 10, Out: &out}
	require.NoError(t, action.Execute(context.Background()))

	assert.Contains(t, out.String(), "salary")
	assert.Contains(t, out.String(), "rent")
}
