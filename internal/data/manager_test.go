package data

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderustle/budgetcli/internal/config"
	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/sheets/memory"
)

func TestInit_CreatesSheetBeforeHeader(t *testing.T) {
	store := memory.New()
	m := NewTransactionManager(store, nil)

	require.NoError(t, m.Init(context.Background()))

	// Create must strictly precede the header write.
	assert.Equal(t, []string{
		"exists:TRANSACTIONS",
		"create:TRANSACTIONS",
		"update:TRANSACTIONS!A1:E1",
	}, store.Ops)
}

func TestInit_ExistingSheetOnlyWritesHeader(t *testing.T) {
	store := memory.New()
	store.Seed("TRANSACTIONS", [][]string{{"stale"}})
	m := NewTransactionManager(store, nil)

	require.NoError(t, m.Init(context.Background()))
	assert.Equal(t, []string{
		"exists:TRANSACTIONS",
		"update:TRANSACTIONS!A1:E1",
	}, store.Ops)

	rows := store.Get(context.Background(), "TRANSACTIONS!A1:E")
	require.NotEmpty(t, rows)
	assert.Equal(t, core.Transactions.Header(), rows[0])
}

func TestInit_CreateFailure(t *testing.T) {
	store := memory.New()
	store.FailCreate = true
	m := NewBudgetManager(store, nil)

	err := m.Init(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInitFailed)
}

func TestInit_HeaderFailure(t *testing.T) {
	store := memory.New()
	store.FailUpdate = true
	m := NewCategoryManager(store, nil)

	err := m.Init(context.Background())
	assert.ErrorIs(t, err, ErrInitFailed)
}

func TestInit_Timeout(t *testing.T) {
	store := memory.New()
	store.Delay = time.Second
	m := NewTransactionManager(store, nil)

	// A deadline tighter than the backend's latency maps the failed
	// call to the timeout error, not the generic init failure.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := m.Init(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInitTimeout)
	assert.NotErrorIs(t, err, ErrInitFailed)
}

func TestInit_RecordsSheetIndex(t *testing.T) {
	cfg := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	store := memory.New()
	m := NewTransactionManager(store, cfg)

	require.NoError(t, m.Init(context.Background()))

	v, ok := cfg.Get("transactions_sheet_index")
	require.True(t, ok)
	assert.Equal(t, "0", v)
}

func TestRecords_Limit(t *testing.T) {
	store := memory.New()
	store.Seed("TRANSACTIONS", [][]string{
		core.Transactions.Header(),
		{"01-05-2023", "a", "", "1", "0"},
		{"02-05-2023", "b", "", "2", "0"},
		{"03-05-2023", "c", "", "3", "0"},
		{"04-05-2023", "d", "", "4", "0"},
	})
	m := NewTransactionManager(store, nil)

	rows := m.Records(context.Background(), 3)
	assert.Len(t, rows, 3)

	// A limit larger than the data returns everything.
	rows = m.Records(context.Background(), 100)
	assert.Len(t, rows, 4)
}

func TestByMonth_FiltersTransactions(t *testing.T) {
	store := memory.New()
	store.Seed("TRANSACTIONS", [][]string{
		core.Transactions.Header(),
		{"05-05-2023", "salary", "", "200", "0"},
		{"06-06-2023", "rent", "", "0", "100"},
	})
	m := NewTransactionManager(store, nil)

	rows := m.ByMonth(context.Background(), time.May)
	require.Len(t, rows, 1)
	assert.Equal(t, "05-05-2023", rows[0][0])
}

func TestCategoryByName(t *testing.T) {
	store := memory.New()
	store.Seed("CATEGORIES", [][]string{
		core.Categories.Header(),
		{"salary"},
		{"rent"},
	})
	m := NewCategoryManager(store, nil)

	assert.Len(t, m.ByName(context.Background(), "Salary"), 1)
	assert.Empty(t, m.ByName(context.Background(), "bonus"))
}

func TestBudgetByMonth_Pair(t *testing.T) {
	store := memory.New()
	store.Seed("BUDGETS", [][]string{
		core.Budgets.Header(),
		{"01-05-2023", "rent", "750"},
		{"01-06-2023", "rent", "800"},
	})
	m := NewBudgetManager(store, nil)

	rows := m.ByMonth(context.Background(), time.May, "rent")
	require.Len(t, rows, 1)
	assert.Equal(t, "750", rows[0][2])

	assert.Empty(t, m.ByMonth(context.Background(), time.May, "food"))
	assert.Len(t, m.ForMonth(context.Background(), time.June), 1)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'rent'", quote("rent"))
	// Apostrophes switch the literal to double quotes since the query
	// language has no escape sequence.
	assert.Equal(t, `"mario's pizza"`, quote("mario's pizza"))
}

func TestCategoryByName_Apostrophe(t *testing.T) {
	store := memory.New()
	store.Seed("CATEGORIES", [][]string{
		core.Categories.Header(),
		{"mario's pizza"},
	})
	m := NewCategoryManager(store, nil)

	assert.Len(t, m.ByName(context.Background(), "Mario's Pizza"), 1)
}

func TestForEntity(t *testing.T) {
	store := memory.New()
	assert.IsType(t, &TransactionManager{}, ForEntity(core.Transactions, store, nil))
	assert.IsType(t, &CategoryManager{}, ForEntity(core.Categories, store, nil))
	assert.IsType(t, &BudgetManager{}, ForEntity(core.Budgets, store, nil))
}
