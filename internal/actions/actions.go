// Package actions implements the user-facing command objects. Each
// action orchestrates the managers and reports its outcome on Out.
package actions

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/data"
	"github.com/coderustle/budgetcli/internal/ui"
)

// Action is a single user-facing operation.
type Action interface {
	Execute(ctx context.Context) error
}

// Init ensures all entity sheets exist with their headers. The three
// inits are independent and run concurrently; success is reported only
// when all of them succeed.
type Init struct {
	Managers []data.Manager
	Out      io.Writer
}

func (a *Init) Execute(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, m := range a.Managers {
		m := m
		g.Go(func() error { return m.Init(ctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	fmt.Fprintln(a.Out, "Init was completed successfully")
	return nil
}

// AddTransaction appends a transaction, creating its category on the
// fly when it is not known yet. The lookup and the append form a
// check-then-act pair: concurrent invocations for a brand-new category
// can both miss it and append duplicate category rows. Accepted for a
// single-user CLI.
type AddTransaction struct {
	Transactions *data.TransactionManager
	Categories   *data.CategoryManager
	Transaction  core.Transaction
	Out          io.Writer
}

func (a *AddTransaction) Execute(ctx context.Context) error {
	existing := a.Categories.ByName(ctx, a.Transaction.Category)

	if len(existing) > 0 {
		if a.Transactions.Append(ctx, a.Transaction.ToRow()) == "" {
			return errors.New("transaction was not added")
		}
	} else {
		// Both appends target different ranges and are independent.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			cat := core.NewCategory(a.Transaction.Category)
			if a.Categories.Append(gctx, cat.ToRow()) == "" {
				return errors.New("category was not added")
			}
			return nil
		})
		g.Go(func() error {
			if a.Transactions.Append(gctx, a.Transaction.ToRow()) == "" {
				return errors.New("transaction was not added")
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.Out, "Transaction was added successfully")
	return nil
}

// AddCategory appends the category unless a row with the same name
// already exists. Same check-then-act race as AddTransaction.
type AddCategory struct {
	Categories *data.CategoryManager
	Category   core.Category
	Out        io.Writer
}

func (a *AddCategory) Execute(ctx context.Context) error {
	if len(a.Categories.ByName(ctx, a.Category.Name)) > 0 {
		fmt.Fprintf(a.Out, "Category %q already exists\n", a.Category.Name)
		return nil
	}
	if a.Categories.Append(ctx, a.Category.ToRow()) == "" {
		return errors.New("category was not added")
	}
	fmt.Fprintln(a.Out, "Category was added successfully")
	return nil
}

// AddBudget appends the budget unless one already exists for the
// (month, category) pair; in that case it reports and leaves the
// remote state untouched.
type AddBudget struct {
	Budgets *data.BudgetManager
	Budget  core.Budget
	Out     io.Writer
}

func (a *AddBudget) Execute(ctx context.Context) error {
	month := a.Budget.Date.Month()
	if len(a.Budgets.ByMonth(ctx, month, a.Budget.Category)) > 0 {
		fmt.Fprintf(a.Out, "Category %q is already budgeted for %s\n",
			a.Budget.Category, month)
		return nil
	}
	if a.Budgets.Append(ctx, a.Budget.ToRow()) == "" {
		return errors.New("budget was not added")
	}
	fmt.Fprintln(a.Out, "Budget was added successfully")
	return nil
}

// ListTransactions renders a bounded recent-rows page, or a
// server-side month filter when Month is set.
type ListTransactions struct {
	Transactions *data.TransactionManager
	Rows         int
	Month        string
	Out          io.Writer
}

func (a *ListTransactions) Execute(ctx context.Context) error {
	var rows [][]string
	if a.Month != "" {
		month, ok := core.MonthNumber(a.Month)
		if !ok {
			return fmt.Errorf("unknown month %q", a.Month)
		}
		rows = a.Transactions.ByMonth(ctx, month)
	} else {
		rows = a.Transactions.Records(ctx, a.Rows)
	}
	ui.RenderTable(a.Out, core.Transactions, rows)
	return nil
}

// ListCategories renders the known categories.
type ListCategories struct {
	Categories *data.CategoryManager
	Rows       int
	Out        io.Writer
}

func (a *ListCategories) Execute(ctx context.Context) error {
	rows := a.Categories.Records(ctx, a.Rows)
	ui.RenderTable(a.Out, core.Categories, rows)
	return nil
}
