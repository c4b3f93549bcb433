// Package data binds the sheet client to the entity sheets and exposes
// the domain operations the command layer is built on.
package data

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coderustle/budgetcli/internal/config"
	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/sheets"
)

// initTimeout bounds the composite get-or-create step. When it expires
// the init is abandoned and reported as failed, never retried.
const initTimeout = 5 * time.Second

var (
	ErrInitTimeout = errors.New("sheet init timed out")
	ErrInitFailed  = errors.New("sheet init failed")
)

// Manager is the operation set shared by all three entity managers.
type Manager interface {
	// Init ensures the entity sheet exists and carries its header row.
	Init(ctx context.Context) error

	// Append adds one domain row to the entity range and returns the
	// updated range acknowledged by the server, "" on failure.
	Append(ctx context.Context, row []string) string

	// Records fetches up to limit data rows, starting after the header.
	Records(ctx context.Context, limit int) [][]string
}

// manager holds the state shared by the concrete managers: the bound
// entity and a client. Nothing is cached between calls.
type manager struct {
	client sheets.Client
	store  *config.Store
	entity core.Entity
}

// Init performs the get-or-create of the entity sheet and then writes
// the header row. The header write is sequenced after creation since it
// needs the confirmed sheet to exist.
func (m *manager) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	title := m.entity.SheetTitle()
	if !m.client.SheetExists(ctx, title) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %s", ErrInitTimeout, title)
		}
		index, ok := m.client.CreateSheet(ctx, title)
		if !ok {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: %s", ErrInitTimeout, title)
			}
			return fmt.Errorf("%w: create %s", ErrInitFailed, title)
		}
		if m.store != nil {
			_ = m.store.Update(sheetIndexKey(m.entity), fmt.Sprint(index))
		}
	}
	if !m.client.Update(ctx, m.entity.HeaderRange(), m.entity.Header()) {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s", ErrInitTimeout, title)
		}
		return fmt.Errorf("%w: header %s", ErrInitFailed, title)
	}
	return nil
}

func (m *manager) Append(ctx context.Context, row []string) string {
	return m.client.Append(ctx, m.entity.DataRange(), row)
}

func (m *manager) Records(ctx context.Context, limit int) [][]string {
	rows := m.client.Get(ctx, m.entity.DataRange())
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func sheetIndexKey(e core.Entity) string {
	return strings.ToLower(e.SheetTitle()) + "_sheet_index"
}

// monthPredicate builds the 0-indexed month condition the query engine
// expects; the caller's month argument is 1-indexed.
func monthPredicate(col string, month time.Month) string {
	return fmt.Sprintf("month(%s) = %d", col, int(month)-1)
}

// quote builds a query string literal. The query language has no escape
// sequence inside quoted literals, so a value containing one quote kind
// is wrapped in the other; a value containing both cannot be expressed
// and has the double quotes dropped.
func quote(s string) string {
	if strings.Contains(s, "'") {
		return `"` + strings.ReplaceAll(s, `"`, "") + `"`
	}
	return "'" + s + "'"
}
