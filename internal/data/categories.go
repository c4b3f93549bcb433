package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/coderustle/budgetcli/internal/config"
	"github.com/coderustle/budgetcli/internal/core"
	"github.com/coderustle/budgetcli/internal/sheets"
)

// CategoryManager binds the client to the CATEGORIES sheet.
type CategoryManager struct {
	manager
}

func NewCategoryManager(client sheets.Client, store *config.Store) *CategoryManager {
	return &CategoryManager{manager{client: client, store: store, entity: core.Categories}}
}

// ByName returns the category rows matching the name. Names are stored
// lower-cased, so the lookup is effectively case-insensitive.
func (m *CategoryManager) ByName(ctx context.Context, name string) [][]string {
	expr := fmt.Sprintf("SELECT A WHERE A = %s", quote(strings.ToLower(name)))
	return m.client.Query(ctx, m.entity.SheetTitle(), expr)
}
