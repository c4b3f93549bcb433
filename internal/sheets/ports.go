// Package sheets defines the port to the remote tabular store.
package sheets

import "context"

// Client is a single authenticated channel to the spreadsheet. Every
// remote failure is logged inside the implementation and surfaced as an
// empty or false result; callers cannot distinguish "no data" from
// "request failed" at this boundary.
type Client interface {
	// Get fetches the rows of an A1 range. Nil on remote failure.
	Get(ctx context.Context, rng string) [][]string

	// Append adds one row past the last populated row of the range;
	// the server assigns the insertion point. Returns the updated
	// range as acknowledgement, "" on failure.
	Append(ctx context.Context, rng string, row []string) string

	// Update overwrites the exact cells of the range. Used for
	// header rows.
	Update(ctx context.Context, rng string, row []string) bool

	// SheetExists reports whether a tab with the title exists.
	SheetExists(ctx context.Context, title string) bool

	// CreateSheet adds a tab and returns its index. Callers check
	// existence first; concurrent init may still race, which is
	// accepted for a single-user CLI.
	CreateSheet(ctx context.Context, title string) (int64, bool)

	// Query runs a visualization query expression against a sheet
	// and returns the matching rows. Date-typed cells are rendered
	// with their formatted value.
	Query(ctx context.Context, sheet, expr string) [][]string
}
