// Package google adapts the sheets.Client port to the Google Sheets
// REST API and the visualization query endpoint.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/api/googleapi"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	ports "github.com/coderustle/budgetcli/internal/sheets"
)

type Client struct {
	svc           *gsheet.Service
	httpClient    *http.Client
	spreadsheetID string
}

// Ensure interface conformance
var _ ports.Client = (*Client)(nil)

// New creates a Sheets client bound to one spreadsheet. The HTTP client
// must carry the bearer token (see internal/auth); it is reused for the
// visualization query endpoint, which is not part of the Sheets service.
func New(httpClient *http.Client, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if httpClient == nil {
		return nil, errors.New("missing authorized http client")
	}
	svc, err := gsheet.NewService(context.Background(), goption.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, httpClient: httpClient, spreadsheetID: spreadsheetID}, nil
}

// Get fetches the rows of an A1 range. Remote failures are logged and
// surfaced as a nil result.
func (c *Client) Get(ctx context.Context, rng string) [][]string {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		c.logRemote(ctx, "values get failed", c.valuesURL(rng), err)
		return nil
	}
	return toStringRows(resp.Values)
}

// Append adds one row after the last populated row of the range. The
// server picks the insertion point. Returns the updated range, or ""
// when the call failed.
func (c *Client) Append(ctx context.Context, rng string, row []string) string {
	vr := &gsheet.ValueRange{Values: [][]any{toAnyRow(row)}}
	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		c.logRemote(ctx, "values append failed", c.valuesURL(rng)+":append", err)
		return ""
	}
	if resp.Updates == nil {
		return ""
	}
	return resp.Updates.UpdatedRange
}

// Update overwrites the exact cells of the range.
func (c *Client) Update(ctx context.Context, rng string, row []string) bool {
	vr := &gsheet.ValueRange{Values: [][]any{toAnyRow(row)}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		c.logRemote(ctx, "values update failed", c.valuesURL(rng), err)
		return false
	}
	return true
}

// SheetExists checks tab titles in the spreadsheet metadata.
func (c *Client) SheetExists(ctx context.Context, title string) bool {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).Do()
	if err != nil {
		c.logRemote(ctx, "metadata get failed", c.baseURL(), err)
		return false
	}
	for _, s := range resp.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return true
		}
	}
	return false
}

// CreateSheet adds a tab via batchUpdate and returns its index.
func (c *Client) CreateSheet(ctx context.Context, title string) (int64, bool) {
	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: title},
			},
		}},
	}
	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		c.logRemote(ctx, "add sheet failed", c.baseURL()+":batchUpdate", err)
		return 0, false
	}
	for _, r := range resp.Replies {
		if r.AddSheet != nil && r.AddSheet.Properties != nil {
			return r.AddSheet.Properties.Index, true
		}
	}
	return 0, false
}

func (c *Client) baseURL() string {
	return "https://sheets.googleapis.com/v4/spreadsheets/" + c.spreadsheetID
}

func (c *Client) valuesURL(rng string) string {
	return c.baseURL() + "/values/" + rng
}

func (c *Client) logRemote(ctx context.Context, msg, url string, err error) {
	slog.ErrorContext(ctx, msg, "url", url, "status", statusCode(err), "error", err)
}

func statusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

func toAnyRow(row []string) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

func toStringRows(in [][]any) [][]string {
	out := make([][]string, len(in))
	for i, row := range in {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		out[i] = cells
	}
	return out
}
