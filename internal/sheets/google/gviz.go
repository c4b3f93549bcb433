package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// The gviz endpoint wraps its JSON payload in a JS callback invocation;
// the fixed prefix has to be stripped before decoding.
const gvizPrefix = "google.visualization.Query.setResponse("

// Query runs a visualization query expression against a sheet. The
// endpoint is outside the Sheets service, so the request goes through
// the authorized HTTP client directly.
func (c *Client) Query(ctx context.Context, sheet, expr string) [][]string {
	q := url.Values{}
	q.Set("sheet", sheet)
	q.Set("tq", expr)
	u := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?%s",
		c.spreadsheetID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		slog.ErrorContext(ctx, "query request build failed", "url", u, "error", err)
		return nil
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "query failed", "url", u, "status", 0, "error", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "query failed", "url", u, "status", resp.StatusCode)
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.ErrorContext(ctx, "query read failed", "url", u, "error", err)
		return nil
	}
	rows, err := parseGvizResponse(body)
	if err != nil {
		slog.ErrorContext(ctx, "query parse failed", "url", u, "error", err)
		return nil
	}
	return rows
}

type (
	gvizResponse struct {
		Status string    `json:"status"`
		Table  gvizTable `json:"table"`
	}

	gvizTable struct {
		Cols []gvizCol `json:"cols"`
		Rows []gvizRow `json:"rows"`
	}

	gvizCol struct {
		Type string `json:"type"`
	}

	gvizRow struct {
		C []*gvizCell `json:"c"`
	}

	gvizCell struct {
		V any    `json:"v"`
		F string `json:"f"`
	}
)

// parseGvizResponse strips the JS callback wrapper and decodes the
// table. Cells in date-typed columns are rendered with their formatted
// value so the engine's internal date encoding (e.g. "Date(2023,4,5)")
// never leaks into output.
func parseGvizResponse(body []byte) ([][]string, error) {
	s := string(body)
	start := strings.Index(s, gvizPrefix)
	if start < 0 {
		return nil, fmt.Errorf("missing %q wrapper", gvizPrefix)
	}
	s = s[start+len(gvizPrefix):]
	end := strings.LastIndex(s, ")")
	if end < 0 {
		return nil, fmt.Errorf("unterminated callback wrapper")
	}
	s = s[:end]

	var payload gvizResponse
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, fmt.Errorf("decode query payload: %w", err)
	}
	if payload.Status != "" && payload.Status != "ok" {
		return nil, fmt.Errorf("query status %q", payload.Status)
	}

	out := make([][]string, 0, len(payload.Table.Rows))
	for _, row := range payload.Table.Rows {
		cells := make([]string, len(row.C))
		for i, cell := range row.C {
			cells[i] = renderCell(cell, colType(payload.Table.Cols, i))
		}
		out = append(out, cells)
	}
	return out, nil
}

func colType(cols []gvizCol, i int) string {
	if i < len(cols) {
		return cols[i].Type
	}
	return ""
}

func renderCell(cell *gvizCell, typ string) string {
	if cell == nil || cell.V == nil {
		return ""
	}
	if (typ == "date" || typ == "datetime") && cell.F != "" {
		return cell.F
	}
	switch v := cell.V.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
