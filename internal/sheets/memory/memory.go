// Package memory is an in-memory stand-in for the remote spreadsheet,
// used by tests and as an offline backend. It honors the same query
// predicates the managers emit.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	ports "github.com/coderustle/budgetcli/internal/sheets"
)

type Store struct {
	mu     sync.Mutex
	sheets map[string][][]string // row 0 is the header row

	// Ops records remote operations in invocation order, e.g.
	// "create:TRANSACTIONS" or "update:TRANSACTIONS!A1:E1".
	Ops []string

	// Failure switches let tests exercise the empty-result path.
	FailGet    bool
	FailAppend bool
	FailUpdate bool
	FailCreate bool
	FailQuery  bool

	// Delay makes every call block for the given duration, or until
	// the context expires, in which case the call fails like an
	// abandoned remote request.
	Delay time.Duration
}

// wait blocks for s.Delay and reports whether the call may proceed.
func (s *Store) wait(ctx context.Context) bool {
	if s.Delay <= 0 {
		return true
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Ensure interface conformance
var _ ports.Client = (*Store)(nil)

func New() *Store {
	return &Store{sheets: make(map[string][][]string)}
}

func (s *Store) Get(ctx context.Context, rng string) [][]string {
	if !s.wait(ctx) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ops = append(s.Ops, "get:"+rng)
	if s.FailGet {
		return nil
	}
	title, start := splitRange(rng)
	rows, ok := s.sheets[title]
	if !ok || start > len(rows) {
		return nil
	}
	out := make([][]string, 0, len(rows))
	for _, r := range rows[start-1:] {
		out = append(out, append([]string(nil), r...))
	}
	return out
}

func (s *Store) Append(ctx context.Context, rng string, row []string) string {
	if !s.wait(ctx) {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ops = append(s.Ops, "append:"+rng)
	if s.FailAppend {
		return ""
	}
	title, _ := splitRange(rng)
	if _, ok := s.sheets[title]; !ok {
		return ""
	}
	s.sheets[title] = append(s.sheets[title], append([]string(nil), row...))
	return fmt.Sprintf("%s!A%d", title, len(s.sheets[title]))
}

func (s *Store) Update(ctx context.Context, rng string, row []string) bool {
	if !s.wait(ctx) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ops = append(s.Ops, "update:"+rng)
	if s.FailUpdate {
		return false
	}
	title, start := splitRange(rng)
	rows, ok := s.sheets[title]
	if !ok {
		return false
	}
	for len(rows) < start {
		rows = append(rows, nil)
	}
	rows[start-1] = append([]string(nil), row...)
	s.sheets[title] = rows
	return true
}

func (s *Store) SheetExists(ctx context.Context, title string) bool {
	if !s.wait(ctx) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ops = append(s.Ops, "exists:"+title)
	_, ok := s.sheets[title]
	return ok
}

func (s *Store) CreateSheet(ctx context.Context, title string) (int64, bool) {
	if !s.wait(ctx) {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ops = append(s.Ops, "create:"+title)
	if s.FailCreate {
		return 0, false
	}
	if _, ok := s.sheets[title]; !ok {
		s.sheets[title] = [][]string{}
	}
	return int64(len(s.sheets) - 1), true
}

// Query evaluates the small predicate subset the managers build:
// "select ... where month(A) = N [and B = 'value']" and exact-match
// comparisons on a single column.
func (s *Store) Query(ctx context.Context, sheet, expr string) [][]string {
	if !s.wait(ctx) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ops = append(s.Ops, "query:"+sheet)
	if s.FailQuery {
		return nil
	}
	rows, ok := s.sheets[sheet]
	if !ok || len(rows) < 2 {
		return nil
	}
	conds, err := parseConditions(expr)
	if err != nil {
		return nil
	}
	var out [][]string
	for _, row := range rows[1:] { // skip header
		if matches(row, conds) {
			out = append(out, append([]string(nil), row...))
		}
	}
	return out
}

// RowCount returns the number of data rows (excluding the header).
func (s *Store) RowCount(title string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.sheets[title]
	if !ok || len(rows) == 0 {
		return 0
	}
	return len(rows) - 1
}

// Seed replaces a sheet's contents; row 0 is the header.
func (s *Store) Seed(title string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets[title] = rows
}

// splitRange returns the sheet title and the 1-based start row of an
// A1 range like "TRANSACTIONS!A2:E".
func splitRange(rng string) (string, int) {
	title, ref, ok := strings.Cut(rng, "!")
	if !ok {
		return rng, 1
	}
	cell := ref
	if i := strings.Index(ref, ":"); i >= 0 {
		cell = ref[:i]
	}
	digits := strings.TrimLeft(cell, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	start := 1
	if n, err := strconv.Atoi(digits); err == nil && n > 0 {
		start = n
	}
	return title, start
}

type condition struct {
	col     int // 0-based column index
	month   int // 0-indexed month when isMonth
	value   string
	isMonth bool
}

func parseConditions(expr string) ([]condition, error) {
	lowered := strings.ToLower(expr)
	idx := strings.Index(lowered, "where")
	if idx < 0 {
		return nil, nil
	}
	var conds []condition
	for _, part := range strings.Split(expr[idx+len("where"):], " AND ") {
		part = strings.TrimSpace(part)
		eq := strings.Index(part, "=")
		if eq < 0 {
			return nil, fmt.Errorf("unsupported condition %q", part)
		}
		lhs := strings.TrimSpace(part[:eq])
		rhs := strings.TrimSpace(part[eq+1:])
		var c condition
		if strings.HasPrefix(strings.ToLower(lhs), "month(") {
			col, err := colIndex(lhs[len("month(") : len(lhs)-1])
			if err != nil {
				return nil, err
			}
			m, err := strconv.Atoi(rhs)
			if err != nil {
				return nil, fmt.Errorf("month value %q: %w", rhs, err)
			}
			c = condition{col: col, month: m, isMonth: true}
		} else {
			col, err := colIndex(lhs)
			if err != nil {
				return nil, err
			}
			c = condition{col: col, value: strings.Trim(rhs, `'"`)}
		}
		conds = append(conds, c)
	}
	return conds, nil
}

func colIndex(letter string) (int, error) {
	letter = strings.TrimSpace(strings.ToUpper(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return 0, fmt.Errorf("unsupported column %q", letter)
	}
	return int(letter[0] - 'A'), nil
}

func matches(row []string, conds []condition) bool {
	for _, c := range conds {
		if c.col >= len(row) {
			return false
		}
		cell := strings.TrimSpace(row[c.col])
		if c.isMonth {
			d, err := time.Parse("02-01-2006", cell)
			if err != nil {
				return false
			}
			// gviz month predicates are 0-indexed
			if int(d.Month())-1 != c.month {
				return false
			}
			continue
		}
		if !strings.EqualFold(cell, c.value) {
			return false
		}
	}
	return true
}
