// Package ui renders console tables and the progress spinner.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/olekukonko/tablewriter"

	"github.com/coderustle/budgetcli/internal/core"
)

// Progress shows a spinner while fn runs and prints the elapsed time
// when it completes.
func Progress(w io.Writer, description string, fn func() error) error {
	start := time.Now()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + description
	s.Start()
	err := fn()
	s.Stop()
	fmt.Fprintf(w, "Completed in %.2f seconds\n", time.Since(start).Seconds())
	return err
}

// RenderTable writes rows under the entity's sheet header.
func RenderTable(w io.Writer, entity core.Entity, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(entity.Header())
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
}
