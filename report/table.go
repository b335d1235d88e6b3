package report

import (
	"fmt"
	"io"

	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/aperturerobotics/billcoin/ledger"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// Table renders reports as pterm tables and styled diagnostics.
type Table struct {
	w io.Writer
}

// NewTable builds a table reporter.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// Balances renders an address / balance table.
func (t *Table) Balances(entries []ledger.Entry) error {
	data := pterm.TableData{{"Address", "Balance (billcoins)"}}
	for _, e := range entries {
		data = append(data, []string{e.Address, e.Balance.String()})
	}

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithRightAlignment().
		WithData(data).
		Srender()
	if err != nil {
		return errors.Wrap(err, "render balances")
	}

	if _, err := fmt.Fprintln(t.w, out); err != nil {
		return errors.Wrap(err, "write balances")
	}
	return nil
}

// Invalid renders the diagnostic in an error box.
func (t *Table) Invalid(verr *chainerr.Error) error {
	body := pterm.Sprintfln("Line %d: %s", verr.Line, verr.Message) + pterm.Red(InvalidTrailer)
	box := pterm.DefaultBox.
		WithTitle(pterm.LightRed("|" + verr.Kind.String() + "|")).
		WithTitleTopCenter().
		WithLeftPadding(2).
		WithRightPadding(2).
		Sprint(body)
	if _, err := fmt.Fprintln(t.w, box); err != nil {
		return errors.Wrap(err, "write diagnostic")
	}
	return nil
}

// SourceMissing renders the input error.
func (t *Table) SourceMissing(verr *chainerr.Error) error {
	if _, err := fmt.Fprintln(t.w, pterm.LightRed("ERROR: ")+verr.Message); err != nil {
		return errors.Wrap(err, "write source error")
	}
	return nil
}

// _ is a type assertion
var _ Reporter = ((*Table)(nil))
