package statements

import (
	"fmt"
	"strings"

	"github.com/filingforge/filingforge/internal/accounts"
	"github.com/filingforge/filingforge/internal/accounts/ixbrl"
)

// placeholder is rendered when a mandatory field is absent. Generators
// degrade gracefully; completeness is enforced once, by the
// orchestrator's validation pass.
const placeholder = "[not provided]"

// moneyDecimals is the declared precision for statutory amounts:
// whole currency units, no fractional digits.
const moneyDecimals = 0

// fragment accumulates one statement's markup.
type fragment struct {
	b        strings.Builder
	fc       accounts.FilingContext
	hasPrior bool
}

func newFragment(fc accounts.FilingContext, hasPrior bool) *fragment {
	return &fragment{fc: fc, hasPrior: hasPrior}
}

func (f *fragment) String() string { return f.b.String() }

func (f *fragment) open(id, title string) {
	fmt.Fprintf(&f.b, "<div class=\"statement\" id=%q>\n<h2>%s</h2>\n", id, ixbrl.Escape(title))
}

func (f *fragment) close() {
	f.b.WriteString("</div>\n")
}

func (f *fragment) write(markup string) {
	f.b.WriteString(markup)
	f.b.WriteString("\n")
}

func (f *fragment) writef(format string, args ...any) {
	fmt.Fprintf(&f.b, format, args...)
	f.b.WriteString("\n")
}

// para writes an escaped narrative paragraph.
func (f *fragment) para(text string) {
	f.writef("<p>%s</p>", ixbrl.Escape(text))
}

// narrative writes a titled narrative section only when content is
// present; absence is not an error at this layer.
func (f *fragment) narrative(title, concept string, ref ixbrl.ContextRef, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	f.writef("<h3>%s</h3>", ixbrl.Escape(title))
	f.writef("<p>%s</p>", ixbrl.Text(content, concept, ref))
}

// openTable starts a figures table with current (and optionally prior)
// year columns headed by the period-end years and the currency.
func (f *fragment) openTable() {
	cur := f.fc.PeriodEnd.Year()
	f.b.WriteString("<table>\n<tr><th></th>")
	fmt.Fprintf(&f.b, "<th>%d<br/>%s</th>", cur, ixbrl.Escape(f.fc.Currency))
	if f.hasPrior {
		fmt.Fprintf(&f.b, "<th>%d<br/>%s</th>", cur-1, ixbrl.Escape(f.fc.Currency))
	}
	f.b.WriteString("</tr>\n")
}

func (f *fragment) closeTable() {
	f.b.WriteString("</table>\n")
}

// moneyRow emits one tagged monetary line. When comparatives exist the
// prior value is tagged under the prior context with the same concept.
func (f *fragment) moneyRow(label, concept string, curRef, priorRef ixbrl.ContextRef, cur float64, prior *float64, subtotal bool) {
	class := ""
	if subtotal {
		class = ` class="subtotal"`
	}
	fmt.Fprintf(&f.b, "<tr%s><td>%s</td><td class=\"num\">%s</td>",
		class, ixbrl.Escape(label), ixbrl.Money(cur, concept, curRef, f.fc.Currency, moneyDecimals))
	if f.hasPrior {
		f.b.WriteString(`<td class="num">`)
		if prior != nil {
			f.b.WriteString(ixbrl.Money(*prior, concept, priorRef, f.fc.Currency, moneyDecimals))
		} else {
			f.b.WriteString("&#8211;")
		}
		f.b.WriteString("</td>")
	}
	f.b.WriteString("</tr>\n")
}

// amount pulls a float pointer out of an optional prior record's line.
func amount(rec *accounts.LineItem) *float64 {
	if rec == nil {
		return nil
	}
	v := rec.Amount
	return &v
}
