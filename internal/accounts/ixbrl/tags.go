// Package ixbrl renders inline-XBRL tagged values. It is the only
// place that knows the tagging markup: every monetary, count, date, or
// text value in the generated document passes through one of the four
// primitives here, which guarantee the visible text and the embedded
// machine-readable fact derive from the same source value. Business
// rules are never checked here; concepts, contexts, and units are
// supplied by the statement generators.
package ixbrl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ContextRef identifies the period or instant a tagged value belongs to.
type ContextRef string

const (
	CtxCurrentPeriod  ContextRef = "cur-period"
	CtxCurrentInstant ContextRef = "cur-instant"
	CtxPriorPeriod    ContextRef = "prior-period"
	CtxPriorInstant   ContextRef = "prior-instant"
)

// UnitPure is the unit reference for dimensionless counts and ratios.
const UnitPure = "pure"

var printer = message.NewPrinter(language.BritishEnglish)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// FormatNumber renders a value with locale grouping at the given
// decimal precision. Negative amounts use the accounting convention of
// parentheses.
func FormatNumber(v float64, decimals int) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	text := printer.Sprintf("%v", number.Decimal(abs,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
	if v < 0 {
		return "(" + text + ")"
	}
	return text
}

// Money tags a monetary value. The visible text is formatted to the
// given decimal precision; the tag declares the same precision, the
// currency unit, and the sign, so the fact and the rendering can never
// diverge.
func Money(v float64, concept string, ref ContextRef, unit string, decimals int) string {
	return nonFraction(v, concept, ref, unit, decimals)
}

// Count tags a dimensionless count or ratio under the pure unit.
func Count(v float64, concept string, ref ContextRef, decimals int) string {
	return nonFraction(v, concept, ref, UnitPure, decimals)
}

func nonFraction(v float64, concept string, ref ContextRef, unit string, decimals int) string {
	sign := ""
	if v < 0 {
		sign = ` sign="-"`
	}
	return fmt.Sprintf(
		`<ix:nonFraction name="%s" contextRef="%s" unitRef="%s" decimals="%s" format="ixt:num-dot-decimal"%s>%s</ix:nonFraction>`,
		concept, ref, unit, strconv.Itoa(decimals), sign, FormatNumber(v, decimals),
	)
}

// FormatDate renders a calendar date the way tagged dates appear in the
// document body.
func FormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// Date tags a calendar date against a semantic date concept.
func Date(t time.Time, concept string, ref ContextRef) string {
	return fmt.Sprintf(
		`<ix:nonNumeric name="%s" contextRef="%s" format="ixt:date-day-monthname-year-en">%s</ix:nonNumeric>`,
		concept, ref, FormatDate(t),
	)
}

// Text tags narrative text. The value is XML-escaped; no numeric
// formatting applies.
func Text(s string, concept string, ref ContextRef) string {
	return fmt.Sprintf(
		`<ix:nonNumeric name="%s" contextRef="%s">%s</ix:nonNumeric>`,
		concept, ref, textEscaper.Replace(s),
	)
}

// Escape exposes the document text escaping for untagged narrative.
func Escape(s string) string {
	return textEscaper.Replace(s)
}
