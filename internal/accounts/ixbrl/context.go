package ixbrl

import (
	"fmt"
	"strings"
	"time"
)

// identifierScheme is the registrar scheme for the entity identifier in
// every context declaration.
const identifierScheme = "http://www.companieshouse.gov.uk/"

const isoDate = "2006-01-02"

// Declarations emits the context and unit declaration block referenced
// by the document body. Prior-year contexts are derived one year behind
// the current period and are emitted only when comparatives exist.
// Every ContextRef used by a tag in the body must resolve to an id
// declared here.
func Declarations(registrationNumber, currency string, periodStart, periodEnd, balanceSheetDate time.Time, includePrior bool) string {
	var b strings.Builder
	b.WriteString("<ix:header><ix:resources>\n")

	writePeriodContext(&b, CtxCurrentPeriod, registrationNumber, periodStart, periodEnd)
	writeInstantContext(&b, CtxCurrentInstant, registrationNumber, balanceSheetDate)
	if includePrior {
		priorStart := periodStart.AddDate(-1, 0, 0)
		priorEnd := periodStart.AddDate(0, 0, -1)
		writePeriodContext(&b, CtxPriorPeriod, registrationNumber, priorStart, priorEnd)
		writeInstantContext(&b, CtxPriorInstant, registrationNumber, priorEnd)
	}

	fmt.Fprintf(&b, "<xbrli:unit id=%q><xbrli:measure>iso4217:%s</xbrli:measure></xbrli:unit>\n", currency, currency)
	fmt.Fprintf(&b, "<xbrli:unit id=%q><xbrli:measure>xbrli:pure</xbrli:measure></xbrli:unit>\n", UnitPure)

	b.WriteString("</ix:resources></ix:header>\n")
	return b.String()
}

func writePeriodContext(b *strings.Builder, id ContextRef, regNo string, start, end time.Time) {
	fmt.Fprintf(b, "<xbrli:context id=%q>", id)
	writeEntity(b, regNo)
	fmt.Fprintf(b, "<xbrli:period><xbrli:startDate>%s</xbrli:startDate><xbrli:endDate>%s</xbrli:endDate></xbrli:period>",
		start.Format(isoDate), end.Format(isoDate))
	b.WriteString("</xbrli:context>\n")
}

func writeInstantContext(b *strings.Builder, id ContextRef, regNo string, at time.Time) {
	fmt.Fprintf(b, "<xbrli:context id=%q>", id)
	writeEntity(b, regNo)
	fmt.Fprintf(b, "<xbrli:period><xbrli:instant>%s</xbrli:instant></xbrli:period>", at.Format(isoDate))
	b.WriteString("</xbrli:context>\n")
}

func writeEntity(b *strings.Builder, regNo string) {
	fmt.Fprintf(b, "<xbrli:entity><xbrli:identifier scheme=%q>%s</xbrli:identifier></xbrli:entity>", identifierScheme, regNo)
}
