package ixbrl

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "170,000", FormatNumber(170_000, 0))
	assert.Equal(t, "1,234,567", FormatNumber(1_234_567, 0))
	assert.Equal(t, "(60,000)", FormatNumber(-60_000, 0))
	assert.Equal(t, "1,500.50", FormatNumber(1500.5, 2))
	assert.Equal(t, "0", FormatNumber(0, 0))
}

func TestMoneyTagCarriesRenderingAndFact(t *testing.T) {
	tag := Money(170_000, "uk-core:FixedAssets", CtxCurrentInstant, "GBP", 0)

	assert.Contains(t, tag, `name="uk-core:FixedAssets"`)
	assert.Contains(t, tag, `contextRef="cur-instant"`)
	assert.Contains(t, tag, `unitRef="GBP"`)
	assert.Contains(t, tag, `decimals="0"`)
	assert.Contains(t, tag, ">170,000<")
	assert.NotContains(t, tag, "sign=")
}

func TestMoneyTagNegative(t *testing.T) {
	tag := Money(-60_000, "uk-core:Creditors-DueWithinOneYear", CtxCurrentInstant, "GBP", 0)
	assert.Contains(t, tag, `sign="-"`)
	assert.Contains(t, tag, ">(60,000)<")
}

func TestCountTagUsesPureUnit(t *testing.T) {
	tag := Count(12, "uk-core:AverageNumberEmployeesDuringPeriod", CtxCurrentPeriod, 0)
	assert.Contains(t, tag, `unitRef="pure"`)
	assert.Contains(t, tag, ">12<")
}

func TestDateTag(t *testing.T) {
	tag := Date(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "uk-bus:BalanceSheetDate", CtxCurrentInstant)
	assert.Contains(t, tag, ">31 December 2024<")
	assert.Contains(t, tag, `contextRef="cur-instant"`)
}

func TestTextTagEscapes(t *testing.T) {
	tag := Text("Research & development <ongoing>", "uk-bus:DescriptionPrincipalActivities", CtxCurrentPeriod)
	assert.Contains(t, tag, "Research &amp; development &lt;ongoing&gt;")
	assert.NotContains(t, tag, "& development")
}

func TestDeclarations(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	decl := Declarations("12345678", "GBP", start, end, end, true)

	require.Contains(t, decl, `<xbrli:context id="cur-period">`)
	require.Contains(t, decl, `<xbrli:context id="cur-instant">`)
	require.Contains(t, decl, `<xbrli:context id="prior-period">`)
	require.Contains(t, decl, `<xbrli:context id="prior-instant">`)
	assert.Contains(t, decl, "<xbrli:startDate>2024-01-01</xbrli:startDate>")
	assert.Contains(t, decl, "<xbrli:endDate>2024-12-31</xbrli:endDate>")
	assert.Contains(t, decl, "<xbrli:startDate>2023-01-01</xbrli:startDate>")
	assert.Contains(t, decl, "<xbrli:instant>2023-12-31</xbrli:instant>")
	assert.Contains(t, decl, "iso4217:GBP")
	assert.Contains(t, decl, "xbrli:pure")
	assert.Contains(t, decl, "12345678")
}

func TestDeclarationsWithoutComparatives(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	decl := Declarations("12345678", "GBP", start, end, end, false)
	assert.NotContains(t, decl, "prior-period")
	assert.NotContains(t, decl, "prior-instant")
}

func TestStripRoundTrip(t *testing.T) {
	tag := Money(170_000, "uk-core:FixedAssets", CtxCurrentInstant, "GBP", 0)
	stripped := Strip(tag)
	assert.Equal(t, "170,000", stripped)
}

func TestStripRemovesHeaderAndEnvelopes(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	doc := Declarations("12345678", "GBP", start, end, end, true) +
		"<p>" + Text("Retail of widgets", "uk-bus:DescriptionPrincipalActivities", CtxCurrentPeriod) + "</p>\n" +
		"<td>" + Money(-60_000, "uk-core:Creditors-DueWithinOneYear", CtxCurrentInstant, "GBP", 0) + "</td>"

	stripped := Strip(doc)

	assert.NotContains(t, stripped, "ix:")
	assert.NotContains(t, stripped, "xbrli:context")
	assert.Contains(t, stripped, "<p>Retail of widgets</p>")
	assert.Contains(t, stripped, "<td>(60,000)</td>")
	assert.False(t, strings.Contains(stripped, "contextRef"))
}
