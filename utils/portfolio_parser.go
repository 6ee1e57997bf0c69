package utils

import (
	"regexp"
	"strings"

	"github.com/springpad/doc-parser/dto"
)

var (
	portfolioHeaderRegex = regexp.MustCompile(`(?i)Portfolio Summary`)
	schemeHeaderRegex    = regexp.MustCompile(`(?i)Mutual Fund[^\n]*Cost Value`)
	totalRowRegex        = regexp.MustCompile(`(?im)^[ \t]*Total[ \t]+([\d,]+(?:\.\d+)?)[ \t]+([\d,]+(?:\.\d+)?)[ \t]*$`)
	fundRowRegex         = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z][A-Za-z0-9&\- ]*?)[ \t]+([\d,]+(?:\.\d+)?)[ \t]+([\d,]+(?:\.\d+)?)[ \t]*$`)
	folioTokenRegex      = regexp.MustCompile(`^\d[\d/]*$`)
)

// extractPortfolioSummary builds the fund-name -> cost/market mapping.
// Statement layouts vary between a clean tabular summary, a single-fund
// report and a generic multi-scheme table, so three strategies run in
// increasing generality; the first to discover at least one fund wins and
// results are never merged across strategies. The declared total row is
// matched independently of fund discovery.
func extractPortfolioSummary(text string) dto.PortfolioSummary {
	summary := dto.PortfolioSummary{}

	scanHeaderedTable(text, &summary)
	if summary.Len() == 0 {
		scanSingleFundForm(text, &summary)
	}
	if summary.Len() == 0 {
		scanGenericSchemeTable(text, &summary)
	}

	if m := totalRowRegex.FindStringSubmatch(text); len(m) > 2 {
		summary.SetTotal(dto.FundValue{
			CostValue:   parseAmount(m[1]),
			MarketValue: parseAmount(m[2]),
		})
	}

	return summary
}

// summaryBlock slices the text between a summary header and the total
// row, or end-of-text when no total row follows.
func summaryBlock(text string) (string, bool) {
	loc := portfolioHeaderRegex.FindStringIndex(text)
	if loc == nil {
		loc = schemeHeaderRegex.FindStringIndex(text)
	}
	if loc == nil {
		return "", false
	}
	block := text[loc[1]:]
	if t := totalRowRegex.FindStringIndex(block); t != nil {
		block = block[:t[0]]
	}
	return block, true
}

// scanHeaderedTable (strategy 1) reads repeated name/cost/market triples
// from the header-anchored table.
func scanHeaderedTable(text string, summary *dto.PortfolioSummary) {
	block, ok := summaryBlock(text)
	if !ok {
		return
	}
	for _, row := range fundRowRegex.FindAllStringSubmatch(block, -1) {
		name := strings.TrimSpace(row[1])
		if strings.EqualFold(name, "Total") {
			continue
		}
		summary.Add(name, dto.FundValue{
			CostValue:   parseAmount(row[2]),
			MarketValue: parseAmount(row[3]),
		})
	}
}

// scanSingleFundForm (strategy 2) matches the single-fund layout where
// each value sits on its own line: fund name, cost, market, the literal
// "Total", total cost, total market.
func scanSingleFundForm(text string, summary *dto.PortfolioSummary) {
	lines := splitLines(text)
	for i := 0; i+5 < len(lines); i++ {
		if isNumeric(lines[i]) || strings.EqualFold(lines[i], "Total") {
			continue
		}
		if !isNumeric(lines[i+1]) || !isNumeric(lines[i+2]) {
			continue
		}
		if !strings.EqualFold(lines[i+3], "Total") {
			continue
		}
		if !isNumeric(lines[i+4]) || !isNumeric(lines[i+5]) {
			continue
		}
		summary.Add(lines[i], dto.FundValue{
			CostValue:   parseAmount(lines[i+1]),
			MarketValue: parseAmount(lines[i+2]),
		})
		if summary.Total() == nil {
			summary.SetTotal(dto.FundValue{
				CostValue:   parseAmount(lines[i+4]),
				MarketValue: parseAmount(lines[i+5]),
			})
		}
		return
	}
}

// scanGenericSchemeTable (strategy 3) handles multi-scheme tables keyed by
// folio number. A row is a folio-like token, a scheme-name segment and a
// trailing run of numeric tokens; the first numeric token is the market
// value and the last the cost value. Rows with fewer than two numeric
// tokens are skipped.
func scanGenericSchemeTable(text string, summary *dto.PortfolioSummary) {
	if !strings.Contains(text, "Folio No.") {
		return
	}
	block, ok := summaryBlock(text)
	if !ok {
		block = text
	}
	for _, line := range splitLines(block) {
		tokens := strings.Fields(line)
		if len(tokens) < 4 || !folioTokenRegex.MatchString(tokens[0]) {
			continue
		}
		j := len(tokens)
		for j > 1 && isNumeric(tokens[j-1]) {
			j--
		}
		nums := tokens[j:]
		name := strings.Join(tokens[1:j], " ")
		if len(nums) < 2 || name == "" {
			continue
		}
		summary.Add(name, dto.FundValue{
			MarketValue: parseAmount(nums[0]),
			CostValue:   parseAmount(nums[len(nums)-1]),
		})
	}
}

var (
	isinRegex      = regexp.MustCompile(`ISIN\s*:\s*([A-Z0-9]+)`)
	advisorRegex   = regexp.MustCompile(`Advisor\s*:\s*([^)\n]+)`)
	registrarRegex = regexp.MustCompile(`Registrar\s*:\s*([A-Za-z]+)`)
	folioRegex     = regexp.MustCompile(`Folio No\s*:\s*([\d/]+)`)
	panComboRegex  = regexp.MustCompile(`PAN\s*:\s*([A-Z0-9]+)\s+KYC\s*:\s*([A-Za-z]+)\s+PAN\s*:\s*([A-Za-z]+)`)
	panRegex       = regexp.MustCompile(`PAN\s*:\s*([A-Z0-9]+)`)
	kycRegex       = regexp.MustCompile(`KYC\s*:\s*([A-Za-z]+)`)
	panStatusRegex = regexp.MustCompile(`PAN Status\s*:\s*([A-Za-z]+)`)
)

// extractFundDetails builds one detail record per discovered fund. Blocks
// are located left-to-right with a moving cursor so each fund's span is
// found in a single pass over the text: a block starts at the fund name's
// literal occurrence and ends at the next fund-summary row, the total row
// or end-of-text, whichever comes first.
func extractFundDetails(text string, summary *dto.PortfolioSummary) []dto.FundDetail {
	names := summary.FundNames()
	if len(names) == 0 {
		return nil
	}

	details := make([]dto.FundDetail, 0, len(names))
	cursor := 0
	for _, name := range names {
		detail := dto.FundDetail{FundName: name}
		if v, ok := summary.Value(name); ok {
			detail.CostValue = v.CostValue
			detail.MarketValue = v.MarketValue
		}

		block := ""
		pos := strings.Index(text[cursor:], name)
		if pos < 0 {
			pos = strings.Index(text, name)
			cursor = 0
		}
		if pos >= 0 {
			start := cursor + pos + len(name)
			block = text[start:]
			end := len(block)
			if loc := fundRowRegex.FindStringIndex(block); loc != nil && loc[0] < end {
				end = loc[0]
			}
			if loc := totalRowRegex.FindStringIndex(block); loc != nil && loc[0] < end {
				end = loc[0]
			}
			block = block[:end]
			cursor = start
		}

		fillFundFields(block, &detail)
		if detail.ISIN == nil && detail.Advisor == nil {
			// Block scoping fails on single-fund statements without a
			// repeated-row structure; retry against the whole document.
			fillFundFields(text, &detail)
		}
		details = append(details, detail)
	}
	return details
}

func fillFundFields(block string, detail *dto.FundDetail) {
	if detail.ISIN == nil {
		detail.ISIN = firstGroup(isinRegex, block)
	}
	if detail.Advisor == nil {
		detail.Advisor = firstGroup(advisorRegex, block)
	}
	if detail.Registrar == nil {
		detail.Registrar = firstGroup(registrarRegex, block)
	}
	if detail.FolioNumber == nil {
		detail.FolioNumber = firstGroup(folioRegex, block)
	}
	if detail.PAN == nil && detail.KYC == nil && detail.PANStatus == nil {
		// Source statements repeat the PAN label for status, so the
		// combined form is preferred over the individual labels.
		if m := panComboRegex.FindStringSubmatch(block); len(m) > 3 {
			detail.PAN = strPtr(m[1])
			detail.KYC = strPtr(m[2])
			detail.PANStatus = strPtr(m[3])
			return
		}
		detail.PAN = firstGroup(panRegex, block)
		detail.KYC = firstGroup(kycRegex, block)
		detail.PANStatus = firstGroup(panStatusRegex, block)
	}
}

var (
	transactionRegex    = regexp.MustCompile(`(\d{2}-[A-Za-z]{3}-\d{4})\s+(Purchase\s*-\s*via Internet)\s+([\d,]+(?:\.\d+)?)\s+([\d,]+(?:\.\d+)?)\s+([\d,]+(?:\.\d+)?)`)
	navOnRegex          = regexp.MustCompile(`NAV on (\d{2}-[A-Za-z]{3}-\d{4})\s*:\s*INR\s*([\d,]+(?:\.\d+)?)`)
	marketValueOnRegex  = regexp.MustCompile(`Market Value on (\d{2}-[A-Za-z]{3}-\d{4})\s*:\s*INR\s*([\d,]+(?:\.\d+)?)`)
	totalCostValueRegex = regexp.MustCompile(`Total Cost Value\s*:\s*([\d,]+(?:\.\d+)?)`)
	openingUnitsRegex   = regexp.MustCompile(`Opening Unit Balance\s*:\s*([\d,]+(?:\.\d+)?)`)
	closingUnitsRegex   = regexp.MustCompile(`Closing Unit Balance\s*:\s*([\d,]+(?:\.\d+)?)`)
)

// extractTransaction matches the most recent purchase row: a date, the
// literal transaction type and the amount, NAV and units tokens. Only the
// first match is taken.
func extractTransaction(text string, record *dto.StatementRecord) {
	if m := transactionRegex.FindStringSubmatch(text); len(m) > 5 {
		record.TransactionDetails.Date = strPtr(m[1])
		record.Dates.TransactionDate = strPtr(m[1])
		record.TransactionDetails.TransactionType = strPtr(m[2])
		record.TransactionDetails.Amount = parseAmount(m[3])
		record.TransactionDetails.NAV = parseAmount(m[4])
		record.TransactionDetails.Units = parseAmount(m[5])
	}
	record.TransactionDetails.UnitBalance = firstGroupAmount(closingUnitsRegex, text)
}

func extractFinancialData(text string, record *dto.StatementRecord) {
	if m := navOnRegex.FindStringSubmatch(text); len(m) > 2 {
		record.Dates.NavDate = strPtr(m[1])
		record.FinancialData.NavOnDate = parseAmount(m[2])
	}
	if m := marketValueOnRegex.FindStringSubmatch(text); len(m) > 2 {
		record.FinancialData.MarketValueOnDate = parseAmount(m[2])
	}
	record.FinancialData.TotalCostValue = firstGroupAmount(totalCostValueRegex, text)
	record.FinancialData.OpeningUnitBalance = firstGroupAmount(openingUnitsRegex, text)
	record.FinancialData.ClosingUnitBalance = firstGroupAmount(closingUnitsRegex, text)

	// The statements never carry a parseable load figure; both loads are
	// emitted as the literal "Nil".
	record.FinancialData.EntryLoad = "Nil"
	record.FinancialData.ExitLoad = "Nil"
}
