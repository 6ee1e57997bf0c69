package dto

import (
	"bytes"
	"encoding/json"
)

// StatementRecord is the normalized output produced for one CAS page or
// document. Every leaf field is independently optional: a nil pointer
// serializes to null and never voids any other field.
type StatementRecord struct {
	DocumentType        *string             `json:"document_type"`
	Version             *string             `json:"version"`
	Dates               Dates               `json:"dates"`
	PersonalInformation PersonalInformation `json:"personal_information"`
	Entities            Entities            `json:"entities"`
	PortfolioSummary    PortfolioSummary    `json:"portfolio_summary"`
	MutualFundDetails   []FundDetail        `json:"mutual_fund_details"`
	TransactionDetails  TransactionDetails  `json:"transaction_details"`
	FinancialData       FinancialData       `json:"financial_data"`
	NomineeDetails      NomineeDetails      `json:"nominee_details"`
}

// Dates holds every date found in the statement, verbatim in DD-Mon-YYYY
// form. They are not parsed into time.Time so the original spelling
// survives serialization.
type Dates struct {
	StatementPeriod StatementPeriod `json:"statement_period"`
	TransactionDate *string         `json:"transaction_date"`
	NavDate         *string         `json:"nav_date"`
}

type StatementPeriod struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type PersonalInformation struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Mobile  *string `json:"mobile"`
}

// Entities labels the intermediaries recognized in the statement text and
// the primary fund family name.
type Entities struct {
	CAMS       *string `json:"cams"`
	KFintech   *string `json:"kfintech"`
	MutualFund *string `json:"mutual_fund"`
}

// FundValue is one cost/market pair from the portfolio summary table.
type FundValue struct {
	CostValue   *float64 `json:"cost_value"`
	MarketValue *float64 `json:"market_value"`
}

type FundDetail struct {
	FundName    string   `json:"fund_name"`
	CostValue   *float64 `json:"cost_value"`
	MarketValue *float64 `json:"market_value"`
	ISIN        *string  `json:"isin"`
	Advisor     *string  `json:"advisor"`
	Registrar   *string  `json:"registrar"`
	FolioNumber *string  `json:"folio_number"`
	PAN         *string  `json:"pan"`
	KYC         *string  `json:"kyc"`
	PANStatus   *string  `json:"pan_status"`
}

type TransactionDetails struct {
	Date            *string  `json:"date"`
	Amount          *float64 `json:"amount"`
	NAV             *float64 `json:"nav"`
	Units           *float64 `json:"units"`
	TransactionType *string  `json:"transaction_type"`
	UnitBalance     *float64 `json:"unit_balance"`
}

// FinancialData carries the point-in-time figures. EntryLoad and ExitLoad
// are always the literal "Nil": the source statements never carry a
// parseable load figure, so no pattern exists for them.
type FinancialData struct {
	NavOnDate          *float64 `json:"nav_on_date"`
	MarketValueOnDate  *float64 `json:"market_value_on_date"`
	EntryLoad          string   `json:"entry_load"`
	ExitLoad           string   `json:"exit_load"`
	TotalCostValue     *float64 `json:"total_cost_value"`
	OpeningUnitBalance *float64 `json:"opening_unit_balance"`
	ClosingUnitBalance *float64 `json:"closing_unit_balance"`
}

type NomineeDetails struct {
	Nominee1 *string `json:"nominee_1"`
	Nominee2 *string `json:"nominee_2"`
	Nominee3 *string `json:"nominee_3"`
}

// PortfolioSummary maps fund names (exactly as matched, trimmed) to their
// cost/market values, preserving discovery order, plus the statement's
// declared total row under the reserved "total" key. A plain map cannot
// keep key order through JSON, so marshalling is done by hand.
type PortfolioSummary struct {
	names []string
	funds map[string]FundValue
	total *FundValue
}

// Add appends a fund entry. The first entry for a name wins; later
// duplicates are ignored so discovery order stays stable.
func (p *PortfolioSummary) Add(name string, v FundValue) {
	if p.funds == nil {
		p.funds = make(map[string]FundValue)
	}
	if _, ok := p.funds[name]; ok {
		return
	}
	p.names = append(p.names, name)
	p.funds[name] = v
}

// SetTotal records the statement's declared total row.
func (p *PortfolioSummary) SetTotal(v FundValue) {
	p.total = &v
}

// FundNames returns fund names in discovery order, excluding "total".
func (p *PortfolioSummary) FundNames() []string {
	return p.names
}

// Value returns the cost/market pair for a fund name.
func (p *PortfolioSummary) Value(name string) (FundValue, bool) {
	v, ok := p.funds[name]
	return v, ok
}

// Total returns the declared total row, or nil if none was found.
func (p *PortfolioSummary) Total() *FundValue {
	return p.total
}

// Len reports the number of fund entries, excluding "total".
func (p *PortfolioSummary) Len() int {
	return len(p.names)
}

// MarshalJSON emits funds in discovery order followed by the reserved
// "total" entry. The total key is always present; its values are null
// when no total row was matched.
func (p PortfolioSummary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, name := range p.names {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.funds[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		buf.WriteByte(',')
	}
	total := FundValue{}
	if p.total != nil {
		total = *p.total
	}
	val, err := json.Marshal(total)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"total":`)
	buf.Write(val)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
