package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioSummaryHeaderedTable(t *testing.T) {
	text := `Portfolio Summary
FundA 100.00 110.00
FundB 200.00 210.00
Total 300.00 320.00
`

	record := ParseStatement(text)
	summary := record.PortfolioSummary

	require.Equal(t, 2, summary.Len())
	assert.Equal(t, []string{"FundA", "FundB"}, summary.FundNames())

	fundA, ok := summary.Value("FundA")
	require.True(t, ok)
	assert.Equal(t, 100.00, *fundA.CostValue)
	assert.Equal(t, 110.00, *fundA.MarketValue)

	fundB, ok := summary.Value("FundB")
	require.True(t, ok)
	assert.Equal(t, 200.00, *fundB.CostValue)
	assert.Equal(t, 210.00, *fundB.MarketValue)

	total := summary.Total()
	require.NotNil(t, total)
	assert.Equal(t, 300.00, *total.CostValue)
	assert.Equal(t, 320.00, *total.MarketValue)

	// One detail record per fund, total excluded.
	require.Len(t, record.MutualFundDetails, 2)
	assert.Equal(t, "FundA", record.MutualFundDetails[0].FundName)
	assert.Equal(t, "FundB", record.MutualFundDetails[1].FundName)
}

func TestPortfolioSummaryKeyOrderSerialization(t *testing.T) {
	text := `Portfolio Summary
Zeta Fund 1.00 2.00
Alpha Fund 3.00 4.00
Total 4.00 6.00
`

	record := ParseStatement(text)
	data, err := json.Marshal(record.PortfolioSummary)
	require.NoError(t, err)

	// Discovery order survives serialization; "total" is always last.
	assert.Equal(t,
		`{"Zeta Fund":{"cost_value":1,"market_value":2},`+
			`"Alpha Fund":{"cost_value":3,"market_value":4},`+
			`"total":{"cost_value":4,"market_value":6}}`,
		string(data))
}

func TestPortfolioSummaryTotalOnly(t *testing.T) {
	record := ParseStatement("Some unrelated text\nTotal 1234.56 2345.67\n")
	summary := record.PortfolioSummary

	assert.Equal(t, 0, summary.Len())
	total := summary.Total()
	require.NotNil(t, total)
	assert.Equal(t, 1234.56, *total.CostValue)
	assert.Equal(t, 2345.67, *total.MarketValue)
	assert.Empty(t, record.MutualFundDetails)
}

func TestPortfolioSummarySingleFundForm(t *testing.T) {
	text := `HDFC Top 100 Fund
5,000.00
6,250.25
Total
5,000.00
6,250.25
`

	summary := ParseStatement(text).PortfolioSummary

	require.Equal(t, 1, summary.Len())
	fund, ok := summary.Value("HDFC Top 100 Fund")
	require.True(t, ok)
	assert.Equal(t, 5000.00, *fund.CostValue)
	assert.Equal(t, 6250.25, *fund.MarketValue)

	total := summary.Total()
	require.NotNil(t, total)
	assert.Equal(t, 5000.00, *total.CostValue)
	assert.Equal(t, 6250.25, *total.MarketValue)
}

func TestPortfolioSummaryGenericSchemeTable(t *testing.T) {
	text := `Folio No. Scheme Name Market Value Units NAV Cost Value
12345/67 SBI Small Cap Fund 8,200.00 120.500 68.05 7,000.00
89012/34 ICICI Value Discovery 4,100.00 55.250 74.21 3,500.00
`

	summary := ParseStatement(text).PortfolioSummary

	require.Equal(t, 2, summary.Len())
	assert.Equal(t, []string{"SBI Small Cap Fund", "ICICI Value Discovery"}, summary.FundNames())

	sbi, ok := summary.Value("SBI Small Cap Fund")
	require.True(t, ok)
	// First numeric token is the market value, the last the cost value.
	assert.Equal(t, 8200.00, *sbi.MarketValue)
	assert.Equal(t, 7000.00, *sbi.CostValue)

	icici, ok := summary.Value("ICICI Value Discovery")
	require.True(t, ok)
	assert.Equal(t, 4100.00, *icici.MarketValue)
	assert.Equal(t, 3500.00, *icici.CostValue)
}

func TestPortfolioSummaryStrategyExhaustion(t *testing.T) {
	summary := ParseStatement("nothing that resembles a portfolio table").PortfolioSummary

	assert.Equal(t, 0, summary.Len())
	assert.Nil(t, summary.Total())
}

func TestFundDetailIndividualLabels(t *testing.T) {
	// No combined "PAN: x KYC: y PAN: z" form; each label matches alone.
	text := `Portfolio Summary
FundA 100.00 110.00
Total 100.00 110.00
FundA - ISIN: INF123A01XYZ (Advisor: DIRECT)
Registrar: KFINTECH
Folio No: 555/11
PAN: ABCDE1234F
KYC: Registered
PAN Status: Verified
`

	record := ParseStatement(text)

	require.Len(t, record.MutualFundDetails, 1)
	detail := record.MutualFundDetails[0]
	require.NotNil(t, detail.ISIN)
	assert.Equal(t, "INF123A01XYZ", *detail.ISIN)
	require.NotNil(t, detail.Advisor)
	assert.Equal(t, "DIRECT", *detail.Advisor)
	require.NotNil(t, detail.Registrar)
	assert.Equal(t, "KFINTECH", *detail.Registrar)
	require.NotNil(t, detail.FolioNumber)
	assert.Equal(t, "555/11", *detail.FolioNumber)
	require.NotNil(t, detail.PAN)
	assert.Equal(t, "ABCDE1234F", *detail.PAN)
	require.NotNil(t, detail.KYC)
	assert.Equal(t, "Registered", *detail.KYC)
	require.NotNil(t, detail.PANStatus)
	assert.Equal(t, "Verified", *detail.PANStatus)

	// Summary values are carried onto the detail record.
	assert.Equal(t, 100.00, *detail.CostValue)
	assert.Equal(t, 110.00, *detail.MarketValue)
}

func TestFundDetailWholeDocumentFallback(t *testing.T) {
	// The ISIN sits before the fund's block; block scoping finds nothing
	// and the whole-document retry picks it up.
	text := `ISIN: INF999Z09ZZZ (Advisor: ARN-777)
Portfolio Summary
FundA 100.00 110.00
Total 100.00 110.00
`

	record := ParseStatement(text)

	require.Len(t, record.MutualFundDetails, 1)
	detail := record.MutualFundDetails[0]
	require.NotNil(t, detail.ISIN)
	assert.Equal(t, "INF999Z09ZZZ", *detail.ISIN)
	require.NotNil(t, detail.Advisor)
	assert.Equal(t, "ARN-777", *detail.Advisor)
}

func TestTransactionNotMatchedWithoutPhrase(t *testing.T) {
	text := "01-Mar-2024 Redemption 5,000.00 25.1234 199.0130\nClosing Unit Balance: 10.5\n"

	record := ParseStatement(text)

	assert.Nil(t, record.TransactionDetails.Date)
	assert.Nil(t, record.TransactionDetails.Amount)
	// The unit balance label matches independently of the purchase row.
	require.NotNil(t, record.TransactionDetails.UnitBalance)
	assert.Equal(t, 10.5, *record.TransactionDetails.UnitBalance)
}
