package utils

import (
	"regexp"
	"strings"

	"github.com/springpad/doc-parser/dto"
)

// ParseStatement extracts a normalized StatementRecord from the raw text
// of a Consolidated Account Statement page. Each extractor consumes the
// full text independently and fills its own slice of the record; a field
// that cannot be matched stays null and never voids the others. The
// function is total: any input, including the empty string, produces a
// well-formed record.
func ParseStatement(text string) dto.StatementRecord {
	record := dto.StatementRecord{}

	extractDocumentMeta(text, &record)
	extractPersonalInfo(text, &record)
	record.PortfolioSummary = extractPortfolioSummary(text)
	record.MutualFundDetails = extractFundDetails(text, &record.PortfolioSummary)
	extractEntities(text, &record)
	extractTransaction(text, &record)
	extractFinancialData(text, &record)
	extractNominees(text, &record)

	return record
}

const docTypePhrase = "Consolidated Account Statement"

var (
	versionRegex = regexp.MustCompile(`(?i)Version\s*:\s*([^\n]+)`)
	periodRegex  = regexp.MustCompile(`(\d{2}-[A-Za-z]{3}-\d{4})\s+To\s+(\d{2}-[A-Za-z]{3}-\d{4})`)
	mobileRegex  = regexp.MustCompile(`(?i)Mobile\s*:\s*([^\n]+)`)
)

func extractDocumentMeta(text string, record *dto.StatementRecord) {
	if strings.Contains(text, docTypePhrase) {
		docType := docTypePhrase
		record.DocumentType = &docType
	}

	record.Version = firstGroup(versionRegex, text)

	if m := periodRegex.FindStringSubmatch(text); len(m) > 2 {
		record.Dates.StatementPeriod.StartDate = strPtr(m[1])
		record.Dates.StatementPeriod.EndDate = strPtr(m[2])
	}
}

// labelWords disqualify a line from being the investor's name.
var labelWords = []string{"address", "pan", "kyc", "folio", "registrar", "advisor"}

func isLabelLine(line string) bool {
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "email id:") || strings.HasPrefix(lower, "mobile:") {
		return true
	}
	for _, word := range labelWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// extractPersonalInfo reads the investor block anchored on "Email Id:".
// Without that anchor the name, email and address stay null, but the
// mobile number may still be found by the document-wide fallback.
func extractPersonalInfo(text string, record *dto.StatementRecord) {
	block, found := findBlock(text, "Email Id:", []string{"Mobile:", "PAN:", "Folio No:"})
	if found {
		rawLines := strings.Split(block, "\n")
		record.PersonalInformation.Email = strPtr(rawLines[0])

		var addressParts []string
		nameFound := false
		for _, line := range rawLines[1:] {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !nameFound {
				if isLabelLine(line) || looksLikeEmail(line) {
					continue
				}
				record.PersonalInformation.Name = strPtr(line)
				nameFound = true
				continue
			}
			if strings.HasPrefix(strings.ToLower(line), "mobile:") {
				record.PersonalInformation.Mobile = strPtr(line[len("mobile:"):])
				break
			}
			if looksLikeEmail(line) {
				continue
			}
			addressParts = append(addressParts, line)
		}
		if len(addressParts) > 0 {
			address := strings.Join(addressParts, ", ")
			record.PersonalInformation.Address = &address
		}
	}

	if record.PersonalInformation.Mobile == nil {
		record.PersonalInformation.Mobile = firstGroup(mobileRegex, text)
	}
}

func extractEntities(text string, record *dto.StatementRecord) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "cams") {
		cams := "CAMS"
		record.Entities.CAMS = &cams
	}
	if strings.Contains(lower, "kfintech") {
		kfintech := "KFintech"
		record.Entities.KFintech = &kfintech
	}
	if names := record.PortfolioSummary.FundNames(); len(names) > 0 {
		record.Entities.MutualFund = strPtr(names[0])
	}
}

var nomineeRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?m)Nominee\s*1\s*:\s*([^\n]*?)(?:\s*Nominee\s*2\s*:|$)`),
	regexp.MustCompile(`(?m)Nominee\s*2\s*:\s*([^\n]*?)(?:\s*Nominee\s*3\s*:|$)`),
	regexp.MustCompile(`(?m)Nominee\s*3\s*:\s*([^\n]*?)$`),
}

// extractNominees captures up to three nominee slots. An empty capture is
// a vacant slot and normalizes to null.
func extractNominees(text string, record *dto.StatementRecord) {
	slots := []**string{
		&record.NomineeDetails.Nominee1,
		&record.NomineeDetails.Nominee2,
		&record.NomineeDetails.Nominee3,
	}
	for i, re := range nomineeRegexes {
		*slots[i] = firstGroup(re, text)
	}
}
