package query

import (
	"github.com/prostech/outbound-api/internal/domain"
)

// Matches evaluates the filter against an already-fetched line with the same
// clause table Build uses. It lets callers narrow a row-set in memory, for
// example one sales person's lines out of a team-wide fetch.
func Matches(f domain.FilterModel, line *domain.DeliveryLine) bool {
	from, to := dateBounds(f)
	if from != "" || to != "" {
		// SQL comparisons against NULL are never true
		if line.ETD == nil {
			return false
		}
		etd := line.ETD.Format("2006-01-02")
		if from != "" && etd < from {
			return false
		}
		if to != "" && etd > to {
			return false
		}
	}

	for _, lc := range listClauses {
		lf := f.List(lc.dimension)
		values := boundValues(lc, lf)
		if len(values) == 0 {
			continue
		}
		v := lc.field(line)
		found := false
		for _, want := range values {
			if v == want {
				found = true
				break
			}
		}
		if lf.Exclude {
			// NOT IN drops NULL columns as well
			if found || v == "" {
				return false
			}
		} else if !found {
			return false
		}
	}

	switch domain.ParseEPEFilter(string(f.EPE)) {
	case domain.EPEOnly:
		if line.IsEPECompany != "Yes" {
			return false
		}
	case domain.EPEExclude:
		if line.IsEPECompany != "No" {
			return false
		}
	}

	switch domain.ParseForeignFilter(string(f.Foreign)) {
	case domain.ForeignOnly:
		if line.CustomerCountryCode == "" || line.LegalEntityCountryCode == "" ||
			line.CustomerCountryCode == line.LegalEntityCountryCode {
			return false
		}
	case domain.ForeignDomestic:
		if line.CustomerCountryCode == "" || line.CustomerCountryCode != line.LegalEntityCountryCode {
			return false
		}
	}

	return true
}

// Filter returns the lines that match f, preserving order.
func Filter(f domain.FilterModel, lines []domain.DeliveryLine) []domain.DeliveryLine {
	out := make([]domain.DeliveryLine, 0, len(lines))
	for i := range lines {
		if Matches(f, &lines[i]) {
			out = append(out, lines[i])
		}
	}
	return out
}
