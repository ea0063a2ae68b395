package report

import (
	"fmt"
	"io"
	"strings"

	"rojobs/internal/domain"
)

const DefaultTopCompanies = 10

// PrintStatistics writes the by-source table and the top companies.
func PrintStatistics(w io.Writer, jobs []domain.JobRecord, top int) {
	if top <= 0 {
		top = DefaultTopCompanies
	}
	t := Compute(jobs)
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(w, "\n%s\nSTATISTICS\n%s\n", rule, rule)

	fmt.Fprintln(w, "\nJobs by Source:")
	for _, c := range ByCount(t.BySource) {
		fmt.Fprintf(w, "   • %s: %d\n", c.Name, c.N)
	}

	fmt.Fprintln(w, "\nTop Companies:")
	companies := ByCount(t.ByCompany)
	if len(companies) > top {
		companies = companies[:top]
	}
	for _, c := range companies {
		fmt.Fprintf(w, "   • %s: %d\n", c.Name, c.N)
	}

	fmt.Fprintf(w, "\n%s\n", rule)
}
