package report

import (
	"sort"

	"rojobs/internal/domain"
)

type Count struct {
	Name string
	N    int
}

// Tally holds the frequency tables a report is built from.
type Tally struct {
	Total     int
	BySource  map[string]int
	ByCompany map[string]int
}

func Compute(jobs []domain.JobRecord) Tally {
	t := Tally{
		Total:     len(jobs),
		BySource:  map[string]int{},
		ByCompany: map[string]int{},
	}
	for _, j := range jobs {
		t.BySource[j.Source]++
		t.ByCompany[j.Company]++
	}
	return t
}

// ByName sorts alphabetically, for filter controls.
func ByName(m map[string]int) []Count {
	out := toCounts(m)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCount sorts by count descending, ties alphabetically.
func ByCount(m map[string]int) []Count {
	out := toCounts(m)
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func toCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Name: k, N: v})
	}
	return out
}
