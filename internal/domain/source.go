package domain

// Strategy is how a source exposes its listings.
type Strategy string

const (
	StrategyMarkup     Strategy = "markup"
	StrategyStructured Strategy = "structured"
)

// Source identifiers, stable across config, CLI and logs.
const (
	SourceEJobs    = "ejobs"
	SourceBestJobs = "bestjobs"
	SourceKeysight = "keysight"
	SourceAmazon   = "amazon"
)

type Source struct {
	ID       string
	Label    string // value written into JobRecord.Source
	Title    string // menu label
	Menu     string // CLI selection token
	Strategy Strategy
}

// Catalog lists every known source in menu order.
var Catalog = []Source{
	{ID: SourceEJobs, Label: "eJobs", Title: "eJobs Romania", Menu: "1", Strategy: StrategyMarkup},
	{ID: SourceBestJobs, Label: "BestJobs", Title: "BestJobs Romania", Menu: "2", Strategy: StrategyMarkup},
	{ID: SourceKeysight, Label: "Keysight", Title: "Keysight Technologies", Menu: "3", Strategy: StrategyStructured},
	{ID: SourceAmazon, Label: "Amazon", Title: "Amazon Romania", Menu: "4", Strategy: StrategyStructured},
}

// LookupSource finds a catalog entry by id.
func LookupSource(id string) (Source, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}
