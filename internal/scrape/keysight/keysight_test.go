package keysight

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rojobs/internal/domain"
	"rojobs/internal/scrape/types"
	"rojobs/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head>
<script type="application/ld+json">{"@type":"Organization","name":"Keysight"}</script>
<script type="application/ld+json">{
  "@type": "JobPosting",
  "title": "R&D Software Engineer",
  "identifier": {"@type": "PropertyValue", "value": 49211},
  "industry": "Engineering",
  "employmentType": ["FULL_TIME"],
  "datePosted": "2026-10-01",
  "url": "https://jobs.keysight.com/external/jobs/49211",
  "jobLocation": {"address": {"addressLocality": "Cluj-Napoca", "addressCountry": "RO"}}
}</script>
<script type="application/ld+json">{ not json </script>
<script type="application/ld+json">[
  {"@type": "JobPosting", "title": "Hybrid / Remote Test Engineer", "jobLocation": [{"address": {}}], "identifier": "REQ-7"},
  {"@type": "JobPosting", "title": "Telecommute Analyst", "jobLocation": {}, "jobLocationType": "TELECOMMUTE"}
]</script>
</head><body></body></html>`

func parse(t *testing.T) ([]domain.JobRecord, []error) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return Parse(doc)
}

func TestParse(t *testing.T) {
	recs, skipped := parse(t)
	require.Len(t, recs, 3)

	assert.Equal(t, domain.JobRecord{
		Company:    "Keysight",
		Title:      "R&D Software Engineer",
		Location:   "Cluj-Napoca",
		ReqID:      "49211",
		Category:   "Engineering",
		JobType:    "FULL_TIME",
		IsRemote:   "No",
		ApplyLink:  "https://jobs.keysight.com/external/jobs/49211",
		PostedDate: "2026-10-01",
		Source:     "Keysight",
	}, recs[0])

	assert.Equal(t, "REQ-7", recs[1].ReqID)
	assert.Equal(t, "Yes", recs[1].IsRemote)
	assert.Equal(t, domain.DefaultLocation, recs[1].Location)
	assert.Equal(t, domain.Placeholder, recs[1].ApplyLink)

	assert.Equal(t, "Yes", recs[2].IsRemote)

	require.Len(t, skipped, 1)
	var rpe *types.RecordParseError
	require.True(t, errors.As(skipped[0], &rpe))
	assert.Equal(t, domain.SourceKeysight, rpe.Source)
}

func TestFetchIgnoresKeyword(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	s := New(Config{URL: srv.URL + "/external/jobs"}, util.NewClient(util.ClientOptions{}))
	res, err := s.Fetch(context.Background(), "golang")
	require.NoError(t, err)

	assert.Equal(t, []string{"Romania"}, query["location"])
	assert.Equal(t, []string{"100"}, query["limit"])
	assert.NotContains(t, query, "q")
	assert.Len(t, res.Records, 3)
	assert.Len(t, res.Skipped, 1)
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := New(Config{URL: srv.URL}, util.NewClient(util.ClientOptions{}))
	res, err := s.Fetch(context.Background(), "")

	var fe *types.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Empty(t, res.Records)
}
