package bestjobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rojobs/internal/domain"
	"rojobs/internal/scrape/markup"
	"rojobs/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body><ul>
<li class="job-listing">
  <a href="/job/1"><h3>DevOps Engineer</h3></a>
  <div class="employer">Endava</div>
  <div class="location">Iași</div>
</li>
<div class="job-item"><h2>Sales Agent</h2><span class="company">Orange</span></div>
</ul></body></html>`

func TestBestJobsParse(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	src, _ := domain.LookupSource(domain.SourceBestJobs)
	recs, skipped := markup.Parse(doc, src, Layout, markup.Meta{ApplyLink: "https://www.bestjobs.ro/"})
	require.Empty(t, skipped)
	require.Len(t, recs, 2)

	// the anchor wraps the heading, so it is the first title candidate
	assert.Equal(t, "DevOps Engineer", recs[0].Title)
	assert.Equal(t, "Endava", recs[0].Company)
	assert.Equal(t, "Iași", recs[0].Location)
	assert.Equal(t, "BestJobs", recs[0].Source)
	assert.Equal(t, "Various", recs[0].Category)
	assert.Equal(t, "https://www.bestjobs.ro/", recs[0].ApplyLink)

	assert.Equal(t, "Orange", recs[1].Company)
}

func TestBestJobsKeywordInQuery(t *testing.T) {
	var gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	s := New(markup.Config{URL: srv.URL}, util.NewClient(util.ClientOptions{}))
	res, err := s.Fetch(context.Background(), "golang")
	require.NoError(t, err)
	assert.Equal(t, "golang", gotQ)
	assert.Len(t, res.Records, 2)
}
