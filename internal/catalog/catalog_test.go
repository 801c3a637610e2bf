package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Jobs(), 8)
	assert.Len(t, c.Companies(), 6)
	assert.Len(t, c.Categories(), 8)

	job, ok := c.Job("1")
	require.True(t, ok)
	assert.Equal(t, "Senior Frontend Developer", job.Title)
	assert.NotEmpty(t, job.Responsibilities)

	_, ok = c.Job("missing")
	assert.False(t, ok)
}

func TestSimilarExcludesJobAndKeepsOrder(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	similar := c.Similar("2", 4)
	require.Len(t, similar, 4)
	ids := []string{similar[0].ID, similar[1].ID, similar[2].ID, similar[3].ID}
	assert.Equal(t, []string{"1", "3", "4", "5"}, ids)

	assert.Len(t, c.Similar("2", 0), 7)
}

func TestDistinctOptions(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Kathmandu, Nepal", "Pokhara, Nepal", "Lalitpur, Nepal"}, c.Locations())
	assert.Equal(t, []string{"Full-time", "Contract", "Part-time"}, c.Types())
	assert.Contains(t, c.Experiences(), "3-5 years")
}

func TestJobsByIDSkipsUnknown(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	jobs := c.JobsByID([]string{"3", "nope", "1"})
	require.Len(t, jobs, 2)
	assert.Equal(t, "3", jobs[0].ID)
	assert.Equal(t, "1", jobs[1].ID)
}

func TestNewRejectsBadIDs(t *testing.T) {
	_, err := New([]domain.Job{{Title: "x"}}, nil, nil)
	assert.Error(t, err)

	_, err = New([]domain.Job{{ID: "1"}, {ID: "1"}}, nil, nil)
	assert.ErrorContains(t, err, "duplicate")
}

func TestLoadFromRejectsUnknownFields(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("jobs:\n  - id: \"1\"\n    salry: typo\n"))
	assert.Error(t, err)
}

func TestTotalOpenings(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 56, c.TotalOpenings())
}

func TestTipsFallBackToLanding(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Tips(domain.PageListings), 4)
	assert.Len(t, c.Tips(domain.PageAuth), 3)
	assert.Equal(t, c.Tips(domain.PageLanding), c.Tips(domain.Page("unknown")))

	bare, err := New(nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, bare.Tips(domain.PageDetails))
}

func TestEmployerBoardAndProfile(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	postings := c.Postings()
	require.Len(t, postings, 3)
	assert.Equal(t, "Backend Developer", postings[2].Title)
	assert.Equal(t, 62, postings[2].Applicants)
	assert.True(t, postings[0].Active())

	applicants := c.Applicants()
	require.Len(t, applicants, 3)
	assert.Equal(t, "Shortlisted", applicants[1].Status)

	profile := c.Profile()
	assert.Equal(t, "John Doe", profile.Name)
	require.Len(t, profile.Experience, 2)
	assert.Empty(t, profile.Experience[0].End, "current position has no end")
	assert.Equal(t, "2020-12", profile.Experience[1].End)
	assert.Len(t, profile.Skills, 6)
	assert.Equal(t, 100, profile.Completeness())

	sponsored := c.Sponsored()
	assert.Equal(t, "Learn More", sponsored.Banner.Action)
	require.Len(t, sponsored.Jobs, 2)
	assert.Equal(t, "Premium", sponsored.Jobs[1].Badge)
}

func TestLoadFromRejectsBadBoard(t *testing.T) {
	for name, body := range map[string]string{
		"tips page":      "tips:\n  nowhere: [hi]\n",
		"posting status": "postings:\n  - {id: p1, status: paused}\n",
		"skill level":    "profile:\n  skills:\n    - {name: Go, level: 140}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}
