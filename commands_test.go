package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uilogic "jobboard/internal/ui/logic"
)

func runJobsWith(t *testing.T, filter uilogic.JobFilter, sortName string) (string, error) {
	t.Helper()
	jobsFilter, jobsSort = filter, sortName
	t.Cleanup(func() { jobsFilter, jobsSort = uilogic.JobFilter{}, "" })

	var out bytes.Buffer
	jobsCmd.SetOut(&out)
	err := runJobs(jobsCmd, nil)
	return out.String(), err
}

func TestJobsListsEverything(t *testing.T) {
	out, err := runJobsWith(t, uilogic.JobFilter{}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "TechCorp Nepal")
	assert.Contains(t, out, "Showing 8 of 8 jobs")
}

func TestJobsFilters(t *testing.T) {
	out, err := runJobsWith(t, uilogic.JobFilter{Query: "techcorp"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 8 jobs")

	out, err = runJobsWith(t, uilogic.JobFilter{Query: "nothing matches this"}, "")
	require.NoError(t, err)
	assert.Equal(t, "No jobs found\n", out)
}

func TestJobsRejectsUnknownSort(t *testing.T) {
	_, err := runJobsWith(t, uilogic.JobFilter{}, "popularity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort")
}

func TestConfigInit(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "jobboard", "config.toml")
	t.Cleanup(func() { configPath, forceInit = "", false })

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	require.NoError(t, configInitCmd.RunE(configInitCmd, nil))
	assert.Contains(t, out.String(), configPath)

	err := configInitCmd.RunE(configInitCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	forceInit = true
	require.NoError(t, configInitCmd.RunE(configInitCmd, nil))
}
