package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"jobboard/internal/catalog"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	uilogic "jobboard/internal/ui/logic"
	"jobboard/internal/version"
)

// Jobs command and flags
var (
	jobsFilter uilogic.JobFilter
	jobsSort   string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs matching a filter",
	Long: `Print the job listings that match the given filter without starting the UI.

The query matches job titles and company names. It also accepts the
location:, type: and exp: prefixes used by the search box.`,
	Example: `  # Every listing, newest first
  jobboard jobs

  # Contract roles in Kathmandu
  jobboard jobs --location kathmandu --type contract

  # Search box syntax
  jobboard jobs --query "developer exp:3-5" --sort salary`,
	Args: cobra.NoArgs,
	RunE: runJobs,
}

func init() {
	jobsCmd.Flags().StringVarP(&jobsFilter.Query, "query", "q", "", "Match job title or company")
	jobsCmd.Flags().StringVar(&jobsFilter.Location, "location", "", "Match location")
	jobsCmd.Flags().StringVar(&jobsFilter.Type, "type", "", "Employment type (Full-time, Part-time, Contract)")
	jobsCmd.Flags().StringVar(&jobsFilter.Experience, "experience", "", "Match experience range")
	jobsCmd.Flags().StringVar(&jobsSort, "sort", "", "Sort order (newest, title, company, salary)")
}

func runJobs(cmd *cobra.Command, args []string) error {
	mode, err := uilogic.ParseSortMode(jobsSort)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load job catalog: %w", err)
	}

	all := cat.Jobs()
	jobs := jobsFilter.Apply(all)
	uilogic.SortJobs(jobs, mode)

	out := cmd.OutOrStdout()
	if len(jobs) == 0 {
		fmt.Fprintln(out, "No jobs found")
		return nil
	}
	fmt.Fprintln(out, renderJobTable(jobs))
	fmt.Fprintf(out, "Showing %d of %d jobs\n", len(jobs), len(all))
	return nil
}

func renderJobTable(jobs []domain.Job) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "COMPANY", "LOCATION", "TYPE", "SALARY").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, job := range jobs {
		t.Row(job.ID, job.Title, job.Company, job.Location, job.Type, job.Salary)
	}
	return t.Render()
}

// Config command
var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := config.NewConfigService(configPath)
		path := svc.Path()

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot access config file: %w", err)
		}

		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigService(configPath).Path())
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jobboard %s\n", version.Full())
	},
}
