package logic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"jobboard/internal/domain"
)

// SortMode represents different listing orders
type SortMode int

const (
	SortByPosted SortMode = iota
	SortByTitle
	SortByCompany
	SortBySalary
)

func (m SortMode) String() string {
	switch m {
	case SortByTitle:
		return "title"
	case SortByCompany:
		return "company"
	case SortBySalary:
		return "salary"
	default:
		return "newest"
	}
}

// Next cycles through the sort modes
func (m SortMode) Next() SortMode {
	return (m + 1) % (SortBySalary + 1)
}

// ParseSortMode maps a sort name back to its mode. Empty means newest.
func ParseSortMode(name string) (SortMode, error) {
	if name == "" {
		return SortByPosted, nil
	}
	for m := SortByPosted; m <= SortBySalary; m++ {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return SortByPosted, fmt.Errorf("unknown sort %q (want newest, title, company or salary)", name)
}

// SortJobs orders jobs in place. SortByPosted keeps catalogue order.
func SortJobs(jobs []domain.Job, mode SortMode) {
	switch mode {
	case SortByTitle:
		sort.SliceStable(jobs, func(i, j int) bool {
			return strings.ToLower(jobs[i].Title) < strings.ToLower(jobs[j].Title)
		})
	case SortByCompany:
		sort.SliceStable(jobs, func(i, j int) bool {
			return strings.ToLower(jobs[i].Company) < strings.ToLower(jobs[j].Company)
		})
	case SortBySalary:
		sort.SliceStable(jobs, func(i, j int) bool {
			return SalaryFloor(jobs[i].Salary) > SalaryFloor(jobs[j].Salary) // Highest first
		})
	}
}

// SalaryFloor extracts the lower bound of a salary range such as
// "NPR 80,000 - 120,000". Unparseable values sort last.
func SalaryFloor(salary string) int {
	lower, _, _ := strings.Cut(salary, "-")
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, lower)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}
