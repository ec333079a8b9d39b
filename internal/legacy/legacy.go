// Package legacy imports planner data from the flat per-collection JSON
// files written by earlier releases.
package legacy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

// fileNames maps each collection to the file the old layout used.
var fileNames = []string{
	"events.json",
	"timetable.json",
	"assignments.json",
	"streaks.json",
	"budget.json",
}

// DiscoveredFile is one legacy data file found on disk.
type DiscoveredFile struct {
	Path string
	Name string // base name, e.g. "events.json"
}

// ScanDir looks for the known legacy data files in dir. A missing
// directory is not an error; it just means there is nothing to import.
func ScanDir(dir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var files []DiscoveredFile
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		files = append(files, DiscoveredFile{Path: path, Name: name})
	}
	return files, nil
}

// Result reports what an import run brought in.
type Result struct {
	Events      int
	Classes     int
	Assignments int
	Streaks     int
	Incomes     int
	Budgets     int
	Expenses    int
	Skipped     []string // files that failed to parse
}

// Total returns the number of records imported across all collections.
func (r Result) Total() int {
	return r.Events + r.Classes + r.Assignments + r.Streaks +
		r.Incomes + r.Budgets + r.Expenses
}

// Import merges every discovered legacy file into the workspace.
// Records whose ID is already present are left alone, so re-running an
// import is harmless. Unparseable files are skipped and reported, not
// fatal; the remaining files still import.
func Import(w *planner.Workspace, files []DiscoveredFile) Result {
	var res Result

	for _, df := range files {
		data, err := os.ReadFile(df.Path)
		if err != nil {
			res.Skipped = append(res.Skipped, df.Name)
			continue
		}

		var ok bool
		switch df.Name {
		case "events.json":
			var events []model.Event
			if ok = json.Unmarshal(data, &events) == nil; ok {
				res.Events = mergeEvents(w, events)
			}
		case "timetable.json":
			var entries []model.TimetableEntry
			if ok = json.Unmarshal(data, &entries) == nil; ok {
				res.Classes = mergeClasses(w, entries)
			}
		case "assignments.json":
			var as []model.Assignment
			if ok = json.Unmarshal(data, &as) == nil; ok {
				res.Assignments = mergeAssignments(w, as)
			}
		case "streaks.json":
			var dates []model.Date
			if ok = json.Unmarshal(data, &dates) == nil; ok {
				res.Streaks = mergeStreaks(w, dates)
			}
		case "budget.json":
			var ledger model.Ledger
			if ok = json.Unmarshal(data, &ledger) == nil; ok {
				res.Incomes, res.Budgets, res.Expenses = mergeLedger(w, ledger)
			}
		}
		if !ok {
			res.Skipped = append(res.Skipped, df.Name)
		}
	}

	return res
}

func mergeEvents(w *planner.Workspace, events []model.Event) int {
	seen := idSet(len(w.Events))
	for _, e := range w.Events {
		seen[e.ID] = struct{}{}
	}
	n := 0
	for _, e := range events {
		if _, dup := seen[e.ID]; dup || e.Title == "" {
			continue
		}
		w.Events = append(w.Events, e)
		seen[e.ID] = struct{}{}
		n++
	}
	return n
}

func mergeClasses(w *planner.Workspace, entries []model.TimetableEntry) int {
	seen := idSet(len(w.Timetable))
	for _, e := range w.Timetable {
		seen[e.ID] = struct{}{}
	}
	n := 0
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup || e.Course == "" {
			continue
		}
		w.Timetable = append(w.Timetable, e)
		seen[e.ID] = struct{}{}
		n++
	}
	return n
}

func mergeAssignments(w *planner.Workspace, as []model.Assignment) int {
	seen := idSet(len(w.Assignments))
	for _, a := range w.Assignments {
		seen[a.ID] = struct{}{}
	}
	n := 0
	for _, a := range as {
		if _, dup := seen[a.ID]; dup || a.Title == "" {
			continue
		}
		w.Assignments = append(w.Assignments, a)
		seen[a.ID] = struct{}{}
		n++
	}
	return n
}

func mergeStreaks(w *planner.Workspace, dates []model.Date) int {
	seen := make(map[string]struct{}, len(w.Streaks))
	for _, d := range w.Streaks {
		seen[d.String()] = struct{}{}
	}
	n := 0
	for _, d := range dates {
		if _, dup := seen[d.String()]; dup || d.IsZero() {
			continue
		}
		w.Streaks = append(w.Streaks, d)
		seen[d.String()] = struct{}{}
		n++
	}
	return n
}

func mergeLedger(w *planner.Workspace, l model.Ledger) (incomes, budgets, expenses int) {
	seen := idSet(len(w.Ledger.Incomes) + len(w.Ledger.Budgets) + len(w.Ledger.Expenses))
	for _, in := range w.Ledger.Incomes {
		seen[in.ID] = struct{}{}
	}
	for _, bc := range w.Ledger.Budgets {
		seen[bc.ID] = struct{}{}
	}
	for _, e := range w.Ledger.Expenses {
		seen[e.ID] = struct{}{}
	}

	for _, in := range l.Incomes {
		if _, dup := seen[in.ID]; dup || in.Source == "" {
			continue
		}
		w.Ledger.Incomes = append(w.Ledger.Incomes, in)
		seen[in.ID] = struct{}{}
		incomes++
	}
	for _, bc := range l.Budgets {
		if _, dup := seen[bc.ID]; dup || bc.Category == "" {
			continue
		}
		w.Ledger.Budgets = append(w.Ledger.Budgets, bc)
		seen[bc.ID] = struct{}{}
		budgets++
	}
	for _, e := range l.Expenses {
		if _, dup := seen[e.ID]; dup || e.Name == "" {
			continue
		}
		w.Ledger.Expenses = append(w.Ledger.Expenses, e)
		seen[e.ID] = struct{}{}
		expenses++
	}
	return incomes, budgets, expenses
}

func idSet(capacity int) map[string]struct{} {
	return make(map[string]struct{}, capacity)
}
