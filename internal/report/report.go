// Package report turns diary data into tabular exports.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

// Column headers
var (
	StatHeader  = []string{"id", "user", "date", "calories", "fat", "protein", "carbon"}
	EntryHeader = []string{"id", "user", "date", "food", "calories", "fat", "protein", "carbon"}
)

// ContentTypeCSV is sent with CSV downloads.
const ContentTypeCSV = "text/csv; charset=utf-8"

// StatRows renders one row per daily statistic, in input order.
func StatRows(stats []domain.DailyStat) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, append([]string{
			strconv.FormatInt(s.ID, 10),
			s.UserID,
			domain.FormatDay(s.Date),
		}, nutrientCells(s.Nutrients)...))
	}
	return rows
}

// EntryRows renders one row per food log entry, in input order.
func EntryRows(entries []domain.FoodLogEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, append([]string{
			strconv.FormatInt(e.ID, 10),
			e.UserID,
			domain.FormatDay(e.Date),
			e.FoodName,
		}, nutrientCells(e.Contribution)...))
	}
	return rows
}

// WriteCSV writes the header followed by rows.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// FileName builds a download name such as "stats_2024-03-01_2024-03-31.csv".
func FileName(kind string, start, end string) string {
	return fmt.Sprintf("%s_%s_%s.csv", kind, start, end)
}

func nutrientCells(n domain.Nutrients) []string {
	return []string{
		strconv.Itoa(n.Calories),
		strconv.Itoa(n.Fat),
		strconv.Itoa(n.Protein),
		strconv.Itoa(n.Carbon),
	}
}
