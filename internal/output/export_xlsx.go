// Package output renders roster totals to files meant for use outside
// the app, currently xlsx workbooks.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/planner"
)

// ExportTotalsXLSX writes a workbook with two sheets: "Totals" holds the
// merged material list for the whole roster, "By Character" breaks the
// same materials down per owned character. An empty path picks a
// timestamped filename in the working directory. Returns the path written.
func ExportTotalsXLSX(path string, p *planner.Planner, provider gamedata.Provider) (string, error) {
	if path == "" {
		path = fmt.Sprintf("ascend_totals_%s.xlsx", time.Now().Format("20060102"))
	}

	f := excelize.NewFile()
	defer f.Close()

	totalsSheet := "Totals"
	_ = f.SetSheetName("Sheet1", totalsSheet)
	bySheet := "By Character"
	_, _ = f.NewSheet(bySheet)

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true},
	})
	if err != nil {
		return "", err
	}

	f.SetCellValue(totalsSheet, "A1", "Material")
	f.SetCellValue(totalsSheet, "B1", "Count")
	if err := f.SetCellStyle(totalsSheet, "A1", "B1", headerStyleID); err != nil {
		return "", err
	}

	items, complete := p.Totals()
	row := 1
	for _, it := range items {
		row++
		f.SetCellValue(totalsSheet, fmt.Sprintf("A%d", row), it.Name)
		f.SetCellValue(totalsSheet, fmt.Sprintf("B%d", row), it.Count)
	}
	if !complete {
		row += 2
		f.SetCellValue(totalsSheet, fmt.Sprintf("A%d", row),
			"Some costs could not be resolved; totals are a lower bound.")
	}

	f.SetCellValue(bySheet, "A1", "Character")
	f.SetCellValue(bySheet, "B1", "Material")
	f.SetCellValue(bySheet, "C1", "Count")
	if err := f.SetCellStyle(bySheet, "A1", "C1", headerStyleID); err != nil {
		return "", err
	}

	row = 1
	for _, id := range p.Owned() {
		gc, ok := p.GoalCost(id)
		if !ok {
			continue
		}
		name := id
		if n := provider.CharacterName(id); n != "" {
			name = n
		}
		for _, it := range gc.Total() {
			row++
			f.SetCellValue(bySheet, fmt.Sprintf("A%d", row), name)
			f.SetCellValue(bySheet, fmt.Sprintf("B%d", row), it.Name)
			f.SetCellValue(bySheet, fmt.Sprintf("C%d", row), it.Count)
		}
	}

	if idx, err := f.GetSheetIndex(totalsSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
