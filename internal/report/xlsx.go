package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// SaveXLSX writes the report as a spreadsheet with an Overview sheet and,
// when there is topic data, a Topics sheet. Returns the file path.
func SaveXLSX(dir string, d Data) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const overview = "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]any{
		{"User", d.User},
		{"Generated", d.GeneratedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Total attempts", d.Overview.Attempts},
		{"Correct", d.Overview.Correct},
		{"Incorrect", d.Overview.Attempts - d.Overview.Correct},
		{"Overall accuracy (%)", d.Overview.Accuracy},
		{"Open wrong questions", d.WrongCount},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(overview, cell, &row); err != nil {
			return "", fmt.Errorf("write overview row: %w", err)
		}
	}

	if len(d.Topics) > 0 {
		const topics = "Topics"
		if _, err := f.NewSheet(topics); err != nil {
			return "", fmt.Errorf("add topics sheet: %w", err)
		}
		header := []any{"Topic", "Attempts", "Correct", "Accuracy (%)"}
		if err := f.SetSheetRow(topics, "A1", &header); err != nil {
			return "", fmt.Errorf("write topics header: %w", err)
		}
		for i, row := range d.Topics {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return "", fmt.Errorf("cell name: %w", err)
			}
			values := []any{row.Topic, row.Attempts, row.Correct, row.Accuracy}
			if err := f.SetSheetRow(topics, cell, &values); err != nil {
				return "", fmt.Errorf("write topic row: %w", err)
			}
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s_%s.xlsx", d.User, FileStamp(d.GeneratedAt)))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
