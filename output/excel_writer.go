package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, sheet Sheet) error {
	file := excelize.NewFile()
	defer file.Close()

	name := file.GetSheetName(0)
	rows := append([][]string{sheet.Headers}, sheet.Rows...)
	for i, values := range rows {
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := file.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
