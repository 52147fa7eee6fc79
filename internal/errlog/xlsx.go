package errlog

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Errors"

var xlsxHeaders = []interface{}{"Timestamp", "Source", "Message", "Detail"}

// ExportXLSX выгружает журнал в книгу Excel с одним листом
func (l *Log) ExportXLSX() ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeaders); err != nil {
		return nil, "", fmt.Errorf("failed to write header: %w", err)
	}

	for i, entry := range l.Entries() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		row := []interface{}{entry.Timestamp, entry.Source, entry.Message, entry.Detail}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), l.FileName("xlsx"), nil
}
