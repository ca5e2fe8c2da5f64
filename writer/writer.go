// Package writer serializes the final record list to flat output files.
// It runs strictly after a fully successful fetch; a failed run writes
// nothing.
package writer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/use-agent/wooscrape/config"
	"github.com/use-agent/wooscrape/models"
)

// Write emits the record list to every configured output.
func Write(extensions []models.Extension, cfg config.OutputConfig) error {
	if cfg.CSVPath != "" {
		if err := writeCSV(extensions, cfg.CSVPath); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		slog.Info("wrote CSV", "path", cfg.CSVPath, "records", len(extensions))
	}
	if cfg.XLSXPath != "" {
		if err := writeXLSX(extensions, cfg.XLSXPath); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		slog.Info("wrote XLSX", "path", cfg.XLSXPath, "records", len(extensions))
	}
	if cfg.JSONPath != "" {
		if err := writeJSON(extensions, cfg.JSONPath); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		slog.Info("wrote JSON", "path", cfg.JSONPath, "records", len(extensions))
	}
	return nil
}

// writeCSV emits a header row of the canonical field names followed by
// one row per record. Nil optionals serialize as empty cells.
func writeCSV(extensions []models.Extension, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.MarshalFile(&extensions, f)
}

const sheetName = "Sheet1"

// writeXLSX emits the same logical table on a single sheet.
func writeXLSX(extensions []models.Extension, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, 0, len(models.FieldNames()))
	for _, name := range models.FieldNames() {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, ext := range extensions {
		row := []any{
			ext.Title,
			ext.Vendor,
			ext.Price,
			cellValue(ext.Rating),
			cellValue(ext.ReviewsCount),
			ext.Description,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// cellValue unwraps an optional numeric; nil stays an empty cell.
func cellValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func writeJSON(extensions []models.Extension, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(extensions)
}
