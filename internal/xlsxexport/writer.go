// Package xlsxexport renders a normalized resume record as an xlsx
// workbook, one sheet per field group, honoring the registry's display
// order for groups and fields.
package xlsxexport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"resumehub/internal/schema"
)

// listGroupKeys maps a group to the record key its rows are read from.
// Groups not listed here are scalar: one value per field at the record's
// top level.
var listGroupKeys = map[string]string{
	schema.GroupEducation:      "educationList",
	schema.GroupWorkExperience: "work_experience",
	schema.GroupProjects:       "project_experience",
	schema.GroupSkills:         "skills",
	schema.GroupLanguageSkills: "language_skills",
	schema.GroupCertificates:   "certificates",
	schema.GroupTraining:       "training",
	schema.GroupSocialPractice: "social_practice",
}

// Writer renders normalized records to xlsx.
type Writer struct {
	reg *schema.Registry
}

// NewWriter creates a Writer driven by the given registry.
func NewWriter(reg *schema.Registry) *Writer {
	return &Writer{reg: reg}
}

// Export renders one record and returns the xlsx file content.
func (w *Writer) Export(record map[string]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, group := range w.reg.Groups() {
		sheet := group.Name
		if i == 0 {
			// The workbook always starts with one default sheet; rename it.
			defaultSheet := f.GetSheetName(0)
			if err := f.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, fmt.Errorf("xlsxexport.Export rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("xlsxexport.Export new sheet: %w", err)
			}
		}

		var err error
		if listKey, isList := listGroupKeys[group.Key]; isList {
			err = writeListSheet(f, sheet, group, listOf(record, listKey))
		} else {
			err = writeScalarSheet(f, sheet, group, record)
		}
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsxexport.Export write: %w", err)
	}
	return buf.Bytes(), nil
}

// writeScalarSheet lays out one label/value pair per row.
func writeScalarSheet(f *excelize.File, sheet string, group schema.Group, record map[string]any) error {
	for row, field := range group.Fields {
		labelCell, _ := excelize.CoordinatesToCellName(1, row+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, row+1)
		if err := f.SetCellValue(sheet, labelCell, field.Label); err != nil {
			return fmt.Errorf("xlsxexport: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, cellValue(record[field.Key])); err != nil {
			return fmt.Errorf("xlsxexport: %w", err)
		}
	}
	return nil
}

// writeListSheet lays out a header row of field labels and one row per item.
func writeListSheet(f *excelize.File, sheet string, group schema.Group, items []any) error {
	for col, field := range group.Fields {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, field.Label); err != nil {
			return fmt.Errorf("xlsxexport: %w", err)
		}
	}
	for row, it := range items {
		item, _ := it.(map[string]any)
		for col, field := range group.Fields {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, cellValue(item[field.Key])); err != nil {
				return fmt.Errorf("xlsxexport: %w", err)
			}
		}
	}
	return nil
}

func listOf(record map[string]any, key string) []any {
	list, _ := record[key].([]any)
	return list
}

func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string, float64, int, bool:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
