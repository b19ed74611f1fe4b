package xlsxexport_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"resumehub/internal/schema"
	"resumehub/internal/xlsxexport"
)

func TestExportProducesSheetPerGroup(t *testing.T) {
	reg := schema.NewRegistry()
	w := xlsxexport.NewWriter(reg)

	data, err := w.Export(map[string]any{
		"name":  "张三",
		"email": "zhangsan@example.com",
		"work_experience": []any{
			map[string]any{"company_name": "Acme", "job_position": "Engineer"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Len(t, f.GetSheetList(), 10)

	// Scalar sheet: label in column A, value in column B, registry order.
	name, err := f.GetCellValue("基本信息", "B1")
	require.NoError(t, err)
	assert.Equal(t, "张三", name)

	// List sheet: header row of labels, one row per item.
	header, err := f.GetCellValue("工作经历", "A1")
	require.NoError(t, err)
	assert.Equal(t, "公司名称", header)
	company, err := f.GetCellValue("工作经历", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme", company)
}

func TestExportEmptyRecord(t *testing.T) {
	w := xlsxexport.NewWriter(schema.NewRegistry())

	data, err := w.Export(map[string]any{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
