package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSaveXLSX(t *testing.T) {
	attempts, cat := fixture()
	d := Build("ada", attempts, cat, time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC))

	dir := t.TempDir()
	path, err := SaveXLSX(dir, d)
	require.NoError(t, err)
	assert.Contains(t, path, "report_ada_20260314_0905.xlsx")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Overview", "Topics"}, f.GetSheetList())

	user, err := f.GetCellValue("Overview", "B1")
	require.NoError(t, err)
	assert.Equal(t, "ada", user)

	total, err := f.GetCellValue("Overview", "B4")
	require.NoError(t, err)
	assert.Equal(t, "4", total)

	topic, err := f.GetCellValue("Topics", "A2")
	require.NoError(t, err)
	assert.Equal(t, "algebra", topic)
}

func TestSaveXLSX_NoTopics(t *testing.T) {
	d := Build("ada", nil, nil, time.Unix(1_700_000_000, 0))
	// No attempts, no topic rows: only the Overview sheet is written.
	path, err := SaveXLSX(t.TempDir(), d)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Overview"}, f.GetSheetList())
}
