package frame

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCols []string
		wantRows int
	}{
		{
			name:     "BOM stripped from first header",
			content:  "날짜,결제금액\n2024.01.01,1000\n",
			wantCols: []string{"날짜", "결제금액"},
			wantRows: 1,
		},
		{
			name:     "no BOM",
			content:  "date,amount\n2024-01-01,5\n2024-01-02,7\n",
			wantCols: []string{"date", "amount"},
			wantRows: 2,
		},
		{
			name:     "short record padded",
			content:  "a,b,c\n1,2\n",
			wantCols: []string{"a", "b", "c"},
			wantRows: 1,
		},
		{
			name:     "header only",
			content:  "a,b\n",
			wantCols: []string{"a", "b"},
			wantRows: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ReadCSV(writeTempCSV(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCols, f.Columns)
			assert.Len(t, f.Rows, tt.wantRows)
		})
	}
}

func TestReadCSV_PaddedCellIsEmptyString(t *testing.T) {
	f, err := ReadCSV(writeTempCSV(t, "a,b,c\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, "", f.Rows[0].String("c"))
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRowAccessors(t *testing.T) {
	row := Row{"s": "text", "n": 12.5, "absent": nil}

	assert.Equal(t, "text", row.String("s"))
	assert.Equal(t, "", row.String("n"))
	assert.Equal(t, 12.5, row.Float("n"))
	assert.Equal(t, 0.0, row.Float("s"))

	_, ok := row.Date("s")
	assert.False(t, ok)
}

func TestHasColumn(t *testing.T) {
	f := &Frame{Columns: []string{"날짜", "결제금액"}}
	assert.True(t, f.HasColumn("결제금액"))
	assert.False(t, f.HasColumn("환불금액"))
}
