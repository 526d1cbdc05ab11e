package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	data, err := BuildWorkbook("properties", []string{"id", "title", "price"}, [][]any{
		{int64(1), "Sea view flat", 12000000.0},
		{int64(2), "Farm plot", 450000.0},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("properties")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "title", "price"}, rows[0])
	assert.Equal(t, "Sea view flat", rows[1][1])
	assert.Equal(t, "2", rows[2][0])
}

func TestBuildWorkbookRejectsRaggedRows(t *testing.T) {
	_, err := BuildWorkbook("x", []string{"a", "b"}, [][]any{{1}})
	assert.Error(t, err)
}
