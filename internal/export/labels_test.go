package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mariosromano/ribmaker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectRibLabels(t *testing.T) {
	p := dxfParams()
	profiles := []model.RibProfile{
		{Index: 0, Height: 96, Thickness: 0.75},
		{Index: 1, Height: 96, Thickness: 0.75, CeilingRun: 48},
	}

	labels := CollectRibLabels(profiles, p)
	require.Len(t, labels, 2)

	assert.Equal(t, 0, labels[0].RibIndex)
	assert.Equal(t, 96.0, labels[0].Height)
	assert.Equal(t, 2.0, labels[0].MinDepth)
	assert.Equal(t, 6.0, labels[0].MaxDepth)
	assert.Equal(t, 0.0, labels[0].CeilingRun)
	assert.Equal(t, 48.0, labels[1].CeilingRun)
}

func TestExportLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	err := ExportLabels(path, singleRib(), dxfParams())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportLabelsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	err := ExportLabels(path, nil, dxfParams())
	assert.Error(t, err)
}

func TestExportLabelsMultiplePages(t *testing.T) {
	p := dxfParams()
	profiles := make([]model.RibProfile, 35)
	for i := range profiles {
		profiles[i] = model.RibProfile{Index: i, Height: 96, Thickness: 0.75}
	}

	path := filepath.Join(t.TempDir(), "labels.pdf")
	err := ExportLabels(path, profiles, p)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
