package reports

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

func sampleReport() Report {
	entities := []models.Entity{
		{Name: "Kannur DP", Type: models.TypeDistrictPanchayat, District: "Kannur", Division: "Thalassery Division"},
	}
	return BuildEntityReport("Division List", models.TypeDistrictPanchayat, entities, reportTime)
}

func TestRenderProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(sampleReport(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output must start with the PDF magic")
}

func TestSaveWritesFallbackFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(sampleReport(), filepath.Join(dir, "reports"), "Division_List.pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
