package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildCurationReportXLSX(t *testing.T) {
	data, err := BuildCurationReportXLSX(CurationReport{
		JobID:          "8e7a7a39-4e6f-4d2e-8f0a-1c2d3e4f5a6b",
		ProjectID:      "wildlife",
		RawDataURI:     "s3://datasets/wildlife/raw",
		CuratedDataURI: "s3://datasets/wildlife/raw-curated",
		AcceptedCount:  1,
		Decisions: []Decision{
			{ImageID: "id-1", ImageURI: "s3://datasets/wildlife/raw/a.jpg", Accepted: true},
			{ImageID: "id-2", ImageURI: "s3://datasets/wildlife/raw/b.jpg", Accepted: false},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Curation")
	require.NoError(t, err)

	// Summary block, blank spacer, header, two decisions.
	require.GreaterOrEqual(t, len(rows), 11)
	require.Equal(t, "Job ID", rows[0][0])
	require.Equal(t, "wildlife", rows[1][1])

	last := rows[len(rows)-1]
	require.Equal(t, "id-2", last[0])
	require.Equal(t, "REJECTED", last[2])
	require.Equal(t, "ACCEPTED", rows[len(rows)-2][2])
}

func TestBuildCurationReportXLSXEmptyDecisions(t *testing.T) {
	data, err := BuildCurationReportXLSX(CurationReport{JobID: "x", ProjectID: "p"})
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
