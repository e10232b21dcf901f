package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExportServiceForTest(rec *countingRecorder) *ExportService {
	var metrics exportRecorder
	if rec != nil {
		metrics = rec
	}
	svc := NewExportService(nil, metrics, nil)
	svc.now = func() time.Time { return testNow }
	return svc
}

func readCSV(t *testing.T, payload []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportCandidatesCSV(t *testing.T) {
	rec := &countingRecorder{}
	file, err := newExportServiceForTest(rec).Render(seededStore(), ReportCandidates, FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "candidates_20240601.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	rows := readCSV(t, file.Payload)
	require.Len(t, rows, 4)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, []string{"101", "Rahul Sharma", "P1234567", "2024-09-29", "2345678901", "2025-03-28", "Stamped", "Ali Travels", "1500", "Saudi Arabia"}, rows[1])
	assert.Equal(t, "", rows[2][5])
	assert.Equal(t, []string{"candidates/csv"}, rec.exports)
}

func TestExportCommissionsIncludesTotalRow(t *testing.T) {
	file, err := newExportServiceForTest(nil).Render(seededStore(), ReportCommissions, FormatCSV)

	require.NoError(t, err)
	rows := readCSV(t, file.Payload)
	assert.Equal(t, [][]string{
		{"Agent", "Candidates", "Commission"},
		{"Ali Travels", "2", "2700"},
		{"Global Manpower", "1", "2000"},
		{"Total", "", "4700"},
	}, rows)
}

func TestExportAttendanceXLSX(t *testing.T) {
	records := seededStore()
	_, err := records.MarkAttendance(*date(2024, 6, 3), 103, false)
	require.NoError(t, err)

	file, err := newExportServiceForTest(nil).Render(records, ReportAttendance, "XLSX")

	require.NoError(t, err)
	assert.Equal(t, "attendance_20240601.xlsx", file.Filename)
	book, err := excelize.OpenReader(bytes.NewReader(file.Payload))
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows("Attendance Sheet")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-06-03", "103", "Suresh Raina", "Absent"}, rows[1])
}

func TestExportCandidatesPDF(t *testing.T) {
	file, err := newExportServiceForTest(nil).Render(seededStore(), ReportCandidates, FormatPDF)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))
}

func TestExportRejectsUnknownReportOrFormat(t *testing.T) {
	rec := &countingRecorder{}
	svc := newExportServiceForTest(rec)

	_, err := svc.Render(seededStore(), "payslips", FormatCSV)
	assertValidation(t, err)

	_, err = svc.Render(seededStore(), ReportCandidates, "docx")
	assertValidation(t, err)

	assert.Empty(t, rec.exports)
}

func TestExportCSVWithBOM(t *testing.T) {
	svc := newExportServiceForTest(nil).WithCSVBOM()
	file, err := svc.Render(seededStore(), ReportAttendance, FormatCSV)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte{0xEF, 0xBB, 0xBF}))
}
