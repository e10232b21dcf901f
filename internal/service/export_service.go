package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/models"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
	"github.com/noah-isme/manpower-erp-api/pkg/export"
)

// Report names an exportable dataset.
type Report string

const (
	ReportCandidates  Report = "candidates"
	ReportCommissions Report = "commissions"
	ReportAttendance  Report = "attendance"
)

// Format names an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

var contentTypes = map[Format]string{
	FormatCSV:  "text/csv",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type renderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type exportRecorder interface {
	RecordExport(report, format string)
}

// ExportFile is a rendered export ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders session data as downloadable files.
type ExportService struct {
	renderers  map[Format]renderer
	commission *CommissionService
	metrics    exportRecorder
	logger     *zap.Logger
	now        func() time.Time
}

// NewExportService constructs an ExportService with CSV, PDF and XLSX renderers.
func NewExportService(commission *CommissionService, metrics exportRecorder, logger *zap.Logger) *ExportService {
	if commission == nil {
		commission = NewCommissionService()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		renderers: map[Format]renderer{
			FormatCSV:  export.NewCSVExporter(),
			FormatPDF:  export.NewPDFExporter(),
			FormatXLSX: export.NewXLSXExporter(),
		},
		commission: commission,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// WithCSVBOM makes CSV downloads start with a UTF-8 byte order mark.
func (s *ExportService) WithCSVBOM() *ExportService {
	s.renderers[FormatCSV] = export.NewCSVExporter(export.WithBOM())
	return s
}

// Render builds the dataset for report and encodes it as format.
func (s *ExportService) Render(records RecordReader, report Report, format Format) (*ExportFile, error) {
	format = Format(strings.ToLower(string(format)))
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Validationf("unsupported export format %q", format)
	}
	dataset, title, err := s.buildDataset(records, report)
	if err != nil {
		return nil, err
	}
	payload, err := r.Render(dataset, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	if s.metrics != nil {
		s.metrics.RecordExport(string(report), string(format))
	}
	filename := fmt.Sprintf("%s_%s.%s", report, s.now().UTC().Format("20060102"), format)
	s.logger.Info("export rendered", zap.String("report", string(report)), zap.String("format", string(format)), zap.Int("bytes", len(payload)))
	return &ExportFile{Filename: filename, ContentType: contentTypes[format], Payload: payload}, nil
}

func (s *ExportService) buildDataset(records RecordReader, report Report) (export.Dataset, string, error) {
	switch report {
	case ReportCandidates:
		return candidateDataset(records.ListCandidates()), "Candidate Roster", nil
	case ReportCommissions:
		return s.commissionDataset(records), "Agent Commissions", nil
	case ReportAttendance:
		return attendanceDataset(records.ListAttendance()), "Attendance Sheet", nil
	default:
		return export.Dataset{}, "", appErrors.Validationf("unknown report %q", report)
	}
}

func candidateDataset(candidates []models.Candidate) export.Dataset {
	headers := []string{"ID", "Name", "Passport", "Passport Expiry", "Iqama", "Iqama Expiry", "Visa Status", "Agent", "Commission", "Country"}
	rows := make([]map[string]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, map[string]string{
			"ID":              strconv.Itoa(c.ID),
			"Name":            c.Name,
			"Passport":        c.PassportNumber,
			"Passport Expiry": formatOptionalDate(c.PassportExpiry),
			"Iqama":           c.IqamaNumber,
			"Iqama Expiry":    formatOptionalDate(c.IqamaExpiry),
			"Visa Status":     string(c.VisaStatus),
			"Agent":           c.AgentName,
			"Commission":      strconv.FormatInt(c.AgentCommission, 10),
			"Country":         c.Country,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func (s *ExportService) commissionDataset(records RecordReader) export.Dataset {
	rollup := s.commission.Rollup(records)
	data := export.Dataset{Headers: []string{"Agent", "Candidates", "Commission"}}
	for _, a := range rollup.Agents {
		data.Append(a.Agent, strconv.Itoa(a.Candidates), strconv.FormatInt(a.Total, 10))
	}
	data.Append("Total", "", strconv.FormatInt(rollup.GrandTotal, 10))
	return data
}

func attendanceDataset(records []models.AttendanceRecord) export.Dataset {
	data := export.Dataset{Headers: []string{"Date", "Candidate ID", "Name", "Status"}}
	for _, r := range records {
		data.Append(r.Date.Format(dateLayout), strconv.Itoa(r.CandidateID), r.Name, string(r.Status))
	}
	return data
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
