package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/stemsi/acad-service/internal/model"
)

// Format is a transcript export encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ErrUnsupportedFormat is returned by ParseFormat for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	summarySheet = "ringkasan"
	itemsSheet   = "krs"
)

// ParseFormat resolves the ?format= query value. Empty means xlsx.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName returns the attachment name for a student's transcript.
func (f Format) FileName(nim string) string {
	return fmt.Sprintf("transkrip_%s.%s", nim, f)
}

// Render encodes t in format f.
func Render(f Format, t *model.Transcript) ([]byte, error) {
	switch f {
	case FormatXLSX:
		return BuildTranscriptXLSX(t)
	case FormatPDF:
		return BuildTranscriptPDF(t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// BuildTranscriptXLSX renders the transcript as a workbook with a summary
// sheet and one row per KRS item.
func BuildTranscriptXLSX(t *model.Transcript) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}

	summary := [][]interface{}{
		{"Transkrip Akademik"},
		{},
		{"NIM", t.NIM},
		{"Nama", t.Nama},
		{"Jurusan", t.Jurusan},
		{"Angkatan", t.Angkatan},
		{"Total SKS", t.TotalSKS},
		{"Total Bobot", t.TotalBobot},
		{"IPK", t.IPK},
		{},
		{"Semester", "SKS", "Bobot", "IPS"},
	}
	for _, s := range t.Semesters {
		summary = append(summary, []interface{}{s.Semester, s.TotalSKS, s.TotalBobot, s.IPS})
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}

	items := [][]interface{}{{"Semester", "Kode MK", "Nama MK", "SKS", "Nilai", "Bobot"}}
	for _, it := range t.Items {
		items = append(items, []interface{}{it.Semester, it.KodeMK, it.NamaMK, it.SKS, it.Nilai, it.Bobot})
	}
	if err := writeRows(f, itemsSheet, items); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, r+1, err)
		}
	}
	return nil
}

// BuildTranscriptPDF renders the transcript on A4 pages.
func BuildTranscriptPDF(t *model.Transcript) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Transkrip Akademik")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("NIM: %s", t.NIM)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Nama: %s", t.Nama)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Jurusan: %s", t.Jurusan)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Angkatan: %d", t.Angkatan))
	pdf.Ln(8)

	widths := []float64{20, 30, 80, 15, 15, 20}
	header := []string{"Semester", "Kode MK", "Nama MK", "SKS", "Nilai", "Bobot"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, it := range t.Items {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", it.Semester), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(it.KodeMK), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(it.NamaMK), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%d", it.SKS), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, tr(it.Nilai), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.2f", it.Bobot), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	for _, s := range t.Semesters {
		pdf.Cell(0, 6, fmt.Sprintf("IPS semester %d: %.2f (%d SKS)", s.Semester, s.IPS, s.TotalSKS))
		pdf.Ln(5)
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total SKS: %d   Total Bobot: %.2f   IPK: %.2f", t.TotalSKS, t.TotalBobot, t.IPK))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
