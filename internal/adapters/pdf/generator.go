// Package pdf renders the roster as a printable table: a dark title bar,
// a column header row repeated on every page, and one row per employee in
// store order.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/employee-roster/internal/domain"
)

type column struct {
	title string
	width float64 // fraction of the content width
	value func(e *domain.Employee) string
}

var columns = []column{
	{"Name", 0.20, func(e *domain.Employee) string { return e.Name }},
	{"Date of Birth", 0.12, func(e *domain.Employee) string { return formatDOB(e.DateOfBirth) }},
	{"Gender", 0.09, func(e *domain.Employee) string { return string(e.Gender) }},
	{"Email", 0.26, func(e *domain.Employee) string { return e.Email }},
	{"Address", 0.33, func(e *domain.Employee) string { return e.Address }},
}

const rowH = 7.0

// GenerateRoster writes a landscape PDF listing employees to w.
func GenerateRoster(employees []domain.Employee, generatedAt time.Time, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AliasNbPages("{nb}")
	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	marginL, _, marginR, marginB := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	newPage := func() {
		pdf.AddPage()
		drawTitle(pdf, contentW, len(employees), generatedAt)
		drawHeader(pdf, contentW)
	}

	newPage()
	if len(employees) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, rowH, "No employees on the roster.", "1", 1, "C", false, 0, "")
		return pdf.Output(w)
	}

	pdf.SetFont("Helvetica", "", 9)
	for i := range employees {
		if pdf.GetY()+rowH > pageH-marginB {
			newPage()
			pdf.SetFont("Helvetica", "", 9)
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		for _, c := range columns {
			pdf.CellFormat(contentW*c.width, rowH, tr(c.value(&employees[i])), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func drawTitle(pdf *fpdf.Fpdf, contentW float64, count int, generatedAt time.Time) {
	marginL, marginT, _, _ := pdf.GetMargins()

	// ── Title bar ────────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW/2, 7, "EMPLOYEE ROSTER", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2-4, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetXY(marginL, marginT+12)
	pdf.SetFont("Helvetica", "", 8.5)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d employee(s), generated %s",
		count, generatedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func drawHeader(pdf *fpdf.Fpdf, contentW float64) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8.5)
	for _, c := range columns {
		pdf.CellFormat(contentW*c.width, rowH, c.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

// formatDOB mirrors the on-screen DD/MM/YYYY display.
func formatDOB(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
