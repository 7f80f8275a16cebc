// Package export renders downloadable artifacts: the employee profile
// PDF and the printable QR code that links to the feedback page.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"staffly-backend/internal/models"
	"staffly-backend/internal/rating"

	"github.com/go-pdf/fpdf"
)

// ProfilePDF lays out an employee profile document: identity block,
// address block, the aggregated rating, then every feedback entry with
// its submission time.
func ProfilePDF(emp *models.Employee, feedback []models.Feedback, summary rating.Summary) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(emp.FullName()+" - Employee Profile", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, emp.FullName(), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, value, "", "L", false)
	}

	row("Email", emp.Email)
	row("Phone", emp.PhoneNumber)
	row("Address", addressLine(emp))
	if emp.PhotoURL != "" {
		row("Photo", emp.PhotoURL)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("Average rating: %s (%d reviews)", summary.DisplayAverage(), summary.Count), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, fb := range feedback {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s - rated %d/5", fb.CreatedAt.Format("Jan 2, 2006 3:04 PM"), fb.Rating), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, fb.Text, "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func addressLine(emp *models.Employee) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{emp.Street, emp.Town, emp.City, emp.Postcode, emp.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
