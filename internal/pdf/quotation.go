// Package pdf renders a single quotation as a printable PDF document.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/voyantra/quotation-desk/internal/domain"
	"github.com/voyantra/quotation-desk/internal/present"
)

// Generator builds quotation PDFs. It is stateless and safe for concurrent use.
type Generator struct{}

// New constructs a Generator.
func New() *Generator { return &Generator{} }

// Generate renders the quotation as an A4 document and returns the raw PDF
// bytes. Derived fields (party size, money) use the same formatting as the
// card listing so the document and the UI never disagree.
func (g *Generator) Generate(q domain.QuotationWithCustomer) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Travel Quotation", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Travel Quotation")
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, fmt.Sprintf("Quotation %s", q.ID))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Created %s", q.CreatedAt.Format("02 Jan 2006")))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 7, "Customer")
	doc.Ln(7)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, q.CustomerName)
	doc.Ln(6)
	if q.CustomerEmail != nil {
		doc.Cell(0, 6, *q.CustomerEmail)
		doc.Ln(6)
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 7, "Trip")
	doc.Ln(7)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, fmt.Sprintf("Destination: %s", q.Destination))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Dates: %s - %s",
		q.StartDate.Format("02 Jan 2006"), q.EndDate.Format("02 Jan 2006")))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Party: %s", present.PartySize(q.Adults, q.Children)))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Status: %s", q.Status))
	doc.Ln(6)
	if q.Notes != "" {
		doc.MultiCell(0, 6, fmt.Sprintf("Notes: %s", q.Notes), "", "L", false)
	}
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 13)
	doc.Cell(0, 8, fmt.Sprintf("Total: %s", present.Money(q.TotalAmount)))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf.Generator.Generate: %w", err)
	}
	return buf.Bytes(), nil
}
