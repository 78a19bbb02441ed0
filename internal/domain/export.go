package domain

// ExportRow is a single row in the flat quotation export: one row per
// quotation with the owning customer's fields repeated inline.
//
// Dates are pre-formatted as "2006-01-02" strings and the empty string
// stands in for absent optional values, so both the CSV and JSON encoders
// can consume rows without further conversion.
type ExportRow struct {
	QuotationID   string
	CustomerName  string
	CustomerEmail string
	Destination   string
	StartDate     string
	EndDate       string
	Adults        int
	Children      int
	Status        string
	TotalAmount   float64
	CreatedAt     string // RFC 3339
}
