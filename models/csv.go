package models

// CSV column headers, in export order. The first five are required on import;
// Link is optional and treated as empty when the column is absent.
var (
	CSVRequiredHeaders = []string{"Date", "Product Type", "Change Type", "Designation", "Analyst"}
	CSVLinkHeader      = "Link"
)

// ImportSummary is the batch summary returned by a CSV import: how many rows
// were persisted and which rows failed, by row number.
type ImportSummary struct {
	BatchID  string   `json:"batch_id"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}
