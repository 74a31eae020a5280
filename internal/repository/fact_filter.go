package repository

// FactFilter narrows a fact-table fetch. Date bounds are inclusive and apply
// to the table's own date column: fuel records filter on transaction_date,
// weight records and tracking segments on date. Either bound may be open.
type FactFilter struct {
	Plate    *string
	DateFrom *string
	DateTo   *string
}
