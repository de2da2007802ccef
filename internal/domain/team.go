package domain

// TeamLedgerEntry is one accumulated line of a team's sign-out history.
// Quantities only ever grow; approvals for an already-recorded SKU add
// to the existing entry instead of appending a duplicate.
type TeamLedgerEntry struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// TeamLedger is the cumulative sign-out record for one team.
type TeamLedger struct {
	TeamNumber int               `json:"team_number"`
	Entries    []TeamLedgerEntry `json:"entries"`
}
