package domain

// RequestedPart is one line item of a sign-out request. Name is a
// snapshot taken at request time and is not re-resolved against the
// inventory afterwards.
type RequestedPart struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// SignOutRequest is a requester's proposal to withdraw parts. It sits
// in the pending queue until an admin approves or deletes it; both are
// terminal. ID is an opaque generated identifier.
type SignOutRequest struct {
	ID            string          `json:"id"`
	RequesterName string          `json:"requester_name"`
	Date          string          `json:"date"`
	TeamNumber    int             `json:"team_number"`
	Parts         []RequestedPart `json:"parts"`
}

// PendingRequest is a queued request annotated with a live availability
// check against current stock, as shown on the admin dashboard.
type PendingRequest struct {
	SignOutRequest
	Available bool `json:"available"`
}
