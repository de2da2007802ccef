package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

type RequestLine struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

func (l *RequestLine) Validate() error {
	return validation.ValidateStruct(
		l,
		validation.Field(&l.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&l.SKU, validation.Required, validation.Length(1, 50)),
		validation.Field(&l.Quantity, validation.Min(0)),
	)
}

type SubmitSignOutRequest struct {
	Name       string        `json:"name"`
	Date       string        `json:"date"`
	TeamNumber int           `json:"team_number"`
	Parts      []RequestLine `json:"parts"`
}

// Validate enforces what the original form did: name and date
// non-empty, a team selected within [1, teamCount], at least one part
// line, quantities non-negative.
func (req *SubmitSignOutRequest) Validate(teamCount int) error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.TeamNumber, validation.Required, validation.Min(1), validation.Max(teamCount)),
		validation.Field(&req.Parts, validation.Required),
	)
	if err != nil {
		return err
	}

	for i := range req.Parts {
		if err := req.Parts[i].Validate(); err != nil {
			return fmt.Errorf("parts[%d]: %w", i, err)
		}
	}

	return nil
}

type UpdateTeamCountRequest struct {
	TeamCount int `json:"team_count"`
}

func (req *UpdateTeamCountRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TeamCount, validation.Required, validation.Min(1)),
	)
}
