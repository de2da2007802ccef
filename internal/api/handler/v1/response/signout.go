package response

type TeamCountResponse struct {
	TeamCount int `json:"team_count"`
}
