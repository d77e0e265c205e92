package response_models

type ProgramResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	TargetAmount    int64    `json:"target_amount"`
	CollectedAmount int64    `json:"collected_amount"`
	IsActive        bool     `json:"is_active"`
}
