package request_models

type CreateProgramRequest struct {
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug" binding:"required"`
	Description  string   `json:"description"`
	Categories   []string `json:"categories"`
	TargetAmount int64    `json:"target_amount"`
}
