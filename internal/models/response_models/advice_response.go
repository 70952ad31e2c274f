package response_models

type AdviceResponse struct {
	Advice string `json:"advice"`
}

type AdviceHistoryEntry struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
	CreatedAt int64  `json:"created_at"`
}
