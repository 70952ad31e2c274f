package db_models

import "github.com/google/uuid"

// AdviceLog is an immutable record of one advice exchange. Rows are only
// ever inserted and listed.
type AdviceLog struct {
	BaseModel
	UserID   uuid.UUID
	Prompt   string
	Response string
}
