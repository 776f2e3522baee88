package models

import "time"

// QuizDetail is the aggregated read-only projection served by the quiz
// get-one endpoint: the quiz with its sections materialized, each carrying
// its questions. It is assembled per request and never persisted; the
// stored relationship remains the reference lists.
type QuizDetail struct {
	ID           string          `json:"_id"`
	Owner        string          `json:"owner"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Instructions string          `json:"instructions"`
	Sections     []SectionDetail `json:"sections"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type SectionDetail struct {
	ID        string     `json:"_id"`
	QuizID    string     `json:"quizId"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
