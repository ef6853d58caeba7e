package entity

import "time"

type Question struct {
	ID            int       `json:"id"`
	QuizID        int       `json:"quiz_id"`
	QuestionText  string    `json:"question_text"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}
