package entity

import "time"

// QuizResult - одна попытка прохождения теста. Повторные отправки
// создают новые строки, старые не перезаписываются.
type QuizResult struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	QuizID         int       `json:"quiz_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewQuizResult(userID, quizID, score, totalQuestions int) QuizResult {
	return QuizResult{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: totalQuestions,
	}
}

// ResultRow - строка для страницы результатов: попытка вместе с названием теста.
type ResultRow struct {
	QuizID         int    `json:"quiz_id"`
	Title          string `json:"title"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}
