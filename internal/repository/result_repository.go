package repository

import (
	"database/sql"

	"quizbank/internal/entity"
)

type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create сохраняет попытку прохождения теста.
func (r *ResultRepository) Create(result entity.QuizResult) error {
	_, err := r.db.Exec(`
		INSERT INTO quiz_results (user_id, quiz_id, score, total_questions)
		VALUES ($1, $2, $3, $4)
	`, result.UserID, result.QuizID, result.Score, result.TotalQuestions)

	return err
}

// LatestScores возвращает балл последней попытки по каждому тесту.
// Строки читаются по возрастанию id, поэтому более поздняя попытка
// перекрывает предыдущие.
func (r *ResultRepository) LatestScores(userID int) (map[int]int, error) {
	rows, err := r.db.Query(`
		SELECT quiz_id, score
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[int]int)
	for rows.Next() {
		var quizID, score int
		if err := rows.Scan(&quizID, &score); err != nil {
			return scores, err
		}
		scores[quizID] = score
	}

	return scores, rows.Err()
}

// ListWithTitles возвращает все попытки пользователя с названиями тестов,
// по одной строке на попытку.
func (r *ResultRepository) ListWithTitles(userID int) ([]entity.ResultRow, error) {
	rows, err := r.db.Query(`
		SELECT qr.quiz_id, q.title, qr.score, qr.total_questions
		FROM quiz_results qr
		JOIN quizzes q ON qr.quiz_id = q.id
		WHERE qr.user_id = $1
		ORDER BY qr.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []entity.ResultRow
	for rows.Next() {
		var row entity.ResultRow
		if err := rows.Scan(&row.QuizID, &row.Title, &row.Score, &row.TotalQuestions); err != nil {
			return results, err
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
