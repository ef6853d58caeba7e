package repository

import (
	"database/sql"

	"quizbank/internal/entity"
)

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) GetByQuiz(quizID int) ([]entity.Question, error) {
	rows, err := r.db.Query(`
		SELECT id, quiz_id, question_text, correct_answer
		FROM questions
		WHERE quiz_id = $1
		ORDER BY id
	`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []entity.Question
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.QuestionText, &q.CorrectAnswer); err != nil {
			return questions, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

func (r *QuestionRepository) Create(quizID int, questionText, correctAnswer string) error {
	_, err := r.db.Exec(`
		INSERT INTO questions (quiz_id, question_text, correct_answer)
		VALUES ($1, $2, $3)
	`, quizID, questionText, correctAnswer)

	return err
}

// CountByQuiz возвращает количество вопросов по каждому тесту.
func (r *QuestionRepository) CountByQuiz() (map[int]int, error) {
	rows, err := r.db.Query(`
		SELECT quiz_id, COUNT(*)
		FROM questions
		GROUP BY quiz_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var quizID, count int
		if err := rows.Scan(&quizID, &count); err != nil {
			return counts, err
		}
		counts[quizID] = count
	}

	return counts, rows.Err()
}
