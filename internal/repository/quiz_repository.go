package repository

import (
	"database/sql"
	"errors"

	"quizbank/internal/entity"
)

type QuizRepository struct {
	db *sql.DB
}

func NewQuizRepository(db *sql.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// GetAll возвращает все тесты - студент видит тесты всех университетов.
func (r *QuizRepository) GetAll() ([]entity.Quiz, error) {
	rows, err := r.db.Query(`
		SELECT id, title, difficulty, created_by
		FROM quizzes
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuizzes(rows)
}

// GetByCreator возвращает тесты, созданные указанным преподавателем.
func (r *QuizRepository) GetByCreator(userID int) ([]entity.Quiz, error) {
	rows, err := r.db.Query(`
		SELECT id, title, difficulty, created_by
		FROM quizzes
		WHERE created_by = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuizzes(rows)
}

func (r *QuizRepository) GetByID(id int) (entity.Quiz, error) {
	var q entity.Quiz
	err := r.db.QueryRow(`
		SELECT id, title, difficulty, created_by
		FROM quizzes
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Title, &q.Difficulty, &q.CreatedBy)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Quiz{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.Quiz{}, err
	}

	return q, nil
}

func (r *QuizRepository) Create(title, difficulty string, createdBy int) error {
	_, err := r.db.Exec(`
		INSERT INTO quizzes (title, difficulty, created_by)
		VALUES ($1, $2, $3)
	`, title, difficulty, createdBy)

	return err
}

func (r *QuizRepository) Update(id int, title, difficulty string) error {
	res, err := r.db.Exec(`
		UPDATE quizzes
		SET title = $1, difficulty = $2
		WHERE id = $3
	`, title, difficulty, id)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

// Delete удаляет только сам тест. Вопросы и результаты остаются
// осиротевшими - каскадного удаления нет.
func (r *QuizRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

func scanQuizzes(rows *sql.Rows) ([]entity.Quiz, error) {
	var quizzes []entity.Quiz
	for rows.Next() {
		var q entity.Quiz
		if err := rows.Scan(&q.ID, &q.Title, &q.Difficulty, &q.CreatedBy); err != nil {
			return quizzes, err
		}
		quizzes = append(quizzes, q)
	}

	return quizzes, rows.Err()
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
