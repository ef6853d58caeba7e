package handler

import (
	"net/http"
	"net/url"

	"quizbank/internal/entity"
)

// Интерфейсы хранилищ, которыми пользуются хендлеры.
// Реализуются репозиториями из internal/repository.

type UserStore interface {
	Register(username, password, role, university string) (entity.User, error)
	Login(username, password string) (entity.User, error)
	GetByID(id int) (entity.User, error)
	GetStudents(university string) ([]entity.User, error)
}

type QuizStore interface {
	GetAll() ([]entity.Quiz, error)
	GetByCreator(userID int) ([]entity.Quiz, error)
	GetByID(id int) (entity.Quiz, error)
	Create(title, difficulty string, createdBy int) error
	Update(id int, title, difficulty string) error
	Delete(id int) error
}

type QuestionStore interface {
	GetByQuiz(quizID int) ([]entity.Question, error)
	Create(quizID int, questionText, correctAnswer string) error
	CountByQuiz() (map[int]int, error)
}

type ResultStore interface {
	Create(result entity.QuizResult) error
	LatestScores(userID int) (map[int]int, error)
	ListWithTitles(userID int) ([]entity.ResultRow, error)
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?message="+url.QueryEscape(message), http.StatusSeeOther)
}

func redirectWithError(w http.ResponseWriter, r *http.Request, path, errMessage string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(errMessage), http.StatusSeeOther)
}
