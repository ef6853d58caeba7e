package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quizbank/internal/entity"
	"quizbank/internal/session"
	"quizbank/internal/templates"
)

// QuizHandler отвечает за авторинг: создание, правку и удаление тестов
// и добавление вопросов. Все операции по id доступны только владельцу теста.
type QuizHandler struct {
	quizzes   QuizStore
	questions QuestionStore
	sessions  *session.Manager
	tmpl      *template.Template
}

func NewQuizHandler(quizzes QuizStore, questions QuestionStore, sessions *session.Manager) *QuizHandler {
	tmpl := template.Must(template.ParseFS(templates.FS,
		"create_quiz.html",
		"edit_quiz.html",
		"add_question.html",
	))

	return &QuizHandler{
		quizzes:   quizzes,
		questions: questions,
		sessions:  sessions,
		tmpl:      tmpl,
	}
}

func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		h.tmpl.ExecuteTemplate(w, "create_quiz.html", nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	difficulty := r.FormValue("difficulty")

	if err := h.quizzes.Create(title, difficulty, identity.UserID); err != nil {
		log.Printf("Ошибка создания теста: %v", err)
		redirectWithError(w, r, "/educator_dashboard", "Could not create quiz.")
		return
	}

	redirectWithMessage(w, r, "/educator_dashboard", "Quiz created successfully!")
}

func (h *QuizHandler) EditQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, ok := h.ownedQuiz(w, r)
	if !ok {
		return
	}

	if r.Method != http.MethodPost {
		h.tmpl.ExecuteTemplate(w, "edit_quiz.html", map[string]interface{}{"Quiz": quiz})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	difficulty := r.FormValue("difficulty")

	if err := h.quizzes.Update(quiz.ID, title, difficulty); err != nil {
		log.Printf("Ошибка обновления теста %d: %v", quiz.ID, err)
		redirectWithError(w, r, "/educator_dashboard", "Could not update quiz.")
		return
	}

	http.Redirect(w, r, "/educator_dashboard", http.StatusSeeOther)
}

// DeleteQuiz удаляет тест. Его вопросы и результаты остаются в базе.
func (h *QuizHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, ok := h.ownedQuiz(w, r)
	if !ok {
		return
	}

	if err := h.quizzes.Delete(quiz.ID); err != nil && !errors.Is(err, entity.ErrNotFound) {
		log.Printf("Ошибка удаления теста %d: %v", quiz.ID, err)
		redirectWithError(w, r, "/educator_dashboard", "Could not delete quiz.")
		return
	}

	http.Redirect(w, r, "/educator_dashboard", http.StatusSeeOther)
}

func (h *QuizHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	quiz, ok := h.ownedQuiz(w, r)
	if !ok {
		return
	}

	if r.Method != http.MethodPost {
		h.tmpl.ExecuteTemplate(w, "add_question.html", map[string]interface{}{"Quiz": quiz})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	questionText := r.FormValue("question_text")
	correctAnswer := r.FormValue("correct_answer")

	if err := h.questions.Create(quiz.ID, questionText, correctAnswer); err != nil {
		log.Printf("Ошибка добавления вопроса к тесту %d: %v", quiz.ID, err)
		redirectWithError(w, r, "/educator_dashboard", "Could not add question.")
		return
	}

	redirectWithMessage(w, r, "/educator_dashboard", "Question and answer added successfully!")
}

// ownedQuiz загружает тест из URL и проверяет, что он принадлежит
// текущему преподавателю. При любой неудаче сама делает redirect.
func (h *QuizHandler) ownedQuiz(w http.ResponseWriter, r *http.Request) (entity.Quiz, bool) {
	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return entity.Quiz{}, false
	}

	quizID, err := strconv.Atoi(chi.URLParam(r, "quizID"))
	if err != nil {
		redirectWithError(w, r, "/educator_dashboard", "Quiz not found.")
		return entity.Quiz{}, false
	}

	quiz, err := h.quizzes.GetByID(quizID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			redirectWithError(w, r, "/educator_dashboard", "Quiz not found.")
			return entity.Quiz{}, false
		}
		log.Printf("Ошибка получения теста %d: %v", quizID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return entity.Quiz{}, false
	}

	if quiz.CreatedBy != identity.UserID {
		redirectWithError(w, r, "/educator_dashboard", "You can only manage your own quizzes.")
		return entity.Quiz{}, false
	}

	return quiz, true
}
