package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"quizbank/internal/entity"
	"quizbank/internal/session"
	"quizbank/internal/templates"
)

type StudentHandler struct {
	users     UserStore
	quizzes   QuizStore
	questions QuestionStore
	results   ResultStore
	sessions  *session.Manager
	tmpl      *template.Template
}

func NewStudentHandler(users UserStore, quizzes QuizStore, questions QuestionStore, results ResultStore, sessions *session.Manager) *StudentHandler {
	funcMap := template.FuncMap{
		// у index по отсутствующему ключу не отличить "нет попыток" от нуля баллов
		"hasScore": func(scores map[int]int, quizID int) bool {
			_, ok := scores[quizID]
			return ok
		},
	}

	tmpl := template.Must(template.New("").
		Funcs(funcMap).
		ParseFS(templates.FS, "student_dashboard.html", "quiz_results.html"))

	return &StudentHandler{
		users:     users,
		quizzes:   quizzes,
		questions: questions,
		results:   results,
		sessions:  sessions,
		tmpl:      tmpl,
	}
}

// Dashboard показывает студенту все тесты, балл последней попытки
// и количество вопросов по каждому тесту.
func (h *StudentHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.users.GetByID(identity.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			redirectWithError(w, r, "/login", "User not found. Please log in again.")
			return
		}
		log.Printf("Ошибка получения пользователя %d: %v", identity.UserID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	quizzes, err := h.quizzes.GetAll()
	if err != nil {
		log.Printf("Ошибка получения тестов: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	scores, err := h.results.LatestScores(user.ID)
	if err != nil {
		log.Printf("Ошибка получения результатов пользователя %d: %v", user.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	counts, err := h.questions.CountByQuiz()
	if err != nil {
		log.Printf("Ошибка подсчета вопросов: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"User":          user,
		"Quizzes":       quizzes,
		"QuizScores":    scores,
		"QuizQuestions": counts,
		"Error":         r.URL.Query().Get("error"),
		"Message":       r.URL.Query().Get("message"),
	}

	h.tmpl.ExecuteTemplate(w, "student_dashboard.html", data)
}

// Results показывает все попытки студента, по строке на каждую.
func (h *StudentHandler) Results(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.users.GetByID(identity.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			redirectWithError(w, r, "/login", "User not found. Please log in again.")
			return
		}
		log.Printf("Ошибка получения пользователя %d: %v", identity.UserID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	results, err := h.results.ListWithTitles(user.ID)
	if err != nil {
		log.Printf("Ошибка получения результатов пользователя %d: %v", user.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"User":    user,
		"Results": results,
		"Message": r.URL.Query().Get("message"),
	}

	h.tmpl.ExecuteTemplate(w, "quiz_results.html", data)
}
