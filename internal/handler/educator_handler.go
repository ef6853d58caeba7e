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

type EducatorHandler struct {
	users    UserStore
	quizzes  QuizStore
	sessions *session.Manager
	tmpl     *template.Template
}

func NewEducatorHandler(users UserStore, quizzes QuizStore, sessions *session.Manager) *EducatorHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "educator_dashboard.html"))
	return &EducatorHandler{
		users:    users,
		quizzes:  quizzes,
		sessions: sessions,
		tmpl:     tmpl,
	}
}

// Dashboard показывает преподавателю его тесты и студентов его
// университета (название сравнивается как есть, без нормализации).
func (h *EducatorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
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

	quizzes, err := h.quizzes.GetByCreator(user.ID)
	if err != nil {
		log.Printf("Ошибка получения тестов преподавателя %d: %v", user.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	students, err := h.users.GetStudents(user.University)
	if err != nil {
		log.Printf("Ошибка получения студентов университета %q: %v", user.University, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"User":     user,
		"Quizzes":  quizzes,
		"Students": students,
		"Error":    r.URL.Query().Get("error"),
		"Message":  r.URL.Query().Get("message"),
	}

	h.tmpl.Execute(w, data)
}
