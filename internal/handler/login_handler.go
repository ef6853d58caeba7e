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

type LoginHandler struct {
	users    UserStore
	sessions *session.Manager
	tmpl     *template.Template
}

func NewLoginHandler(users UserStore, sessions *session.Manager) *LoginHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "login.html"))
	return &LoginHandler{
		users:    users,
		sessions: sessions,
		tmpl:     tmpl,
	}
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":   "Login",
		"Error":   noticeText(r.URL.Query().Get("error")),
		"Message": r.URL.Query().Get("message"),
		"Form": map[string]string{
			"username": r.URL.Query().Get("username"),
		},
	}

	h.tmpl.Execute(w, data)
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.LoginPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	// значения формы не валидируются и не сохраняются при неудаче
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.users.Login(username, password)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			log.Printf("Ошибка входа для пользователя %s: %v", username, err)
		}
		http.Redirect(w, r, "/login?error=invalid_credentials", http.StatusSeeOther)
		return
	}

	if err := h.sessions.SignIn(w, r, user); err != nil {
		log.Printf("Ошибка сохранения сессии для пользователя %d: %v", user.ID, err)
		http.Redirect(w, r, "/login?error=session_error", http.StatusSeeOther)
		return
	}

	switch user.Role {
	case entity.RoleStudent:
		http.Redirect(w, r, "/student_dashboard", http.StatusSeeOther)
	case entity.RoleEducator:
		http.Redirect(w, r, "/educator_dashboard", http.StatusSeeOther)
	default:
		// роль не из справочника - дашборда для нее нет
		http.Redirect(w, r, "/login?error=unknown_role", http.StatusSeeOther)
	}
}

// Logout безусловно очищает сессию и возвращает на страницу входа.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// noticeText переводит коды ошибок из query-строки в текст для страницы.
func noticeText(code string) string {
	switch code {
	case "":
		return ""
	case "invalid_credentials":
		return "Invalid credentials"
	case "session_error":
		return "Could not start a session. Please try again."
	case "unknown_role":
		return "Your account role is not supported."
	default:
		return code
	}
}
