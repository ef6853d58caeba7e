package handler

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"quizbank/internal/templates"
)

type RegistrationHandler struct {
	users UserStore
	tmpl  *template.Template
}

func NewRegistrationHandler(users UserStore) *RegistrationHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "register.html"))
	return &RegistrationHandler{
		users: users,
		tmpl:  tmpl,
	}
}

func (h *RegistrationHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title": "Register",
		"Error": "",
		"Form":  map[string]string{},
	}

	h.tmpl.Execute(w, data)
}

// Register создает пользователя. Роль принимается как есть из формы,
// дубликаты имен не отклоняются.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.RegisterPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	university := r.FormValue("university")
	userType := r.FormValue("user_type")

	if _, err := h.users.Register(username, password, userType, university); err != nil {
		log.Printf("Ошибка регистрации пользователя %s: %v", username, err)
		data := map[string]interface{}{
			"Title": "Register",
			"Error": "Registration failed. Please try again.",
			"Form": map[string]string{
				"username":   username,
				"university": university,
			},
		}
		h.tmpl.Execute(w, data)
		return
	}

	redirectWithMessage(w, r, "/login",
		fmt.Sprintf("Registered successfully as %s. Please log in.", userType))
}
