package handler

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quizbank/internal/entity"
	"quizbank/internal/grading"
	"quizbank/internal/session"
	"quizbank/internal/templates"
)

type TakeQuizHandler struct {
	quizzes   QuizStore
	questions QuestionStore
	results   ResultStore
	sessions  *session.Manager
	tmpl      *template.Template
}

func NewTakeQuizHandler(quizzes QuizStore, questions QuestionStore, results ResultStore, sessions *session.Manager) *TakeQuizHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "take_quiz.html"))
	return &TakeQuizHandler{
		quizzes:   quizzes,
		questions: questions,
		results:   results,
		sessions:  sessions,
		tmpl:      tmpl,
	}
}

// TakeQuiz: GET показывает вопросы теста, POST проверяет ответы,
// сохраняет попытку и уводит на страницу результатов.
func (h *TakeQuizHandler) TakeQuiz(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.sessions.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	quizID, err := strconv.Atoi(chi.URLParam(r, "quizID"))
	if err != nil {
		redirectWithError(w, r, "/student_dashboard", "Quiz not found.")
		return
	}

	quiz, err := h.quizzes.GetByID(quizID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			redirectWithError(w, r, "/student_dashboard", "Quiz not found.")
			return
		}
		log.Printf("Ошибка получения теста %d: %v", quizID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	questions, err := h.questions.GetByQuiz(quiz.ID)
	if err != nil {
		log.Printf("Ошибка получения вопросов теста %d: %v", quiz.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if r.Method != http.MethodPost {
		data := map[string]interface{}{
			"Quiz":      quiz,
			"Questions": questions,
		}
		h.tmpl.Execute(w, data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	// Собираем только реально присланные поля answer_<id>:
	// пропущенный вопрос не дает балла, но входит в total.
	answers := make(map[int]string)
	for _, question := range questions {
		field := "answer_" + strconv.Itoa(question.ID)
		if values, ok := r.PostForm[field]; ok && len(values) > 0 {
			answers[question.ID] = values[0]
		}
	}

	score, total := grading.Score(questions, answers)

	result := entity.NewQuizResult(identity.UserID, quiz.ID, score, total)
	if err := h.results.Create(result); err != nil {
		log.Printf("Ошибка сохранения результата теста %d для пользователя %d: %v",
			quiz.ID, identity.UserID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	redirectWithMessage(w, r, "/quiz_results",
		fmt.Sprintf("Quiz submitted successfully! Your score: %d/%d", score, total))
}
