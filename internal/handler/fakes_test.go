package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quizbank/internal/entity"
	"quizbank/internal/session"
)

// Фейковые хранилища в памяти, реализующие интерфейсы из пакета handler.

type fakeUserStore struct {
	users []entity.User
}

func (s *fakeUserStore) Register(username, password, role, university string) (entity.User, error) {
	user := entity.User{
		ID:         len(s.users) + 1,
		Username:   username,
		Password:   password,
		Role:       role,
		University: university,
	}
	s.users = append(s.users, user)
	return user, nil
}

// Login сравнивает пароли как есть: хеширование - забота настоящего репозитория.
func (s *fakeUserStore) Login(username, password string) (entity.User, error) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return entity.User{}, entity.ErrNotFound
}

func (s *fakeUserStore) GetByID(id int) (entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, entity.ErrNotFound
}

func (s *fakeUserStore) GetStudents(university string) ([]entity.User, error) {
	var students []entity.User
	for _, u := range s.users {
		if u.Role == entity.RoleStudent && u.University == university {
			students = append(students, u)
		}
	}
	return students, nil
}

type fakeQuizStore struct {
	quizzes []entity.Quiz
	nextID  int
}

func (s *fakeQuizStore) GetAll() ([]entity.Quiz, error) {
	return append([]entity.Quiz(nil), s.quizzes...), nil
}

func (s *fakeQuizStore) GetByCreator(userID int) ([]entity.Quiz, error) {
	var out []entity.Quiz
	for _, q := range s.quizzes {
		if q.CreatedBy == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeQuizStore) GetByID(id int) (entity.Quiz, error) {
	for _, q := range s.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return entity.Quiz{}, entity.ErrNotFound
}

func (s *fakeQuizStore) Create(title, difficulty string, createdBy int) error {
	s.nextID++
	s.quizzes = append(s.quizzes, entity.Quiz{
		ID:         s.nextID,
		Title:      title,
		Difficulty: difficulty,
		CreatedBy:  createdBy,
	})
	return nil
}

func (s *fakeQuizStore) Update(id int, title, difficulty string) error {
	for i, q := range s.quizzes {
		if q.ID == id {
			s.quizzes[i].Title = title
			s.quizzes[i].Difficulty = difficulty
			return nil
		}
	}
	return entity.ErrNotFound
}

func (s *fakeQuizStore) Delete(id int) error {
	for i, q := range s.quizzes {
		if q.ID == id {
			s.quizzes = append(s.quizzes[:i], s.quizzes[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

type fakeQuestionStore struct {
	questions []entity.Question
}

func (s *fakeQuestionStore) GetByQuiz(quizID int) ([]entity.Question, error) {
	var out []entity.Question
	for _, q := range s.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeQuestionStore) Create(quizID int, questionText, correctAnswer string) error {
	s.questions = append(s.questions, entity.Question{
		ID:            len(s.questions) + 1,
		QuizID:        quizID,
		QuestionText:  questionText,
		CorrectAnswer: correctAnswer,
	})
	return nil
}

func (s *fakeQuestionStore) CountByQuiz() (map[int]int, error) {
	counts := make(map[int]int)
	for _, q := range s.questions {
		counts[q.QuizID]++
	}
	return counts, nil
}

type fakeResultStore struct {
	results []entity.QuizResult
}

func (s *fakeResultStore) Create(result entity.QuizResult) error {
	result.ID = len(s.results) + 1
	s.results = append(s.results, result)
	return nil
}

func (s *fakeResultStore) LatestScores(userID int) (map[int]int, error) {
	scores := make(map[int]int)
	for _, res := range s.results {
		if res.UserID == userID {
			scores[res.QuizID] = res.Score
		}
	}
	return scores, nil
}

func (s *fakeResultStore) ListWithTitles(userID int) ([]entity.ResultRow, error) {
	var rows []entity.ResultRow
	for _, res := range s.results {
		if res.UserID == userID {
			rows = append(rows, entity.ResultRow{
				QuizID:         res.QuizID,
				Title:          "quiz",
				Score:          res.Score,
				TotalQuestions: res.TotalQuestions,
			})
		}
	}
	return rows, nil
}

// signedInRequest собирает запрос с сессионной cookie уже вошедшего пользователя.
func signedInRequest(t *testing.T, sessions *session.Manager, user entity.User, method, target string, form url.Values) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := sessions.SignIn(rec, httptest.NewRequest(http.MethodGet, "/", nil), user); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	return req
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, wantLocation string) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != wantLocation {
		t.Fatalf("Location = %q, want %q", got, wantLocation)
	}
}
