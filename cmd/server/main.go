package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"quizbank/internal/config"
	"quizbank/internal/database"
	"quizbank/internal/entity"
	"quizbank/internal/handler"
	middleware "quizbank/internal/midlleware"
	"quizbank/internal/repository"
	"quizbank/internal/session"
)

func main() {
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}
	defer db.Close()

	sessions := session.NewManager([]byte(cfg.SessionSecret))

	userRepo := repository.NewUserRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	resultRepo := repository.NewResultRepository(db)

	loginHandler := handler.NewLoginHandler(userRepo, sessions)
	registrationHandler := handler.NewRegistrationHandler(userRepo)
	studentHandler := handler.NewStudentHandler(userRepo, quizRepo, questionRepo, resultRepo, sessions)
	educatorHandler := handler.NewEducatorHandler(userRepo, quizRepo, sessions)
	quizHandler := handler.NewQuizHandler(quizRepo, questionRepo, sessions)
	takeQuizHandler := handler.NewTakeQuizHandler(quizRepo, questionRepo, resultRepo, sessions)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// публичные страницы
	r.Get("/", loginHandler.LoginPage)
	r.Get("/login", loginHandler.LoginPage)
	r.Post("/login", loginHandler.Login)
	r.Get("/register", registrationHandler.RegisterPage)
	r.Post("/register", registrationHandler.Register)
	r.Get("/logout", loginHandler.Logout)

	// страницы студента
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(sessions, []string{entity.RoleStudent}))
		r.Get("/student_dashboard", studentHandler.Dashboard)
		r.Get("/quiz_results", studentHandler.Results)
	})

	// авторинг тестов
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRoles(sessions, []string{entity.RoleEducator}))
		r.Get("/educator_dashboard", educatorHandler.Dashboard)
		r.Get("/create_quiz", quizHandler.CreateQuiz)
		r.Post("/create_quiz", quizHandler.CreateQuiz)
		r.Get("/edit_quiz/{quizID}", quizHandler.EditQuiz)
		r.Post("/edit_quiz/{quizID}", quizHandler.EditQuiz)
		r.Get("/delete_quiz/{quizID}", quizHandler.DeleteQuiz)
		r.Get("/add_question/{quizID}", quizHandler.AddQuestion)
		r.Post("/add_question/{quizID}", quizHandler.AddQuestion)
	})

	// прохождение теста доступно любому вошедшему пользователю
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))
		r.Get("/take_quiz/{quizID}", takeQuizHandler.TakeQuiz)
		r.Post("/take_quiz/{quizID}", takeQuizHandler.TakeQuiz)
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Сервер запущен на %s", cfg.HTTPAddr)
	log.Fatal(server.ListenAndServe())
}
