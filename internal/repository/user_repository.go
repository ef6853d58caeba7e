package repository

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"quizbank/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Register сохраняет нового пользователя. Пароль хранится только как bcrypt-хеш.
// Уникальность username намеренно не проверяется (см. миграции).
func (r *UserRepository) Register(username, password, role, university string) (entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		Username:   username,
		Role:       role,
		University: university,
	}

	err = r.db.QueryRow(`
		INSERT INTO users (username, password, role, university)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, username, string(hash), role, university).Scan(&user.ID)
	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}

// Login ищет пользователя по имени и паролю. Если имя неуникально,
// побеждает строка с наименьшим id, чей хеш совпал.
func (r *UserRepository) Login(username, password string) (entity.User, error) {
	rows, err := r.db.Query(`
		SELECT id, username, password, role, university
		FROM users
		WHERE username = $1
		ORDER BY id
	`, username)
	if err != nil {
		return entity.User{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.University); err != nil {
			return entity.User{}, err
		}

		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
			return u, nil
		}
	}

	if err := rows.Err(); err != nil {
		return entity.User{}, err
	}

	return entity.User{}, entity.ErrNotFound
}

func (r *UserRepository) GetByID(id int) (entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(`
		SELECT id, username, role, university
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Role, &u.University)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, entity.ErrNotFound
	}
	if err != nil {
		return entity.User{}, err
	}

	return u, nil
}

// GetStudents возвращает студентов указанного университета (точное совпадение строки).
func (r *UserRepository) GetStudents(university string) ([]entity.User, error) {
	rows, err := r.db.Query(`
		SELECT id, username, role, university
		FROM users
		WHERE role = $1 AND university = $2
		ORDER BY id
	`, entity.RoleStudent, university)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.University); err != nil {
			return students, err
		}
		students = append(students, u)
	}

	return students, rows.Err()
}
