package session

import (
	"log"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"quizbank/internal/entity"
)

const sessionName = "app-session"

// Identity - данные авторизованного пользователя из сессионной cookie.
type Identity struct {
	UserID   int
	Username string
	Role     string
}

// Manager подписывает и читает сессионные cookie. Секрет передается
// при старте, а не лежит в глобальной переменной.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret []byte) *Manager {
	if len(secret) == 0 {
		// Без заданного секрета сессии живут до перезапуска процесса
		log.Println("SESSION_SECRET не задан, используется случайный ключ")
		secret = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store}
}

// Current возвращает личность из сессии, если пользователь вошел.
func (m *Manager) Current(r *http.Request) (Identity, bool) {
	session, _ := m.store.Get(r, sessionName)

	userID, ok := session.Values["user_id"].(int)
	if !ok || userID == 0 {
		return Identity{}, false
	}

	username, _ := session.Values["username"].(string)
	role, _ := session.Values["role"].(string)

	return Identity{UserID: userID, Username: username, Role: role}, true
}

// SignIn заполняет сессию данными пользователя после успешного входа.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, user entity.User) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username
	session.Values["role"] = user.Role

	return session.Save(r, w)
}

// SignOut безусловно очищает сессию.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) {
	session, _ := m.store.Get(r, sessionName)
	for key := range session.Values {
		delete(session.Values, key)
	}
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		log.Printf("Ошибка очистки сессии: %v", err)
	}
}
