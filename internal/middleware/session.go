package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"NotesApp/internal/client/notify"
)

const (
	SessionCookieName = "notes_session"
	sessionTTL        = 30 * 24 * time.Hour
)

// sessionClaims — подписанный идентификатор браузерной сессии.
// Это не аутентификация: сессия нужна только чтобы показывать уведомления
// тому браузеру, в котором произошла ошибка.
type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// BuildSessionToken подписывает идентификатор сессии.
func BuildSessionToken(sessionID, secret string) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
		SessionID: sessionID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken проверяет подпись и возвращает идентификатор сессии.
func ParseSessionToken(tokenString, secret string) (string, bool) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", false
	}
	return claims.SessionID, true
}

// SetSessionCookie выдаёт новую сессию и записывает cookie.
func SetSessionCookie(w http.ResponseWriter, secret string) (string, error) {
	sid := uuid.NewString()
	token, err := BuildSessionToken(sid, secret)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
	return sid, nil
}

// WithSession кладёт идентификатор сессии в контекст запроса,
// выдавая новую cookie, если её нет или подпись неверна.
func WithSession(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string
			if c, err := r.Cookie(SessionCookieName); err == nil {
				sid, _ = ParseSessionToken(c.Value, secret)
			}
			if sid == "" {
				var err error
				sid, err = SetSessionCookie(w, secret)
				if err != nil {
					sugar.Errorw("failed to issue session cookie", "error", err)
					next.ServeHTTP(w, r)
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(notify.WithSession(r.Context(), sid)))
		})
	}
}
