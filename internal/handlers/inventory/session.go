package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	sessionName       = "optistock_session"
	pendingDeleteKey  = "pending_delete_index"
	sessionMaxAgeSecs = 86400
)

var sessionStore *sessions.CookieStore

// InitSessionStore configure le store de session qui porte l'état de
// confirmation de suppression entre deux requêtes
func InitSessionStore(secret string) {
	sessionStore = sessions.NewCookieStore([]byte(secret))
	sessionStore.MaxAge(sessionMaxAgeSecs)
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAgeSecs,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

func getSession(c *gin.Context) *sessions.Session {
	session, _ := sessionStore.Get(c.Request, sessionName)
	return session
}

// pendingDeleteIndex lit l'index de suppression en attente (-1 si aucun)
func pendingDeleteIndex(c *gin.Context) int {
	session := getSession(c)
	if idx, ok := session.Values[pendingDeleteKey].(int); ok {
		return idx
	}
	return -1
}

func setPendingDelete(c *gin.Context, index int) error {
	session := getSession(c)
	session.Values[pendingDeleteKey] = index
	return session.Save(c.Request, c.Writer)
}

func clearPendingDelete(c *gin.Context) error {
	session := getSession(c)
	delete(session.Values, pendingDeleteKey)
	return session.Save(c.Request, c.Writer)
}
