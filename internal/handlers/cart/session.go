package cart

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"tg_accessories_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "cart-session"
	sessionMaxAge = 7 * 24 * 60 * 60 // 7 jours, aligné sur le TTL du panier
)

// sessionID lit l'identifiant de session panier depuis le cookie.
func sessionID(c *gin.Context) string {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return id
}

// newSessionID frappe un identifiant de session opaque : cart_<timestamp ms>_<9 car. aléatoires>.
func newSessionID() string {
	return fmt.Sprintf("cart_%d_%s", time.Now().UnixMilli(), strings.ToLower(utils.RandomToken(9)))
}

// setSessionCookie pose le cookie de session (httpOnly, 7 jours).
func setSessionCookie(c *gin.Context, id string) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", secure, true)
}
