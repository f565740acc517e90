package user

import (
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

//
// 🔗 GET /api/auth/:provider
//
// Redirige vers le provider OAuth. Le provider est propagé via le query param
// attendu par gothic.GetProviderName.
func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

//
// 🔗 GET /api/auth/:provider/callback
//
// Termine le flow OAuth, crée l'utilisateur s'il n'existe pas encore,
// pose le cookie auth-token et redirige vers le front.
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if gothUser.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le provider n'a pas fourni d'email"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var user models.User
	err = session.Query(`SELECT email, name, role, provider, created_at, updated_at FROM users WHERE email = ?`, gothUser.Email).
		Scan(&user.Email, &user.Name, &user.Role, &user.Provider, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		now := time.Now()
		user = models.User{
			Email:     gothUser.Email,
			Name:      gothUser.Name,
			Role:      models.RoleCustomer,
			Provider:  provider,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if user.Name == "" {
			user.Name = gothUser.NickName
		}
		if err := session.Query(`INSERT INTO users (email, name, password, role, provider, created_at, updated_at)
		                         VALUES (?, ?, ?, ?, ?, ?, ?)`,
			user.Email, user.Name, "", user.Role, user.Provider, user.CreatedAt, user.UpdatedAt).Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur: " + err.Error()})
			return
		}
		log.Printf("✅ Utilisateur OAuth créé: %s (%s)", user.Email, provider)
	}

	token, err := utils.GenerateUserJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}
	setAuthCookie(c, token)

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}
	redirect, err := url.JoinPath(siteURL, "/account")
	if err != nil {
		redirect = siteURL
	}
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}
