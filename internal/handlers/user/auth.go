package user

import (
	"log"
	"net/http"
	"os"
	"time"

	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/middleware"
	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

const authTokenCookie = "auth-token"
const authTokenMaxAge = 7 * 24 * 60 * 60

func setAuthCookie(c *gin.Context, token string) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authTokenCookie, token, authTokenMaxAge, "/", "", secure, true)
}

//
// 🟢 POST /api/auth/register
//
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing string
	if err := session.Query(`SELECT email FROM users WHERE email = ?`, input.Email).Scan(&existing); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur hash mot de passe"})
		return
	}

	now := time.Now()
	user := models.User{
		Email:     input.Email,
		Name:      input.Name,
		Password:  hash,
		Role:      models.RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := session.Query(`INSERT INTO users (email, name, password, role, provider, created_at, updated_at)
	                         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.Name, user.Password, user.Role, "", user.CreatedAt, user.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur: " + err.Error()})
		return
	}

	token, err := utils.GenerateUserJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}
	setAuthCookie(c, token)

	log.Printf("✅ Nouvel utilisateur: %s", user.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

//
// 🔐 POST /api/auth/login
//
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var user models.User
	err = session.Query(`SELECT email, name, password, role, provider, created_at, updated_at FROM users WHERE email = ?`, input.Email).
		Scan(&user.Email, &user.Name, &user.Password, &user.Role, &user.Provider, &user.CreatedAt, &user.UpdatedAt)
	if err != nil || !utils.VerifyPassword(input.Password, user.Password) {
		middleware.RecordLoginFailure(input.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateUserJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	middleware.ResetLoginAttempts(input.Email)
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

//
// 🚪 POST /api/auth/logout
//
func Logout(c *gin.Context) {
	c.SetCookie(authTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

//
// 👤 GET /api/auth/me
//
// Derrière middleware.UserAuth : le cookie est déjà validé.
func Me(c *gin.Context) {
	email, _ := c.Get("email")

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var user models.User
	err = session.Query(`SELECT email, name, role, provider, created_at, updated_at FROM users WHERE email = ?`, email).
		Scan(&user.Email, &user.Name, &user.Role, &user.Provider, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
