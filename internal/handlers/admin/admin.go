package admin

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

const adminTokenCookie = "adminToken"

//
// 🔐 POST /api/admin/login
//
// Authentification par hash uniquement : aucun couple d'identifiants en dur,
// contrairement à l'implémentation historique du front.
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

	var admin models.Admin
	err = session.Query(`SELECT email, password, role, created_at FROM admins WHERE email = ?`, input.Email).
		Scan(&admin.Email, &admin.Password, &admin.Role, &admin.CreatedAt)
	if err != nil || !utils.VerifyPassword(input.Password, admin.Password) {
		middleware.RecordLoginFailure(input.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminJWT(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	middleware.ResetLoginAttempts(input.Email)

	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminTokenCookie, token, 24*60*60, "/", "", secure, true)

	log.Printf("🔐 Connexion admin: %s", admin.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin": gin.H{
			"id":    admin.Email,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

//
// 🛠 POST /api/admin/setup
//
// Création du premier compte admin. Refuse si l'email existe déjà.
func Setup(c *gin.Context) {
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

	var existing string
	if err := session.Query(`SELECT email FROM admins WHERE email = ?`, input.Email).Scan(&existing); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin already exists"})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur hash mot de passe"})
		return
	}

	if err := session.Query(`INSERT INTO admins (email, password, role, created_at) VALUES (?, ?, ?, ?)`,
		input.Email, hash, models.RoleAdmin, time.Now()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création admin: " + err.Error()})
		return
	}

	log.Printf("🛠 Compte admin créé: %s", input.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "Admin user created successfully", "id": input.Email})
}

//
// 👥 GET /api/admin/users
//
func ListUsers(c *gin.Context) {
	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT email, name, role, provider, created_at, updated_at FROM users`).Iter()

	users := []models.User{}
	var u models.User
	for iter.Scan(&u.Email, &u.Name, &u.Role, &u.Provider, &u.CreatedAt, &u.UpdatedAt) {
		users = append(users, u)
		u = models.User{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture utilisateurs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
