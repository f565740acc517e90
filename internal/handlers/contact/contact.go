package contact

import (
	"log"
	"net/http"
	"time"

	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//
// 📨 POST /api/contact
//
// Enregistre le message puis notifie la boutique par email en arrière-plan.
func SubmitMessage(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}

	if err := session.Query(`INSERT INTO contacts (contact_id, name, email, subject, message, created_at)
	                         VALUES (?, ?, ?, ?, ?, ?)`,
		contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message, contact.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement message: " + err.Error()})
		return
	}

	go func(ct models.Contact) {
		if err := utils.SendContactNotification(ct); err != nil {
			log.Printf("❌ Erreur envoi notification contact: %v", err)
		}
	}(contact)

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "id": contact.ID})
}
