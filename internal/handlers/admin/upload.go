package admin

import (
	"net/http"
	"time"

	"tg_accessories_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🖼 POST /api/admin/upload
//
// Upload multipart d'une image vers MinIO. Le champ "folder" range l'objet
// (products, categories, blogs), "file" porte l'image.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier manquant"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "products"
	}

	url, err := services.UploadImage(c.Request.Context(), folder, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

//
// 🔗 GET /api/admin/upload/signed?object=...
//
// URL signée à durée limitée, pour servir un objet sans exposer le bucket.
func SignedImageURL(c *gin.Context) {
	objectName := c.Query("object")
	if objectName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Object name is required"})
		return
	}

	url, err := services.GenerateSignedURL(c.Request.Context(), objectName, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération URL signée: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
