package catalog

import (
	"net/http"
	"time"

	"tg_accessories_back_end/internal/cache"
	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🔵 GET /api/categories
//
func GetAllCategories(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Category
	if cache.GetList(ctx, cache.KeyCategoriesAll, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT category_id, name, description, image, created_at, updated_at FROM categories`).Iter()

	categories := []models.Category{}
	var cat models.Category
	for iter.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Image, &cat.CreatedAt, &cat.UpdatedAt) {
		categories = append(categories, cat)
		cat = models.Category{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture catégories: " + err.Error()})
		return
	}

	cache.SetList(ctx, cache.KeyCategoriesAll, categories)
	c.JSON(http.StatusOK, categories)
}

//
// 🟢 POST /api/categories
//
// L'identifiant est un slug choisi par l'admin ("gadgets"), unique.
func CreateCategory(c *gin.Context) {
	var input struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" || input.Name == "" || input.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Refuse les doublons d'identifiant
	var existing string
	if err := session.Query(`SELECT category_id FROM categories WHERE category_id = ?`, input.ID).Scan(&existing); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID already exists"})
		return
	}

	now := time.Now()
	category := models.Category{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := session.Query(`INSERT INTO categories (category_id, name, description, image, created_at, updated_at)
	                         VALUES (?, ?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Description, category.Image, category.CreatedAt, category.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création catégorie: " + err.Error()})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyCategoriesAll)
	c.JSON(http.StatusCreated, category)
}

//
// 🟡 PUT /api/categories/:id
//
// Fusion partielle : seuls les champs fournis sont modifiés, l'identifiant jamais.
func UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var current models.Category
	err = session.Query(`SELECT category_id, name, description, image, created_at FROM categories WHERE category_id = ?`, categoryID).
		Scan(&current.ID, &current.Name, &current.Description, &current.Image, &current.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if input.Name != "" {
		current.Name = input.Name
	}
	if input.Description != "" {
		current.Description = input.Description
	}
	if input.Image != "" {
		current.Image = input.Image
	}
	current.UpdatedAt = time.Now()

	if err := session.Query(`UPDATE categories SET name = ?, description = ?, image = ?, updated_at = ? WHERE category_id = ?`,
		current.Name, current.Description, current.Image, current.UpdatedAt, categoryID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour catégorie: " + err.Error()})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyCategoriesAll)
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

//
// ❌ DELETE /api/categories/:id
//
// Pas de cascade : les produits de la catégorie restent en place.
func DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing string
	if err := session.Query(`SELECT category_id FROM categories WHERE category_id = ?`, categoryID).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := session.Query(`DELETE FROM categories WHERE category_id = ?`, categoryID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression catégorie: " + err.Error()})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyCategoriesAll)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
