package admin

import (
	"fmt"
	"net/http"
	"time"

	"tg_accessories_back_end/internal/cache"
	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🗂 GET /api/admin/products
//
// Vue admin : lecture directe, sans passer par le cache public.
func ListProducts(c *gin.Context) {
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT product_id, name, description, price, image, category, created_at, updated_at FROM products`).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// 🟢 POST /api/admin/products
//
func CreateProduct(c *gin.Context) {
	var input struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Image       string  `json:"image"`
		Category    string  `json:"category"`
	}

	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Description == "" || input.Image == "" || input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if input.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix doit être strictement positif"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// La catégorie doit exister au moment de la création
	var categoryName string
	if err := session.Query(`SELECT name FROM categories WHERE category_id = ?`, input.Category).Scan(&categoryName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie introuvable"})
		return
	}

	now := time.Now()
	product := models.Product{
		ID:          fmt.Sprintf("%s-%d", input.Category, now.UnixMilli()),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := session.Query(`INSERT INTO products (product_id, name, description, price, image, category, created_at, updated_at)
	                         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.Description, product.Price, product.Image,
		product.Category, product.CreatedAt, product.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	// 🔄 Indexation Elasticsearch + invalidation du cache public
	go services.IndexProduct(product)
	cache.Invalidate(c.Request.Context(), cache.KeyProductsAll)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"id":      product.ID,
		"product": product,
	})
}

//
// 🟡 PUT /api/admin/products
//
// Fusion partielle, identifiant immuable.
func UpdateProduct(c *gin.Context) {
	var input struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Image       string   `json:"image"`
		Category    string   `json:"category"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var current models.Product
	err = session.Query(`SELECT product_id, name, description, price, image, category, created_at FROM products WHERE product_id = ?`, input.ID).
		Scan(&current.ID, &current.Name, &current.Description, &current.Price, &current.Image, &current.Category, &current.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if input.Name != "" {
		current.Name = input.Name
	}
	if input.Description != "" {
		current.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le prix doit être strictement positif"})
			return
		}
		current.Price = *input.Price
	}
	if input.Image != "" {
		current.Image = input.Image
	}
	if input.Category != "" {
		current.Category = input.Category
	}
	current.UpdatedAt = time.Now()

	if err := session.Query(`UPDATE products SET name = ?, description = ?, price = ?, image = ?, category = ?, updated_at = ?
	                         WHERE product_id = ?`,
		current.Name, current.Description, current.Price, current.Image, current.Category,
		current.UpdatedAt, current.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit: " + err.Error()})
		return
	}

	go services.IndexProduct(current)
	cache.Invalidate(c.Request.Context(), cache.KeyProductsAll)

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": current})
}

//
// ❌ DELETE /api/admin/products?id=...
//
func DeleteProduct(c *gin.Context) {
	productID := c.Query("id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing string
	if err := session.Query(`SELECT product_id FROM products WHERE product_id = ?`, productID).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, productID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit: " + err.Error()})
		return
	}

	go services.RemoveProductFromIndex(productID)
	cache.Invalidate(c.Request.Context(), cache.KeyProductsAll)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
