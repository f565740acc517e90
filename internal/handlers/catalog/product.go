package catalog

import (
	"log"
	"net/http"
	"strings"

	"tg_accessories_back_end/internal/cache"
	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// scanAllProducts fait un scan complet de la table products.
func scanAllProducts() ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, description, price, image, category, created_at, updated_at FROM products`).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

//
// 🔵 GET /api/products
//
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	// ✅ Vérifie le cache Redis
	var cached []models.Product
	if cache.GetList(ctx, cache.KeyProductsAll, &cached) {
		c.JSON(http.StatusOK, gin.H{"products": cached, "count": len(cached)})
		return
	}

	products, err := scanAllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	cache.SetList(ctx, cache.KeyProductsAll, products)

	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

//
// 🔎 GET /api/products/search?q=...
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	// 1️⃣ Recherche Elasticsearch (prioritaire)
	results, err := services.SearchProducts(query)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"products": results, "count": len(results)})
		return
	}
	log.Println("⚠️ Recherche Elastic indisponible, repli sur un scan:", err)

	// 2️⃣ Repli : scan complet et filtre en mémoire
	products, err := scanAllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche: " + err.Error()})
		return
	}

	matched := []models.Product{}
	for _, p := range products {
		if containsIgnoreCase(p.Name, query) || containsIgnoreCase(p.Description, query) || containsIgnoreCase(p.Category, query) {
			matched = append(matched, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"products": matched, "count": len(matched)})
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
