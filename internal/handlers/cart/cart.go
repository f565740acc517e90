package cart

import (
	"log"
	"net/http"
	"time"

	"tg_accessories_back_end/internal/cache"
	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🔵 GET /api/cart
//
// Retourne toujours un panier, vide si la session est inconnue. Ne renvoie
// jamais d'erreur au client pour une simple absence de cookie.
func GetCart(c *gin.Context) {
	id := sessionID(c)
	if id == "" {
		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
		return
	}

	cart, err := cache.GetCart(c.Request.Context(), id)
	if err != nil || cart == nil {
		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total})
}

//
// 🟢 POST /api/cart
//
func AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	// 🧩 Snapshot du produit depuis le catalogue : le prix capturé ici fait foi
	// pour ce panier, même si le produit change ensuite.
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var name, image string
	var price float64
	err = session.Query(`SELECT name, price, image FROM products WHERE product_id = ?`, input.ProductID).
		Scan(&name, &price, &image)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Session existante ou frappée à la volée au premier ajout
	id := sessionID(c)
	minted := false
	if id == "" {
		id = newSessionID()
		minted = true
	}

	ctx := c.Request.Context()
	cart, err := cache.GetCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if cart == nil {
		cart = models.NewCart(id)
	}

	cart.AddItem(models.CartItem{
		ProductID: input.ProductID,
		Name:      name,
		Price:     price,
		Image:     image,
		Quantity:  input.Quantity,
		AddedAt:   time.Now(),
	})

	if err := cache.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	if minted {
		setSessionCookie(c, id)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   cart.Items,
		"total":   cart.Total,
		"message": "Product added to cart",
	})
}

//
// 🟡 PUT /api/cart
//
func UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  *int   `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" || input.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and quantity are required"})
		return
	}

	id := sessionID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No cart session found"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cache.GetCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	if !cart.SetQuantity(input.ProductID, *input.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not in cart"})
		return
	}

	if err := cache.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   cart.Items,
		"total":   cart.Total,
		"message": "Cart updated",
	})
}

//
// ❌ DELETE /api/cart?productId=...
//
func RemoveFromCart(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	id := sessionID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No cart session found"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cache.GetCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	// Retirer un produit absent laisse le panier tel quel
	cart.RemoveItem(productID)

	if err := cache.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":   cart.Items,
		"total":   cart.Total,
		"message": "Product removed from cart",
	})
}

//
// 🧹 POST /api/cart/clear
//
// Vide les items mais conserve le document et la session.
func ClearCart(c *gin.Context) {
	id := sessionID(c)
	if id == "" {
		c.JSON(http.StatusOK, gin.H{"message": "No session"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cache.GetCart(ctx, id)
	if err != nil || cart == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
		return
	}

	cart.Clear()
	if err := cache.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

//
// 📇 POST /api/cart/details
//
// Attache les coordonnées client au panier avant le checkout.
func SaveCustomerDetails(c *gin.Context) {
	var input models.CustomerDetails

	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Email == "" || input.Phone == "" || input.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, phone, and address are required"})
		return
	}

	id := sessionID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No cart session found"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cache.GetCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	cart.CustomerDetails = &input
	cart.UpdatedAt = time.Now()

	if err := cache.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	log.Printf("📇 Coordonnées client enregistrées pour la session %s", id)
	c.JSON(http.StatusOK, gin.H{"message": "Customer details saved"})
}
