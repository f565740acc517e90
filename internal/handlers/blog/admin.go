package blog

import (
	"net/http"
	"time"

	"tg_accessories_back_end/internal/cache"
	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"
	"tg_accessories_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

//
// 🗂 GET /api/admin/blogs
//
// Vue admin : tous les articles, publiés ou non.
func ListBlogs(c *gin.Context) {
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	blogs, err := scanAllBlogs(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture blogs: " + err.Error()})
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

//
// 🟢 POST /api/admin/blogs
//
func CreateBlog(c *gin.Context) {
	var input struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		Excerpt     string `json:"excerpt"`
		Image       string `json:"image"`
		Category    string `json:"category"`
		Author      string `json:"author"`
		IsPublished *bool  `json:"isPublished"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Champs optionnels avec valeurs par défaut
	if input.Excerpt == "" {
		input.Excerpt = defaultExcerpt(input.Content)
	}
	if input.Image == "" {
		input.Image = defaultImage
	}
	if input.Category == "" {
		input.Category = defaultCategory
	}
	if input.Author == "" {
		input.Author = defaultAuthor
	}
	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	slug := utils.UniqueSlug(utils.Slugify(input.Title), func(s string) bool {
		return slugExists(session, s)
	})

	now := time.Now()
	blog := models.Blog{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Slug:        slug,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Image:       input.Image,
		Category:    input.Category,
		IsPublished: published,
		Author:      input.Author,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := insertBlog(session, blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création blog: " + err.Error()})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyBlogsPublished)
	c.JSON(http.StatusCreated, gin.H{"message": "Blog created successfully", "blog": blog})
}

//
// 🟡 PUT /api/admin/blogs/:id
//
// Fusion partielle. Un nouveau titre régénère le slug.
func UpdateBlog(c *gin.Context) {
	blogID := c.Param("id")

	var input struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		Excerpt     string `json:"excerpt"`
		Image       string `json:"image"`
		Category    string `json:"category"`
		Author      string `json:"author"`
		IsPublished *bool  `json:"isPublished"`
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

	current, err := findBlogByID(session, blogID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	oldSlug := current.Slug
	if input.Title != "" && input.Title != current.Title {
		current.Title = input.Title
		current.Slug = utils.UniqueSlug(utils.Slugify(input.Title), func(s string) bool {
			return s != oldSlug && slugExists(session, s)
		})
	}
	if input.Content != "" {
		current.Content = input.Content
	}
	if input.Excerpt != "" {
		current.Excerpt = input.Excerpt
	}
	if input.Image != "" {
		current.Image = input.Image
	}
	if input.Category != "" {
		current.Category = input.Category
	}
	if input.Author != "" {
		current.Author = input.Author
	}
	if input.IsPublished != nil {
		current.IsPublished = *input.IsPublished
	}
	current.UpdatedAt = time.Now()

	if err := insertBlog(session, *current); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour blog: " + err.Error()})
		return
	}

	if current.Slug != oldSlug {
		if err := session.Query(`DELETE FROM blogs_by_slug WHERE slug = ?`, oldSlug).Exec(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour slug: " + err.Error()})
			return
		}
	}

	cache.Invalidate(c.Request.Context(), cache.KeyBlogsPublished)
	c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully", "blog": current})
}

//
// ❌ DELETE /api/admin/blogs/:id
//
func DeleteBlog(c *gin.Context) {
	blogID := c.Param("id")

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	current, err := findBlogByID(session, blogID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	if err := session.Query(`DELETE FROM blogs WHERE blog_id = ?`, blogID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression blog: " + err.Error()})
		return
	}
	if err := session.Query(`DELETE FROM blogs_by_slug WHERE slug = ?`, current.Slug).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression slug: " + err.Error()})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyBlogsPublished)
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

// insertBlog écrit l'article et sa correspondance slug → id en parallèle.
func insertBlog(session *gocql.Session, b models.Blog) error {
	if err := session.Query(`INSERT INTO blogs (blog_id, title, slug, content, excerpt, image, category, is_published, author, created_at, updated_at)
	                         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Slug, b.Content, b.Excerpt, b.Image, b.Category, b.IsPublished,
		b.Author, b.CreatedAt, b.UpdatedAt).Exec(); err != nil {
		return err
	}
	return session.Query(`INSERT INTO blogs_by_slug (slug, blog_id) VALUES (?, ?)`, b.Slug, b.ID).Exec()
}

// defaultExcerpt tronque en comptant les caractères, pas les octets,
// pour ne jamais couper un caractère accenté en deux.
func defaultExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}
