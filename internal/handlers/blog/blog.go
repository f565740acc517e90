package blog

import (
	"net/http"
	"sort"

	"tg_accessories_back_end/internal/cache"
	"tg_accessories_back_end/internal/database"
	"tg_accessories_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

const (
	defaultImage    = "https://images.unsplash.com/photo-1499750310159-5b5f0d6920a9?w=800&h=600&fit=crop"
	defaultCategory = "General"
	defaultAuthor   = "Admin"
	excerptLength   = 150
)

func scanAllBlogs(session *gocql.Session) ([]models.Blog, error) {
	iter := session.Query(`SELECT blog_id, title, slug, content, excerpt, image, category, is_published, author, created_at, updated_at FROM blogs`).Iter()

	var blogs []models.Blog
	var b models.Blog
	for iter.Scan(&b.ID, &b.Title, &b.Slug, &b.Content, &b.Excerpt, &b.Image, &b.Category, &b.IsPublished, &b.Author, &b.CreatedAt, &b.UpdatedAt) {
		blogs = append(blogs, b)
		b = models.Blog{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	// Les plus récents d'abord
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
	return blogs, nil
}

func findBlogByID(session *gocql.Session, blogID string) (*models.Blog, error) {
	var b models.Blog
	err := session.Query(`SELECT blog_id, title, slug, content, excerpt, image, category, is_published, author, created_at, updated_at
	                      FROM blogs WHERE blog_id = ?`, blogID).
		Scan(&b.ID, &b.Title, &b.Slug, &b.Content, &b.Excerpt, &b.Image, &b.Category, &b.IsPublished, &b.Author, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// slugExists sonde la table de correspondance blogs_by_slug.
func slugExists(session *gocql.Session, slug string) bool {
	var blogID string
	return session.Query(`SELECT blog_id FROM blogs_by_slug WHERE slug = ?`, slug).Scan(&blogID) == nil
}

//
// 🔵 GET /api/blogs
//
// Vue publique : uniquement les articles publiés.
func GetPublishedBlogs(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Blog
	if cache.GetList(ctx, cache.KeyBlogsPublished, &cached) {
		c.JSON(http.StatusOK, gin.H{"blogs": cached})
		return
	}

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

	published := []models.Blog{}
	for _, b := range blogs {
		if b.IsPublished {
			published = append(published, b)
		}
	}

	cache.SetList(ctx, cache.KeyBlogsPublished, published)
	c.JSON(http.StatusOK, gin.H{"blogs": published})
}

//
// 🔵 GET /api/blogs/:slug
//
func GetBlogBySlug(c *gin.Context) {
	slug := c.Param("slug")

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var blogID string
	if err := session.Query(`SELECT blog_id FROM blogs_by_slug WHERE slug = ?`, slug).Scan(&blogID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	blog, err := findBlogByID(session, blogID)
	if err != nil || !blog.IsPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}
