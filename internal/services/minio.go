package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"time"

	"tg_accessories_back_end/internal/database"

	"github.com/minio/minio-go/v7"
)

// UploadImage stocke une image (produit, catégorie ou blog) dans le bucket
// MinIO sous <folder>/<filename> et retourne son URL publique.
func UploadImage(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := path.Join(folder, file.Filename)

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}

// GenerateSignedURL génère une URL signée à durée limitée pour un objet du bucket.
func GenerateSignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	u, err := database.MinIO.PresignedGetObject(ctx, os.Getenv("MINIO_BUCKET"), objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
