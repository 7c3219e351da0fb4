package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"zuri_back_end/internal/database"
)

// GenerateSignedURL signe l'accès à une image produit pour la durée
// donnée (galerie / lightbox du front).
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	bucket := os.Getenv("MINIO_BUCKET")

	// Accepte aussi bien une clé relative qu'une URL complète du bucket.
	prefix := fmt.Sprintf("http://%s/%s/", os.Getenv("MINIO_ENDPOINT"), bucket)
	key := strings.TrimPrefix(objectPath, prefix)

	presignedURL, err := database.MinIO.PresignedGetObject(
		ctx,
		bucket,
		key,
		duration,
		make(url.Values),
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
