package uploadController

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Subhashtm/Brownie/httperr"
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

const (
	maxImageWidth  = 800
	maxImageHeight = 600
)

// Dir returns the upload directory, created on demand.
func Dir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// ValidateImage checks the declared content type and filename extension
// against the image allow-list and returns the normalized extension.
// Declared metadata only; the byte stream itself is not inspected.
func ValidateImage(contentType, filename string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", httperr.New(httperr.KindInvalidInput, "File must be an image")
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		return "", httperr.New(httperr.KindInvalidInput, "Unsupported image format")
	}
	return ext, nil
}

// SaveImage validates and stores an uploaded image under a generated unique
// name, then best-effort downscales it to fit 800x600. Returns the stored
// file path and its public URL path.
func SaveImage(c *gin.Context, file *multipart.FileHeader) (savedPath, imageURL string, err error) {
	ext, err := ValidateImage(file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		return "", "", err
	}

	dir := Dir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", "", httperr.Wrap(httperr.KindUpstreamFailure, "Failed to create upload folder", err)
	}

	filename := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	savedPath = filepath.Join(dir, filename)

	if err := c.SaveUploadedFile(file, savedPath); err != nil {
		return "", "", httperr.Wrap(httperr.KindUpstreamFailure, "Failed to save file", err)
	}

	resizeImage(savedPath)

	return savedPath, "/uploads/" + filename, nil
}

// resizeImage re-encodes the stored file within the bounding box when either
// dimension exceeds it. Failures leave the original file in place.
func resizeImage(path string) {
	img, err := imaging.Open(path)
	if err != nil {
		log.Printf("image optimization skipped for %s: %v", path, err)
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxImageWidth && bounds.Dy() <= maxImageHeight {
		return
	}
	resized := imaging.Fit(img, maxImageWidth, maxImageHeight, imaging.Lanczos)
	if err := imaging.Save(resized, path, imaging.JPEGQuality(85)); err != nil {
		log.Printf("image optimization failed for %s: %v", path, err)
	}
}

// POST /api/admin/upload-image
func UploadImageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			httperr.Respond(c, httperr.New(httperr.KindInvalidInput, "No image uploaded"))
			return
		}

		_, imageURL, err := SaveImage(c, file)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"image_url": imageURL})
	}
}
