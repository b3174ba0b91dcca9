package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const (
	maxUploadFiles    = 10
	maxUploadFileSize = 5 << 20 // 5 MiB per file
)

type uploadedFile struct {
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
}

// storageName builds a collision-resistant filename: millisecond timestamp
// plus a random suffix, keeping the original extension.
func storageName(original string) string {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		log.Fatal("Failed to generate upload filename:", err)
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), filepath.Ext(original))
}

// requestOrigin resolves the absolute origin for upload URLs, honoring
// X-Forwarded-Proto behind a proxy. Empty when the host is unknown.
func requestOrigin(c *gin.Context) string {
	host := c.Request.Host
	if host == "" {
		return ""
	}
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
		if c.Request.TLS != nil {
			proto = "https"
		}
	}
	return proto + "://" + host
}

// setupUploadRoutes registers the multipart upload endpoint. Files land in
// dir, which is also served read-only at /uploads.
func setupUploadRoutes(r *gin.Engine, dir string) {
	r.POST("/api/uploads", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload request"})
			return
		}
		files := form.File["images"]
		if len(files) > maxUploadFiles {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Too many files: limit is %d per upload", maxUploadFiles)})
			return
		}
		for _, file := range files {
			if file.Size > maxUploadFileSize {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File %s exceeds the 5 MiB limit", file.Filename)})
				return
			}
		}

		origin := requestOrigin(c)
		saved := []uploadedFile{}
		for _, file := range files {
			name := storageName(file.Filename)
			dest := filepath.Join(dir, name)
			if err := c.SaveUploadedFile(file, dest); err != nil {
				log.Printf("Failed to store upload %s: %v", file.Filename, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to store uploaded files"})
				return
			}
			contentType := file.Header.Get("Content-Type")
			if contentType == "" {
				if detected, err := mimetype.DetectFile(dest); err == nil {
					contentType = detected.String()
				}
			}
			url := "/uploads/" + name
			if origin != "" {
				url = origin + url
			}
			saved = append(saved, uploadedFile{
				FileName:     name,
				OriginalName: file.Filename,
				URL:          url,
				Size:         file.Size,
				Mimetype:     contentType,
			})
		}
		c.JSON(http.StatusCreated, gin.H{"files": saved})
	})
}
