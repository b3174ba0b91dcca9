package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newUploadServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	r := gin.New()
	setupUploadRoutes(r, dir)
	return r, dir
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := writer.CreateFormFile("images", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadStoresFiles(t *testing.T) {
	r, dir := newUploadServer(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"cover.png": []byte("\x89PNG\r\n\x1a\nfake"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Host = "example.com"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Files []uploadedFile `json:"files"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Files) != 1 {
		t.Fatalf("expected one file, got %d", len(resp.Files))
	}
	file := resp.Files[0]
	if file.OriginalName != "cover.png" {
		t.Errorf("original name: %q", file.OriginalName)
	}
	if !strings.HasSuffix(file.FileName, ".png") {
		t.Errorf("stored name should keep the extension: %q", file.FileName)
	}
	if file.URL != "http://example.com/uploads/"+file.FileName {
		t.Errorf("url: %q", file.URL)
	}

	data, err := os.ReadFile(filepath.Join(dir, file.FileName))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("stored content does not match upload")
	}
}

func TestUploadRejectsTooManyFiles(t *testing.T) {
	r, dir := newUploadServer(t)

	files := map[string][]byte{}
	for i := 0; i < maxUploadFiles+1; i++ {
		files[strings.Repeat("a", i+1)+".png"] = []byte("data")
	}
	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, body %s", rr.Code, rr.Body.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected batch must store nothing, found %d files", len(entries))
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	r, dir := newUploadServer(t)

	body, contentType := multipartBody(t, map[string][]byte{
		"huge.png": bytes.Repeat([]byte("x"), maxUploadFileSize+1),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp["error"], "huge.png") {
		t.Errorf("error should name the file: %q", resp["error"])
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected batch must store nothing, found %d files", len(entries))
	}
}

func TestUploadHonorsForwardedProto(t *testing.T) {
	r, _ := newUploadServer(t)

	body, contentType := multipartBody(t, map[string][]byte{"a.png": []byte("data")})
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Host = "portfolio.dev"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status %d", rr.Code)
	}
	var resp struct {
		Files []uploadedFile `json:"files"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Files) != 1 || !strings.HasPrefix(resp.Files[0].URL, "https://portfolio.dev/uploads/") {
		t.Errorf("got %+v", resp.Files)
	}
}
