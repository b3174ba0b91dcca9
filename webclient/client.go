// Package webclient is the browser-side core of the portfolio site,
// modeled as plain Go: a typed API client, an explicit content state
// container, pure renderers producing view descriptions, and the editor
// controllers that tie form submissions to the API. The actual UI (DOM,
// animations) binds in at the outermost boundary through small interfaces.
package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/aaravpatel/portfolio/content"
)

// Every outbound request carries this fixed timeout; on expiry the request
// is aborted and treated as a network failure. No automatic retries.
const requestTimeout = 10 * time.Second

// Client talks to the content service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFrom(path, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Kind: KindPersistence, Status: resp.StatusCode}
		}
	}
	return nil
}

func (c *Client) errorFrom(path string, resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	kind := KindPersistence
	if resp.StatusCode == http.StatusBadRequest {
		kind = KindValidation
		if strings.HasPrefix(path, "/api/uploads") {
			kind = KindUpload
		}
	}
	return &APIError{Kind: kind, Message: payload.Error, Status: resp.StatusCode}
}

func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/api/health", nil, &out)
}

func (c *Client) Hero(ctx context.Context) (content.Hero, error) {
	var hero content.Hero
	err := c.do(ctx, http.MethodGet, "/api/hero", nil, &hero)
	return hero, err
}

func (c *Client) UpdateHero(ctx context.Context, req content.HeroRequest) (content.Hero, error) {
	var hero content.Hero
	err := c.do(ctx, http.MethodPut, "/api/hero", req, &hero)
	return hero, err
}

func (c *Client) About(ctx context.Context) (content.About, error) {
	var about content.About
	err := c.do(ctx, http.MethodGet, "/api/about", nil, &about)
	return about, err
}

func (c *Client) UpdateAbout(ctx context.Context, req content.AboutRequest) (content.About, error) {
	var about content.About
	err := c.do(ctx, http.MethodPut, "/api/about", req, &about)
	return about, err
}

func (c *Client) Projects(ctx context.Context) ([]content.Project, error) {
	var projects []content.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects)
	return projects, err
}

func (c *Client) CreateProject(ctx context.Context, req content.ProjectRequest) (content.Project, error) {
	var project content.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", req, &project)
	return project, err
}

func (c *Client) Skills(ctx context.Context) ([]content.Skill, error) {
	var skills []content.Skill
	err := c.do(ctx, http.MethodGet, "/api/skills", nil, &skills)
	return skills, err
}

func (c *Client) CreateSkill(ctx context.Context, req content.SkillRequest) (content.Skill, error) {
	var skill content.Skill
	err := c.do(ctx, http.MethodPost, "/api/skills", req, &skill)
	return skill, err
}

func (c *Client) Blogs(ctx context.Context) ([]content.Blog, error) {
	var blogs []content.Blog
	err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &blogs)
	return blogs, err
}

func (c *Client) CreateBlog(ctx context.Context, req content.BlogRequest) (content.Blog, error) {
	var blog content.Blog
	err := c.do(ctx, http.MethodPost, "/api/blogs", req, &blog)
	return blog, err
}

func (c *Client) Certifications(ctx context.Context) ([]content.Certification, error) {
	var certs []content.Certification
	err := c.do(ctx, http.MethodGet, "/api/certifications", nil, &certs)
	return certs, err
}

func (c *Client) CreateCertification(ctx context.Context, req content.CertificationRequest) (content.Certification, error) {
	var cert content.Certification
	err := c.do(ctx, http.MethodPost, "/api/certifications", req, &cert)
	return cert, err
}

func (c *Client) FeaturedSkills(ctx context.Context) ([]content.FeaturedSkill, error) {
	var items []content.FeaturedSkill
	err := c.do(ctx, http.MethodGet, "/api/featured-skills", nil, &items)
	return items, err
}

func (c *Client) CreateFeaturedSkill(ctx context.Context, req content.FeaturedSkillRequest) (content.FeaturedSkill, error) {
	var item content.FeaturedSkill
	err := c.do(ctx, http.MethodPost, "/api/featured-skills", req, &item)
	return item, err
}

// Purge clears the named sections server-side and returns the sections the
// server reports as cleared. An empty set purges everything.
func (c *Client) Purge(ctx context.Context, sections []string) ([]string, error) {
	payload := struct {
		Sections []string `json:"sections"`
	}{Sections: sections}
	var out struct {
		Cleared []string `json:"cleared"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/content", payload, &out); err != nil {
		return nil, err
	}
	return out.Cleared, nil
}

// UploadFile is a pending file attachment from a form.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadedFile mirrors the upload endpoint's per-file response.
type UploadedFile struct {
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}

// Upload sends the files as one multipart request and returns the stored
// file descriptors in submission order.
func (c *Client) Upload(ctx context.Context, files []UploadFile) ([]UploadedFile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="images"; filename="%s"`, escapeQuotes(file.Name)))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("build upload: %w", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, fmt.Errorf("build upload: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/uploads", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.errorFrom("/api/uploads", resp)
	}
	var out struct {
		Files []UploadedFile `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &APIError{Kind: KindUpload, Status: resp.StatusCode}
	}
	return out.Files, nil
}
