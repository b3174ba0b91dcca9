package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aaravpatel/portfolio/content"
)

// allSections is the canonical purge order when no explicit set is given.
var allSections = []string{"hero", "about", "projects", "skills", "blogs", "certifications", "contacts"}

type requiredField struct {
	name  string
	value string
}

// missingFields enumerates required fields that are absent or blank after
// trimming, in declaration order.
func missingFields(fields []requiredField) []string {
	missing := []string{}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func rejectMissing(c *gin.Context, missing []string) bool {
	if len(missing) == 0 {
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields: " + strings.Join(missing, ", ")})
	return true
}

// setupContentRoutes registers the content API under /api.
func setupContentRoutes(r *gin.Engine, store *Store) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.GET("/projects", func(c *gin.Context) {
		projects, err := store.ListProjects()
		if err != nil {
			log.Printf("Failed to list projects: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load projects"})
			return
		}
		c.JSON(http.StatusOK, projects)
	})

	api.POST("/projects", func(c *gin.Context) {
		var req content.ProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		req.Normalize()
		if rejectMissing(c, missingFields([]requiredField{
			{"tag", req.Tag},
			{"title", req.Title},
			{"description", req.Description},
		})) {
			return
		}
		project, err := store.InsertProject(req)
		if err != nil {
			log.Printf("Failed to insert project: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save project"})
			return
		}
		c.JSON(http.StatusCreated, project)
	})

	api.GET("/skills", func(c *gin.Context) {
		skills, err := store.ListSkills()
		if err != nil {
			log.Printf("Failed to list skills: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load skills"})
			return
		}
		c.JSON(http.StatusOK, skills)
	})

	api.POST("/skills", func(c *gin.Context) {
		var req content.SkillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		req.Normalize()
		if rejectMissing(c, missingFields([]requiredField{
			{"title", req.Title},
			{"details", req.Details},
		})) {
			return
		}
		skill, err := store.InsertSkill(req)
		if err != nil {
			log.Printf("Failed to insert skill: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save skill"})
			return
		}
		c.JSON(http.StatusCreated, skill)
	})

	api.GET("/blogs", func(c *gin.Context) {
		blogs, err := store.ListBlogs()
		if err != nil {
			log.Printf("Failed to list blogs: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load blogs"})
			return
		}
		c.JSON(http.StatusOK, blogs)
	})

	api.POST("/blogs", func(c *gin.Context) {
		var req content.BlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		req.Normalize()
		if rejectMissing(c, missingFields([]requiredField{
			{"title", req.Title},
			{"summary", req.Summary},
			{"link", req.Link},
		})) {
			return
		}
		blog, err := store.InsertBlog(req)
		if err != nil {
			log.Printf("Failed to insert blog: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save blog"})
			return
		}
		c.JSON(http.StatusCreated, blog)
	})

	api.GET("/certifications", func(c *gin.Context) {
		certs, err := store.ListCertifications()
		if err != nil {
			log.Printf("Failed to list certifications: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load certifications"})
			return
		}
		c.JSON(http.StatusOK, certs)
	})

	api.POST("/certifications", func(c *gin.Context) {
		var req content.CertificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		req.Normalize()
		if rejectMissing(c, missingFields([]requiredField{
			{"title", req.Title},
			{"year", req.Year},
		})) {
			return
		}
		cert, err := store.InsertCertification(req)
		if err != nil {
			log.Printf("Failed to insert certification: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save certification"})
			return
		}
		c.JSON(http.StatusCreated, cert)
	})

	api.GET("/featured-skills", func(c *gin.Context) {
		items, err := store.ListFeaturedSkills()
		if err != nil {
			log.Printf("Failed to list featured skills: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load featured skills"})
			return
		}
		c.JSON(http.StatusOK, items)
	})

	api.POST("/featured-skills", func(c *gin.Context) {
		var req content.FeaturedSkillRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		req.Normalize()
		if rejectMissing(c, missingFields([]requiredField{
			{"title", req.Title},
			{"details", req.Details},
		})) {
			return
		}
		item, err := store.InsertFeaturedSkill(req)
		if err != nil {
			log.Printf("Failed to insert featured skill: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to save featured skill"})
			return
		}
		c.JSON(http.StatusCreated, item)
	})

	api.GET("/about", func(c *gin.Context) {
		about, err := store.GetAbout()
		if err != nil {
			log.Printf("Failed to load about: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load about section"})
			return
		}
		c.JSON(http.StatusOK, about)
	})

	api.PUT("/about", func(c *gin.Context) {
		var req content.AboutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		req.Normalize()
		if rejectMissing(c, missingFields([]requiredField{
			{"heading", req.Heading},
			{"summary", req.Summary},
		})) {
			return
		}
		if err := store.UpdateAbout(req); err != nil {
			log.Printf("Failed to update about: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update about section"})
			return
		}
		about, err := store.GetAbout()
		if err != nil {
			log.Printf("Failed to reload about: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update about section"})
			return
		}
		c.JSON(http.StatusOK, about)
	})

	api.GET("/hero", func(c *gin.Context) {
		hero, err := store.GetHero()
		if err != nil {
			log.Printf("Failed to load hero: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load hero content"})
			return
		}
		c.JSON(http.StatusOK, hero)
	})

	api.PUT("/hero", func(c *gin.Context) {
		var req content.HeroRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		req.Normalize()
		if rejectMissing(c, missingFields([]requiredField{
			{"tagline", req.Tagline},
			{"headline", req.Headline},
			{"subheading", req.Subheading},
		})) {
			return
		}
		if err := store.UpdateHero(req); err != nil {
			log.Printf("Failed to update hero: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update hero content"})
			return
		}
		hero, err := store.GetHero()
		if err != nil {
			log.Printf("Failed to reload hero: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to update hero content"})
			return
		}
		c.JSON(http.StatusOK, hero)
	})

	api.DELETE("/content", func(c *gin.Context) {
		var req struct {
			Sections []string `json:"sections"`
		}
		// Only a genuinely absent body defaults to purging everything; a
		// body that fails to decode must not.
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		requested := req.Sections
		if len(requested) == 0 {
			requested = allSections
		}

		cleared := []string{}
		for _, section := range requested {
			var err error
			switch section {
			case "projects":
				err = store.ClearProjects()
			case "skills":
				err = store.ClearSkills()
			case "blogs":
				err = store.ClearBlogs()
			case "certifications":
				err = store.ClearCertifications()
			case "contacts":
				err = store.ClearFeaturedSkills()
			case "hero":
				err = store.ClearHero()
			case "about":
				err = store.ClearAbout()
			default:
				// Unknown section names are ignored.
				continue
			}
			if err != nil {
				log.Printf("Failed to clear %s: %v", section, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to clear content"})
				return
			}
			cleared = append(cleared, section)
		}
		c.JSON(http.StatusOK, gin.H{"cleared": cleared})
	})
}
