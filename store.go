package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/aaravpatel/portfolio/content"
)

// Store wraps the single-file SQLite database holding all seven content
// sections.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tag TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	bullets TEXT DEFAULT "",
	link_label TEXT DEFAULT "",
	link_url TEXT DEFAULT "",
	image TEXT DEFAULT "",
	images TEXT DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS skills (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	details TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS blogs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	summary TEXT NOT NULL,
	link TEXT NOT NULL,
	images TEXT DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS certifications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	issuer TEXT DEFAULT "",
	year TEXT DEFAULT "",
	description TEXT DEFAULT "",
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS about (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	heading TEXT DEFAULT "",
	summary TEXT DEFAULT "",
	bullets TEXT DEFAULT "",
	photo TEXT DEFAULT "",
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS featured_skills (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	details TEXT DEFAULT "",
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS hero_content (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	tagline TEXT DEFAULT "",
	headline TEXT DEFAULT "",
	subheading TEXT DEFAULT "",
	badges TEXT DEFAULT "",
	metrics TEXT DEFAULT "",
	primary_label TEXT DEFAULT "",
	primary_url TEXT DEFAULT "",
	secondary_label TEXT DEFAULT "",
	secondary_url TEXT DEFAULT "",
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const seedAbout = `
INSERT OR IGNORE INTO about (id, heading, summary, bullets, photo)
VALUES (
	1,
	'From command line to business outcomes.',
	'I focus on the engineering fundamentals that matter: maintainable automation, predictable delivery, and visibility the entire company can rely on.',
	'Self-documenting CI/CD blueprints' || char(10) || 'Production-ready Kubernetes guardrails' || char(10) || 'SLO dashboards tied to business metrics',
	''
)`

const seedHero = `
INSERT OR IGNORE INTO hero_content (
	id, tagline, headline, subheading, badges, metrics,
	primary_label, primary_url, secondary_label, secondary_url
) VALUES (
	1,
	'Platform & Reliability Partner',
	'Make launches feel calm and repeatable.',
	'I design guardrails, CI/CD, and observability stacks so engineering orgs can ship trustworthy code without firefights.',
	'Kubernetes Ops' || char(10) || 'GitHub Actions' || char(10) || 'Terraform' || char(10) || 'SRE Coaching',
	'40+|services on shared pipelines' || char(10) || '15|K8s clusters with SLOs' || char(10) || '<20m|mean recovery target',
	'Book a working session',
	'#contact',
	'Download résumé',
	'assets/Aarav-Patel-Resume.pdf'
)`

// OpenStore opens (creating if needed) the content database, applies the
// schema and additive migrations, and seeds the singleton rows. Seeding is
// idempotent: an existing row is never overwritten.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db}

	// images arrived after the first deployments; older databases predate it.
	if err := s.ensureColumn("projects", "images", "TEXT DEFAULT '[]'"); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.ensureColumn("blogs", "images", "TEXT DEFAULT '[]'"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(seedAbout); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed about: %w", err)
	}
	if _, err := db.Exec(seedHero); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed hero: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ensureColumn adds a column to an existing table if it is not there yet,
// so schema changes stay additive across old database files.
func (s *Store) ensureColumn(table, column, definition string) error {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?", table)
	if err := s.db.QueryRow(query, column).Scan(&count); err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}
	log.Printf("Adding column %s.%s", table, column)
	alter := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition)
	if _, err := s.db.Exec(alter); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}

// Projects

func mapProject(id int64, tag, title, description, bullets, linkLabel, linkURL, image, images, createdAt string) content.Project {
	list := content.ParseImageList(images, image)
	if image == "" && len(list) > 0 {
		image = list[0]
	}
	return content.Project{
		ID:          id,
		Tag:         tag,
		Title:       title,
		Description: description,
		Bullets:     bullets,
		LinkLabel:   linkLabel,
		LinkURL:     linkURL,
		Image:       image,
		Images:      list,
		CreatedAt:   createdAt,
	}
}

func (s *Store) InsertProject(req content.ProjectRequest) (content.Project, error) {
	result, err := s.db.Exec(`
		INSERT INTO projects (tag, title, description, bullets, link_label, link_url, image, images)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Tag, req.Title, req.Description, req.Bullets,
		req.LinkLabel, req.LinkURL, req.Image, content.EncodeImageList(req.Images))
	if err != nil {
		return content.Project{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return content.Project{}, err
	}
	return s.GetProject(id)
}

func (s *Store) GetProject(id int64) (content.Project, error) {
	row := s.db.QueryRow(`
		SELECT id, tag, title, description, bullets, link_label, link_url, image, images, created_at
		FROM projects WHERE id = ?`, id)
	var (
		pid                                                              int64
		tag, title, description, bullets, linkLabel, linkURL, image, raw string
		createdAt                                                        string
	)
	if err := row.Scan(&pid, &tag, &title, &description, &bullets, &linkLabel, &linkURL, &image, &raw, &createdAt); err != nil {
		return content.Project{}, err
	}
	return mapProject(pid, tag, title, description, bullets, linkLabel, linkURL, image, raw, createdAt), nil
}

func (s *Store) ListProjects() ([]content.Project, error) {
	rows, err := s.db.Query(`
		SELECT id, tag, title, description, bullets, link_label, link_url, image, images, created_at
		FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []content.Project{}
	for rows.Next() {
		var (
			id                                                               int64
			tag, title, description, bullets, linkLabel, linkURL, image, raw string
			createdAt                                                        string
		)
		if err := rows.Scan(&id, &tag, &title, &description, &bullets, &linkLabel, &linkURL, &image, &raw, &createdAt); err != nil {
			return nil, err
		}
		projects = append(projects, mapProject(id, tag, title, description, bullets, linkLabel, linkURL, image, raw, createdAt))
	}
	return projects, rows.Err()
}

func (s *Store) ClearProjects() error {
	_, err := s.db.Exec("DELETE FROM projects")
	return err
}

// Skills

func (s *Store) InsertSkill(req content.SkillRequest) (content.Skill, error) {
	result, err := s.db.Exec("INSERT INTO skills (title, details) VALUES (?, ?)", req.Title, req.Details)
	if err != nil {
		return content.Skill{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return content.Skill{}, err
	}
	var skill content.Skill
	row := s.db.QueryRow("SELECT id, title, details, created_at FROM skills WHERE id = ?", id)
	if err := row.Scan(&skill.ID, &skill.Title, &skill.Details, &skill.CreatedAt); err != nil {
		return content.Skill{}, err
	}
	return skill, nil
}

func (s *Store) ListSkills() ([]content.Skill, error) {
	rows, err := s.db.Query("SELECT id, title, details, created_at FROM skills ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []content.Skill{}
	for rows.Next() {
		var skill content.Skill
		if err := rows.Scan(&skill.ID, &skill.Title, &skill.Details, &skill.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (s *Store) ClearSkills() error {
	_, err := s.db.Exec("DELETE FROM skills")
	return err
}

// Blogs

func (s *Store) InsertBlog(req content.BlogRequest) (content.Blog, error) {
	result, err := s.db.Exec(`
		INSERT INTO blogs (title, summary, link, images) VALUES (?, ?, ?, ?)`,
		req.Title, req.Summary, req.Link, content.EncodeImageList(req.Images))
	if err != nil {
		return content.Blog{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return content.Blog{}, err
	}
	row := s.db.QueryRow("SELECT id, title, summary, link, images, created_at FROM blogs WHERE id = ?", id)
	var (
		blog content.Blog
		raw  string
	)
	if err := row.Scan(&blog.ID, &blog.Title, &blog.Summary, &blog.Link, &raw, &blog.CreatedAt); err != nil {
		return content.Blog{}, err
	}
	blog.Images = content.ParseImageList(raw, "")
	return blog, nil
}

func (s *Store) ListBlogs() ([]content.Blog, error) {
	rows, err := s.db.Query("SELECT id, title, summary, link, images, created_at FROM blogs ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []content.Blog{}
	for rows.Next() {
		var (
			blog content.Blog
			raw  string
		)
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Summary, &blog.Link, &raw, &blog.CreatedAt); err != nil {
			return nil, err
		}
		blog.Images = content.ParseImageList(raw, "")
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func (s *Store) ClearBlogs() error {
	_, err := s.db.Exec("DELETE FROM blogs")
	return err
}

// Certifications

func (s *Store) InsertCertification(req content.CertificationRequest) (content.Certification, error) {
	result, err := s.db.Exec(`
		INSERT INTO certifications (title, issuer, year, description) VALUES (?, ?, ?, ?)`,
		req.Title, req.Issuer, req.Year, req.Description)
	if err != nil {
		return content.Certification{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return content.Certification{}, err
	}
	var cert content.Certification
	row := s.db.QueryRow("SELECT id, title, issuer, year, description, created_at FROM certifications WHERE id = ?", id)
	if err := row.Scan(&cert.ID, &cert.Title, &cert.Issuer, &cert.Year, &cert.Description, &cert.CreatedAt); err != nil {
		return content.Certification{}, err
	}
	return cert, nil
}

func (s *Store) ListCertifications() ([]content.Certification, error) {
	rows, err := s.db.Query("SELECT id, title, issuer, year, description, created_at FROM certifications ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := []content.Certification{}
	for rows.Next() {
		var cert content.Certification
		if err := rows.Scan(&cert.ID, &cert.Title, &cert.Issuer, &cert.Year, &cert.Description, &cert.CreatedAt); err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	return certs, rows.Err()
}

func (s *Store) ClearCertifications() error {
	_, err := s.db.Exec("DELETE FROM certifications")
	return err
}

// Featured skills (contact links)

func (s *Store) InsertFeaturedSkill(req content.FeaturedSkillRequest) (content.FeaturedSkill, error) {
	result, err := s.db.Exec("INSERT INTO featured_skills (title, details) VALUES (?, ?)", req.Title, req.Details)
	if err != nil {
		return content.FeaturedSkill{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return content.FeaturedSkill{}, err
	}
	var fs content.FeaturedSkill
	row := s.db.QueryRow("SELECT id, title, details, created_at FROM featured_skills WHERE id = ?", id)
	if err := row.Scan(&fs.ID, &fs.Title, &fs.Details, &fs.CreatedAt); err != nil {
		return content.FeaturedSkill{}, err
	}
	return fs, nil
}

func (s *Store) ListFeaturedSkills() ([]content.FeaturedSkill, error) {
	rows, err := s.db.Query("SELECT id, title, details, created_at FROM featured_skills ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []content.FeaturedSkill{}
	for rows.Next() {
		var fs content.FeaturedSkill
		if err := rows.Scan(&fs.ID, &fs.Title, &fs.Details, &fs.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, fs)
	}
	return items, rows.Err()
}

func (s *Store) ClearFeaturedSkills() error {
	_, err := s.db.Exec("DELETE FROM featured_skills")
	return err
}

// About (singleton, id = 1)

func (s *Store) GetAbout() (content.About, error) {
	row := s.db.QueryRow("SELECT heading, summary, bullets, photo, updated_at FROM about WHERE id = 1")
	var about content.About
	err := row.Scan(&about.Heading, &about.Summary, &about.Bullets, &about.Photo, &about.UpdatedAt)
	if err == sql.ErrNoRows {
		return content.About{}, nil
	}
	if err != nil {
		return content.About{}, err
	}
	return about, nil
}

func (s *Store) UpdateAbout(req content.AboutRequest) error {
	_, err := s.db.Exec(`
		UPDATE about
		SET heading = ?, summary = ?, bullets = ?, photo = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		req.Heading, req.Summary, req.Bullets, req.Photo)
	return err
}

// ClearAbout blanks the singleton's fields. The row itself stays.
func (s *Store) ClearAbout() error {
	_, err := s.db.Exec(`
		UPDATE about
		SET heading = '', summary = '', bullets = '', photo = '', updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`)
	return err
}

// Hero (singleton, id = 1)

func (s *Store) GetHero() (content.Hero, error) {
	row := s.db.QueryRow(`
		SELECT tagline, headline, subheading, badges, metrics,
		       primary_label, primary_url, secondary_label, secondary_url, updated_at
		FROM hero_content WHERE id = 1`)
	var (
		hero            content.Hero
		badges, metrics string
	)
	err := row.Scan(&hero.Tagline, &hero.Headline, &hero.Subheading, &badges, &metrics,
		&hero.PrimaryLabel, &hero.PrimaryURL, &hero.SecondaryLabel, &hero.SecondaryURL, &hero.UpdatedAt)
	if err == sql.ErrNoRows {
		return content.Hero{Badges: []string{}, Metrics: []content.Metric{}}, nil
	}
	if err != nil {
		return content.Hero{}, err
	}
	hero.Badges = content.SplitLines(badges)
	hero.Metrics = content.ParseMetrics(metrics)
	return hero, nil
}

func (s *Store) UpdateHero(req content.HeroRequest) error {
	_, err := s.db.Exec(`
		UPDATE hero_content
		SET tagline = ?, headline = ?, subheading = ?, badges = ?, metrics = ?,
		    primary_label = ?, primary_url = ?, secondary_label = ?, secondary_url = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		req.Tagline, req.Headline, req.Subheading,
		content.JoinLines(req.Badges), content.FormatMetrics(req.Metrics),
		req.PrimaryLabel, req.PrimaryURL, req.SecondaryLabel, req.SecondaryURL)
	return err
}

// ClearHero blanks the singleton's fields. The row itself stays.
func (s *Store) ClearHero() error {
	_, err := s.db.Exec(`
		UPDATE hero_content
		SET tagline = '', headline = '', subheading = '', badges = '', metrics = '',
		    primary_label = '', primary_url = '', secondary_label = '', secondary_url = '',
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`)
	return err
}
