// Package content holds the entity types shared by the API server and the
// web client model, plus the codecs for the delimited text form used in
// storage columns and edit forms.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Transit representations. JSON field names match the wire format the
// browser client consumes.

type Project struct {
	ID          int64    `json:"id"`
	Tag         string   `json:"tag"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Bullets     string   `json:"bullets"`
	LinkLabel   string   `json:"linkLabel"`
	LinkURL     string   `json:"linkUrl"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	CreatedAt   string   `json:"createdAt"`
}

type Skill struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

type Blog struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Link      string   `json:"link"`
	Images    []string `json:"images"`
	CreatedAt string   `json:"createdAt"`
}

type Certification struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Year        string `json:"year"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// FeaturedSkill doubles as the contact-link entity: Details carries a URL,
// email address, phone number, or plain label.
type FeaturedSkill struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

type About struct {
	Heading   string `json:"heading"`
	Summary   string `json:"summary"`
	Bullets   string `json:"bullets"`
	Photo     string `json:"photo"`
	UpdatedAt string `json:"updatedAt"`
}

type Metric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Hero struct {
	Tagline        string   `json:"tagline"`
	Headline       string   `json:"headline"`
	Subheading     string   `json:"subheading"`
	Badges         []string `json:"badges"`
	Metrics        []Metric `json:"metrics"`
	PrimaryLabel   string   `json:"primaryLabel"`
	PrimaryURL     string   `json:"primaryUrl"`
	SecondaryLabel string   `json:"secondaryLabel"`
	SecondaryURL   string   `json:"secondaryUrl"`
	UpdatedAt      string   `json:"updatedAt"`
}

// SplitLines turns canonical newline-delimited text into its list form.
// Items are trimmed and blank lines dropped. Never returns nil.
func SplitLines(value string) []string {
	out := []string{}
	for _, line := range strings.Split(value, "\n") {
		item := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// JoinLines is the inverse of SplitLines for well-formed items (no embedded
// newlines).
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

// ParseMetric parses a single "value | label" line. The label is optional.
// Returns false for a line that carries nothing.
func ParseMetric(line string) (Metric, bool) {
	value, label, _ := strings.Cut(line, "|")
	m := Metric{Value: strings.TrimSpace(value), Label: strings.TrimSpace(label)}
	if m.Value == "" && m.Label == "" {
		return Metric{}, false
	}
	return m, true
}

// ParseMetrics parses canonical newline-delimited metric text.
func ParseMetrics(value string) []Metric {
	out := []Metric{}
	for _, line := range SplitLines(value) {
		if m, ok := ParseMetric(line); ok {
			out = append(out, m)
		}
	}
	return out
}

// FormatMetric renders the canonical "value|label" line.
func FormatMetric(m Metric) string {
	return m.Value + "|" + m.Label
}

// FormatMetrics is the inverse of ParseMetrics for well-formed metrics
// (no embedded pipes or newlines in value or label).
func FormatMetrics(metrics []Metric) string {
	lines := make([]string, 0, len(metrics))
	for _, m := range metrics {
		if m.Value == "" && m.Label == "" {
			continue
		}
		lines = append(lines, FormatMetric(m))
	}
	return strings.Join(lines, "\n")
}

// ParseImageList decodes the images storage column. The column normally
// holds a JSON array; valid JSON that is not a string array yields nothing,
// while unparseable values fall back to comma/newline splitting. An empty
// column falls back to the legacy single-image column. Never returns nil.
func ParseImageList(value, legacy string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if legacy != "" {
			return []string{legacy}
		}
		return []string{}
	}
	if json.Valid([]byte(trimmed)) {
		var parsed []string
		if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
			return []string{}
		}
		out := []string{}
		for _, url := range parsed {
			if url = strings.TrimSpace(url); url != "" {
				out = append(out, url)
			}
		}
		return out
	}
	out := []string{}
	for _, part := range strings.FieldsFunc(trimmed, func(r rune) bool { return r == ',' || r == '\n' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// EncodeImageList serializes an image list to its JSON storage form.
// Blank entries are dropped; nil encodes as "[]".
func EncodeImageList(images []string) string {
	out := []string{}
	for _, url := range images {
		if url = strings.TrimSpace(url); url != "" {
			out = append(out, url)
		}
	}
	encoded, err := json.Marshal(out)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// LineList accepts either a JSON array of strings or raw newline-delimited
// text, normalizing both to a trimmed list with blanks dropped.
type LineList []string

func (l *LineList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		*l = SplitLines(raw)
		return nil
	}
	if trimmed[0] == '[' {
		var items []string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		out := LineList{}
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		*l = out
		return nil
	}
	return fmt.Errorf("expected string or array of strings")
}

// MetricList accepts an array of {value,label} objects, an array of
// "value|label" strings, or one raw newline-delimited string.
type MetricList []Metric

func (m *MetricList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = nil
		return nil
	}
	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		*m = ParseMetrics(raw)
		return nil
	}
	if trimmed[0] == '[' {
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return err
		}
		out := MetricList{}
		for _, entry := range entries {
			entry = bytes.TrimSpace(entry)
			if len(entry) == 0 {
				continue
			}
			switch entry[0] {
			case '"':
				var line string
				if err := json.Unmarshal(entry, &line); err != nil {
					return err
				}
				if metric, ok := ParseMetric(line); ok {
					out = append(out, metric)
				}
			case '{':
				var metric Metric
				if err := json.Unmarshal(entry, &metric); err != nil {
					return err
				}
				metric.Value = strings.TrimSpace(metric.Value)
				metric.Label = strings.TrimSpace(metric.Label)
				if metric.Value != "" || metric.Label != "" {
					out = append(out, metric)
				}
			default:
				return fmt.Errorf("metric entry must be a string or an object")
			}
		}
		*m = out
		return nil
	}
	return fmt.Errorf("expected string or array of metrics")
}

// Request payloads accepted by the write endpoints.

type ProjectRequest struct {
	Tag         string   `json:"tag"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Bullets     string   `json:"bullets"`
	LinkLabel   string   `json:"linkLabel"`
	LinkURL     string   `json:"linkUrl"`
	Image       string   `json:"image"`
	Images      LineList `json:"images"`
}

func (r *ProjectRequest) Normalize() {
	r.Tag = strings.TrimSpace(r.Tag)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Bullets = strings.TrimSpace(r.Bullets)
	r.LinkLabel = strings.TrimSpace(r.LinkLabel)
	r.LinkURL = strings.TrimSpace(r.LinkURL)
	r.Image = strings.TrimSpace(r.Image)
}

type SkillRequest struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

func (r *SkillRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Details = strings.TrimSpace(r.Details)
}

type BlogRequest struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Link    string   `json:"link"`
	Images  LineList `json:"images"`
}

func (r *BlogRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Summary = strings.TrimSpace(r.Summary)
	r.Link = strings.TrimSpace(r.Link)
}

type CertificationRequest struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

func (r *CertificationRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Issuer = strings.TrimSpace(r.Issuer)
	r.Year = strings.TrimSpace(r.Year)
	r.Description = strings.TrimSpace(r.Description)
}

type FeaturedSkillRequest struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

func (r *FeaturedSkillRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Details = strings.TrimSpace(r.Details)
}

type AboutRequest struct {
	Heading string `json:"heading"`
	Summary string `json:"summary"`
	Bullets string `json:"bullets"`
	Photo   string `json:"photo"`
}

func (r *AboutRequest) Normalize() {
	r.Heading = strings.TrimSpace(r.Heading)
	r.Summary = strings.TrimSpace(r.Summary)
	r.Bullets = strings.TrimSpace(r.Bullets)
	r.Photo = strings.TrimSpace(r.Photo)
}

// HeroRequest also accepts the snake_case label/url keys the first version
// of the edit form sent.
type HeroRequest struct {
	Tagline        string     `json:"tagline"`
	Headline       string     `json:"headline"`
	Subheading     string     `json:"subheading"`
	Badges         LineList   `json:"badges"`
	Metrics        MetricList `json:"metrics"`
	PrimaryLabel   string     `json:"primaryLabel"`
	PrimaryURL     string     `json:"primaryUrl"`
	SecondaryLabel string     `json:"secondaryLabel"`
	SecondaryURL   string     `json:"secondaryUrl"`

	AltPrimaryLabel   string `json:"primary_label"`
	AltPrimaryURL     string `json:"primary_url"`
	AltSecondaryLabel string `json:"secondary_label"`
	AltSecondaryURL   string `json:"secondary_url"`
}

func (r *HeroRequest) Normalize() {
	r.Tagline = strings.TrimSpace(r.Tagline)
	r.Headline = strings.TrimSpace(r.Headline)
	r.Subheading = strings.TrimSpace(r.Subheading)
	if r.PrimaryLabel == "" {
		r.PrimaryLabel = r.AltPrimaryLabel
	}
	if r.PrimaryURL == "" {
		r.PrimaryURL = r.AltPrimaryURL
	}
	if r.SecondaryLabel == "" {
		r.SecondaryLabel = r.AltSecondaryLabel
	}
	if r.SecondaryURL == "" {
		r.SecondaryURL = r.AltSecondaryURL
	}
	r.PrimaryLabel = strings.TrimSpace(r.PrimaryLabel)
	r.PrimaryURL = strings.TrimSpace(r.PrimaryURL)
	r.SecondaryLabel = strings.TrimSpace(r.SecondaryLabel)
	r.SecondaryURL = strings.TrimSpace(r.SecondaryURL)
}
