package webclient

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aaravpatel/portfolio/content"
)

// Renderers are pure functions from content state to view descriptions.
// They never touch the UI; Apply* hands the views to a Surface, which is
// where the DOM (or any other presentation) binds in.

// Containers the list renderers write into.
const (
	ContainerProjects       = "projects"
	ContainerSkills         = "skills"
	ContainerBlogs          = "blogs"
	ContainerCertifications = "certifications"
	ContainerContacts       = "contacts"
)

// Scroll-in distance for cards, matching the decorative motion layer.
const cardMotionDistance = 35

type HeroView struct {
	Tagline        string
	Headline       string
	Subheading     string
	Badges         []string
	Metrics        []content.Metric
	PrimaryLabel   string
	PrimaryURL     string
	SecondaryLabel string
	SecondaryURL   string
}

type AboutView struct {
	Heading string
	Summary string
	Bullets []string
	Photo   string
}

// CardView is the shared shape for project, skill, blog, and certification
// cards. Unused fields stay empty.
type CardView struct {
	Tag         string
	Title       string
	Meta        string
	Description string
	Bullets     []string
	LinkLabel   string
	LinkURL     string
	Images      []string
}

type Icon string

const (
	IconLinkedIn Icon = "linkedin"
	IconGitHub   Icon = "github"
	IconEmail    Icon = "email"
	IconPhone    Icon = "phone"
	IconLink     Icon = "link"
)

type ContactLinkView struct {
	Title   string
	Details string
	Icon    Icon
	Href    string
	NewTab  bool
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// RenderHero resolves the hero view, falling back field-by-field to the
// static defaults so an emptied field never renders as a hole.
func RenderHero(hero, defaults content.Hero) HeroView {
	view := HeroView{
		Tagline:        fallback(hero.Tagline, defaults.Tagline),
		Headline:       fallback(hero.Headline, defaults.Headline),
		Subheading:     fallback(hero.Subheading, defaults.Subheading),
		Badges:         hero.Badges,
		Metrics:        hero.Metrics,
		PrimaryLabel:   fallback(hero.PrimaryLabel, defaults.PrimaryLabel),
		PrimaryURL:     fallback(hero.PrimaryURL, defaults.PrimaryURL),
		SecondaryLabel: fallback(hero.SecondaryLabel, defaults.SecondaryLabel),
		SecondaryURL:   fallback(hero.SecondaryURL, defaults.SecondaryURL),
	}
	if len(view.Badges) == 0 {
		view.Badges = defaults.Badges
	}
	if len(view.Metrics) == 0 {
		view.Metrics = defaults.Metrics
	}
	return view
}

func RenderAbout(about, defaults content.About) AboutView {
	bullets := about.Bullets
	if strings.TrimSpace(bullets) == "" {
		bullets = defaults.Bullets
	}
	return AboutView{
		Heading: fallback(about.Heading, defaults.Heading),
		Summary: fallback(about.Summary, defaults.Summary),
		Bullets: content.SplitLines(bullets),
		Photo:   fallback(about.Photo, defaults.Photo),
	}
}

// reversed returns a copy in opposite order. The API serves lists newest
// first; the page displays them in insertion order.
func reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

func projectCard(p content.Project) CardView {
	images := p.Images
	if len(images) == 0 && p.Image != "" {
		images = []string{p.Image}
	}
	return CardView{
		Tag:         p.Tag,
		Title:       p.Title,
		Description: p.Description,
		Bullets:     content.SplitLines(p.Bullets),
		LinkLabel:   p.LinkLabel,
		LinkURL:     p.LinkURL,
		Images:      images,
	}
}

func skillCard(s content.Skill) CardView {
	return CardView{Title: s.Title, Description: s.Details}
}

func blogCard(b content.Blog) CardView {
	return CardView{
		Title:       b.Title,
		Description: b.Summary,
		LinkLabel:   "Read more",
		LinkURL:     b.Link,
		Images:      b.Images,
	}
}

func certificationCard(c content.Certification) CardView {
	return CardView{
		Tag:         c.Year,
		Title:       c.Title,
		Meta:        c.Issuer,
		Description: c.Description,
	}
}

func RenderProjects(projects []content.Project) []CardView {
	cards := make([]CardView, 0, len(projects))
	for _, p := range reversed(projects) {
		cards = append(cards, projectCard(p))
	}
	return cards
}

func RenderSkills(skills []content.Skill) []CardView {
	cards := make([]CardView, 0, len(skills))
	for _, s := range reversed(skills) {
		cards = append(cards, skillCard(s))
	}
	return cards
}

func RenderBlogs(blogs []content.Blog) []CardView {
	cards := make([]CardView, 0, len(blogs))
	for _, b := range reversed(blogs) {
		cards = append(cards, blogCard(b))
	}
	return cards
}

func RenderCertifications(certs []content.Certification) []CardView {
	cards := make([]CardView, 0, len(certs))
	for _, c := range reversed(certs) {
		cards = append(cards, certificationCard(c))
	}
	return cards
}

var digitRun = regexp.MustCompile(`[0-9]{3,}`)

// contactIcon picks an icon from the combined title and details text.
// Checks run in a fixed order; the first match wins.
func contactIcon(title, details string) Icon {
	text := strings.ToLower(title + " " + details)
	switch {
	case strings.Contains(text, "linkedin"):
		return IconLinkedIn
	case strings.Contains(text, "github"):
		return IconGitHub
	case strings.Contains(text, "mail") || strings.Contains(text, "@"):
		return IconEmail
	case strings.Contains(text, "phone") || digitRun.MatchString(text):
		return IconPhone
	default:
		return IconLink
	}
}

var domainish = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+(/\S*)?$`)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ContactHref resolves a contact detail string to a link target. Web URLs
// open in a new context; scheme-less domain-shaped values get https
// prefixed. Values that resolve to nothing render as plain labels.
func ContactHref(details string) (href string, newTab bool) {
	d := strings.TrimSpace(details)
	if d == "" {
		return "", false
	}
	lower := strings.ToLower(d)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return d, true
	}
	if strings.Contains(d, "@") && !strings.ContainsAny(d, " \t") {
		return "mailto:" + d, false
	}
	if domainish.MatchString(d) {
		return "https://" + d, true
	}
	digits := nonDigits.ReplaceAllString(d, "")
	if len(digits) >= 7 {
		if strings.HasPrefix(d, "+") {
			return "tel:+" + digits, false
		}
		return "tel:" + digits, false
	}
	return "", false
}

func contactLink(fs content.FeaturedSkill) ContactLinkView {
	href, newTab := ContactHref(fs.Details)
	return ContactLinkView{
		Title:   fs.Title,
		Details: fs.Details,
		Icon:    contactIcon(fs.Title, fs.Details),
		Href:    href,
		NewTab:  newTab,
	}
}

func RenderContacts(items []content.FeaturedSkill) []ContactLinkView {
	links := make([]ContactLinkView, 0, len(items))
	for _, item := range reversed(items) {
		links = append(links, contactLink(item))
	}
	return links
}

// Surface is the outermost UI binding. ShowHero/ShowAbout update existing
// nodes in place; ReplaceCards swaps a container's children wholesale.
// HasFocus guards form prefills so an in-flight fetch never clobbers
// active typing. RegisterScrollAnimation is a no-op-safe decorative hook.
type Surface interface {
	ShowHero(view HeroView)
	ShowAbout(view AboutView)
	ReplaceCards(container string, cards []CardView)
	AppendCard(container string, card CardView)
	ReplaceContacts(links []ContactLinkView)
	AppendContact(link ContactLinkView)
	SetFormValue(field, value string)
	HasFocus(field string) bool
	RegisterScrollAnimation(element string, distance int)
}

func cardElement(container string, index int) string {
	return fmt.Sprintf("%s[%d]", container, index)
}

// setForm prefills a form field unless the user is typing in it.
func setForm(s Surface, field, value string) {
	if s.HasFocus(field) {
		return
	}
	s.SetFormValue(field, value)
}

// ApplyHero pushes the hero view to the page and prefills the hero form
// with the canonical editing text for badges and metrics.
func ApplyHero(s Surface, view HeroView) {
	s.ShowHero(view)
	setForm(s, "hero.tagline", view.Tagline)
	setForm(s, "hero.headline", view.Headline)
	setForm(s, "hero.subheading", view.Subheading)
	setForm(s, "hero.badges", content.JoinLines(view.Badges))
	setForm(s, "hero.metrics", content.FormatMetrics(view.Metrics))
	setForm(s, "hero.primaryLabel", view.PrimaryLabel)
	setForm(s, "hero.primaryUrl", view.PrimaryURL)
	setForm(s, "hero.secondaryLabel", view.SecondaryLabel)
	setForm(s, "hero.secondaryUrl", view.SecondaryURL)
}

func ApplyAbout(s Surface, view AboutView) {
	s.ShowAbout(view)
	setForm(s, "about.heading", view.Heading)
	setForm(s, "about.summary", view.Summary)
	setForm(s, "about.bullets", content.JoinLines(view.Bullets))
	setForm(s, "about.photo", view.Photo)
}

// ApplyCards replaces a list container and re-registers the scroll motion
// for every card it now holds.
func ApplyCards(s Surface, container string, cards []CardView) {
	s.ReplaceCards(container, cards)
	for i := range cards {
		s.RegisterScrollAnimation(cardElement(container, i), cardMotionDistance)
	}
}

func ApplyContacts(s Surface, links []ContactLinkView) {
	s.ReplaceContacts(links)
	for i := range links {
		s.RegisterScrollAnimation(cardElement(ContainerContacts, i), cardMotionDistance)
	}
}

// ApplyState renders every section from the current state. Sections with
// no server value fall back to the static defaults.
func ApplyState(s Surface, state *State) {
	hero, _ := state.Hero()
	ApplyHero(s, RenderHero(hero, DefaultHero))
	about, _ := state.About()
	ApplyAbout(s, RenderAbout(about, DefaultAbout))
	ApplyCards(s, ContainerProjects, RenderProjects(state.Projects()))
	ApplyCards(s, ContainerSkills, RenderSkills(state.Skills()))
	ApplyCards(s, ContainerBlogs, RenderBlogs(state.Blogs()))
	ApplyCards(s, ContainerCertifications, RenderCertifications(state.Certifications()))
	ApplyContacts(s, RenderContacts(state.Contacts()))
}
