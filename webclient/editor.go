package webclient

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aaravpatel/portfolio/content"
)

const (
	// Forms persist at most five image URLs per section regardless of how
	// many files were attached or pasted.
	maxSectionImages = 5
	// Delay between a successful purge and the full reload that re-fetches
	// every section from the cleared store.
	purgeReloadDelay = 800 * time.Millisecond
)

// Status is the user-visible phase of a form submission.
type Status string

const (
	StatusSaving  Status = "saving"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// StatusSink receives submission feedback for a named form.
type StatusSink func(form string, status Status, message string)

// FormUI is the editor's view of the edit forms: reading field values,
// resetting them, and toggling the submit control.
type FormUI interface {
	Disable(form string)
	Enable(form string)
	Values(form string) map[string]string
	Reset(form string)
}

// ErrSubmitting is returned when a form is submitted while a previous
// submission is still in flight.
var ErrSubmitting = errors.New("form submission already in progress")

// Editor orchestrates form submission: payload construction, optional
// uploads, the persistence call, state merge, re-render, and feedback.
type Editor struct {
	api     *Client
	state   *State
	surface Surface
	forms   FormUI
	status  StatusSink
	confirm func(message string) bool
	reload  func()
	logger  *log.Logger

	mu         sync.Mutex
	submitting map[string]bool
}

// EditorConfig wires an Editor. Confirm defaults to denying, so purges are
// inert until the UI supplies a real confirmation prompt.
type EditorConfig struct {
	API     *Client
	State   *State
	Surface Surface
	Forms   FormUI
	Status  StatusSink
	Confirm func(message string) bool
	Reload  func()
	Logger  *log.Logger
}

func NewEditor(cfg EditorConfig) *Editor {
	e := &Editor{
		api:        cfg.API,
		state:      cfg.State,
		surface:    cfg.Surface,
		forms:      cfg.Forms,
		status:     cfg.Status,
		confirm:    cfg.Confirm,
		reload:     cfg.Reload,
		logger:     cfg.Logger,
		submitting: make(map[string]bool),
	}
	if e.status == nil {
		e.status = func(string, Status, string) {}
	}
	if e.confirm == nil {
		e.confirm = func(string) bool { return false }
	}
	if e.reload == nil {
		e.reload = func() {}
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e
}

// begin moves a form from Idle to Submitting. The returned cleanup returns
// it to Idle and re-enables the submit control on success and failure
// alike; callers defer it.
func (e *Editor) begin(form string) (func(), error) {
	e.mu.Lock()
	if e.submitting[form] {
		e.mu.Unlock()
		return nil, ErrSubmitting
	}
	e.submitting[form] = true
	e.mu.Unlock()

	e.forms.Disable(form)
	e.status(form, StatusSaving, "Saving…")
	return func() {
		e.mu.Lock()
		delete(e.submitting, form)
		e.mu.Unlock()
		e.forms.Enable(form)
	}, nil
}

func (e *Editor) fail(form string, err error) error {
	e.status(form, StatusError, errorMessage(err))
	return err
}

// errorMessage surfaces the server-reported text when there is one, with a
// generic fallback per failure class.
func errorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if Kind(err) == KindNetwork {
		return "Network error — the request timed out or could not reach the server."
	}
	return "Something went wrong. Please try again."
}

// collectImages uploads any attached files, then appends the form's pasted
// remote URLs, capping the combined list at the per-section maximum.
func (e *Editor) collectImages(ctx context.Context, values map[string]string, files []UploadFile) ([]string, error) {
	images := []string{}
	if len(files) > 0 {
		uploaded, err := e.api.Upload(ctx, files)
		if err != nil {
			return nil, err
		}
		for _, f := range uploaded {
			images = append(images, f.URL)
		}
	}
	images = append(images, content.SplitLines(values["images"])...)
	if len(images) > maxSectionImages {
		images = images[:maxSectionImages]
	}
	return images, nil
}

// SubmitHero replaces the hero singleton from the hero form.
func (e *Editor) SubmitHero(ctx context.Context) error {
	done, err := e.begin("hero")
	if err != nil {
		return err
	}
	defer done()

	values := e.forms.Values("hero")
	req := content.HeroRequest{
		Tagline:        values["tagline"],
		Headline:       values["headline"],
		Subheading:     values["subheading"],
		Badges:         content.LineList(content.SplitLines(values["badges"])),
		Metrics:        content.MetricList(content.ParseMetrics(values["metrics"])),
		PrimaryLabel:   values["primaryLabel"],
		PrimaryURL:     values["primaryUrl"],
		SecondaryLabel: values["secondaryLabel"],
		SecondaryURL:   values["secondaryUrl"],
	}
	hero, err := e.api.UpdateHero(ctx, req)
	if err != nil {
		return e.fail("hero", err)
	}
	e.state.SetHero(hero)
	ApplyHero(e.surface, RenderHero(hero, DefaultHero))
	e.status("hero", StatusSuccess, "Hero updated")
	return nil
}

// SubmitAbout replaces the about singleton, uploading a new photo first if
// one is attached.
func (e *Editor) SubmitAbout(ctx context.Context, photo *UploadFile) error {
	done, err := e.begin("about")
	if err != nil {
		return err
	}
	defer done()

	values := e.forms.Values("about")
	photoURL := values["photo"]
	if photo != nil {
		uploaded, err := e.api.Upload(ctx, []UploadFile{*photo})
		if err != nil {
			return e.fail("about", err)
		}
		if len(uploaded) > 0 {
			photoURL = uploaded[0].URL
		}
	}
	req := content.AboutRequest{
		Heading: values["heading"],
		Summary: values["summary"],
		Bullets: values["bullets"],
		Photo:   photoURL,
	}
	about, err := e.api.UpdateAbout(ctx, req)
	if err != nil {
		return e.fail("about", err)
	}
	e.state.SetAbout(about)
	ApplyAbout(e.surface, RenderAbout(about, DefaultAbout))
	e.status("about", StatusSuccess, "About section updated")
	return nil
}

// SubmitProject creates a project from the project form, uploading any
// attached images first.
func (e *Editor) SubmitProject(ctx context.Context, files []UploadFile) error {
	done, err := e.begin("project")
	if err != nil {
		return err
	}
	defer done()

	values := e.forms.Values("project")
	images, err := e.collectImages(ctx, values, files)
	if err != nil {
		return e.fail("project", err)
	}
	req := content.ProjectRequest{
		Tag:         values["tag"],
		Title:       values["title"],
		Description: values["description"],
		Bullets:     values["bullets"],
		LinkLabel:   values["linkLabel"],
		LinkURL:     values["linkUrl"],
		Images:      content.LineList(images),
	}
	project, err := e.api.CreateProject(ctx, req)
	if err != nil {
		return e.fail("project", err)
	}
	e.state.AppendProject(project)
	e.surface.AppendCard(ContainerProjects, projectCard(project))
	e.surface.RegisterScrollAnimation(cardElement(ContainerProjects, len(e.state.Projects())-1), cardMotionDistance)
	e.forms.Reset("project")
	e.status("project", StatusSuccess, "Project added")
	return nil
}

// SubmitSkill creates a skill from the skill form.
func (e *Editor) SubmitSkill(ctx context.Context) error {
	done, err := e.begin("skill")
	if err != nil {
		return err
	}
	defer done()

	values := e.forms.Values("skill")
	req := content.SkillRequest{Title: values["title"], Details: values["details"]}
	skill, err := e.api.CreateSkill(ctx, req)
	if err != nil {
		return e.fail("skill", err)
	}
	e.state.AppendSkill(skill)
	e.surface.AppendCard(ContainerSkills, skillCard(skill))
	e.surface.RegisterScrollAnimation(cardElement(ContainerSkills, len(e.state.Skills())-1), cardMotionDistance)
	e.forms.Reset("skill")
	e.status("skill", StatusSuccess, "Skill added")
	return nil
}

// SubmitBlog creates a blog entry, uploading any attached images first.
func (e *Editor) SubmitBlog(ctx context.Context, files []UploadFile) error {
	done, err := e.begin("blog")
	if err != nil {
		return err
	}
	defer done()

	values := e.forms.Values("blog")
	images, err := e.collectImages(ctx, values, files)
	if err != nil {
		return e.fail("blog", err)
	}
	req := content.BlogRequest{
		Title:   values["title"],
		Summary: values["summary"],
		Link:    values["link"],
		Images:  content.LineList(images),
	}
	blog, err := e.api.CreateBlog(ctx, req)
	if err != nil {
		return e.fail("blog", err)
	}
	e.state.AppendBlog(blog)
	e.surface.AppendCard(ContainerBlogs, blogCard(blog))
	e.surface.RegisterScrollAnimation(cardElement(ContainerBlogs, len(e.state.Blogs())-1), cardMotionDistance)
	e.forms.Reset("blog")
	e.status("blog", StatusSuccess, "Blog post added")
	return nil
}

// SubmitCertification creates a certification from its form.
func (e *Editor) SubmitCertification(ctx context.Context) error {
	done, err := e.begin("certification")
	if err != nil {
		return err
	}
	defer done()

	values := e.forms.Values("certification")
	req := content.CertificationRequest{
		Title:       values["title"],
		Issuer:      values["issuer"],
		Year:        values["year"],
		Description: values["description"],
	}
	cert, err := e.api.CreateCertification(ctx, req)
	if err != nil {
		return e.fail("certification", err)
	}
	e.state.AppendCertification(cert)
	e.surface.AppendCard(ContainerCertifications, certificationCard(cert))
	e.surface.RegisterScrollAnimation(cardElement(ContainerCertifications, len(e.state.Certifications())-1), cardMotionDistance)
	e.forms.Reset("certification")
	e.status("certification", StatusSuccess, "Certification added")
	return nil
}

// SubmitContact creates a contact link (featured skill) from its form.
func (e *Editor) SubmitContact(ctx context.Context) error {
	done, err := e.begin("contact")
	if err != nil {
		return err
	}
	defer done()

	values := e.forms.Values("contact")
	req := content.FeaturedSkillRequest{Title: values["title"], Details: values["details"]}
	item, err := e.api.CreateFeaturedSkill(ctx, req)
	if err != nil {
		return e.fail("contact", err)
	}
	e.state.AppendContact(item)
	e.surface.AppendContact(contactLink(item))
	e.surface.RegisterScrollAnimation(cardElement(ContainerContacts, len(e.state.Contacts())-1), cardMotionDistance)
	e.forms.Reset("contact")
	e.status("contact", StatusSuccess, "Contact link added")
	return nil
}

// Purge clears the named sections (all seven when empty) after an explicit
// confirmation, then schedules a full reload so every section re-fetches
// from the cleared store. Returns the sections the server cleared, or nil
// if the user declined.
func (e *Editor) Purge(ctx context.Context, sections []string) ([]string, error) {
	if len(sections) == 0 {
		sections = SectionNames(AllSections)
	}
	prompt := fmt.Sprintf("This will permanently clear %d section(s) and cannot be undone. Continue?", len(sections))
	if !e.confirm(prompt) {
		return nil, nil
	}
	cleared, err := e.api.Purge(ctx, sections)
	if err != nil {
		e.status("purge", StatusError, errorMessage(err))
		return nil, err
	}
	e.status("purge", StatusSuccess, fmt.Sprintf("Cleared %d section(s) — reloading", len(cleared)))
	e.logger.Printf("purged sections: %v", cleared)
	time.AfterFunc(purgeReloadDelay, e.reload)
	return cleared, nil
}
