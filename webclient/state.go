package webclient

import (
	"context"
	"log"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/aaravpatel/portfolio/content"
)

// Section names the seven editable content sections.
type Section string

const (
	SectionHero           Section = "hero"
	SectionAbout          Section = "about"
	SectionProjects       Section = "projects"
	SectionSkills         Section = "skills"
	SectionBlogs          Section = "blogs"
	SectionCertifications Section = "certifications"
	SectionContacts       Section = "contacts"
)

var AllSections = []Section{
	SectionHero, SectionAbout, SectionProjects, SectionSkills,
	SectionBlogs, SectionCertifications, SectionContacts,
}

// SectionNames returns the plain string form the purge endpoint expects.
func SectionNames(sections []Section) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	return names
}

// State holds the last successful server response per section. Singleton
// sections track whether a server value has arrived at all, so renderers
// can fall back to the static defaults instead of blank fields.
type State struct {
	mu sync.RWMutex

	hero        content.Hero
	heroLoaded  bool
	about       content.About
	aboutLoaded bool

	projects       []content.Project
	skills         []content.Skill
	blogs          []content.Blog
	certifications []content.Certification
	contacts       []content.FeaturedSkill

	unlocked bool
}

func NewState() *State {
	return &State{}
}

func (s *State) Hero() (content.Hero, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hero, s.heroLoaded
}

func (s *State) SetHero(hero content.Hero) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hero = hero
	s.heroLoaded = true
}

func (s *State) About() (content.About, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.about, s.aboutLoaded
}

func (s *State) SetAbout(about content.About) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.about = about
	s.aboutLoaded = true
}

func (s *State) Projects() []content.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]content.Project(nil), s.projects...)
}

func (s *State) SetProjects(projects []content.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]content.Project(nil), projects...)
}

// AppendProject merges a newly created project. Lists hold the server's
// newest-first order, so new entries go to the front.
func (s *State) AppendProject(project content.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]content.Project{project}, s.projects...)
}

func (s *State) Skills() []content.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]content.Skill(nil), s.skills...)
}

func (s *State) SetSkills(skills []content.Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = append([]content.Skill(nil), skills...)
}

func (s *State) AppendSkill(skill content.Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = append([]content.Skill{skill}, s.skills...)
}

func (s *State) Blogs() []content.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]content.Blog(nil), s.blogs...)
}

func (s *State) SetBlogs(blogs []content.Blog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = append([]content.Blog(nil), blogs...)
}

func (s *State) AppendBlog(blog content.Blog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = append([]content.Blog{blog}, s.blogs...)
}

func (s *State) Certifications() []content.Certification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]content.Certification(nil), s.certifications...)
}

func (s *State) SetCertifications(certs []content.Certification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.certifications = append([]content.Certification(nil), certs...)
}

func (s *State) AppendCertification(cert content.Certification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.certifications = append([]content.Certification{cert}, s.certifications...)
}

func (s *State) Contacts() []content.FeaturedSkill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]content.FeaturedSkill(nil), s.contacts...)
}

func (s *State) SetContacts(contacts []content.FeaturedSkill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]content.FeaturedSkill(nil), contacts...)
}

func (s *State) AppendContact(contact content.FeaturedSkill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]content.FeaturedSkill{contact}, s.contacts...)
}

// Unlocked reports the local edit-mode flag. It is client-side state only;
// the server does not enforce it.
func (s *State) Unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked
}

func (s *State) SetUnlocked(unlocked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = unlocked
}

// Loader performs the initial page load: all seven sections fetched in
// parallel and joined before the page counts as loaded.
type Loader struct {
	api    *Client
	state  *State
	logger *log.Logger
}

func NewLoader(api *Client, state *State, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{api: api, state: state, logger: logger}
}

// LoadAll fetches every section concurrently. Each fetch is fault-isolated:
// a failure leaves that section on its static defaults, logs a warning, and
// is reported in the returned slice. The other sections still load.
func (l *Loader) LoadAll(ctx context.Context) []Section {
	var (
		mu     sync.Mutex
		failed []Section
	)
	fail := func(section Section, err error) {
		l.logger.Printf("warning: failed to load %s section: %v", section, err)
		mu.Lock()
		failed = append(failed, section)
		mu.Unlock()
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		if hero, err := l.api.Hero(ctx); err != nil {
			fail(SectionHero, err)
		} else {
			l.state.SetHero(hero)
		}
	})
	wg.Go(func() {
		if about, err := l.api.About(ctx); err != nil {
			fail(SectionAbout, err)
		} else {
			l.state.SetAbout(about)
		}
	})
	wg.Go(func() {
		if projects, err := l.api.Projects(ctx); err != nil {
			fail(SectionProjects, err)
		} else {
			l.state.SetProjects(projects)
		}
	})
	wg.Go(func() {
		if skills, err := l.api.Skills(ctx); err != nil {
			fail(SectionSkills, err)
		} else {
			l.state.SetSkills(skills)
		}
	})
	wg.Go(func() {
		if blogs, err := l.api.Blogs(ctx); err != nil {
			fail(SectionBlogs, err)
		} else {
			l.state.SetBlogs(blogs)
		}
	})
	wg.Go(func() {
		if certs, err := l.api.Certifications(ctx); err != nil {
			fail(SectionCertifications, err)
		} else {
			l.state.SetCertifications(certs)
		}
	})
	wg.Go(func() {
		if contacts, err := l.api.FeaturedSkills(ctx); err != nil {
			fail(SectionContacts, err)
		} else {
			l.state.SetContacts(contacts)
		}
	})
	wg.Wait()
	return failed
}
