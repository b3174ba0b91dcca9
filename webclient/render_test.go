package webclient

import (
	"reflect"
	"testing"

	"github.com/aaravpatel/portfolio/content"
)

func TestContactHrefResolution(t *testing.T) {
	cases := []struct {
		details string
		href    string
		newTab  bool
	}{
		{"https://github.com/aarav", "https://github.com/aarav", true},
		{"http://example.com", "http://example.com", true},
		{"linkedin.com/in/aarav", "https://linkedin.com/in/aarav", true},
		{"me@example.com", "mailto:me@example.com", false},
		{"+1 (555) 123-4567", "tel:+15551234567", false},
		{"555 123 4567", "tel:5551234567", false},
		{"ask me anything", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		href, newTab := ContactHref(tc.details)
		if href != tc.href || newTab != tc.newTab {
			t.Errorf("ContactHref(%q) = %q, %v; want %q, %v", tc.details, href, newTab, tc.href, tc.newTab)
		}
	}
}

func TestContactIconSelection(t *testing.T) {
	cases := []struct {
		title   string
		details string
		want    Icon
	}{
		{"LinkedIn", "linkedin.com/in/aarav", IconLinkedIn},
		{"Code", "github.com/aarav", IconGitHub},
		{"Email", "me@example.com", IconEmail},
		{"Reach me", "hello@example.com", IconEmail},
		{"Phone", "call anytime", IconPhone},
		{"Cell", "555 123 4567", IconPhone},
		{"Website", "my portfolio", IconLink},
	}
	for _, tc := range cases {
		if got := contactIcon(tc.title, tc.details); got != tc.want {
			t.Errorf("contactIcon(%q, %q) = %q, want %q", tc.title, tc.details, got, tc.want)
		}
	}
}

func TestLinkedInBeatsOtherIconRules(t *testing.T) {
	// The details would match the email rule too; linkedin checks first.
	if got := contactIcon("Profile", "linkedin@example.com"); got != IconLinkedIn {
		t.Errorf("got %q", got)
	}
}

func TestRenderHeroFallsBackFieldByField(t *testing.T) {
	hero := content.Hero{Headline: "Custom headline"}
	view := RenderHero(hero, DefaultHero)

	if view.Headline != "Custom headline" {
		t.Errorf("server value lost: %q", view.Headline)
	}
	if view.Tagline != DefaultHero.Tagline {
		t.Errorf("empty field should fall back, got %q", view.Tagline)
	}
	if !reflect.DeepEqual(view.Badges, DefaultHero.Badges) {
		t.Errorf("empty badges should fall back, got %v", view.Badges)
	}

	hero.Badges = []string{"One"}
	if view := RenderHero(hero, DefaultHero); !reflect.DeepEqual(view.Badges, []string{"One"}) {
		t.Errorf("non-empty badges must win over defaults, got %v", view.Badges)
	}
}

func TestRenderAboutSplitsBullets(t *testing.T) {
	about := content.About{Heading: "H", Summary: "S", Bullets: "one\n\n two \n"}
	view := RenderAbout(about, DefaultAbout)
	if !reflect.DeepEqual(view.Bullets, []string{"one", "two"}) {
		t.Errorf("bullets: got %v", view.Bullets)
	}
}

func TestRenderProjectsDisplayOrder(t *testing.T) {
	// Newest-first from the API; the page shows insertion order.
	projects := []content.Project{
		{ID: 2, Title: "P2"},
		{ID: 1, Title: "P1", Image: "legacy.png"},
	}
	cards := RenderProjects(projects)
	if len(cards) != 2 || cards[0].Title != "P1" || cards[1].Title != "P2" {
		t.Fatalf("expected [P1, P2], got %+v", cards)
	}
	if !reflect.DeepEqual(cards[0].Images, []string{"legacy.png"}) {
		t.Errorf("legacy image should back an empty list, got %v", cards[0].Images)
	}
}

func TestCertificationCardMapping(t *testing.T) {
	card := certificationCard(content.Certification{
		Title: "CKA", Issuer: "CNCF", Year: "2024", Description: "Kubernetes admin",
	})
	if card.Tag != "2024" || card.Meta != "CNCF" || card.Title != "CKA" {
		t.Errorf("got %+v", card)
	}
}

func TestBlogCardLinkLabel(t *testing.T) {
	card := blogCard(content.Blog{Title: "T", Summary: "S", Link: "https://example.com/post"})
	if card.LinkLabel != "Read more" || card.LinkURL != "https://example.com/post" {
		t.Errorf("got %+v", card)
	}
}

func TestApplyHeroSkipsFocusedField(t *testing.T) {
	surface := newFakeSurface()
	surface.focused["hero.tagline"] = true

	ApplyHero(surface, HeroView{Tagline: "New tagline", Headline: "H"})

	if _, ok := surface.formValues["hero.tagline"]; ok {
		t.Error("focused field must not be overwritten")
	}
	if surface.formValues["hero.headline"] != "H" {
		t.Errorf("unfocused field should prefill, got %q", surface.formValues["hero.headline"])
	}
}

func TestApplyCardsRegistersMotion(t *testing.T) {
	surface := newFakeSurface()
	ApplyCards(surface, ContainerSkills, []CardView{{Title: "A"}, {Title: "B"}})

	if got := surface.cards[ContainerSkills]; len(got) != 2 {
		t.Fatalf("cards: got %v", got)
	}
	want := []string{"skills[0]", "skills[1]"}
	if !reflect.DeepEqual(surface.animated, want) {
		t.Errorf("animations: got %v", surface.animated)
	}
}
