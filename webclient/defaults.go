package webclient

import "github.com/aaravpatel/portfolio/content"

// Static default content mirroring the page's initial markup. When a
// section never loads, or a singleton field comes back empty, rendering
// falls back to these values so no section ever shows a hole.

var DefaultHero = content.Hero{
	Tagline:    "Platform & Reliability Partner",
	Headline:   "Make launches feel calm and repeatable.",
	Subheading: "I design guardrails, CI/CD, and observability stacks so engineering orgs can ship trustworthy code without firefights.",
	Badges:     []string{"Kubernetes Ops", "GitHub Actions", "Terraform", "SRE Coaching"},
	Metrics: []content.Metric{
		{Value: "40+", Label: "services on shared pipelines"},
		{Value: "15", Label: "K8s clusters with SLOs"},
		{Value: "<20m", Label: "mean recovery target"},
	},
	PrimaryLabel:   "Book a working session",
	PrimaryURL:     "#contact",
	SecondaryLabel: "Download résumé",
	SecondaryURL:   "assets/Aarav-Patel-Resume.pdf",
}

var DefaultAbout = content.About{
	Heading: "From command line to business outcomes.",
	Summary: "I focus on the engineering fundamentals that matter: maintainable automation, predictable delivery, and visibility the entire company can rely on.",
	Bullets: "Self-documenting CI/CD blueprints\nProduction-ready Kubernetes guardrails\nSLO dashboards tied to business metrics",
}
