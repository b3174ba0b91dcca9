// Command preview loads every content section from a running portfolio API
// and prints the rendered views, which makes it a quick smoke check for the
// content sync pipeline without opening a browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/aaravpatel/portfolio/webclient"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "portfolio API base URL")
	flag.Parse()

	api := webclient.NewClient(*baseURL)
	state := webclient.NewState()
	loader := webclient.NewLoader(api, state, log.Default())

	ctx := context.Background()
	failed := loader.LoadAll(ctx)
	for _, section := range failed {
		fmt.Printf("(!) %s failed to load, showing defaults\n", section)
	}

	hero, _ := state.Hero()
	heroView := webclient.RenderHero(hero, webclient.DefaultHero)
	fmt.Printf("== Hero ==\n%s\n%s\n%s\n", heroView.Tagline, heroView.Headline, heroView.Subheading)
	fmt.Printf("badges: %s\n", strings.Join(heroView.Badges, " · "))
	for _, m := range heroView.Metrics {
		fmt.Printf("  %s — %s\n", m.Value, m.Label)
	}

	about, _ := state.About()
	aboutView := webclient.RenderAbout(about, webclient.DefaultAbout)
	fmt.Printf("\n== About ==\n%s\n%s\n", aboutView.Heading, aboutView.Summary)
	for _, b := range aboutView.Bullets {
		fmt.Printf("  - %s\n", b)
	}

	printCards("Projects", webclient.RenderProjects(state.Projects()))
	printCards("Skills", webclient.RenderSkills(state.Skills()))
	printCards("Blogs", webclient.RenderBlogs(state.Blogs()))
	printCards("Certifications", webclient.RenderCertifications(state.Certifications()))

	fmt.Printf("\n== Contacts ==\n")
	for _, link := range webclient.RenderContacts(state.Contacts()) {
		target := link.Href
		if target == "" {
			target = "(no link)"
		}
		fmt.Printf("  [%s] %s → %s\n", link.Icon, link.Title, target)
	}
}

func printCards(title string, cards []webclient.CardView) {
	fmt.Printf("\n== %s ==\n", title)
	for _, card := range cards {
		label := card.Title
		if card.Tag != "" {
			label = card.Tag + " · " + label
		}
		fmt.Printf("  %s\n", label)
		if card.Description != "" {
			fmt.Printf("    %s\n", card.Description)
		}
		if len(card.Images) > 0 {
			fmt.Printf("    images: %d\n", len(card.Images))
		}
	}
}
