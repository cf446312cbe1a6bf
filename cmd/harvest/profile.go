package main

import (
	"encoding/json"
	"os"

	"github.com/harvestkit/harvest"
)

// DefaultProfile returns the built-in university news profile.
func DefaultProfile() harvest.Profile {
	return harvest.Profile{
		Name:            "binghamton-news",
		BaseURL:         "https://www.binghamton.edu/news/home",
		Selector:        "article, .story, .news-item",
		NoResultsMarker: "No Results Found",
		Instructions: "Extract all news stories from the page. For each story provide " +
			"the headline, the category or topic, a brief 2-3 sentence summary, the " +
			"complete absolute URL to the full story, and an engaging LinkedIn post " +
			"(100-150 words) suitable for sharing it. Convert relative URLs to " +
			"absolute by adding the https://www.binghamton.edu prefix. Return as " +
			"many stories as you can find in the content.",
		Schema: harvest.Schema{
			Fields: []harvest.Field{
				{Name: "story_title", Description: "The headline or title of the news story"},
				{Name: "story_category", Description: "The category or topic, e.g. 'Athletics' or 'Campus News'"},
				{Name: "story_summary", Description: "A brief 2-3 sentence summary of the story"},
				{Name: "story_url", Description: "The complete URL link to the full story"},
				{Name: "story_LinkedIn_post", Description: "An engaging LinkedIn post about this story with relevant hashtags"},
			},
			Required: []string{
				"story_title",
				"story_category",
				"story_summary",
				"story_url",
				"story_LinkedIn_post",
			},
			Identity: "story_title",
		},
	}
}

// LoadProfile reads a profile from a JSON file.
func LoadProfile(path string) (harvest.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return harvest.Profile{}, err
	}
	var p harvest.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return harvest.Profile{}, harvest.Errorf(harvest.EINVALID, "invalid profile file: %v", err)
	}
	if err := p.Validate(); err != nil {
		return harvest.Profile{}, err
	}
	return p, nil
}
