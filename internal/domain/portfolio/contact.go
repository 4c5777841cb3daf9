package portfolio

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ContactLink struct {
	Platform    string `json:"platform"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
	Handle      string `json:"handle,omitempty"`
}

type ContactGroup struct {
	Title string        `json:"title"`
	Links []ContactLink `json:"links"`
}

// PlatformName turns a snake_case platform key into a display name:
// "personal_blog" -> "Personal Blog".
func PlatformName(key string) string {
	// Casers carry state and cannot be shared across goroutines.
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// ContactGroups lists the non-empty profile groups with links in platform
// order.
func (p PersonalData) ContactGroups() []ContactGroup {
	src := []struct {
		title    string
		profiles SocialProfiles
	}{
		{"Social", p.SocialProfiles},
		{"Professional", p.ProfessionalProfiles},
		{"Coding", p.CodingProfiles},
		{"Personal", p.PersonalProfiles},
	}

	var groups []ContactGroup
	for _, s := range src {
		if len(s.profiles) == 0 {
			continue
		}
		g := ContactGroup{Title: s.title}
		for _, name := range s.profiles.Platforms() {
			sp := s.profiles[name]
			g.Links = append(g.Links, ContactLink{
				Platform:    name,
				DisplayName: PlatformName(name),
				URL:         sp.URL,
				Handle:      sp.Handle,
			})
		}
		groups = append(groups, g)
	}
	return groups
}
