// Package catalog holds the studio's static content tables: the services on
// offer, the locations covered, and the fixed option lists used by the
// enquiry form. The data is immutable; everything here is lookups.
package catalog

import "strings"

// Service describes one photography service, keyed by slug.
type Service struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// VenueIdea is a suggested shoot venue within a location.
type VenueIdea struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// Location describes one coverage area, keyed by slug.
type Location struct {
	Slug             string      `json:"slug"`
	Name             string      `json:"name"`
	Summary          string      `json:"summary"`
	Neighbourhoods   []string    `json:"neighbourhoods"`
	VenueIdeas       []VenueIdea `json:"venueIdeas"`
	AvailabilityNote string      `json:"availabilityNote"`
}

var (
	serviceIndex  = buildServiceIndex()
	locationIndex = buildLocationIndex()
)

func buildServiceIndex() map[string]*Service {
	idx := make(map[string]*Service, len(services))
	for i := range services {
		idx[services[i].Slug] = &services[i]
	}
	return idx
}

func buildLocationIndex() map[string]*Location {
	idx := make(map[string]*Location, len(locations))
	for i := range locations {
		idx[locations[i].Slug] = &locations[i]
	}
	return idx
}

// Services returns all services in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Locations returns all locations in display order.
func Locations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

// ServiceBySlug looks up a service by its slug.
func ServiceBySlug(slug string) (Service, bool) {
	if s, ok := serviceIndex[slug]; ok {
		return *s, true
	}
	return Service{}, false
}

// LocationBySlug looks up a location by its slug.
func LocationBySlug(slug string) (Location, bool) {
	if l, ok := locationIndex[slug]; ok {
		return *l, true
	}
	return Location{}, false
}

// KnownService reports whether slug names a catalog service.
func KnownService(slug string) bool {
	_, ok := serviceIndex[slug]
	return ok
}

// ServiceName returns the display name for a service slug, or the slug itself
// when it is not in the catalog.
func ServiceName(slug string) string {
	if s, ok := serviceIndex[slug]; ok {
		return s.Name
	}
	return slug
}

// LocationName returns the display name for a location slug, or the slug
// itself when it is not in the catalog.
func LocationName(slug string) string {
	if l, ok := locationIndex[slug]; ok {
		return l.Name
	}
	return slug
}

// ResolveService maps a slug or display name, case-insensitively, to a
// service slug. Unknown values resolve to "".
func ResolveService(value string) string {
	normalised := strings.ToLower(strings.TrimSpace(value))
	if normalised == "" {
		return ""
	}
	for i := range services {
		s := &services[i]
		if strings.ToLower(s.Slug) == normalised || strings.ToLower(s.Name) == normalised {
			return s.Slug
		}
	}
	return ""
}

// ResolveLocation maps a slug or display name, case-insensitively, to a
// location slug. Unknown values resolve to "".
func ResolveLocation(value string) string {
	normalised := strings.ToLower(strings.TrimSpace(value))
	if normalised == "" {
		return ""
	}
	for i := range locations {
		l := &locations[i]
		if strings.ToLower(l.Slug) == normalised || strings.ToLower(l.Name) == normalised {
			return l.Slug
		}
	}
	return ""
}

// BudgetOptions lists the budget guidance choices shown on the details step.
func BudgetOptions() []string {
	return []string{
		"Under R5 000",
		"R5 000 – R10 000",
		"R10 000 – R20 000",
		"R20 000+",
		"Still exploring",
	}
}

// HearAboutOptions lists the referral-source choices shown on the project step.
func HearAboutOptions() []string {
	return []string{
		"Instagram",
		"Google search",
		"Friend or planner referral",
		"Vendor partner",
		"Other",
	}
}
