package explorer

import (
	"sort"

	"github.com/characterhub/characterhub/core"
)

const (
	facetWindow         = 4
	facetWindowExpanded = 8
)

// Facet is a tag present on the visible result page together with how many
// of the visible characters carry it.
type Facet struct {
	Tag   core.CharacterTag
	Count int
}

// AvailableTags derives facets from the characters on the current page.
// Already selected tags are excluded. Facets are ordered by count
// descending, ties broken by tag name.
func (e *Explorer) AvailableTags() []Facet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return deriveFacets(e.characters, e.selected)
}

// VisibleTags returns the facet window shown to the user: the top four, or
// the top eight when expanded.
func (e *Explorer) VisibleTags() []Facet {
	e.mu.Lock()
	facets := deriveFacets(e.characters, e.selected)
	limit := facetWindow
	if e.expanded {
		limit = facetWindowExpanded
	}
	e.mu.Unlock()

	if len(facets) > limit {
		facets = facets[:limit]
	}
	return facets
}

// ToggleShowMore flips between the narrow and expanded facet windows.
func (e *Explorer) ToggleShowMore() {
	e.mu.Lock()
	e.expanded = !e.expanded
	e.mu.Unlock()
}

func deriveFacets(characters []core.Character, selected []core.CharacterTag) []Facet {
	chosen := make(map[string]bool, len(selected))
	for _, tag := range selected {
		chosen[tag.ID] = true
	}

	counts := map[string]*Facet{}
	for _, character := range characters {
		for _, tag := range character.Tags {
			if chosen[tag.ID] {
				continue
			}
			if facet, ok := counts[tag.ID]; ok {
				facet.Count++
			} else {
				counts[tag.ID] = &Facet{Tag: tag, Count: 1}
			}
		}
	}

	facets := make([]Facet, 0, len(counts))
	for _, facet := range counts {
		facets = append(facets, *facet)
	}
	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Tag.Name < facets[j].Tag.Name
	})
	return facets
}
