// Package catalog holds the built-in sites: their events, category tabs and
// hall layouts.
package catalog

import (
	"fmt"
	"strings"

	"eventhub-cli/booking"
	"eventhub-cli/model"
)

type Variant string

const (
	Dance   Variant = "dance"
	Concert Variant = "concert"
)

func ParseVariant(raw string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(raw))) {
	case Dance:
		return Dance, nil
	case "", Concert:
		return Concert, nil
	default:
		return "", fmt.Errorf("unknown site variant %q (want %q or %q)", raw, Dance, Concert)
	}
}

// Tab is a catalog filter. A tab with no categories and Other unset matches
// everything; Other matches events that no sibling tab claims.
type Tab struct {
	Key        string
	Label      string
	Categories []string
	Other      bool
}

// Site is everything that differs between the site variants.
type Site struct {
	Variant    Variant
	Name       string
	Tagline    string
	Heading    string
	Subheading string
	StageLabel string
	Events     []model.Event
	Tabs       []Tab
	Layout     booking.LayoutSpec
}

func Load(v Variant) Site {
	if v == Concert {
		return concertSite()
	}
	return danceSite()
}

func Find(events []model.Event, id string) (model.Event, bool) {
	for _, event := range events {
		if event.ID == id {
			return event, true
		}
	}
	return model.Event{}, false
}

// Filter returns the events shown under tab, keeping catalog order.
func (s Site) Filter(events []model.Event, tabKey string) []model.Event {
	tab, ok := s.tab(tabKey)
	if !ok || (len(tab.Categories) == 0 && !tab.Other) {
		return append([]model.Event(nil), events...)
	}

	claimed := map[string]bool{}
	if tab.Other {
		for _, sibling := range s.Tabs {
			for _, category := range sibling.Categories {
				claimed[strings.ToLower(category)] = true
			}
		}
	}

	var out []model.Event
	for _, event := range events {
		category := strings.ToLower(event.Category)
		if tab.Other {
			if !claimed[category] {
				out = append(out, event)
			}
			continue
		}
		for _, want := range tab.Categories {
			if strings.ToLower(want) == category {
				out = append(out, event)
				break
			}
		}
	}
	return out
}

func (s Site) tab(key string) (Tab, bool) {
	for _, tab := range s.Tabs {
		if tab.Key == key {
			return tab, true
		}
	}
	return Tab{}, false
}
