// Package navigation describes the landing page sections and the scroll
// requests the nav bar issues. Nothing here holds state; callers pass the
// target and duration explicitly.
package navigation

import (
	"errors"
	"fmt"
	"time"
)

const DefaultScrollDuration = 800 * time.Millisecond

var ErrUnknownSection = errors.New("unknown section")

type Section struct {
	ID    string
	Label string
}

// Sections in page order
var Sections = []Section{
	{ID: "home", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "skills", Label: "Skills"},
	{ID: "projects", Label: "Projects"},
	{ID: "contact", Label: "Contact"},
}

// ScrollRequest asks the client to bring a section into view
type ScrollRequest struct {
	Target   string
	Duration time.Duration
}

// Anchor is the fragment the browser falls back to without scripting
func (r ScrollRequest) Anchor() string {
	return "#" + r.Target
}

// DurationMillis is the duration in the unit the client script expects
func (r ScrollRequest) DurationMillis() int64 {
	return r.Duration.Milliseconds()
}

type Link struct {
	Section Section
	Scroll  ScrollRequest
}

// Lookup finds a section by id
func Lookup(id string) (Section, bool) {
	for _, section := range Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// ScrollTo builds a scroll request for target. Non-positive durations use the default.
func ScrollTo(target string, duration time.Duration) (ScrollRequest, error) {
	if _, ok := Lookup(target); !ok {
		return ScrollRequest{}, fmt.Errorf("%w: %q", ErrUnknownSection, target)
	}
	if duration <= 0 {
		duration = DefaultScrollDuration
	}
	return ScrollRequest{Target: target, Duration: duration}, nil
}

// Links returns one nav link per section, in page order
func Links(duration time.Duration) []Link {
	links := make([]Link, 0, len(Sections))
	for _, section := range Sections {
		scroll, _ := ScrollTo(section.ID, duration)
		links = append(links, Link{Section: section, Scroll: scroll})
	}
	return links
}
