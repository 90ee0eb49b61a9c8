package animation

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Glyph is one character of a circular text ring
type Glyph struct {
	Char     string
	Rotation float64
}

// CircularText spins a string around a circle
type CircularText struct {
	Text       string
	Radius     int
	Revolution time.Duration
	// Hover speeds the ring up for one cycle
	Hover *Machine
}

func NewCircularText(text string) CircularText {
	return CircularText{
		Text:       text,
		Radius:     80,
		Revolution: 20 * time.Second,
		Hover:      NewMachine(Transition{Name: "speed-up", Duration: 600 * time.Millisecond, Easing: "ease-out"}),
	}
}

// Glyphs spreads the characters evenly over 360 degrees
func (c CircularText) Glyphs() []Glyph {
	count := utf8.RuneCountInString(c.Text)
	if count == 0 {
		return []Glyph{}
	}

	step := 360.0 / float64(count)
	glyphs := make([]Glyph, 0, count)
	for i, r := range []rune(c.Text) {
		glyphs = append(glyphs, Glyph{Char: string(r), Rotation: step * float64(i)})
	}
	return glyphs
}

// RevolutionSeconds is the CSS animation duration of one full turn
func (c CircularText) RevolutionSeconds() float64 {
	return c.Revolution.Seconds()
}

// FlowingMenu is the marquee strip revealed when hovering a menu item
type FlowingMenu struct {
	Items  []string
	Speed  time.Duration
	Reveal *Machine
}

func NewFlowingMenu(items []string) FlowingMenu {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}

	return FlowingMenu{
		Items:  cleaned,
		Speed:  15 * time.Second,
		Reveal: NewMachine(Transition{Name: "reveal", Duration: 400 * time.Millisecond, Easing: "expo.out"}),
	}
}

// Track repeats the items so the strip can loop without a visible seam
func (m FlowingMenu) Track(repeat int) []string {
	if repeat < 1 {
		repeat = 1
	}
	track := make([]string, 0, len(m.Items)*repeat)
	for i := 0; i < repeat; i++ {
		track = append(track, m.Items...)
	}
	return track
}

// SpeedSeconds is the CSS animation duration of one pass
func (m FlowingMenu) SpeedSeconds() float64 {
	return m.Speed.Seconds()
}
