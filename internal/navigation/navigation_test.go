package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollTo(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		duration time.Duration
		expected time.Duration
		wantErr  bool
	}{
		{name: "Explicit duration", target: "projects", duration: 1200 * time.Millisecond, expected: 1200 * time.Millisecond},
		{name: "Zero duration uses default", target: "home", duration: 0, expected: DefaultScrollDuration},
		{name: "Negative duration uses default", target: "contact", duration: -time.Second, expected: DefaultScrollDuration},
		{name: "Unknown section", target: "blog", duration: time.Second, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request, err := ScrollTo(tc.target, tc.duration)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, request.Target)
			assert.Equal(t, tc.expected, request.Duration)
			assert.Equal(t, "#"+tc.target, request.Anchor())
		})
	}
}

func TestLinksFollowPageOrder(t *testing.T) {
	links := Links(500 * time.Millisecond)

	require.Len(t, links, 5)
	ids := make([]string, len(links))
	for i, link := range links {
		ids[i] = link.Section.ID
		assert.Equal(t, int64(500), link.Scroll.DurationMillis())
	}
	assert.Equal(t, []string{"home", "about", "skills", "projects", "contact"}, ids)
}

func TestLookup(t *testing.T) {
	section, ok := Lookup("skills")
	assert.True(t, ok)
	assert.Equal(t, "Skills", section.Label)

	_, ok = Lookup("missing")
	assert.False(t, ok)
}
