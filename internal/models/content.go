package models

// Content is the static copy of the landing page
type Content struct {
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	Tagline      string       `json:"tagline"`
	About        []string     `json:"about"`
	Skills       []SkillGroup `json:"skills"`
	Socials      []SocialLink `json:"socials"`
	ResumeURL    string       `json:"resume_url"`
	CircularText string       `json:"circular_text"`
	MarqueeItems []string     `json:"marquee_items"`
}

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Owner is the GitHub identity allowed into the inbox
type Owner struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
