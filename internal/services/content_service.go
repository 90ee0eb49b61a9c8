package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/logger"
)

// DefaultContent returns the content served when no content file is present
func DefaultContent() models.Content {
	return models.Content{
		Name:    "Your Name",
		Role:    "Software Engineer",
		Tagline: "I build reliable services and the occasional pretty page.",
		About: []string{
			"I like small tools, clear interfaces and systems that fail loudly.",
		},
		Skills: []models.SkillGroup{
			{Category: "Languages", Items: []string{"Go", "TypeScript", "SQL"}},
			{Category: "Infrastructure", Items: []string{"Docker", "Kubernetes", "PostgreSQL"}},
		},
		CircularText: "OPEN TO WORK * OPEN TO WORK * ",
		MarqueeItems: []string{"Backend", "APIs", "Distributed Systems", "Tooling"},
	}
}

type ContentService struct {
	content models.Content
}

// NewContentService loads page content from path, falling back to DefaultContent
// when the file does not exist. A present but invalid file is an error.
func NewContentService(path string) (*ContentService, error) {
	content, err := loadContent(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithField("path", path).Warn("Content file not found, using defaults")
		return &ContentService{content: DefaultContent()}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ContentService{content: content}, nil
}

func loadContent(path string) (models.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Content{}, err
	}

	content := DefaultContent()
	if err := json.Unmarshal(data, &content); err != nil {
		return models.Content{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return content, nil
}

// Content returns the loaded page content
func (s *ContentService) Content() models.Content {
	return s.content
}
