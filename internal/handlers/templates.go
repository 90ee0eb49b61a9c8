package handlers

import "path/filepath"

var templateFiles = []string{
	"layouts/header.html",
	"layouts/footer.html",
	"partials/project_grid.html",
	"index.html",
	"projects.html",
	"login.html",
	"inbox.html",
	"404.html",
}

// TemplateFiles lists the HTML templates under root, in load order
func TemplateFiles(root string) []string {
	files := make([]string, len(templateFiles))
	for i, name := range templateFiles {
		files[i] = filepath.Join(root, name)
	}
	return files
}
