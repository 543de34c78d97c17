package handlers

import (
	"fmt"
	"html/template"
	"path/filepath"

	"phaseplan/internal/models"
)

// LoadTemplates parses base.tmpl and every page template under templatesPath
func LoadTemplates(templatesPath string) (*template.Template, error) {
	files, err := filepath.Glob(filepath.Join(templatesPath, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", templatesPath)
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"markdown": RenderMarkdown,
		"phases":   phaseNames,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

func phaseNames() []string {
	names := make([]string, 0, len(models.Phases))
	for _, p := range models.Phases {
		names = append(names, string(p))
	}
	return names
}
