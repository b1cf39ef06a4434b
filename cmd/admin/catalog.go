package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resumebuilder/internal/resume"
)

// catalog 是 templates seed 读取的 YAML 结构。HTML/CSS 可以内联，也可以引用相对于目录文件的路径。
type catalog struct {
	Templates []catalogTemplate `yaml:"templates"`
}

type catalogTemplate struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	HTML        string  `yaml:"html"`
	HTMLFile    string  `yaml:"html_file"`
	CSS         string  `yaml:"css"`
	CSSFile     string  `yaml:"css_file"`
	Active      *bool   `yaml:"active"`
}

func loadCatalog(r io.Reader, baseDir string) ([]resume.CreateTemplateInput, error) {
	var c catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	inputs := make([]resume.CreateTemplateInput, 0, len(c.Templates))
	for i, t := range c.Templates {
		html, err := inlineOrFile(t.HTML, t.HTMLFile, baseDir)
		if err != nil {
			return nil, fmt.Errorf("template #%d (%s): %w", i+1, t.Name, err)
		}
		css, err := inlineOrFile(t.CSS, t.CSSFile, baseDir)
		if err != nil {
			return nil, fmt.Errorf("template #%d (%s): %w", i+1, t.Name, err)
		}
		inputs = append(inputs, resume.CreateTemplateInput{
			Name:         t.Name,
			Description:  t.Description,
			CSSStyles:    css,
			HTMLTemplate: html,
			IsActive:     t.Active,
		})
	}
	return inputs, nil
}

func inlineOrFile(inline, file, baseDir string) (string, error) {
	if file == "" {
		return inline, nil
	}
	if inline != "" {
		return "", fmt.Errorf("both inline content and %s given", file)
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(baseDir, file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}
