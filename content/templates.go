package content

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"msfmt/config"
)

// Values is a struct that holds variables we make available for template
// expansion.
type Values struct {
	Context    string
	Title      string
	Author     string
	Language   string
	DocumentID string
	// Only available when naming output files.
	Format     string
	SourceFile string
}

// TemplateValues returns values describing prepared document.
func (c *Content) TemplateValues(name config.TemplateFieldName) Values {
	return Values{
		Context:    string(name),
		Title:      c.Format.Title,
		Author:     c.Format.Author,
		Language:   c.Language.String(),
		DocumentID: c.ID.String(),
	}
}

// ExpandTemplate executes field as text/template with slim-sprig functions.
func ExpandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	if field == "" {
		return "", nil
	}

	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}
