package config

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// HeaderValues are available to the header template.
type HeaderValues struct {
	App       string
	Version   string
	Stylebook string
	Styles    []string
	Themes    []string
}

// Header expands header template. Empty template results in empty header.
func (conf *GenerationConfig) Header(values HeaderValues) (string, error) {
	if strings.TrimSpace(conf.HeaderTemplate) == "" {
		return "", nil
	}

	tmpl, err := template.New(string(HeaderTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(conf.HeaderTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", HeaderTemplateFieldName, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", HeaderTemplateFieldName, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
