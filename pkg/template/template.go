// Package template renders stage files against profile data.
//
// Files use Go text/template syntax. Rendering is strict: a reference to a
// key the profile does not define fails instead of producing an empty
// string. A key the profile defines as null renders as an empty string, and
// floats keep their decimal point (1.0 renders as "1.0", not "1").
package template

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/profile"
)

// Renderer executes templates against one resolved profile
type Renderer struct {
	data interface{}
}

// NewRenderer returns a renderer for data. data must already be resolved;
// encrypted leaves are rendered as their marker map, never decrypted here.
func NewRenderer(data profile.Value) *Renderer {
	return &Renderer{data: templateData(data)}
}

// floatValue prints like the profile source wrote it. Its kind stays
// float64 so comparisons such as {{ if gt .ratio 0.5 }} still work.
type floatValue float64

func (f floatValue) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}

// templateData converts a profile for execution. A null root stays nil so
// every reference fails under missingkey=error; null leaves render empty.
func templateData(v profile.Value) interface{} {
	if v.Kind == profile.KindNull {
		return nil
	}
	return templateValue(v)
}

func templateValue(v profile.Value) interface{} {
	switch v.Kind {
	case profile.KindNull:
		return ""
	case profile.KindFloat:
		return floatValue(v.Float)
	case profile.KindList:
		out := make([]interface{}, len(v.List))
		for i, item := range v.List {
			out[i] = templateValue(item)
		}
		return out
	case profile.KindMap:
		out := make(map[string]interface{}, len(v.Map))
		for _, e := range v.Map {
			out[e.Key] = templateValue(e.Value)
		}
		return out
	}
	return v.Interface()
}

// Render parses src as a template named name and executes it
func (r *Renderer) Render(name, src string) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateRender, "failed to parse template %s", name).
			WithDetail("template", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateRender, "failed to render template %s", name).
			WithDetail("template", name)
	}
	return buf.String(), nil
}
