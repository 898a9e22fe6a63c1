package registry

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
)

// Define builds a ComponentInfo for a component whose props are P. The
// parameters are reflected from P and Render decodes fixture props into P
// before calling build.
func Define[P any](info ComponentInfo, build func(p P, children []templ.Component) templ.Component) *ComponentInfo {
	var zero P
	info.Parameters = Parameters(reflect.TypeOf(zero))
	info.render = func(props *yaml.Node, children []templ.Component) (templ.Component, error) {
		p, err := DecodeProps[P](props)
		if err != nil {
			return nil, uierrors.ErrInvalidProps(info.Name, err)
		}
		return build(p, children), nil
	}
	return &info
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeProps decodes a props node into P, rejecting unknown keys, then runs
// the validate tags of P. Absent props yield the zero P unvalidated.
func DecodeProps[P any](props *yaml.Node) (P, error) {
	var p P
	if isEmptyNode(props) {
		return p, nil
	}

	raw, err := yaml.Marshal(props)
	if err != nil {
		return p, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return p, err
	}
	if t := reflect.TypeOf(p); t != nil && t.Kind() == reflect.Struct {
		if err := validate.Struct(p); err != nil {
			return p, err
		}
	}
	return p, nil
}

func isEmptyNode(n *yaml.Node) bool {
	if n == nil || n.Kind == 0 {
		return true
	}
	if n.Kind == yaml.DocumentNode {
		return len(n.Content) == 0 || isEmptyNode(n.Content[0])
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// Parameters lists the yaml-visible fields of a props struct. Inline structs
// are flattened and pointer fields are optional.
func Parameters(t reflect.Type) []ParameterInfo {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var params []ParameterInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, inline, skip := yamlName(f)
		if skip {
			continue
		}
		if inline {
			params = append(params, Parameters(f.Type)...)
			continue
		}

		params = append(params, ParameterInfo{
			Name:     name,
			Type:     f.Type.String(),
			Optional: f.Type.Kind() == reflect.Ptr,
		})
	}
	return params
}

func yamlName(f reflect.StructField) (name string, inline, skip bool) {
	tag := f.Tag.Get("yaml")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "inline" {
			return "", true, false
		}
	}
	if parts[0] != "" {
		return parts[0], false, false
	}
	return strings.ToLower(f.Name), false, false
}
