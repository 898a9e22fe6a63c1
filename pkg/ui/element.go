package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true,
	"track": true, "wbr": true,
}

// Element renders <tag attrs...>children</tag>. Void elements ignore children.
func Element(tag string, a attrs.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := a.Render(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidElements[tag] {
			return nil
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders s HTML-escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders components one after another with no wrapper element.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

// When renders c only if cond holds.
func When(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}

// textOr returns children when given, otherwise the text.
func textOr(text string, children []templ.Component) []templ.Component {
	if len(children) > 0 || text == "" {
		return children
	}
	return []templ.Component{Text(text)}
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
