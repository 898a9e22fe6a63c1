// Package snapshot keeps golden HTML for every fixture example and compares
// fresh renders against it.
package snapshot

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true,
	"track": true, "wbr": true,
}

// Normalize parses an HTML fragment and prints it in a canonical form: one
// tag or text run per line, indented by depth, attributes sorted by name,
// class tokens sorted and deduplicated, whitespace collapsed and comments
// dropped. Two fragments that differ only in those respects normalize to the
// same string.
func Normalize(fragment string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n, 0)
	}
	return b.String(), nil
}

// Lines is Normalize split into lines, the unit diffs are computed over.
func Lines(fragment string) ([]string, error) {
	out, err := Normalize(fragment)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n"), nil
}

// Equivalent reports whether two fragments normalize to the same form.
func Equivalent(a, b string) (bool, error) {
	na, err := Normalize(a)
	if err != nil {
		return false, err
	}
	nb, err := Normalize(b)
	if err != nil {
		return false, err
	}
	return na == nb, nil
}

func writeNode(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		if text == "" {
			return
		}
		b.WriteString(indent)
		b.WriteString(html.EscapeString(text))
		b.WriteByte('\n')

	case html.ElementNode:
		b.WriteString(indent)
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range sortedAttrs(n.Attr) {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Val))
			b.WriteByte('"')
		}
		b.WriteString(">\n")

		if voidElements[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteString(">\n")

	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c, depth)
		}
	}
}

func sortedAttrs(attrs []html.Attribute) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		val := a.Val
		if key == "class" {
			val = sortTokens(val)
		} else if key == "style" {
			val = strings.Join(strings.Fields(val), " ")
		}
		out = append(out, html.Attribute{Key: key, Val: val})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	out := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if i == 0 || t != tokens[i-1] {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}
