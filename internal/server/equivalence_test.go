package server

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tailblocks/internal/renderer"
	"github.com/conneroisu/tailblocks/internal/snapshot"
	"github.com/conneroisu/tailblocks/pkg/ui"
)

// TestRenderPathsAgree renders each component as a Go value, by name through
// the renderer and over HTTP, and expects the same markup from all three.
func TestRenderPathsAgree(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		name      string
		component string
		props     string
		text      string
		direct    templ.Component
	}{
		{
			name:      "badge",
			component: "badge",
			props:     "variant: outline\nclass: px-4\nid: tag",
			text:      "New",
			direct:    ui.Badge(ui.BadgeProps{Base: ui.Base{ID: "tag", Class: "px-4"}, Variant: ui.BadgeOutline}, ui.Text("New")),
		},
		{
			name:      "button",
			component: "button",
			props:     `{"variant": "destructive", "size": "sm", "disabled": true}`,
			text:      "Delete",
			direct:    ui.Button(ui.ButtonProps{Variant: ui.ButtonDestructive, Size: ui.ButtonSizeSm, Disabled: true}, ui.Text("Delete")),
		},
		{
			name:      "pagination",
			component: "pagination",
			props:     "page: 5\ntotal_pages: 12\nsiblings: 2\nhref: /posts/{page}",
			direct:    ui.Pagination(ui.PaginationProps{Page: 5, TotalPages: 12, Siblings: ptr(2), Href: "/posts/{page}"}),
		},
		{
			name:      "resizable",
			component: "resizable",
			props:     "direction: vertical\nwith_handle: true\npanels: [{size: 30, content: Top}, {min_size: 20, content: Bottom}]",
			direct: ui.Resizable(ui.ResizableProps{
				Direction:  "vertical",
				WithHandle: true,
				Panels:     []ui.Panel{{Size: 30, Content: "Top"}, {MinSize: 20, Content: "Bottom"}},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var direct bytes.Buffer
			require.NoError(t, tt.direct.Render(context.Background(), &direct))
			require.NotEmpty(t, direct.String())

			props, err := renderer.ParseProps(tt.props)
			require.NoError(t, err)
			byName, err := server.renderer.RenderComponent(context.Background(), tt.component, props, tt.text)
			require.NoError(t, err)

			target := "/render/" + tt.component + "?" + url.Values{"props": {tt.props}, "text": {tt.text}}.Encode()
			rec := get(t, server.Handler(), target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			for path, got := range map[string]string{"by name": byName, "http": rec.Body.String()} {
				same, err := snapshot.Equivalent(direct.String(), got)
				require.NoError(t, err)
				assert.True(t, same, "%s render differs\ndirect: %s\n%s: %s", path, direct.String(), path, got)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
