package ui

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// PageItem is one slot of the pagination window: a page number or an
// ellipsis standing in for skipped pages.
type PageItem struct {
	Page     int
	Ellipsis bool
	Current  bool
}

// PaginationProps configures page navigation. Page is clamped to
// [1, TotalPages]; Siblings is the number of pages shown either side of the
// current one, capped at MaxPaginationSiblings.
type PaginationProps struct {
	Base       `yaml:",inline"`
	Page       int    `yaml:"page"`
	TotalPages int    `yaml:"total_pages"`
	Siblings   *int   `yaml:"siblings"`
	Href       string `yaml:"href"`
}

func (p PaginationProps) total() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// Current returns the clamped current page.
func (p PaginationProps) Current() int {
	if p.Page < 1 {
		return 1
	}
	if p.Page > p.total() {
		return p.total()
	}
	return p.Page
}

// MaxPaginationSiblings caps Siblings so the window stays small whatever
// the props say.
const MaxPaginationSiblings = 64

func (p PaginationProps) siblings() int {
	if p.Siblings == nil || *p.Siblings < 0 {
		return 1
	}
	return min(*p.Siblings, MaxPaginationSiblings, p.total())
}

// Window returns the visible items: the first and last pages, the current
// page with its siblings, and an ellipsis wherever more than one page is
// skipped. A gap of exactly one page shows that page instead.
func (p PaginationProps) Window() []PageItem {
	total, cur, sib := p.total(), p.Current(), p.siblings()
	// Neither bound may overflow when total is near MaxInt.
	lo, hi := 1, total
	if cur > sib {
		lo = cur - sib
	}
	if total-cur > sib {
		hi = cur + sib
	}

	pages := make([]int, 0, hi-lo+3)
	pages = append(pages, 1)
	for i := 0; i <= hi-lo; i++ {
		if n := lo + i; n != 1 && n != total {
			pages = append(pages, n)
		}
	}
	if total > 1 {
		pages = append(pages, total)
	}

	items := make([]PageItem, 0, len(pages)+2)
	prev := 0
	for _, n := range pages {
		switch gap := n - prev; {
		case prev == 0 || gap == 1:
		case gap == 2:
			items = append(items, PageItem{Page: prev + 1, Current: prev+1 == cur})
		default:
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Page: n, Current: n == cur})
		prev = n
	}
	return items
}

func (p PaginationProps) HasPrevious() bool { return p.Current() > 1 }

func (p PaginationProps) HasNext() bool { return p.Current() < p.total() }

// PageHref expands {page} in Href, or appends ?page=N when there is no
// placeholder.
func (p PaginationProps) PageHref(page int) string {
	n := strconv.Itoa(page)
	href := orDefault(p.Href, "?page={page}")
	if strings.Contains(href, "{page}") {
		return strings.ReplaceAll(href, "{page}", n)
	}
	sep := "?"
	if strings.Contains(href, "?") {
		sep = "&"
	}
	return href + sep + "page=" + n
}

func (p PaginationProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().
		Class("mx-auto flex w-full justify-center").
		Role("navigation").
		ARIA("label", "pagination").
		Data("page", p.Current()).
		Data("total-pages", p.total()))
}

func (p PaginationProps) linkAttributes(item PageItem) attrs.Attributes {
	variant := ButtonGhost
	if item.Current {
		variant = ButtonOutline
	}
	return attrs.New().
		Class(ButtonClasses(variant, ButtonSizeIcon)).
		Set("href", p.PageHref(item.Page)).
		SetIf(item.Current, "aria-current", "page").
		SetIf(item.Current, "data-active", "")
}

func (p PaginationProps) edgeAttributes(label string, page int, enabled bool) attrs.Attributes {
	a := attrs.New().
		Class(ButtonClasses(ButtonGhost, ButtonSizeDefault), "gap-1").
		ARIA("label", label)
	if enabled {
		return a.Set("href", p.PageHref(page))
	}
	return a.
		Class("pointer-events-none opacity-50").
		ARIA("disabled", true).
		Set("tabindex", "-1").
		Data("disabled", "")
}

func Pagination(p PaginationProps) templ.Component {
	item := func(c templ.Component) templ.Component {
		return Element("li", attrs.New(), c)
	}
	cur := p.Current()
	list := []templ.Component{
		item(Element("a", p.edgeAttributes("Go to previous page", cur-1, p.HasPrevious()),
			Icon("chevron-left", "h-4 w-4"), Element("span", attrs.New(), Text("Previous")))),
	}
	for _, it := range p.Window() {
		if it.Ellipsis {
			list = append(list, item(Element("span", attrs.New().
				Class("flex h-9 w-9 items-center justify-center").
				ARIA("hidden", true),
				Icon("more-horizontal", "h-4 w-4"),
				Element("span", attrs.New().Class("sr-only"), Text("More pages")))))
			continue
		}
		list = append(list, item(Element("a", p.linkAttributes(it), Text(strconv.Itoa(it.Page)))))
	}
	list = append(list, item(Element("a", p.edgeAttributes("Go to next page", cur+1, p.HasNext()),
		Element("span", attrs.New(), Text("Next")), Icon("chevron-right", "h-4 w-4"))))

	return Element("nav", p.Attributes(),
		Element("ul", attrs.New().Class("flex flex-row items-center gap-1"), list...))
}
