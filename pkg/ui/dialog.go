package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/variants"
)

// DialogProps configures a modal dialog with a trigger button. The content
// is linked to its title and description through aria-labelledby and
// aria-describedby.
type DialogProps struct {
	Base        `yaml:",inline"`
	Open        bool              `yaml:"open"`
	Trigger     string            `yaml:"trigger"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	HideClose   bool              `yaml:"hide_close"`
	Footer      []templ.Component `yaml:"-"`
}

const overlayClasses = "fixed inset-0 z-50 bg-black/80 data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0"

const dialogContentClasses = "fixed left-[50%] top-[50%] z-50 grid w-full max-w-lg translate-x-[-50%] translate-y-[-50%] gap-4 border bg-background p-6 shadow-lg duration-200 data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95 sm:rounded-lg"

// modal holds the ids and state shared by dialog, alert dialog and sheet.
type modal struct {
	ctrl    string
	root    string
	open    bool
	role    string
	title   string
	desc    string
	dismiss bool
}

func (m modal) contentID() string { return attrs.Suffix(m.root, "content") }
func (m modal) titleID() string   { return attrs.Suffix(m.root, "title") }
func (m modal) descID() string    { return attrs.Suffix(m.root, "description") }

func (m modal) rootAttributes() attrs.Attributes {
	return attrs.New().
		Data("state", openState(m.open)).
		Controller(m.ctrl).
		Value(m.ctrl, "open", m.open).
		Action(attrs.ActionFor("keydown.esc@window", m.ctrl, "close"))
}

func (m modal) triggerAttributes() attrs.Attributes {
	return attrs.New().
		Set("type", "button").
		ARIA("haspopup", "dialog").
		ARIA("expanded", m.open).
		ARIA("controls", m.contentID()).
		Data("state", openState(m.open)).
		Target(m.ctrl, "trigger").
		Action(attrs.ActionFor("click", m.ctrl, "open"))
}

func (m modal) overlayAttributes() attrs.Attributes {
	a := attrs.New().
		Class(overlayClasses).
		Data("state", openState(m.open)).
		SetIf(!m.open, "hidden", true).
		Target(m.ctrl, "overlay")
	if m.dismiss {
		a.Action(attrs.ActionFor("click", m.ctrl, "close"))
	}
	return a
}

func (m modal) contentAttributes(classes string) attrs.Attributes {
	return attrs.New().
		Class(classes).
		Set("id", m.contentID()).
		Role(m.role).
		ARIA("modal", true).
		SetIf(m.title != "", "aria-labelledby", m.titleID()).
		SetIf(m.desc != "", "aria-describedby", m.descID()).
		Set("tabindex", "-1").
		Data("state", openState(m.open)).
		SetIf(!m.open, "hidden", true).
		Target(m.ctrl, "content")
}

func (m modal) header() templ.Component {
	if m.title == "" && m.desc == "" {
		return nil
	}
	return Element("div", attrs.New().Class("flex flex-col space-y-1.5 text-center sm:text-left"),
		When(m.title != "", Element("h2", attrs.New().
			Class("text-lg font-semibold leading-none tracking-tight").
			Set("id", m.titleID()), Text(m.title))),
		When(m.desc != "", Element("p", attrs.New().
			Class("text-sm text-muted-foreground").
			Set("id", m.descID()), Text(m.desc))),
	)
}

func (m modal) closeButton() templ.Component {
	return Element("button", attrs.New().
		Class("absolute right-4 top-4 rounded-sm opacity-70 ring-offset-background transition-opacity hover:opacity-100 focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2 disabled:pointer-events-none").
		Set("type", "button").
		Action(attrs.ActionFor("click", m.ctrl, "close")),
		Icon("x", "h-4 w-4"),
		Element("span", attrs.New().Class("sr-only"), Text("Close")))
}

func footer(children []templ.Component) templ.Component {
	if len(children) == 0 {
		return nil
	}
	return Element("div", attrs.New().Class("flex flex-col-reverse sm:flex-row sm:justify-end sm:space-x-2"), children...)
}

func (p DialogProps) modal() modal {
	return modal{
		ctrl:    controller("dialog"),
		root:    p.idOr("dialog"),
		open:    p.Open,
		role:    "dialog",
		title:   p.Title,
		desc:    p.Description,
		dismiss: true,
	}
}

func (p DialogProps) Attributes() attrs.Attributes {
	return p.finish(p.modal().rootAttributes())
}

func Dialog(p DialogProps, children ...templ.Component) templ.Component {
	m := p.modal()
	p.ID = m.root
	var trigger templ.Component
	if p.Trigger != "" {
		trigger = Element("button", m.triggerAttributes().Class(ButtonClasses(ButtonOutline, ButtonSizeDefault)), Text(p.Trigger))
	}
	body := []templ.Component{m.header()}
	body = append(body, children...)
	body = append(body, footer(p.Footer), When(!p.HideClose, m.closeButton()))
	return Element("div", p.Attributes(),
		trigger,
		Element("div", m.overlayAttributes()),
		Element("div", m.contentAttributes(dialogContentClasses), body...),
	)
}

// AlertDialogProps configures a confirmation dialog. It cannot be dismissed
// by clicking outside and focuses the cancel action first.
type AlertDialogProps struct {
	Base          `yaml:",inline"`
	Open          bool          `yaml:"open"`
	Trigger       string        `yaml:"trigger"`
	Title         string        `yaml:"title" validate:"required"`
	Description   string        `yaml:"description"`
	Cancel        string        `yaml:"cancel"`
	Action        string        `yaml:"action"`
	ActionVariant ButtonVariant `yaml:"action_variant"`
}

func (p AlertDialogProps) modal() modal {
	return modal{
		ctrl:  controller("dialog"),
		root:  p.idOr("alert-dialog"),
		open:  p.Open,
		role:  "alertdialog",
		title: p.Title,
		desc:  p.Description,
	}
}

func (p AlertDialogProps) Attributes() attrs.Attributes {
	return p.finish(p.modal().rootAttributes())
}

func AlertDialog(p AlertDialogProps) templ.Component {
	m := p.modal()
	p.ID = m.root
	var trigger templ.Component
	if p.Trigger != "" {
		trigger = Element("button", m.triggerAttributes().Class(ButtonClasses(ButtonOutline, ButtonSizeDefault)), Text(p.Trigger))
	}
	cancel := Element("button", attrs.New().
		Class(ButtonClasses(ButtonOutline, ButtonSizeDefault), "mt-2 sm:mt-0").
		Set("type", "button").
		Set("autofocus", true).
		Action(attrs.ActionFor("click", m.ctrl, "close")),
		Text(orDefault(p.Cancel, "Cancel")))
	action := Element("button", attrs.New().
		Class(ButtonClasses(p.ActionVariant, ButtonSizeDefault)).
		Set("type", "button").
		Action(attrs.ActionFor("click", m.ctrl, "confirm")),
		Text(orDefault(p.Action, "Continue")))
	return Element("div", p.Attributes(),
		trigger,
		Element("div", m.overlayAttributes()),
		Element("div", m.contentAttributes(dialogContentClasses),
			m.header(), footer([]templ.Component{cancel, action})),
	)
}

type SheetSide string

const (
	SheetTop    SheetSide = "top"
	SheetRight  SheetSide = "right"
	SheetBottom SheetSide = "bottom"
	SheetLeft   SheetSide = "left"
)

var sheetRecipe = variants.Recipe{
	Base: "fixed z-50 gap-4 bg-background p-6 shadow-lg transition ease-in-out data-[state=closed]:duration-300 data-[state=open]:duration-500 data-[state=open]:animate-in data-[state=closed]:animate-out",
	Variants: map[string]map[string]string{
		"side": {
			"top":    "inset-x-0 top-0 border-b data-[state=closed]:slide-out-to-top data-[state=open]:slide-in-from-top",
			"bottom": "inset-x-0 bottom-0 border-t data-[state=closed]:slide-out-to-bottom data-[state=open]:slide-in-from-bottom",
			"left":   "inset-y-0 left-0 h-full w-3/4 border-r data-[state=closed]:slide-out-to-left data-[state=open]:slide-in-from-left sm:max-w-sm",
			"right":  "inset-y-0 right-0 h-full w-3/4 border-l data-[state=closed]:slide-out-to-right data-[state=open]:slide-in-from-right sm:max-w-sm",
		},
	},
	Defaults: map[string]string{"side": "right"},
}

// SheetProps configures a dialog that slides in from a screen edge.
type SheetProps struct {
	Base        `yaml:",inline"`
	Open        bool      `yaml:"open"`
	Side        SheetSide `yaml:"side"`
	Trigger     string    `yaml:"trigger"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
}

func (p SheetProps) modal() modal {
	return modal{
		ctrl:    controller("sheet"),
		root:    p.idOr("sheet"),
		open:    p.Open,
		role:    "dialog",
		title:   p.Title,
		desc:    p.Description,
		dismiss: true,
	}
}

func (p SheetProps) side() string {
	return sheetRecipe.Resolve(variants.Selection{"side": string(p.Side)})["side"]
}

// ContentClasses returns the panel classes for the resolved side.
func (p SheetProps) ContentClasses() string {
	return sheetRecipe.Classes(variants.Selection{"side": string(p.Side)})
}

func (p SheetProps) Attributes() attrs.Attributes {
	m := p.modal()
	return p.finish(m.rootAttributes().
		Value(m.ctrl, "side", p.side()))
}

func Sheet(p SheetProps, children ...templ.Component) templ.Component {
	m := p.modal()
	p.ID = m.root
	var trigger templ.Component
	if p.Trigger != "" {
		trigger = Element("button", m.triggerAttributes().Class(ButtonClasses(ButtonOutline, ButtonSizeDefault)), Text(p.Trigger))
	}
	body := append([]templ.Component{m.header()}, children...)
	body = append(body, m.closeButton())
	return Element("div", p.Attributes(),
		trigger,
		Element("div", m.overlayAttributes()),
		Element("div", m.contentAttributes(p.ContentClasses()).
			Data("side", p.side()), body...),
	)
}
