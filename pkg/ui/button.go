package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/variants"
)

// ButtonVariant is the visual style of a button.
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

// ButtonSize is the size of a button.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

var buttonRecipe = variants.Recipe{
	Base: "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50 [&_svg]:pointer-events-none [&_svg]:size-4 [&_svg]:shrink-0",
	Variants: map[string]map[string]string{
		"variant": {
			string(ButtonDefault):     "bg-primary text-primary-foreground shadow hover:bg-primary/90",
			string(ButtonDestructive): "bg-destructive text-destructive-foreground shadow-sm hover:bg-destructive/90",
			string(ButtonOutline):     "border border-input bg-background shadow-sm hover:bg-accent hover:text-accent-foreground",
			string(ButtonSecondary):   "bg-secondary text-secondary-foreground shadow-sm hover:bg-secondary/80",
			string(ButtonGhost):       "hover:bg-accent hover:text-accent-foreground",
			string(ButtonLink):        "text-primary underline-offset-4 hover:underline",
		},
		"size": {
			string(ButtonSizeDefault): "h-9 px-4 py-2",
			string(ButtonSizeSm):      "h-8 rounded-md px-3 text-xs",
			string(ButtonSizeLg):      "h-10 rounded-md px-8",
			string(ButtonSizeIcon):    "h-9 w-9",
		},
	},
	Defaults: map[string]string{"variant": string(ButtonDefault), "size": string(ButtonSizeDefault)},
}

// ButtonProps configures a Button. A non-empty Href renders an anchor.
type ButtonProps struct {
	Base     `yaml:",inline"`
	Variant  ButtonVariant `yaml:"variant"`
	Size     ButtonSize    `yaml:"size"`
	Type     string        `yaml:"type"`
	Href     string        `yaml:"href"`
	Disabled bool          `yaml:"disabled"`
	Loading  bool          `yaml:"loading"`
	Text     string        `yaml:"text"`
}

// ButtonClasses exposes the button recipe so other components (pagination,
// dialog footers, calendar navigation) render button-looking elements.
func ButtonClasses(variant ButtonVariant, size ButtonSize, extra ...string) string {
	return buttonRecipe.Classes(variants.Selection{"variant": string(variant), "size": string(size)}, extra...)
}

func (p ButtonProps) Classes() string {
	return ButtonClasses(p.Variant, p.Size)
}

func (p ButtonProps) Attributes() attrs.Attributes {
	a := attrs.New().Class(p.Classes())

	if p.Href != "" {
		a.Set("href", p.Href)
		if p.Disabled {
			a.ARIA("disabled", true).Set("tabindex", "-1").Class("pointer-events-none opacity-50")
			delete(a, "href")
		}
	} else {
		a.Set("type", orDefault(p.Type, "button")).SetIf(p.Disabled || p.Loading, "disabled", true)
	}

	if p.Loading {
		a.ARIA("busy", true).Data("loading", true)
	}

	return p.finish(a)
}

func (p ButtonProps) tag() string {
	if p.Href != "" {
		return "a"
	}
	return "button"
}

// Button renders a button, or an anchor styled as one.
func Button(p ButtonProps, children ...templ.Component) templ.Component {
	content := textOr(p.Text, children)
	if p.Loading {
		content = append([]templ.Component{Icon("loader", "animate-spin")}, content...)
	}
	return Element(p.tag(), p.Attributes(), content...)
}
