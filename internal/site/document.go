package site

import "strings"

// Panel is the visibility of one page's content block.
type Panel struct {
	Page    Page
	Visible bool
}

// Button is the rendered state of one nav button.
type Button struct {
	Page   Page
	Active bool
	Style  StyleSet
}

// Document is an in-memory Surface. Server rendering drives one per request
// and reads the resulting panel and button state into templates.
type Document struct {
	Root string // id of the root element

	mounted bool
	panels  map[Page]bool
	buttons map[Page]Button
}

// NewDocument returns a document rooted at the element with the given id.
func NewDocument(root string) *Document {
	return &Document{Root: root}
}

// Mount implements Surface.
func (d *Document) Mount() error {
	if strings.TrimSpace(d.Root) == "" {
		return ErrNoRoot
	}
	d.panels = make(map[Page]bool, len(Pages))
	d.buttons = make(map[Page]Button, len(Pages))
	for _, p := range Pages {
		d.panels[p] = false
		d.buttons[p] = Button{Page: p, Style: StyleFor(p, false)}
	}
	d.mounted = true
	return nil
}

// Mounted reports whether the shell has been written.
func (d *Document) Mounted() bool { return d.mounted }

// SetPanelVisible implements Surface.
func (d *Document) SetPanelVisible(p Page, visible bool) {
	d.panels[p] = visible
}

// SetButtonStyle implements Surface.
func (d *Document) SetButtonStyle(p Page, active bool, style StyleSet) {
	d.buttons[p] = Button{Page: p, Active: active, Style: style}
}

// Panels returns every panel in navigation order.
func (d *Document) Panels() []Panel {
	out := make([]Panel, 0, len(Pages))
	for _, p := range Pages {
		out = append(out, Panel{Page: p, Visible: d.panels[p]})
	}
	return out
}

// Buttons returns every nav button in navigation order.
func (d *Document) Buttons() []Button {
	out := make([]Button, 0, len(Pages))
	for _, p := range Pages {
		b, ok := d.buttons[p]
		if !ok {
			b = Button{Page: p, Style: StyleFor(p, false)}
		}
		out = append(out, b)
	}
	return out
}

// Button returns the state of p's nav button.
func (d *Document) Button(p Page) Button {
	if b, ok := d.buttons[p]; ok {
		return b
	}
	return Button{Page: p, Style: StyleFor(p, false)}
}

// VisiblePanels lists the pages whose panel is shown.
func (d *Document) VisiblePanels() []Page {
	var out []Page
	for _, p := range Pages {
		if d.panels[p] {
			out = append(out, p)
		}
	}
	return out
}

// ActiveButtons lists the pages whose nav button is active.
func (d *Document) ActiveButtons() []Page {
	var out []Page
	for _, p := range Pages {
		if d.buttons[p].Active {
			out = append(out, p)
		}
	}
	return out
}
