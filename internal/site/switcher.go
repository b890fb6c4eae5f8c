// Package site holds the page model of the videography site and the switcher
// that keeps panels and nav buttons in step with the current page.
package site

import (
	"errors"
	"fmt"
)

// ErrNoRoot is returned when the rendering surface has no root element to mount into.
var ErrNoRoot = errors.New("site: rendering surface has no root element")

// Surface is the rendering target driven by a Switcher.
type Surface interface {
	// Mount writes the document shell into the root element.
	Mount() error
	SetPanelVisible(p Page, visible bool)
	SetButtonStyle(p Page, active bool, style StyleSet)
}

// Switcher owns the current page of a single surface.
// It is not safe for concurrent use; each surface gets its own Switcher.
type Switcher struct {
	surface Surface
	current Page
	mounted bool
}

// NewSwitcher returns a switcher bound to s. Call Initialize before Navigate.
func NewSwitcher(s Surface) *Switcher {
	return &Switcher{surface: s}
}

// Initialize mounts the shell once and selects the home page.
func (s *Switcher) Initialize() error {
	if s.surface == nil {
		return ErrNoRoot
	}
	if !s.mounted {
		if err := s.surface.Mount(); err != nil {
			return fmt.Errorf("mount surface: %w", err)
		}
		s.mounted = true
	}
	s.apply(Home)
	return nil
}

// Navigate makes target the current page. It panics when target is not a known
// page or when the switcher has not been initialized.
func (s *Switcher) Navigate(target Page) {
	mustValid(target)
	if !s.mounted {
		panic("site: Navigate called before Initialize")
	}
	s.apply(target)
}

// Current returns the page currently shown. It is empty before Initialize.
func (s *Switcher) Current() Page { return s.current }

func (s *Switcher) apply(target Page) {
	s.current = target
	for _, p := range Pages {
		active := p == target
		s.surface.SetPanelVisible(p, active)
		s.surface.SetButtonStyle(p, active, StyleFor(p, active))
	}
}
