package site

// StyleSet is the visual state of a nav button.
type StyleSet struct {
	Class string // class attribute of the button
	Glow  string // class attribute of the glow overlay; empty when inactive
}

const (
	buttonBase   = "group relative px-4 sm:px-6 py-2.5 rounded-xl font-semibold transition-all duration-300 overflow-hidden text-sm sm:text-base"
	buttonIdle   = "hover:bg-white/5"
	glowBase     = "absolute inset-0 opacity-50 blur-xl"
	gradientLeft = "bg-gradient-to-r"
)

var palettes = map[Page]string{
	Home:      "from-rose-600 to-amber-600",
	Portfolio: "from-purple-600 to-pink-600",
	Contact:   "from-blue-600 to-cyan-600",
}

// StyleFor maps a page and its active flag to the nav button style.
// It panics on an unknown page.
func StyleFor(p Page, active bool) StyleSet {
	mustValid(p)
	if !active {
		return StyleSet{Class: buttonBase + " " + buttonIdle}
	}
	gradient := gradientLeft + " " + palettes[p]
	return StyleSet{
		Class: buttonBase + " " + gradient,
		Glow:  glowBase + " " + gradient,
	}
}
