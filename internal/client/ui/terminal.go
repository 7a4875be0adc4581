package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/portalauth/internal/models"
)

var (
	bannerBase = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	severityStyles = map[Severity]lipgloss.Style{
		Success: bannerBase.Foreground(lipgloss.Color("#4ade80")),
		Info:    bannerBase.Foreground(lipgloss.Color("#60a5fa")),
		Warning: bannerBase.Foreground(lipgloss.Color("#facc15")),
		Danger:  bannerBase.Foreground(lipgloss.Color("#f87171")),
	}

	severityIcons = map[Severity]string{
		Success: "✔",
		Info:    "ℹ",
		Warning: "!",
		Danger:  "✖",
	}

	navStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	navUserStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))
)

// TerminalPresenter writes styled lines to w. It also remembers who is
// shown as logged in so the prompt can reflect it.
type TerminalPresenter struct {
	mu   sync.Mutex
	w    io.Writer
	user *models.User
}

func NewTerminalPresenter(w io.Writer) *TerminalPresenter {
	return &TerminalPresenter{w: w}
}

func (p *TerminalPresenter) ShowBanner(message string, severity Severity) {
	style, ok := severityStyles[severity]
	if !ok {
		style = bannerBase
	}
	fmt.Fprintln(p.w, style.Render(severityIcons[severity]+" "+message))
}

func (p *TerminalPresenter) RenderLoggedInNav(user models.User) {
	p.mu.Lock()
	u := user
	p.user = &u
	p.mu.Unlock()

	fmt.Fprintln(p.w, navStyle.Render("Signed in as ")+navUserStyle.Render(user.DisplayName())+
		dimStyle.Render(" <"+user.Email+">  · logout"))
}

func (p *TerminalPresenter) RenderLoggedOutNav() {
	p.mu.Lock()
	p.user = nil
	p.mu.Unlock()

	fmt.Fprintln(p.w, navStyle.Render("Not signed in")+dimStyle.Render("  · login  · signup"))
}

// CurrentEmail is the email of the user shown as logged in, or "".
func (p *TerminalPresenter) CurrentEmail() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil {
		return ""
	}
	return p.user.Email
}
