// internal/app/popupctl/manager.go
package popupctl

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/history"
	"github.com/llehouerou/notice/internal/ui/confirm"
	"github.com/llehouerou/notice/internal/ui/helpbindings"
	"github.com/llehouerou/notice/internal/ui/historypanel"
	"github.com/llehouerou/notice/internal/ui/overlay"
	"github.com/llehouerou/notice/internal/ui/popup"
	"github.com/llehouerou/notice/internal/ui/textinput"
)

// Manager manages all modal popups.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.SizeConfig
	now    func() time.Time
	width  int
	height int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Help:      popup.SizeAuto,
			Confirm:   popup.SizeAuto,
			TextInput: popup.SizeAuto,
			History:   popup.SizeLarge,
		},
		now: time.Now,
	}
}

// SetClock overrides the time source handed to the history panel.
func (p *Manager) SetClock(now func() time.Time) {
	p.now = now
}

// SetSize updates the dimensions for popup rendering and resizes open
// popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	return t != None && p.popups[t] != nil
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		w := p.width * size.WidthPct / 100
		h := p.height * size.HeightPct / 100
		return w, h
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm displays a confirmation dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowTextInput displays a text input popup.
func (p *Manager) ShowTextInput(title, value, placeholder string, context any) tea.Cmd {
	ti := textinput.New()
	ti.Start(title, value, placeholder, context, p.width, p.height)
	return p.Show(TextInput, &ti)
}

// ShowHistory displays the history panel.
func (p *Manager) ShowHistory(entries []history.Entry, counts map[string]int) tea.Cmd {
	hp := historypanel.New()
	hp.SetClock(p.now)
	hp.SetEntries(entries, counts)
	return p.Show(History, &hp)
}

// History returns the history panel for direct access.
func (p *Manager) History() *historypanel.Model {
	if pop := p.popups[History]; pop != nil {
		if hp, ok := pop.(*historypanel.Model); ok {
			return hp
		}
	}
	return nil
}

// --- Message Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	return p.route(msg)
}

// HandleMsg forwards a non-key message, such as a cursor blink, to the
// active popup.
func (p *Manager) HandleMsg(msg tea.Msg) tea.Cmd {
	_, cmd := p.route(msg)
	return cmd
}

func (p *Manager) route(msg tea.Msg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	updated, cmd := p.popups[active].Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		rendered := popup.RenderBordered(pop.View(), p.width, p.height, p.sizes[t])
		base = overlay.Compose(base, rendered, p.width, p.height)
	}
	return base
}
