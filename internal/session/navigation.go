package session

import (
	"github.com/google/uuid"
)

// Screen identifies one of the application's logical pages.
type Screen string

const (
	ScreenHome       Screen = "home"
	ScreenWorkspace  Screen = "workspace"
	ScreenDatasets   Screen = "datasets"
	ScreenMaterials  Screen = "materials"
	ScreenExperiment Screen = "experiment"
	ScreenAssistant  Screen = "assistant"
	ScreenChat       Screen = "chat"
)

// screenTabs is the fixed tab set per screen; the first entry is the default.
// Screens absent from the map have no tabs.
var screenTabs = map[Screen][]string{
	ScreenWorkspace:  {"list", "create"},
	ScreenExperiment: {"list", "create"},
	ScreenAssistant:  {"list"},
}

// Intent is a pending navigation target recorded by a command handler and
// consumed exactly once by the router.
type Intent struct {
	Screen Screen `json:"screen"`
	Tab    string `json:"tab,omitempty"`
}

// Navigation holds the selection pointers and per-screen tab state for one
// session. It is only ever touched by the session that owns it.
type Navigation struct {
	CurrentWorkspaceID      *uuid.UUID
	SelectedDatasetID       *uuid.UUID
	SelectedMaterialID      *uuid.UUID
	CurrentExperimentID     *uuid.UUID
	CurrentAssistantID      *uuid.UUID
	CurrentAssistantVersion int

	tabs    map[Screen]string
	pending *Intent
}

func NewNavigation() *Navigation {
	return &Navigation{tabs: make(map[Screen]string)}
}

// Tab returns the active tab for a screen, falling back to the screen's
// default when unset or invalid.
func (n *Navigation) Tab(screen Screen) string {
	valid := screenTabs[screen]
	if len(valid) == 0 {
		return ""
	}
	current := n.tabs[screen]
	for _, tab := range valid {
		if tab == current {
			return current
		}
	}
	return valid[0]
}

// SetTab activates a tab. Unknown values fall back to the default rather than
// erroring.
func (n *Navigation) SetTab(screen Screen, tab string) {
	valid := screenTabs[screen]
	for _, v := range valid {
		if v == tab {
			n.tabs[screen] = tab
			return
		}
	}
	delete(n.tabs, screen)
}

// SetIntent records a pending navigation target, replacing any unconsumed one.
func (n *Navigation) SetIntent(intent Intent) {
	if intent.Tab != "" {
		n.SetTab(intent.Screen, intent.Tab)
	}
	n.pending = &intent
}

// PopIntent returns the pending intent and clears it in the same step, so a
// transition can never trigger twice.
func (n *Navigation) PopIntent() *Intent {
	intent := n.pending
	n.pending = nil
	return intent
}

// selectWorkspace moves the current-workspace pointer and drops every
// dependent selection; stale pointers must not leak across workspaces.
func (n *Navigation) selectWorkspace(id uuid.UUID) {
	n.CurrentWorkspaceID = &id
	n.clearWorkspaceScoped()
}

func (n *Navigation) clearWorkspace() {
	n.CurrentWorkspaceID = nil
	n.clearWorkspaceScoped()
}

func (n *Navigation) clearWorkspaceScoped() {
	n.SelectedDatasetID = nil
	n.SelectedMaterialID = nil
	n.CurrentExperimentID = nil
	n.CurrentAssistantID = nil
	n.CurrentAssistantVersion = 0
}

// ScreenState is what the router needs to render a screen: its active tab,
// whether it is blocked, and any per-prerequisite warnings.
type ScreenState struct {
	Screen   Screen   `json:"screen"`
	Tab      string   `json:"tab,omitempty"`
	Blocked  bool     `json:"blocked"`
	Warnings []string `json:"warnings,omitempty"`
}

// ScreenState evaluates gating for a screen. Workspace-scoped screens are
// blocked without a current workspace; the experiment screen additionally
// reports each missing selection independently, and chat requires an
// assistant.
func (s *Session) ScreenState(screen Screen) ScreenState {
	state := ScreenState{Screen: screen, Tab: s.Nav.Tab(screen)}

	if screen == ScreenHome || screen == ScreenWorkspace {
		return state
	}

	if s.Nav.CurrentWorkspaceID == nil {
		state.Blocked = true
		state.Warnings = append(state.Warnings, "Please select or create a workspace first")
		return state
	}

	switch screen {
	case ScreenExperiment:
		if s.Nav.SelectedDatasetID == nil {
			state.Warnings = append(state.Warnings, "Please select a dataset")
		}
		if s.Nav.SelectedMaterialID == nil {
			state.Warnings = append(state.Warnings, "Please select a material")
		}
	case ScreenChat:
		if s.Nav.CurrentAssistantID == nil {
			state.Blocked = true
			state.Warnings = append(state.Warnings, "Please select an assistant to chat with")
		}
	}
	return state
}
