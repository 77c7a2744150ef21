package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/ui/input/types"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Previous):
		return []types.Action{types.NavigateAction{Direction: "previous"}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case key.Matches(msg, m.keys.First):
		return []types.Action{types.NavigateAction{Direction: "first"}}, true

	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.NavigateAction{Direction: "last"}}, true

	case key.Matches(msg, m.keys.Page):
		// 1-based on the keyboard
		page := int(msg.Runes[0] - '0')
		return []types.Action{types.GoToAction{Index: page - 1}}, true

	case key.Matches(msg, m.keys.GoTo):
		if ctx.PageCount() <= 1 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, true

	case key.Matches(msg, m.keys.Autoplay):
		if !ctx.AutoplayConfigured() {
			return nil, true
		}
		return []types.Action{types.ToggleAutoplayAction{}}, true

	case key.Matches(msg, m.keys.NextTab):
		if ctx.TabCount() < 2 {
			return nil, true
		}
		return []types.Action{types.SwitchCarouselAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.PreviousTab):
		if ctx.TabCount() < 2 {
			return nil, true
		}
		return []types.Action{types.SwitchCarouselAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadDeckAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
