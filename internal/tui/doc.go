// Package tui provides terminal user interface components for bender-config.
//
// This package uses the Bubble Tea framework to create interactive terminal
// interfaces: the configuration wizard and the profile picker.
//
// # Configuration Wizard
//
// The wizard walks through the configuration sections step by step
// (server, paths, limits, confirm), prefilled from the existing
// configuration or from defaults:
//
//	cfg, err := tui.RunWizard(current)
//	if cfg != nil {
//	    // save the validated configuration
//	}
//
// A nil result means the user cancelled. All values pass through the
// same field registry as the non-interactive `set` command, so the
// domain checks are identical.
//
// # Profile Picker
//
// The picker lists stored profiles and allows selection:
//
//	result, err := tui.RunPicker(infos)
//	switch result.Action {
//	case tui.ActionApply:
//	    // apply result.Profile to the active configuration
//	case tui.ActionShow:
//	    // print the profile
//	case tui.ActionDelete:
//	    // remove the profile
//	case tui.ActionQuit:
//	    // exit
//	}
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
