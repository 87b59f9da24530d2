// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAccentColors(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"Cyan":    Cyan,
		"Emerald": Emerald,
		"Amber":   Amber,
		"Rose":    Rose,
		"Purple":  Purple,
	}

	for name, c := range colors {
		if c.Light == "" || c.Dark == "" {
			t.Errorf("%s should define both light and dark variants", name)
		}
		if c.Light == c.Dark {
			t.Errorf("%s light and dark variants should differ", name)
		}
	}
}

func TestStatusIndicators(t *testing.T) {
	indicators := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
	}

	seen := make(map[string]bool)
	for _, ind := range indicators {
		if ind == "" {
			t.Error("status indicator should not be empty")
		}
		if seen[ind] {
			t.Errorf("Duplicate status indicator: %q", ind)
		}
		seen[ind] = true
	}
}

func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name      string
		render    func(string) string
		indicator string
	}{
		{"success", RenderSuccess, StatusIndicators.Success},
		{"error", RenderError, StatusIndicators.Error},
		{"warning", RenderWarning, StatusIndicators.Warning},
		{"info", RenderInfo, StatusIndicators.Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := "config file ignored"
			result := tt.render(msg)

			if !strings.Contains(result, msg) {
				t.Errorf("result %q should contain %q", result, msg)
			}
			if !strings.Contains(result, tt.indicator) {
				t.Errorf("result %q should contain indicator %q", result, tt.indicator)
			}
		})
	}
}
