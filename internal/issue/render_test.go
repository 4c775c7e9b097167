// SPDX-License-Identifier: MPL-2.0

package issue

import "github.com/charmbracelet/glamour"

// glamourRenderNoTTY renders with a fixed style so output does not depend on
// the test terminal.
func glamourRenderNoTTY(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle("notty"), glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
