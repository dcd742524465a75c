package compose

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/postcards/domain"
	"github.com/CrestNiraj12/postcards/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	if m.mode == editorMode {
		return m.status + "\n"
	}

	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render(domain.DisplayAppTitle()))
	b.WriteString("  Edit post\n\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.body.View())
	b.WriteString("\n\n")
	b.WriteString(common.StatusBarStyle.Render(fmt.Sprintf(
		"  ctrl+s: save • tab: switch field • ctrl+e: $EDITOR • esc: cancel • %d/%d chars",
		len([]rune(m.body.Value())), bodyLimit,
	)))
	return b.String()
}
