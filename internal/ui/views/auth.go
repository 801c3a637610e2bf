package views

import (
	"strings"

	"jobboard/internal/domain"
)

func (r *Renderer) renderAuth(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Hero.Render("Welcome Back"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Sign in to continue your job search"))
	b.WriteString("\n\n")

	choices := []struct {
		key  string
		role domain.Role
	}{
		{"1", domain.RoleJobSeeker},
		{"2", domain.RoleEmployer},
	}
	rendered := make([]string, 0, len(choices))
	for _, c := range choices {
		style := r.styles.Choice
		if c.role == state.PendingRole {
			style = r.styles.ChoiceActive
		}
		rendered = append(rendered, style.Render(c.key+"  "+c.role.Label()))
	}
	b.WriteString(strings.Join(rendered, "  "))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("enter to sign in · esc to go back"))

	return b.String()
}
