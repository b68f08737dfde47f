package shell

import (
	"fmt"
	"strings"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const (
	MsgNoCommands      = "No commands registered at this scope."
	MsgDeleteCancelled = "Delete cancelled."
	MsgUnknownGuild    = "Unknown guild. Check the ID and make sure the bot is a member of that server."
	MsgInvalidGuildID  = "Guild ID must be a non-empty string of digits."
	MsgInvalidChoice   = "Invalid choice, pick 1-5."
	MsgGoodbye         = "Bye."
)

// RenderCommandTable renders name/ID/description rows in input order.
func RenderCommandTable(cmds []domain.Command) string {
	nameW, idW := len("NAME"), len("ID")
	for _, cmd := range cmds {
		if len(cmd.Name) > nameW {
			nameW = len(cmd.Name)
		}
		if len(cmd.ID) > idW {
			idW = len(cmd.ID)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-*s  %s", nameW, "NAME", idW, "ID", "DESCRIPTION")))
	b.WriteString("\n")
	for _, cmd := range cmds {
		b.WriteString(fmt.Sprintf("%-*s  %-*s  %s\n", nameW, cmd.Name, idW, cmd.ID, cmd.Description))
	}
	return b.String()
}

// RenderProgress renders one line of a batch delete pass.
func RenderProgress(cmd domain.Command, ok bool) string {
	if ok {
		return fmt.Sprintf("Deleting %s ... %s", cmd.Name, successStyle.Render("ok"))
	}
	return fmt.Sprintf("Deleting %s ... %s", cmd.Name, errorStyle.Render("FAILED"))
}

// RenderSummary renders the outcome of a batch delete pass, naming every
// failure.
func RenderSummary(result domain.BatchResult) string {
	line := fmt.Sprintf("%d/%d deleted", result.Deleted, result.Total)
	if result.AllDeleted() {
		return successStyle.Render(line)
	}

	var b strings.Builder
	b.WriteString(errorStyle.Render(line))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Failed to delete %d command(s): %s", len(result.Failed), strings.Join(result.Failed, ", ")))
	return b.String()
}

func RenderError(msg string) string {
	return errorStyle.Render("Error: " + msg)
}

func RenderHint(msg string) string {
	return hintStyle.Render(msg)
}
