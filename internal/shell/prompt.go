package shell

import (
	"fmt"
	"strings"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/config"
)

// promptGuildID keeps asking until the operator supplies an all-digits
// guild ID. An empty answer picks the configured default, if any.
func (s *Shell) promptGuildID() (string, error) {
	prompt := "Guild ID: "
	if s.defaultGuildID != "" {
		prompt = fmt.Sprintf("Guild ID [%s]: ", s.defaultGuildID)
	}

	for {
		line, err := s.reader.ReadLine(prompt)
		if err != nil {
			return "", err
		}

		id := strings.TrimSpace(line)
		if id == "" && s.defaultGuildID != "" {
			return s.defaultGuildID, nil
		}
		if config.IsGuildID(id) {
			return id, nil
		}

		fmt.Fprintln(s.out, RenderError(MsgInvalidGuildID))
	}
}

// Confirm asks a yes/no question through the reader. Anything but an
// explicit yes counts as no.
func Confirm(reader LineReader, question string) bool {
	line, err := reader.ReadLine(question + " [y/N] ")
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
