package domain

import "errors"

// Command is one slash-command registration as reported by Discord.
type Command struct {
	ID          string
	Name        string
	Description string
}

// Scope selects the global command set or one guild's command set.
// The zero value is the global scope.
type Scope struct {
	GuildID string
}

func GlobalScope() Scope {
	return Scope{}
}

func GuildScope(guildID string) Scope {
	return Scope{GuildID: guildID}
}

func (s Scope) IsGlobal() bool {
	return s.GuildID == ""
}

func (s Scope) String() string {
	if s.IsGlobal() {
		return "global"
	}
	return "guild " + s.GuildID
}

// BatchResult summarizes one delete-all pass over a scope.
type BatchResult struct {
	Total   int
	Deleted int
	Failed  []string
}

func (r BatchResult) AllDeleted() bool {
	return r.Deleted == r.Total
}

var (
	// ErrAuthFailed means the token was rejected by Discord.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrUnknownGuild means the guild does not exist or the bot is not in it.
	ErrUnknownGuild = errors.New("unknown guild")
)
