// Package message defines the JSON payloads exchanged over kafka. Payloads
// are dispatched by the X-Message-Type header rather than by topic so a
// topic can carry more than one message kind.
package message

const (
	TypeHeaderKey = "X-Message-Type"

	ExperienceGrantType  = "experience.GrantMessage"
	ExperienceChangeType = "experience.ChangeMessage"
)

// ExperienceGrantMessage asks the service to award experience to a player.
type ExperienceGrantMessage struct {
	PlayerId       string `json:"playerId"`
	PlayerUsername string `json:"playerUsername"`

	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// ExperienceChangeMessage announces that a player's experience changed.
type ExperienceChangeMessage struct {
	PlayerId string `json:"playerId"`
	Reason   string `json:"reason"`

	PreviousExperience int `json:"previousExperience"`
	NewExperience      int `json:"newExperience"`

	PreviousLevel int `json:"previousLevel"`
	NewLevel      int `json:"newLevel"`
}
