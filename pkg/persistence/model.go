// Package persistence handles the conversation log and prompt history and
// their YAML serialization
package persistence

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Kind qualifies assistant turns. User turns carry no kind.
type Kind string

const (
	KindGeneration          Kind = "generation"
	KindValidationRejection Kind = "validation-rejection"
	KindGenerationFailure   Kind = "generation-failure"
)

// Turn is one message of the conversation. Turns are only ever appended.
type Turn struct {
	Role    Role   `yaml:"role"`
	Content string `yaml:"content"`
	Kind    Kind   `yaml:"kind,omitempty"`
}

func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

func AssistantTurn(kind Kind, content string) Turn {
	return Turn{Role: RoleAssistant, Kind: kind, Content: content}
}
