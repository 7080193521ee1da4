// Package dgraph implements the admin-command core: mapping commands onto
// HTTP requests against Dgraph's admin API and classifying the responses.
package dgraph

// Kind identifies one of the admin operations.
type Kind int

const (
	KindUpdateSchema Kind = iota
	KindGetSchema
	KindDropAll
	KindDropData
	KindGetHealth
)

// String returns the CLI-facing name of the operation.
func (k Kind) String() string {
	switch k {
	case KindUpdateSchema:
		return "update-schema"
	case KindGetSchema:
		return "get-schema"
	case KindDropAll:
		return "drop-all"
	case KindDropData:
		return "drop-data"
	case KindGetHealth:
		return "get-health"
	}
	return "unknown"
}

// Command is one admin operation. UpdateSchema is the only variant that
// carries a payload (the new schema text).
type Command struct {
	Kind    Kind
	Payload string
}

// UpdateSchema returns the command that replaces the schema with payload.
func UpdateSchema(payload string) Command {
	return Command{Kind: KindUpdateSchema, Payload: payload}
}

// GetSchema returns the command that fetches the current schema.
func GetSchema() Command {
	return Command{Kind: KindGetSchema}
}

// DropAll returns the command that removes all data and schema.
func DropAll() Command {
	return Command{Kind: KindDropAll}
}

// DropData returns the command that removes all data but keeps the schema.
func DropData() Command {
	return Command{Kind: KindDropData}
}

// GetHealth returns the command that fetches cluster health.
func GetHealth() Command {
	return Command{Kind: KindGetHealth}
}
