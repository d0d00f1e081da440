package audit

import "time"

// ActorType identifies the surface that performed an action.
type ActorType string

const (
	ActorCLI ActorType = "cli"
	ActorAPI ActorType = "api"
)

// Action describes what was done to a project.
type Action string

const (
	ActionProjectCreated  Action = "project_created"
	ActionProjectDeleted  Action = "project_deleted"
	ActionHotsiteExported Action = "hotsite_exported"
)

// Entry is a single activity record.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	ActorType     ActorType `json:"actor_type"`
	ActorID       string    `json:"actor_id,omitempty"`
	Action        Action    `json:"action"`
	ProjectID     string    `json:"project_id"`
	Summary       string    `json:"summary"`
	Detail        string    `json:"detail,omitempty"`
	MissingAssets []string  `json:"missing_assets,omitempty"`
}
