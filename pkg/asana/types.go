package asana

import (
	"encoding/json"
	"time"
)

// Response is the envelope every endpoint answers with.
type Response[T any] struct {
	Data   T            `json:"data"`
	Errors []ErrorEntry `json:"errors,omitempty"`
}

type ErrorEntry struct {
	Message string `json:"message"`
	Help    string `json:"help,omitempty"`
	Phrase  string `json:"phrase,omitempty"`
}

// envelope keeps data raw so a missing value can be told apart from a zero one.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorEntry    `json:"errors"`
	Sync   string          `json:"sync"`
}

// request bodies are always sent as {"data": ...}
type requestEnvelope struct {
	Data any `json:"data"`
}

type User struct {
	GID          string      `json:"gid"`
	ResourceType string      `json:"resource_type,omitempty"`
	Name         string      `json:"name"`
	Email        string      `json:"email,omitempty"`
	Workspaces   []Workspace `json:"workspaces,omitempty"`
}

type Workspace struct {
	GID            string `json:"gid"`
	ResourceType   string `json:"resource_type,omitempty"`
	Name           string `json:"name"`
	IsOrganization bool   `json:"is_organization,omitempty"`
}

type Team struct {
	GID          string `json:"gid"`
	ResourceType string `json:"resource_type,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
}

type Project struct {
	GID           string         `json:"gid"`
	ResourceType  string         `json:"resource_type,omitempty"`
	Name          string         `json:"name"`
	Notes         string         `json:"notes,omitempty"`
	Color         string         `json:"color,omitempty"`
	Archived      bool           `json:"archived,omitempty"`
	Public        bool           `json:"public,omitempty"`
	CreatedAt     *time.Time     `json:"created_at,omitempty"`
	ModifiedAt    *time.Time     `json:"modified_at,omitempty"`
	DueOn         *Date          `json:"due_on,omitempty"`
	CurrentStatus *ProjectStatus `json:"current_status,omitempty"`
	Team          *Team          `json:"team,omitempty"`
	Workspace     *Workspace     `json:"workspace,omitempty"`
	Followers     []User         `json:"followers,omitempty"`
}

type ProjectStatus struct {
	Title     string     `json:"title,omitempty"`
	Text      string     `json:"text,omitempty"`
	Color     string     `json:"color,omitempty"`
	Author    *User      `json:"author,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type Task struct {
	GID          string           `json:"gid"`
	ResourceType string           `json:"resource_type,omitempty"`
	Name         string           `json:"name"`
	Notes        string           `json:"notes,omitempty"`
	Completed    bool             `json:"completed,omitempty"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	CreatedAt    *time.Time       `json:"created_at,omitempty"`
	ModifiedAt   *time.Time       `json:"modified_at,omitempty"`
	DueOn        *Date            `json:"due_on,omitempty"`
	DueAt        *time.Time       `json:"due_at,omitempty"`
	StartOn      *Date            `json:"start_on,omitempty"`
	Assignee     *User            `json:"assignee,omitempty"`
	Workspace    *Workspace       `json:"workspace,omitempty"`
	Parent       *Task            `json:"parent,omitempty"`
	Projects     []Project        `json:"projects,omitempty"`
	Tags         []Tag            `json:"tags,omitempty"`
	Followers    []User           `json:"followers,omitempty"`
	Memberships  []TaskMembership `json:"memberships,omitempty"`
	CustomFields []CustomField    `json:"custom_fields,omitempty"`
	Hearts       []Heart          `json:"hearts,omitempty"`
	NumHearts    int              `json:"num_hearts,omitempty"`
	Liked        bool             `json:"liked,omitempty"`
}

type TaskDependency struct {
	GID          string `json:"gid"`
	ResourceType string `json:"resource_type,omitempty"`
	Target       *Task  `json:"target,omitempty"`
	Dependant    *Task  `json:"dependant,omitempty"`
}

type TaskMembership struct {
	GID     string   `json:"gid,omitempty"`
	Project *Project `json:"project,omitempty"`
	Section *Section `json:"section,omitempty"`
}

type Section struct {
	GID          string     `json:"gid"`
	ResourceType string     `json:"resource_type,omitempty"`
	Name         string     `json:"name"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	Project      *Project   `json:"project,omitempty"`
}

type Tag struct {
	GID          string     `json:"gid"`
	ResourceType string     `json:"resource_type,omitempty"`
	Name         string     `json:"name"`
	Color        string     `json:"color,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Workspace    *Workspace `json:"workspace,omitempty"`
}

type Attachment struct {
	GID          string     `json:"gid"`
	ResourceType string     `json:"resource_type,omitempty"`
	Name         string     `json:"name"`
	Host         string     `json:"host,omitempty"`
	DownloadURL  string     `json:"download_url,omitempty"`
	ViewURL      string     `json:"view_url,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	Parent       *Task      `json:"parent,omitempty"`
}

type Story struct {
	GID          string     `json:"gid"`
	ResourceType string     `json:"resource_type,omitempty"`
	Type         string     `json:"type,omitempty"`
	Text         string     `json:"text"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	CreatedBy    *User      `json:"created_by,omitempty"`
}

type Heart struct {
	GID       string     `json:"gid"`
	User      *User      `json:"user,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type EnumOption struct {
	GID     string `json:"gid"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled,omitempty"`
	Color   string `json:"color,omitempty"`
}

type CustomField struct {
	GID             string       `json:"gid"`
	ResourceType    string       `json:"resource_type,omitempty"`
	Name            string       `json:"name"`
	Type            string       `json:"type,omitempty"`
	Enabled         bool         `json:"enabled,omitempty"`
	EnumOptions     []EnumOption `json:"enum_options,omitempty"`
	EnumValue       *EnumOption  `json:"enum_value,omitempty"`
	MultiEnumValues []EnumOption `json:"multi_enum_values,omitempty"`
	TextValue       *string      `json:"text_value,omitempty"`
	NumberValue     *float64     `json:"number_value,omitempty"`
	DisplayValue    *string      `json:"display_value,omitempty"`
}

// Events is one page of a project's event stream. Sync is the token to pass
// to the next ProjectEvents call.
type Events struct {
	Data []Event `json:"data"`
	Sync string  `json:"sync"`
}

type Event struct {
	Type      string         `json:"type"`
	Action    string         `json:"action"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	User      *User          `json:"user,omitempty"`
	Resource  *EventResource `json:"resource,omitempty"`
	Parent    *EventResource `json:"parent,omitempty"`
}

type EventResource struct {
	GID             string `json:"gid"`
	ResourceType    string `json:"resource_type,omitempty"`
	ResourceSubtype string `json:"resource_subtype,omitempty"`
	Name            string `json:"name,omitempty"`
	Text            string `json:"text,omitempty"`
}

// TaskCreateRequest needs Name and WorkspaceID; everything else is optional.
type TaskCreateRequest struct {
	Name         string         `json:"name"`
	Notes        string         `json:"notes,omitempty"`
	WorkspaceID  string         `json:"workspace"`
	Projects     []string       `json:"projects,omitempty"`
	Assignee     string         `json:"assignee,omitempty"`
	DueOn        *Date          `json:"due_on,omitempty"`
	DueAt        *time.Time     `json:"due_at,omitempty"`
	StartOn      *Date          `json:"start_on,omitempty"`
	Followers    []string       `json:"followers,omitempty"`
	Parent       string         `json:"parent,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
}

// TaskUpdateRequest only sends the fields that are set.
type TaskUpdateRequest struct {
	Name         *string        `json:"name,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
	Assignee     *string        `json:"assignee,omitempty"`
	Completed    *bool          `json:"completed,omitempty"`
	DueOn        *Date          `json:"due_on,omitempty"`
	DueAt        *time.Time     `json:"due_at,omitempty"`
	StartOn      *Date          `json:"start_on,omitempty"`
	Projects     []string       `json:"projects,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Followers    []string       `json:"followers,omitempty"`
	Parent       *string        `json:"parent,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
}

type DuplicateTaskRequest struct {
	Name                string `json:"name,omitempty"`
	IncludeSubtasks     bool   `json:"include_subtasks,omitempty"`
	IncludeDependencies bool   `json:"include_dependencies,omitempty"`
}

type MoveTaskRequest struct {
	SectionID    string `json:"-"`
	InsertBefore string `json:"insert_before,omitempty"`
	InsertAfter  string `json:"insert_after,omitempty"`
}
