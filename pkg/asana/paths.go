package asana

import (
	"net/url"
	"strings"
)

// path segments
const (
	segTasks              = "tasks"
	segWorkspaces         = "workspaces"
	segOrganizations      = "organizations"
	segTeams              = "teams"
	segProjects           = "projects"
	segUsers              = "users"
	segMe                 = "me"
	segStories            = "stories"
	segAttachments        = "attachments"
	segSections           = "sections"
	segTags               = "tags"
	segCustomFields       = "custom_fields"
	segEvents             = "events"
	segDependencies       = "dependencies"
	segAddDependencies    = "addDependencies"
	segRemoveDependencies = "removeDependencies"
	segSubtasks           = "subtasks"
	segAddLike            = "addLike"
	segRemoveLike         = "removeLike"
	segAddTask            = "addTask"
	segDuplicate          = "duplicate"
)

// query parameters
const (
	paramWorkspace = "workspace"
	paramSync      = "sync"
)

// multipart field carrying an uploaded file
const formFieldFile = "file"

// resourcePath joins segments, escaping each one so identifiers can never
// introduce extra path elements.
func resourcePath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
