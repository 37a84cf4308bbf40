package clickup

import "encoding/json"

// User is a workspace member as embedded in tasks, comments and member listings.
type User struct {
	ID             json.Number `json:"id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	Color          string      `json:"color"`
	Initials       string      `json:"initials"`
	ProfilePicture *string     `json:"profilePicture"`
}

// Member is a user returned by the task and list member endpoints.
type Member = User

// Members wraps the member endpoints' response.
type Members struct {
	Members []Member `json:"members"`
}

// Status is a workflow state of a task or list.
type Status struct {
	ID         string      `json:"id,omitempty"`
	Status     string      `json:"status"`
	Color      string      `json:"color"`
	Type       string      `json:"type"`
	OrderIndex json.Number `json:"orderindex"`
}

// Priority is the priority object attached to tasks and lists.
type Priority struct {
	ID       string `json:"id"`
	Priority string `json:"priority"`
	Color    string `json:"color"`
}

// Tag is a space-scoped label.
type Tag struct {
	Name    string      `json:"name"`
	TagFg   string      `json:"tag_fg,omitempty"`
	TagBg   string      `json:"tag_bg,omitempty"`
	Creator json.Number `json:"creator,omitempty"`
}

// Tags wraps the space tag listing.
type Tags struct {
	Tags []Tag `json:"tags"`
}

// ChecklistItem is one entry of a [Checklist].
type ChecklistItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	OrderIndex  json.Number `json:"orderindex"`
	Assignee    *User       `json:"assignee"`
	Resolved    bool        `json:"resolved"`
	Parent      *string     `json:"parent"`
	DateCreated string      `json:"date_created"`
	Children    []string    `json:"children"`
}

// Checklist is a named set of items on a task.
type Checklist struct {
	ID         string          `json:"id"`
	TaskID     string          `json:"task_id"`
	Name       string          `json:"name"`
	OrderIndex json.Number     `json:"orderindex"`
	Resolved   int             `json:"resolved"`
	Unresolved int             `json:"unresolved"`
	Items      []ChecklistItem `json:"items"`
}

// CustomField is a custom field value on a task. Value is left undecoded.
type CustomField struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

// Ref is the short {id, name} form used when one resource points at another.
type Ref struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
	Access bool   `json:"access,omitempty"`
}

// Task is a unit of work inside a list.
type Task struct {
	ID           string        `json:"id"`
	CustomID     *string       `json:"custom_id"`
	Name         string        `json:"name"`
	TextContent  string        `json:"text_content"`
	Description  string        `json:"description"`
	Status       Status        `json:"status"`
	OrderIndex   json.Number   `json:"orderindex"`
	DateCreated  string        `json:"date_created"`
	DateUpdated  string        `json:"date_updated"`
	DateClosed   *string       `json:"date_closed"`
	Archived     bool          `json:"archived"`
	Creator      User          `json:"creator"`
	Assignees    []User        `json:"assignees"`
	Watchers     []User        `json:"watchers"`
	Checklists   []Checklist   `json:"checklists"`
	Tags         []Tag         `json:"tags"`
	Parent       *string       `json:"parent"`
	Priority     *Priority     `json:"priority"`
	DueDate      *string       `json:"due_date"`
	StartDate    *string       `json:"start_date"`
	TimeEstimate *int64        `json:"time_estimate"`
	TimeSpent    *int64        `json:"time_spent"`
	CustomFields []CustomField `json:"custom_fields"`
	List         Ref           `json:"list"`
	Folder       Ref           `json:"folder"`
	Space        Ref           `json:"space"`
	URL          string        `json:"url"`
	Attachments  []Attachment  `json:"attachments"`
}

// Tasks wraps a page of tasks.
type Tasks struct {
	Tasks    []Task `json:"tasks"`
	LastPage bool   `json:"last_page"`
}

// List is a container of tasks, either inside a folder or directly in a space.
type List struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	OrderIndex       json.Number `json:"orderindex"`
	Content          string      `json:"content"`
	Status           *Status     `json:"status"`
	Priority         *Priority   `json:"priority"`
	Assignee         *User       `json:"assignee"`
	TaskCount        json.Number `json:"task_count"`
	DueDate          *string     `json:"due_date"`
	StartDate        *string     `json:"start_date"`
	Folder           Ref         `json:"folder"`
	Space            Ref         `json:"space"`
	Archived         bool        `json:"archived"`
	OverrideStatuses bool        `json:"override_statuses"`
	Statuses         []Status    `json:"statuses"`
	PermissionLevel  string      `json:"permission_level"`
}

// Lists wraps a list listing.
type Lists struct {
	Lists []List `json:"lists"`
}

// Folder groups lists inside a space.
type Folder struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	OrderIndex       json.Number `json:"orderindex"`
	OverrideStatuses bool        `json:"override_statuses"`
	Hidden           bool        `json:"hidden"`
	Space            Ref         `json:"space"`
	TaskCount        json.Number `json:"task_count"`
	Archived         bool        `json:"archived"`
	Statuses         []Status    `json:"statuses"`
	Lists            []List      `json:"lists"`
	PermissionLevel  string      `json:"permission_level"`
}

// Folders wraps a folder listing.
type Folders struct {
	Folders []Folder `json:"folders"`
}

// Feature toggles a single ClickApp on a space.
type Feature struct {
	Enabled bool `json:"enabled"`
}

// DueDatesFeature carries the due date ClickApp and its options.
type DueDatesFeature struct {
	Enabled            bool `json:"enabled"`
	StartDate          bool `json:"start_date"`
	RemapDueDates      bool `json:"remap_due_dates"`
	RemapClosedDueDate bool `json:"remap_closed_due_date"`
}

// SpaceFeatures is the ClickApp configuration of a space.
type SpaceFeatures struct {
	DueDates          DueDatesFeature `json:"due_dates"`
	TimeTracking      Feature         `json:"time_tracking"`
	Tags              Feature         `json:"tags"`
	TimeEstimates     Feature         `json:"time_estimates"`
	Checklists        Feature         `json:"checklists"`
	CustomFields      Feature         `json:"custom_fields"`
	RemapDependencies Feature         `json:"remap_dependencies"`
	DependencyWarning Feature         `json:"dependency_warning"`
	Portfolios        Feature         `json:"portfolios"`
}

// AllFeatures returns a [SpaceFeatures] with every ClickApp enabled.
func AllFeatures() SpaceFeatures {
	on := Feature{Enabled: true}
	return SpaceFeatures{
		DueDates: DueDatesFeature{
			Enabled:            true,
			StartDate:          true,
			RemapDueDates:      true,
			RemapClosedDueDate: true,
		},
		TimeTracking:      on,
		Tags:              on,
		TimeEstimates:     on,
		Checklists:        on,
		CustomFields:      on,
		RemapDependencies: on,
		DependencyWarning: on,
		Portfolios:        on,
	}
}

// Space is the top level container below a team.
type Space struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Private           bool          `json:"private"`
	Statuses          []Status      `json:"statuses"`
	MultipleAssignees bool          `json:"multiple_assignees"`
	Features          SpaceFeatures `json:"features"`
	Archived          bool          `json:"archived"`
}

// Spaces wraps a space listing.
type Spaces struct {
	Spaces []Space `json:"spaces"`
}

// CommentPart is one rich-text segment of a comment.
type CommentPart struct {
	Text string `json:"text"`
}

// Comment is a comment on a task, list or chat view.
type Comment struct {
	ID          string        `json:"id"`
	Comment     []CommentPart `json:"comment"`
	CommentText string        `json:"comment_text"`
	User        User          `json:"user"`
	Resolved    bool          `json:"resolved"`
	Assignee    *User         `json:"assignee"`
	AssignedBy  *User         `json:"assigned_by"`
	Date        string        `json:"date"`
}

// Comments wraps a comment listing.
type Comments struct {
	Comments []Comment `json:"comments"`
}

// CommentCreated is returned when a comment is posted.
type CommentCreated struct {
	ID     json.Number `json:"id"`
	HistID string      `json:"hist_id"`
	Date   json.Number `json:"date"`
}

// TeamMember is a membership entry of a [Team].
type TeamMember struct {
	User User `json:"user"`
}

// Team is a workspace.
type Team struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Color   string       `json:"color"`
	Avatar  *string      `json:"avatar"`
	Members []TeamMember `json:"members"`
}

// Teams wraps the authorized teams listing.
type Teams struct {
	Teams []Team `json:"teams"`
}

// Goal is a team-level objective.
type Goal struct {
	ID               string      `json:"id"`
	PrettyID         string      `json:"pretty_id"`
	Name             string      `json:"name"`
	TeamID           string      `json:"team_id"`
	Creator          json.Number `json:"creator"`
	Owner            *User       `json:"owner"`
	Color            string      `json:"color"`
	DateCreated      string      `json:"date_created"`
	StartDate        *string     `json:"start_date"`
	DueDate          string      `json:"due_date"`
	Description      string      `json:"description"`
	Private          bool        `json:"private"`
	Archived         bool        `json:"archived"`
	MultipleOwners   bool        `json:"multiple_owners"`
	FolderID         *string     `json:"folder_id"`
	Members          []User      `json:"members"`
	Owners           []User      `json:"owners"`
	KeyResults       []any       `json:"key_results"`
	PercentCompleted json.Number `json:"percent_completed"`
	PrettyURL        string      `json:"pretty_url"`
}

// GoalFolder groups goals.
type GoalFolder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Goals []Goal `json:"goals"`
}

// Goals wraps a team's goals and goal folders.
type Goals struct {
	Goals   []Goal       `json:"goals"`
	Folders []GoalFolder `json:"folders"`
}

// SharedHierarchy lists the tasks, lists and folders shared with the authorized user.
type SharedHierarchy struct {
	Tasks   []string `json:"tasks"`
	Lists   []List   `json:"lists"`
	Folders []Folder `json:"folders"`
}

// Attachment is a file attached to a task.
type Attachment struct {
	ID             string      `json:"id"`
	Version        string      `json:"version"`
	Date           json.Number `json:"date"`
	Title          string      `json:"title"`
	Extension      string      `json:"extension"`
	ThumbnailSmall string      `json:"thumbnail_small"`
	ThumbnailLarge string      `json:"thumbnail_large"`
	URL            string      `json:"url"`
}

// TimeEntryTask is the task summary embedded in a [TimeEntry].
type TimeEntryTask struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// TimeEntry is a tracked interval. Duration is negative while the timer runs.
type TimeEntry struct {
	ID          string         `json:"id"`
	Task        *TimeEntryTask `json:"task"`
	Wid         string         `json:"wid"`
	User        User           `json:"user"`
	Billable    bool           `json:"billable"`
	Start       string         `json:"start"`
	End         string         `json:"end"`
	Duration    string         `json:"duration"`
	Description string         `json:"description"`
	Tags        []Tag          `json:"tags"`
	Source      string         `json:"source"`
	At          json.Number    `json:"at"`
}

// TimeEntries wraps a time entry listing.
type TimeEntries struct {
	Data []TimeEntry `json:"data"`
}
