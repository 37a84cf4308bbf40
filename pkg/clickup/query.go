package clickup

import (
	"net/url"
	"strconv"
	"strings"
)

// Accepted values of [TaskQuery.OrderBy].
const (
	OrderByID      = "id"
	OrderByCreated = "created"
	OrderByUpdated = "updated"
	OrderByDueDate = "due_date"
)

// TaskQuery filters and pages task listings.
//
// Date filters accept Unix millisecond timestamps or free text. Slice filters are sent as
// one comma-joined bracket parameter each, e.g. statuses[]=open,review.
type TaskQuery struct {
	Page          int
	OrderBy       string `url:"order_by" validate:"omitempty,oneof=id created updated due_date"`
	Reverse       bool
	Subtasks      bool
	IncludeClosed bool
	Archived      bool

	Statuses   []string
	Assignees  []string
	Tags       []string
	SpaceIDs   []string
	ProjectIDs []string
	ListIDs    []string

	DueDateGt     string
	DueDateLt     string
	DateCreatedGt string
	DateCreatedLt string
	DateUpdatedGt string
	DateUpdatedLt string
}

// taskQueryValues validates q and encodes it, resolving human dates with c.
func (c *Client) taskQueryValues(q TaskQuery) (url.Values, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	if q.Page < 0 {
		return nil, argumentError("page must not be negative")
	}

	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}

	for name, on := range map[string]bool{
		"reverse":        q.Reverse,
		"subtasks":       q.Subtasks,
		"include_closed": q.IncludeClosed,
		"archived":       q.Archived,
	} {
		if on {
			v.Set(name, "true")
		}
	}

	for name, vals := range map[string][]string{
		"statuses[]":    q.Statuses,
		"assignees[]":   q.Assignees,
		"tags[]":        q.Tags,
		"space_ids[]":   q.SpaceIDs,
		"project_ids[]": q.ProjectIDs,
		"list_ids[]":    q.ListIDs,
	} {
		if len(vals) > 0 {
			v.Set(name, strings.Join(vals, ","))
		}
	}

	for name, text := range map[string]string{
		"due_date_gt":     q.DueDateGt,
		"due_date_lt":     q.DueDateLt,
		"date_created_gt": q.DateCreatedGt,
		"date_created_lt": q.DateCreatedLt,
		"date_updated_gt": q.DateUpdatedGt,
		"date_updated_lt": q.DateUpdatedLt,
	} {
		ts, err := c.timestamp(text)
		if err != nil {
			return nil, err
		}
		if ts != "" {
			v.Set(name, ts.String())
		}
	}

	return v, nil
}
