package clickup

import (
	"context"
	"net/url"
	"strings"
)

type timeEntryResponse struct {
	Data TimeEntry `json:"data"`
}

// GetTimeEntriesInRange fetches a team's time entries between start and end.
//
// Both bounds accept Unix millisecond timestamps or free text; empty bounds are left to the server default
// (the last 30 days). Assignees filters by user id.
func (c *Client) GetTimeEntriesInRange(ctx context.Context, teamID, start, end string, assignees []string) (*TimeEntries, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}

	query := url.Values{}
	startTS, err := c.timestamp(start)
	if err != nil {
		return nil, err
	}
	endTS, err := c.timestamp(end)
	if err != nil {
		return nil, err
	}
	if startTS != "" {
		query.Set("start_date", startTS.String())
	}
	if endTS != "" {
		query.Set("end_date", endTS.String())
	}
	if len(assignees) > 0 {
		query.Set("assignee", strings.Join(assignees, ","))
	}

	var entries TimeEntries
	if err := c.get(ctx, endpoint("team", teamID, "time_entries"), query, &entries); err != nil {
		return nil, err
	}
	return &entries, nil
}

// GetTimeEntry fetches a single time entry.
func (c *Client) GetTimeEntry(ctx context.Context, teamID, timerID string) (*TimeEntry, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}
	if err := requireID("timer", timerID); err != nil {
		return nil, err
	}

	var resp timeEntryResponse
	if err := c.get(ctx, endpoint("team", teamID, "time_entries", timerID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// StartTimer starts the timer identified by timerID.
func (c *Client) StartTimer(ctx context.Context, teamID, timerID string) (*TimeEntry, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}
	if err := requireID("timer", timerID); err != nil {
		return nil, err
	}

	var resp timeEntryResponse
	if err := c.post(ctx, endpoint("team", teamID, "time_entries", "start", timerID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// StopTimer stops the authorized user's running timer.
func (c *Client) StopTimer(ctx context.Context, teamID string) (*TimeEntry, error) {
	if err := requireID("team", teamID); err != nil {
		return nil, err
	}

	var resp timeEntryResponse
	if err := c.post(ctx, endpoint("team", teamID, "time_entries", "stop"), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
