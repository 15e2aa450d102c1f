package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup precomputes default-period dashboards.
	TaskDashboardWarmup = "dashboard:warmup"
	// TaskDashboardBust drops one organization's cached dashboards.
	TaskDashboardBust = "dashboard:bust"
)

// DashboardWarmupPayload selects the organization to warm. Zero warms all.
type DashboardWarmupPayload struct {
	OrgID int64 `json:"orgId,omitempty"`
}

// DashboardBustPayload names the organization to invalidate.
type DashboardBustPayload struct {
	OrgID int64 `json:"orgId"`
}

// NewDashboardWarmupTask constructs a warmup task.
func NewDashboardWarmupTask(orgID int64) (*asynq.Task, error) {
	data, err := json.Marshal(DashboardWarmupPayload{OrgID: orgID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}

// NewDashboardBustTask constructs a bust task.
func NewDashboardBustTask(orgID int64) (*asynq.Task, error) {
	data, err := json.Marshal(DashboardBustPayload{OrgID: orgID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardBust, data), nil
}
