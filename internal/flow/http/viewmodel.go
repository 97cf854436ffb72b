package http

import (
	"github.com/odyssey-erp/finflow/internal/flow"
	"github.com/odyssey-erp/finflow/internal/flow/statements"
)

// DashboardVM feeds pages/dashboard.html.
type DashboardVM struct {
	CSRFToken    string
	Categories   []flow.Category
	Statements   statements.Set
	Transactions []flow.Transaction
	CanUndo      bool
}

// StateResponse is returned by every mutating API call and by GET /snapshot.
type StateResponse struct {
	Snapshot flow.Snapshot `json:"snapshot"`
	CanUndo  bool          `json:"canUndo"`
}

// ActivityVM describes one selectable activity.
type ActivityVM struct {
	ID          flow.Activity `json:"id"`
	Label       string        `json:"label"`
	Group       flow.Group    `json:"group"`
	GroupLabel  string        `json:"groupLabel"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Inflow      bool          `json:"inflow"`
}

func newStateResponse(s flow.Snapshot) StateResponse {
	return StateResponse{Snapshot: s, CanUndo: s.CanUndo()}
}

func activityList() []ActivityVM {
	all := flow.Activities()
	out := make([]ActivityVM, 0, len(all))
	for _, a := range all {
		out = append(out, ActivityVM{
			ID:          a,
			Label:       a.Label(),
			Group:       a.Group(),
			GroupLabel:  a.Group().Label(),
			Category:    a.Category(),
			Description: flow.DescribeActivity(a),
			Inflow:      a.IsInflow(),
		})
	}
	return out
}
