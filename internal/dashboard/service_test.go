package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/calendar"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/compensation"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/notification"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/performance"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/workflow"
)

var errDown = errors.New("backend down")

type fakeCompensation struct {
	stats *compensation.Stats
	err   error
}

func (f *fakeCompensation) List(ctx context.Context) ([]compensation.Adjustment, error) {
	return nil, f.err
}
func (f *fakeCompensation) GetByID(ctx context.Context, id string) (*compensation.Adjustment, error) {
	return nil, f.err
}
func (f *fakeCompensation) GetByEmployee(ctx context.Context, employeeID string) ([]compensation.Adjustment, error) {
	return nil, f.err
}
func (f *fakeCompensation) Create(ctx context.Context, req compensation.CreateAdjustmentRequest) (*compensation.Adjustment, error) {
	return nil, f.err
}
func (f *fakeCompensation) Update(ctx context.Context, id string, req compensation.UpdateAdjustmentRequest) (*compensation.Adjustment, error) {
	return nil, f.err
}
func (f *fakeCompensation) Approve(ctx context.Context, id string) (*compensation.Adjustment, error) {
	return nil, f.err
}
func (f *fakeCompensation) Stats(ctx context.Context) (*compensation.Stats, error) {
	return f.stats, f.err
}

type fakePerformance struct {
	stats *performance.Stats
	err   error
}

func (f *fakePerformance) ListGoals(ctx context.Context) ([]performance.Goal, error) {
	return nil, f.err
}
func (f *fakePerformance) GoalsByEmployee(ctx context.Context, employeeID string) ([]performance.Goal, error) {
	return nil, f.err
}
func (f *fakePerformance) CreateGoal(ctx context.Context, req performance.CreateGoalRequest) (*performance.Goal, error) {
	return nil, f.err
}
func (f *fakePerformance) UpdateProgress(ctx context.Context, id string, progress int) (*performance.Goal, error) {
	return nil, f.err
}
func (f *fakePerformance) CompleteGoal(ctx context.Context, id string) (*performance.Goal, error) {
	return nil, f.err
}
func (f *fakePerformance) ReviewsByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	return nil, f.err
}
func (f *fakePerformance) Stats(ctx context.Context) (*performance.Stats, error) {
	return f.stats, f.err
}

type fakeNotification struct {
	count int
	err   error
}

func (f *fakeNotification) List(ctx context.Context) ([]notification.Notification, error) {
	return nil, f.err
}
func (f *fakeNotification) Unread(ctx context.Context) ([]notification.Notification, error) {
	return nil, f.err
}
func (f *fakeNotification) UnreadCount(ctx context.Context) (int, error) {
	return f.count, f.err
}
func (f *fakeNotification) MarkRead(ctx context.Context, id string) error { return f.err }
func (f *fakeNotification) MarkAllRead(ctx context.Context) error         { return f.err }

type fakeWorkflow struct {
	tasks []workflow.Task
	err   error
}

func (f *fakeWorkflow) PendingTasks(ctx context.Context) ([]workflow.Task, error) {
	return f.tasks, f.err
}
func (f *fakeWorkflow) ApproveTask(ctx context.Context, taskID, comments string) error {
	return f.err
}
func (f *fakeWorkflow) RejectTask(ctx context.Context, taskID, comments string) error {
	return f.err
}

type fakeCalendar struct {
	events []calendar.Event
	err    error
}

func (f *fakeCalendar) Events(ctx context.Context, startDate, endDate string) ([]calendar.Event, error) {
	return f.events, f.err
}
func (f *fakeCalendar) CreateEvent(ctx context.Context, req calendar.EventRequest) (*calendar.Event, error) {
	return nil, f.err
}
func (f *fakeCalendar) UpdateEvent(ctx context.Context, id string, req calendar.EventRequest) (*calendar.Event, error) {
	return nil, f.err
}

func cardValue(t *testing.T, cards []Card, name string) string {
	t.Helper()
	for _, c := range cards {
		if c.Name == name {
			return c.Value
		}
	}
	t.Fatalf("Card %q not found", name)
	return ""
}

func TestSummary_AllBackendsHealthy(t *testing.T) {
	svc := NewService(
		&fakeCompensation{stats: &compensation.Stats{TotalPayroll: "$12.4M", AvgSalary: "$85,400", PendingReviews: 24, BudgetUtilized: "78%"}},
		&fakePerformance{stats: &performance.Stats{ActiveGoals: 342, AvgProgress: "68%", ReviewsDue: 28, TopPerformers: 45}},
		&fakeNotification{count: 3},
		&fakeWorkflow{tasks: []workflow.Task{{ID: "t-1", WorkflowName: "Onboarding"}}},
		&fakeCalendar{events: []calendar.Event{{ID: "e-1", Title: "Quarterly Review Meeting"}}},
	)

	summary := svc.Summary(context.Background())

	if got := cardValue(t, summary.Cards, "Total Payroll"); got != "$12.4M" {
		t.Errorf("Total Payroll = %s", got)
	}
	if got := cardValue(t, summary.Cards, "Active Goals"); got != "342" {
		t.Errorf("Active Goals = %s", got)
	}
	if got := cardValue(t, summary.Cards, "Avg Progress"); got != "68%" {
		t.Errorf("Avg Progress = %s", got)
	}
	if summary.UnreadCount != 3 {
		t.Errorf("UnreadCount = %d, want 3", summary.UnreadCount)
	}
	if len(summary.PendingTasks) != 1 {
		t.Errorf("PendingTasks = %d, want 1", len(summary.PendingTasks))
	}
	if len(summary.UpcomingEvents) != 1 {
		t.Errorf("UpcomingEvents = %d, want 1", len(summary.UpcomingEvents))
	}
}

func TestSummary_FailuresDegradeOnlyTheirSection(t *testing.T) {
	svc := NewService(
		&fakeCompensation{err: errDown},
		&fakePerformance{stats: &performance.Stats{ActiveGoals: 10, AvgProgress: "50%"}},
		&fakeNotification{err: errDown},
		&fakeWorkflow{err: errDown},
		&fakeCalendar{events: []calendar.Event{{ID: "e-1"}}},
	)

	summary := svc.Summary(context.Background())

	// Failed sections fall back
	if got := cardValue(t, summary.Cards, "Total Payroll"); got != FallbackMoney {
		t.Errorf("Total Payroll = %s, want %s", got, FallbackMoney)
	}
	if got := cardValue(t, summary.Cards, "Budget Utilized"); got != FallbackPercent {
		t.Errorf("Budget Utilized = %s, want %s", got, FallbackPercent)
	}
	if summary.UnreadCount != 0 {
		t.Errorf("UnreadCount = %d, want 0", summary.UnreadCount)
	}
	if len(summary.PendingTasks) != 0 {
		t.Errorf("PendingTasks = %d, want 0", len(summary.PendingTasks))
	}

	// Healthy sections still render
	if got := cardValue(t, summary.Cards, "Active Goals"); got != "10" {
		t.Errorf("Active Goals = %s, want 10", got)
	}
	if len(summary.UpcomingEvents) != 1 {
		t.Errorf("UpcomingEvents = %d, want 1", len(summary.UpcomingEvents))
	}
}

func TestSummary_EmptyStatsUseFallbacks(t *testing.T) {
	svc := NewService(
		&fakeCompensation{stats: &compensation.Stats{}},
		&fakePerformance{stats: &performance.Stats{}},
		&fakeNotification{},
		&fakeWorkflow{},
		&fakeCalendar{},
	)

	summary := svc.Summary(context.Background())

	if got := cardValue(t, summary.Cards, "Total Payroll"); got != FallbackMoney {
		t.Errorf("Total Payroll = %s, want %s", got, FallbackMoney)
	}
	if got := cardValue(t, summary.Cards, "Avg Progress"); got != FallbackPercent {
		t.Errorf("Avg Progress = %s, want %s", got, FallbackPercent)
	}
	if got := cardValue(t, summary.Cards, "Active Goals"); got != "0" {
		t.Errorf("Active Goals = %s, want 0", got)
	}
}
