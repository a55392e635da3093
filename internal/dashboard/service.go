package dashboard

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/calendar"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/compensation"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/notification"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/performance"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/clients/workflow"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/logger"
)

// Fallback values shown when a backend field is missing or its fetch failed.
// Corrupt or absent data degrades the affected card, never the whole summary.
const (
	FallbackText    = "N/A"
	FallbackMoney   = "$0"
	FallbackPercent = "0%"
)

// eventWindow is how far ahead the upcoming-events card looks
const eventWindow = 7 * 24 * time.Hour

// Card is a single stat card on the dashboard
type Card struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Summary is the aggregated dashboard payload
type Summary struct {
	Cards          []Card           `json:"cards"`
	UnreadCount    int              `json:"unreadCount"`
	PendingTasks   []workflow.Task  `json:"pendingTasks"`
	UpcomingEvents []calendar.Event `json:"upcomingEvents"`
}

// Service fans out to the backend domains and assembles one dashboard summary
type Service struct {
	compensation compensation.Client
	performance  performance.Client
	notification notification.Client
	workflow     workflow.Client
	calendar     calendar.Client
}

// NewService creates a dashboard service over the five domain clients
func NewService(
	comp compensation.Client,
	perf performance.Client,
	notif notification.Client,
	wf workflow.Client,
	cal calendar.Client,
) *Service {
	return &Service{
		compensation: comp,
		performance:  perf,
		notification: notif,
		workflow:     wf,
		calendar:     cal,
	}
}

// Summary fetches every dashboard section concurrently. Sections fail
// independently; a failed fetch leaves its card on fallback values and the
// summary itself never errors.
func (s *Service) Summary(ctx context.Context) *Summary {
	var (
		wg sync.WaitGroup

		compStats *compensation.Stats
		perfStats *performance.Stats
		unread    int
		tasks     []workflow.Task
		events    []calendar.Event
	)

	wg.Add(5)

	go func() {
		defer wg.Done()
		stats, err := s.compensation.Stats(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "dashboard: compensation stats unavailable", zap.Error(err))
			return
		}
		compStats = stats
	}()

	go func() {
		defer wg.Done()
		stats, err := s.performance.Stats(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "dashboard: performance stats unavailable", zap.Error(err))
			return
		}
		perfStats = stats
	}()

	go func() {
		defer wg.Done()
		count, err := s.notification.UnreadCount(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "dashboard: unread count unavailable", zap.Error(err))
			return
		}
		unread = count
	}()

	go func() {
		defer wg.Done()
		pending, err := s.workflow.PendingTasks(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "dashboard: pending tasks unavailable", zap.Error(err))
			return
		}
		tasks = pending
	}()

	go func() {
		defer wg.Done()
		now := time.Now()
		list, err := s.calendar.Events(ctx,
			now.Format("2006-01-02"),
			now.Add(eventWindow).Format("2006-01-02"),
		)
		if err != nil {
			logger.WarnCtx(ctx, "dashboard: upcoming events unavailable", zap.Error(err))
			return
		}
		events = list
	}()

	wg.Wait()

	summary := &Summary{
		Cards:          buildCards(compStats, perfStats),
		UnreadCount:    unread,
		PendingTasks:   tasks,
		UpcomingEvents: events,
	}
	if summary.PendingTasks == nil {
		summary.PendingTasks = []workflow.Task{}
	}
	if summary.UpcomingEvents == nil {
		summary.UpcomingEvents = []calendar.Event{}
	}
	return summary
}

func buildCards(comp *compensation.Stats, perf *performance.Stats) []Card {
	totalPayroll := FallbackMoney
	avgSalary := FallbackMoney
	budgetUtilized := FallbackPercent
	if comp != nil {
		totalPayroll = orText(comp.TotalPayroll, FallbackMoney)
		avgSalary = orText(comp.AvgSalary, FallbackMoney)
		budgetUtilized = orText(comp.BudgetUtilized, FallbackPercent)
	}

	activeGoals := FallbackText
	avgProgress := FallbackPercent
	if perf != nil {
		activeGoals = itoa(perf.ActiveGoals)
		avgProgress = orText(perf.AvgProgress, FallbackPercent)
	}

	return []Card{
		{Name: "Total Payroll", Value: totalPayroll},
		{Name: "Avg Salary", Value: avgSalary},
		{Name: "Budget Utilized", Value: budgetUtilized},
		{Name: "Active Goals", Value: activeGoals},
		{Name: "Avg Progress", Value: avgProgress},
	}
}

func orText(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func itoa(n int) string {
	if n < 0 {
		return FallbackText
	}
	return strconv.Itoa(n)
}
