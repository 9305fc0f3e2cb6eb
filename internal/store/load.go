package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

// Load materializes the persisted snapshot. The second return value is
// false when the database holds no data yet (fresh install); callers seed
// the initial state in that case. Malformed stored numbers are logged and
// treated as zero rather than failing the load.
func (s *Store) Load(ctx context.Context) (models.AppData, bool, error) {
	ctx, cancel := s.withTimeout(ctx, defaultTimeout)
	defer cancel()

	data := models.AppData{
		Events:          []models.EventExpense{},
		IncomeSources:   []models.IncomeSource{},
		CentralTasks:    []models.EventTask{},
		CarryOver:       decimal.Zero,
		BadmintonConfig: models.NewBadmintonConfig(),
	}

	carry, hasCarry := s.GetSetting(ctx, settingCarryOver)
	if hasCarry {
		data.CarryOver = parseStoredAmount("carry_over", carry)
	}
	if raw, ok := s.GetSetting(ctx, settingLastUpdated); ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			data.LastUpdated = ts
		}
	}

	sources, err := s.loadIncomeSources(ctx)
	if err != nil {
		return data, false, err
	}
	data.IncomeSources = sources

	tasksByEvent, central, err := s.loadTasks(ctx)
	if err != nil {
		return data, false, err
	}
	data.CentralTasks = central

	events, err := s.loadEvents(ctx, tasksByEvent)
	if err != nil {
		return data, false, err
	}
	data.Events = events

	if err := s.loadBadminton(ctx, data.BadmintonConfig); err != nil {
		return data, false, err
	}

	populated := hasCarry || len(sources) > 0 || len(events) > 0 || len(central) > 0
	return data, populated, nil
}

func (s *Store) loadIncomeSources(ctx context.Context) ([]models.IncomeSource, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, name, kind, owner FROM income_sources ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("load income sources: %w", err)
	}
	defer rows.Close()

	sources := []models.IncomeSource{}
	index := map[string]int{}
	for rows.Next() {
		var src models.IncomeSource
		if err := rows.Scan(&src.ID, &src.Name, &src.Kind, &src.Owner); err != nil {
			return nil, fmt.Errorf("scan income source: %w", err)
		}
		src.Amounts = map[models.MonthKey]decimal.Decimal{}
		index[src.ID] = len(sources)
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cells, err := s.DB.QueryContext(ctx, "SELECT source_id, month, amount FROM income_amounts")
	if err != nil {
		return nil, fmt.Errorf("load income amounts: %w", err)
	}
	defer cells.Close()
	for cells.Next() {
		var sourceID, month, amount string
		if err := cells.Scan(&sourceID, &month, &amount); err != nil {
			return nil, fmt.Errorf("scan income amount: %w", err)
		}
		i, ok := index[sourceID]
		if !ok {
			continue
		}
		key := models.MonthKey(month)
		if !key.Valid() {
			continue
		}
		sources[i].Amounts[key] = parseStoredAmount("income cell", amount)
	}
	if err := cells.Err(); err != nil {
		return nil, err
	}

	for i := range sources {
		sources[i] = sources[i].Normalize()
	}
	return sources, nil
}

func (s *Store) loadTasks(ctx context.Context) (map[string][]models.EventTask, []models.EventTask, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, event_id, title, description, assignee, budget, status, linked_event_id
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, nil, fmt.Errorf("load tasks: %w", err)
	}
	defer rows.Close()

	byEvent := map[string][]models.EventTask{}
	central := []models.EventTask{}
	for rows.Next() {
		var t models.EventTask
		var eventID *string
		var budget, status string
		if err := rows.Scan(&t.ID, &eventID, &t.Title, &t.Description, &t.Assignee, &budget, &status, &t.LinkedEventID); err != nil {
			return nil, nil, fmt.Errorf("scan task: %w", err)
		}
		t.Budget = parseStoredAmount("task budget", budget)
		t.Status = models.TaskStatus(status)
		if !t.Status.Valid() {
			t.Status = models.StatusTodo
		}
		if eventID == nil {
			central = append(central, t)
		} else {
			byEvent[*eventID] = append(byEvent[*eventID], t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	items, err := s.DB.QueryContext(ctx,
		"SELECT id, task_id, text, completed FROM checklist_items ORDER BY position ASC")
	if err != nil {
		return nil, nil, fmt.Errorf("load checklist: %w", err)
	}
	defer items.Close()
	checklists := map[string][]models.ChecklistItem{}
	for items.Next() {
		var item models.ChecklistItem
		var taskID string
		var completed int
		if err := items.Scan(&item.ID, &taskID, &item.Text, &completed); err != nil {
			return nil, nil, fmt.Errorf("scan checklist item: %w", err)
		}
		item.Completed = completed != 0
		checklists[taskID] = append(checklists[taskID], item)
	}
	if err := items.Err(); err != nil {
		return nil, nil, err
	}

	attach := func(tasks []models.EventTask) {
		for i := range tasks {
			tasks[i].Checklist = checklists[tasks[i].ID]
		}
	}
	attach(central)
	for _, tasks := range byEvent {
		attach(tasks)
	}
	return byEvent, central, nil
}

func (s *Store) loadEvents(ctx context.Context, tasksByEvent map[string][]models.EventTask) ([]models.EventExpense, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, month, amount, actual_amount, category, note
		FROM events ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	defer rows.Close()

	events := []models.EventExpense{}
	for rows.Next() {
		var e models.EventExpense
		var month, amount, category string
		var actual *string
		if err := rows.Scan(&e.ID, &e.Name, &month, &amount, &actual, &category, &e.Note); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Month = models.ParseMonthKey(month)
		e.Amount = parseStoredAmount("event amount", amount)
		if actual != nil {
			v := parseStoredAmount("event actual", *actual)
			e.ActualAmount = &v
		}
		e.Category = models.ParseCategory(category)
		e.Tasks = tasksByEvent[e.ID]
		if e.Tasks == nil {
			e.Tasks = []models.EventTask{}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Store) loadBadminton(ctx context.Context, cfg models.BadmintonConfig) error {
	rows, err := s.DB.QueryContext(ctx, "SELECT month, is_selected FROM badminton_months")
	if err != nil {
		return fmt.Errorf("load badminton months: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var month string
		var selected int
		if err := rows.Scan(&month, &selected); err != nil {
			return fmt.Errorf("scan badminton month: %w", err)
		}
		key := models.MonthKey(month)
		if !key.Valid() {
			continue
		}
		plan := cfg[key]
		plan.IsSelected = selected != 0
		cfg[key] = plan
	}
	if err := rows.Err(); err != nil {
		return err
	}

	sessions, err := s.DB.QueryContext(ctx, `
		SELECT id, month, hourly_rate, courts, hours
		FROM badminton_sessions ORDER BY position ASC`)
	if err != nil {
		return fmt.Errorf("load badminton sessions: %w", err)
	}
	defer sessions.Close()
	for sessions.Next() {
		var sess models.Session
		var month, rate, hours string
		if err := sessions.Scan(&sess.ID, &month, &rate, &sess.Courts, &hours); err != nil {
			return fmt.Errorf("scan badminton session: %w", err)
		}
		key := models.MonthKey(month)
		if !key.Valid() {
			continue
		}
		sess.HourlyRate = parseStoredAmount("session rate", rate)
		sess.Hours = parseStoredAmount("session hours", hours)
		plan := cfg[key]
		plan.Sessions = append(plan.Sessions, sess)
		cfg[key] = plan
	}
	return sessions.Err()
}

func parseStoredAmount(context, raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		util.LogError(context, fmt.Errorf("malformed stored amount %q: %w", raw, err))
		return decimal.Zero
	}
	return d
}
