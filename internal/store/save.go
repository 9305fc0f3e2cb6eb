package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/util"
)

const (
	settingCarryOver   = "carry_over"
	settingLastUpdated = "last_updated"
)

// Save rewrites the whole snapshot in one transaction. The in-memory state
// replaces collections wholesale on every mutation, so the store does the
// same rather than diffing rows.
func (s *Store) Save(ctx context.Context, data models.AppData) error {
	ctx, cancel := s.withTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save begin: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{
		"income_amounts", "income_sources", "checklist_items", "tasks",
		"events", "badminton_sessions", "badminton_months",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("save clear %s: %w", table, err)
		}
	}

	for i, src := range data.IncomeSources {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO income_sources (id, name, kind, owner, position) VALUES (?, ?, ?, ?, ?)",
			src.ID, src.Name, src.Kind, src.Owner, i); err != nil {
			return fmt.Errorf("save income source %s: %w", src.ID, err)
		}
		for _, m := range models.MonthOrder {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO income_amounts (source_id, month, amount) VALUES (?, ?, ?)",
				src.ID, string(m), src.Amounts[m].String()); err != nil {
				return fmt.Errorf("save income cell %s/%s: %w", src.ID, m, err)
			}
		}
	}

	for i, e := range data.Events {
		var actual interface{}
		if e.ActualAmount != nil {
			actual = e.ActualAmount.String()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events (id, name, month, amount, actual_amount, category, note, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, string(e.Month), e.Amount.String(), actual, string(e.Category), e.Note, i); err != nil {
			return fmt.Errorf("save event %s: %w", e.ID, err)
		}
		if err := saveTasks(ctx, tx, e.Tasks, &e.ID); err != nil {
			return err
		}
	}
	if err := saveTasks(ctx, tx, data.CentralTasks, nil); err != nil {
		return err
	}

	for _, m := range models.MonthOrder {
		plan := data.BadmintonConfig[m]
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO badminton_months (month, is_selected) VALUES (?, ?)",
			string(m), boolToInt(plan.IsSelected)); err != nil {
			return fmt.Errorf("save badminton month %s: %w", m, err)
		}
		for i, sess := range plan.Sessions {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO badminton_sessions (id, month, hourly_rate, courts, hours, position)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				sess.ID, string(m), sess.HourlyRate.String(), sess.Courts, sess.Hours.String(), i); err != nil {
				return fmt.Errorf("save badminton session %s: %w", sess.ID, err)
			}
		}
	}

	if err := upsertSetting(ctx, tx, settingCarryOver, data.CarryOver.String()); err != nil {
		return err
	}
	last := data.LastUpdated
	if last.IsZero() {
		last = time.Now().UTC()
	}
	if err := upsertSetting(ctx, tx, settingLastUpdated, last.Format(time.RFC3339Nano)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save commit: %w", err)
	}
	commit = true
	return nil
}

// SaveAsync persists in the background, logging rather than surfacing
// failures: persistence is a fire-and-forget side effect of a committed
// in-memory change, recoverable by redoing the action.
func (s *Store) SaveAsync(data models.AppData) {
	go func() {
		util.LogError("background save", s.Save(context.Background(), data))
	}()
}

type txLike interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func saveTasks(ctx context.Context, tx txLike, tasks []models.EventTask, eventID *string) error {
	for i, t := range tasks {
		var owner interface{}
		if eventID != nil {
			owner = *eventID
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, event_id, title, description, assignee, budget, status, linked_event_id, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, owner, t.Title, t.Description, t.Assignee, t.Budget.String(), string(t.Status), t.LinkedEventID, i); err != nil {
			return fmt.Errorf("save task %s: %w", t.ID, err)
		}
		for j, item := range t.Checklist {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO checklist_items (id, task_id, text, completed, position) VALUES (?, ?, ?, ?, ?)",
				item.ID, t.ID, item.Text, boolToInt(item.Completed), j); err != nil {
				return fmt.Errorf("save checklist item %s: %w", item.ID, err)
			}
		}
	}
	return nil
}

func upsertSetting(ctx context.Context, tx txLike, key, value string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
