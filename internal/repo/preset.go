package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/crucial707/cronlens/internal/models"
	"github.com/crucial707/cronlens/internal/recurrence"
)

// ErrPresetNotFound is returned by Update and Delete when no row matches the id.
var ErrPresetNotFound = errors.New("preset not found")

const presetColumns = `id, name, pattern, time, meridiem, days, day_of_month, created_at`

// PresetRepo persists recurrence presets.
type PresetRepo struct {
	DB *sql.DB
}

// NewPresetRepo returns a new PresetRepo.
func NewPresetRepo(db *sql.DB) *PresetRepo {
	return &PresetRepo{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*models.Preset, error) {
	var (
		p        models.Preset
		pattern  string
		meridiem string
		days     string
		day      string
	)
	if err := row.Scan(&p.ID, &p.Name, &pattern, &p.Config.Time, &meridiem, &days, &day, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Config.Pattern = recurrence.Pattern(pattern)
	p.Config.Meridiem = recurrence.Meridiem(meridiem)
	p.Config.DayOfMonth = recurrence.DayOfMonth(day)
	w, err := recurrence.ParseWeekdays(days)
	if err != nil {
		return nil, fmt.Errorf("preset %d days: %w", p.ID, err)
	}
	p.Config.Days = w
	return &p, nil
}

// joinDays stores the selected weekdays as a comma-separated list.
func joinDays(w recurrence.Weekdays) string {
	return strings.Join(w.Selected(), ",")
}

// Count returns the total number of presets.
func (r *PresetRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM recurrence_presets").Scan(&n)
	return n, err
}

// List returns presets, most recent first.
func (r *PresetRepo) List(ctx context.Context, limit, offset int) ([]models.Preset, error) {
	query := `SELECT ` + presetColumns + `
		FROM recurrence_presets
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Preset{}
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// GetByID returns one preset, or nil when it does not exist.
func (r *PresetRepo) GetByID(ctx context.Context, id int) (*models.Preset, error) {
	query := `SELECT ` + presetColumns + `
		FROM recurrence_presets
		WHERE id = $1`
	p, err := scanPreset(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a preset and returns it with id and created_at set.
func (r *PresetRepo) Create(ctx context.Context, name string, cfg recurrence.Config) (*models.Preset, error) {
	query := `
		INSERT INTO recurrence_presets (name, pattern, time, meridiem, days, day_of_month)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + presetColumns
	return scanPreset(r.DB.QueryRowContext(ctx, query,
		name, string(cfg.Pattern), cfg.Time, string(cfg.Meridiem), joinDays(cfg.Days), string(cfg.DayOfMonth),
	))
}

// Update replaces the name and configuration of a preset.
func (r *PresetRepo) Update(ctx context.Context, id int, name string, cfg recurrence.Config) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE recurrence_presets
		 SET name = $1, pattern = $2, time = $3, meridiem = $4, days = $5, day_of_month = $6
		 WHERE id = $7`,
		name, string(cfg.Pattern), cfg.Time, string(cfg.Meridiem), joinDays(cfg.Days), string(cfg.DayOfMonth), id,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Delete removes a preset by id.
func (r *PresetRepo) Delete(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM recurrence_presets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	return nil
}
