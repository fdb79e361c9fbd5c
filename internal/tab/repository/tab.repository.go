package repository

import (
	"database/sql"

	"tabsync/internal/tab/model"
	"tabsync/pkg/logger"
)

type TabRepository struct {
	DB *sql.DB
}

func NewTabRepository(db *sql.DB) *TabRepository {
	return &TabRepository{DB: db}
}

// List returns every stored tab. No ORDER BY: order is whatever the
// storage engine returns.
func (r *TabRepository) List() ([]model.Tab, error) {
	rows, err := r.DB.Query("SELECT id, title, content, parent_id, created_at FROM tabs")
	if err != nil {
		logger.Sugar.Errorf("Failed to list tabs: %v", err)
		return nil, err
	}
	defer rows.Close()

	tabs := []model.Tab{}
	for rows.Next() {
		var t model.Tab
		var parent sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &parent, &t.CreatedAt); err != nil {
			logger.Sugar.Errorf("Failed to scan tab row: %v", err)
			return nil, err
		}
		if parent.Valid {
			t.ParentID = &parent.String
		}
		tabs = append(tabs, t)
	}
	if err := rows.Err(); err != nil {
		logger.Sugar.Errorf("Failed reading tab rows: %v", err)
		return nil, err
	}
	return tabs, nil
}

// Upsert inserts the tab or, if the id already exists, replaces title,
// content and parent_id. created_at is never touched on update.
func (r *TabRepository) Upsert(t model.Tab) error {
	_, err := r.DB.Exec(`INSERT INTO tabs (id, title, content, parent_id, created_at) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET title = $2, content = $3, parent_id = $4`,
		t.ID, t.Title, t.Content, t.ParentID, t.CreatedAt)
	if err != nil {
		logger.Sugar.Errorf("Failed to upsert tab %s: %v", t.ID, err)
	}
	return err
}
