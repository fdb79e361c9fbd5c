package service

import (
	"errors"
	"testing"

	"tabsync/internal/tab/model"
	"tabsync/internal/tab/repository"
	"tabsync/socket"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockService(t *testing.T, strict bool) (*TabService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTabService(repository.NewTabRepository(db), nil, strict), mock
}

func TestListTabs(t *testing.T) {
	svc, mock := newMockService(t, false)

	mock.ExpectQuery("SELECT id, title, content, parent_id, created_at FROM tabs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "parent_id", "created_at"}).
			AddRow("a", "T1", "C1", nil, int64(1000)))

	tabs, err := svc.ListTabs()
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, "a", tabs[0].ID)
}

func TestListTabsSwallowsErrors(t *testing.T) {
	svc, mock := newMockService(t, false)

	mock.ExpectQuery("SELECT id, title, content, parent_id, created_at FROM tabs").
		WillReturnError(errors.New("database is down"))

	tabs, err := svc.ListTabs()
	require.NoError(t, err, "default mode must hide storage failures")
	assert.NotNil(t, tabs)
	assert.Len(t, tabs, 0)
}

func TestListTabsStrictMode(t *testing.T) {
	svc, mock := newMockService(t, true)

	mock.ExpectQuery("SELECT id, title, content, parent_id, created_at FROM tabs").
		WillReturnError(errors.New("database is down"))

	tabs, err := svc.ListTabs()
	assert.Error(t, err)
	assert.Nil(t, tabs)
}

func TestSaveTab(t *testing.T) {
	svc, mock := newMockService(t, false)

	mock.ExpectExec("INSERT INTO tabs").
		WithArgs("a", "T1", "C1", nil, int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.SaveTab(model.Tab{ID: "a", Title: "T1", Content: "C1", CreatedAt: 1000})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTabError(t *testing.T) {
	svc, mock := newMockService(t, false)

	mock.ExpectExec("INSERT INTO tabs").
		WillReturnError(errors.New("deadlock detected"))

	err := svc.SaveTab(model.Tab{ID: "a", Title: "T1", Content: "C1", CreatedAt: 1000})
	assert.Error(t, err)
}

// A successful save is handed to the hub for broadcast.
func TestSaveTabNotifiesHub(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewTabRepository(db)
	hub := socket.NewHub(repo)
	go hub.Run()

	svc := NewTabService(repo, hub, false)

	mock.ExpectExec("INSERT INTO tabs").
		WithArgs("a", "T1", "C1", nil, int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = svc.SaveTab(model.Tab{ID: "a", Title: "T1", Content: "C1", CreatedAt: 1000})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
