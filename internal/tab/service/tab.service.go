package service

import (
	"tabsync/internal/tab/model"
	"tabsync/internal/tab/repository"
	"tabsync/socket"
)

type TabService struct {
	Repo *repository.TabRepository
	Hub  *socket.Hub

	// StrictListErrors turns a storage failure on the list path into an
	// error instead of the compatibility behavior of an empty list.
	StrictListErrors bool
}

func NewTabService(repo *repository.TabRepository, hub *socket.Hub, strictListErrors bool) *TabService {
	return &TabService{Repo: repo, Hub: hub, StrictListErrors: strictListErrors}
}

// ListTabs returns all stored tabs. In the default mode a storage failure
// is swallowed and the caller gets an empty list, indistinguishable from an
// empty store; with StrictListErrors the error propagates. The slice is
// never nil so it always encodes as a JSON array.
func (s *TabService) ListTabs() ([]model.Tab, error) {
	tabs, err := s.Repo.List()
	if err != nil {
		if s.StrictListErrors {
			return nil, err
		}
		return []model.Tab{}, nil
	}
	if tabs == nil {
		tabs = []model.Tab{}
	}
	return tabs, nil
}

// SaveTab upserts the tab and publishes it to feed subscribers. Writes are
// the opposite of reads: a storage failure here is returned to the handler,
// which aborts the request instead of degrading.
func (s *TabService) SaveTab(t model.Tab) error {
	if err := s.Repo.Upsert(t); err != nil {
		return err
	}
	if s.Hub != nil {
		s.Hub.NotifyTabSaved(t)
	}
	return nil
}
