// internal/app/interfaces.go
package app

import "github.com/llehouerou/notice/internal/history"

// HistoryStore persists retired notifications.
type HistoryStore interface {
	Record(e history.Entry) (int64, error)
	Recent(limit int) ([]history.Entry, error)
	CountByReason() (map[string]int, error)
	Clear() error
}

// Compile-time check that the sqlite store satisfies HistoryStore.
var _ HistoryStore = (*history.Store)(nil)
