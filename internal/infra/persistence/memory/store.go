// Package memory provides a process-local store implementing the domain repositories.
// It backs local runs and tests; every conditional transition happens under one lock.
package memory

import (
	"slices"
	"sync"
	"time"

	"lifeflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Store holds accounts, requests and donation logs guarded by a single RWMutex.
type Store struct {
	mu sync.RWMutex

	accounts     map[uuid.UUID]*entity.Account
	requests     map[uuid.UUID]*entity.BloodRequest
	requestOrder []uuid.UUID
	logs         []*entity.DonationLog

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*entity.Account),
		requests: make(map[uuid.UUID]*entity.BloodRequest),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func cloneAccount(a *entity.Account) *entity.Account {
	if a == nil {
		return nil
	}

	c := *a
	if a.Location != nil {
		point := orb.Point{a.Location.Lon(), a.Location.Lat()}
		c.Location = &point
	}
	if a.LastDonationAt != nil {
		at := *a.LastDonationAt
		c.LastDonationAt = &at
	}
	c.Badges = slices.Clone(a.Badges)

	return &c
}

func cloneRequest(r *entity.BloodRequest) *entity.BloodRequest {
	if r == nil {
		return nil
	}

	c := *r
	if r.AcceptedBy != nil {
		id := *r.AcceptedBy
		c.AcceptedBy = &id
	}
	if r.CancellationReason != nil {
		reason := *r.CancellationReason
		c.CancellationReason = &reason
	}
	if r.Accepter != nil {
		summary := *r.Accepter
		c.Accepter = &summary
	}

	return &c
}

func cloneLog(l *entity.DonationLog) *entity.DonationLog {
	c := *l
	if l.RequestID != nil {
		id := *l.RequestID
		c.RequestID = &id
	}

	return &c
}

// summaryLocked returns the id and name of an account. Caller holds the lock.
func (s *Store) summaryLocked(id uuid.UUID) *entity.AccountSummary {
	account, ok := s.accounts[id]
	if !ok {
		return &entity.AccountSummary{ID: id}
	}

	return account.Summary()
}

// requestViewLocked copies a request and attaches its accepter summary. Caller holds the lock.
func (s *Store) requestViewLocked(r *entity.BloodRequest) *entity.BloodRequest {
	view := cloneRequest(r)
	if view.AcceptedBy != nil {
		view.Accepter = s.summaryLocked(*view.AcceptedBy)
	}

	return view
}

// newestRequestsLocked returns matching requests, newest first. Caller holds the lock.
func (s *Store) newestRequestsLocked(match func(*entity.BloodRequest) bool) []*entity.BloodRequest {
	result := make([]*entity.BloodRequest, 0)
	for i := len(s.requestOrder) - 1; i >= 0; i-- {
		r := s.requests[s.requestOrder[i]]
		if match(r) {
			result = append(result, s.requestViewLocked(r))
		}
	}

	slices.SortStableFunc(result, func(a, b *entity.BloodRequest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result
}

// newestLogsLocked returns matching logs, newest first, with summaries attached. Caller holds the lock.
func (s *Store) newestLogsLocked(match func(*entity.DonationLog) bool) []*entity.DonationLog {
	result := make([]*entity.DonationLog, 0)
	for i := len(s.logs) - 1; i >= 0; i-- {
		l := s.logs[i]
		if !match(l) {
			continue
		}

		view := cloneLog(l)
		view.Donor = s.summaryLocked(l.DonorID)
		view.Hospital = s.summaryLocked(l.HospitalID)
		result = append(result, view)
	}

	slices.SortStableFunc(result, func(a, b *entity.DonationLog) int {
		return b.DonatedAt.Compare(a.DonatedAt)
	})

	return result
}
