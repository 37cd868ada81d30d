package services

import (
	"context"
	"sync"
	"time"

	"matchapp/model"
)

// In-memory stores used by the service tests. They honor the same
// contracts as the Firestore implementations, in particular the
// conditional transition in Review.

type memUserStore struct {
	mu             sync.Mutex
	users          map[string]*model.User
	activations    int
	failActivation bool
}

func newMemUserStore(users ...*model.User) *memUserStore {
	s := &memUserStore{users: make(map[string]*model.User)}
	for _, u := range users {
		s.users[u.UserID] = u
	}
	return s
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) FindByEmailOrPhone(_ context.Context, email, phone string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if (email != "" && user.Email == email) || (phone != "" && user.PhoneNumber == phone) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *memUserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, *user)
	}
	return users, nil
}

func (s *memUserStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	return nil
}

func (s *memUserStore) SetPassword(_ context.Context, userID, passwordHash string) error {
	return s.mutate(userID, func(u *model.User) { u.Password = passwordHash })
}

func (s *memUserStore) SetProfilePic(_ context.Context, userID, url string) error {
	return s.mutate(userID, func(u *model.User) { u.ProfilePicUrl = url })
}

func (s *memUserStore) SetLastLogin(_ context.Context, userID string, at time.Time) error {
	return s.mutate(userID, func(u *model.User) { u.LastLoginAt = at })
}

func (s *memUserStore) AddProfileID(_ context.Context, userID, profileID string) error {
	return s.mutate(userID, func(u *model.User) { u.ProfileIDs = append(u.ProfileIDs, profileID) })
}

func (s *memUserStore) RemoveProfileID(_ context.Context, userID, profileID string) error {
	return s.mutate(userID, func(u *model.User) {
		ids := u.ProfileIDs[:0]
		for _, id := range u.ProfileIDs {
			if id != profileID {
				ids = append(ids, id)
			}
		}
		u.ProfileIDs = ids
	})
}

func (s *memUserStore) ActivateMembership(_ context.Context, userID, planID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activations++
	if s.failActivation {
		return ErrUserNotFound
	}
	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.MembershipPlanID = planID
	user.AccountStatus = model.AccountActive
	return nil
}

func (s *memUserStore) mutate(userID string, fn func(*model.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	fn(user)
	return nil
}

type memPaymentStore struct {
	mu       sync.Mutex
	payments map[string]*model.Payment
}

func newMemPaymentStore(payments ...*model.Payment) *memPaymentStore {
	s := &memPaymentStore{payments: make(map[string]*model.Payment)}
	for _, p := range payments {
		s.payments[p.PaymentID] = p
	}
	return s
}

func (s *memPaymentStore) Create(_ context.Context, payment *model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[payment.PaymentID] = payment
	return nil
}

func (s *memPaymentStore) GetByID(_ context.Context, paymentID string) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	copied := *payment
	return &copied, nil
}

func (s *memPaymentStore) ListByUser(_ context.Context, userID string) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payments []model.Payment
	for _, p := range s.payments {
		if p.UserID == userID {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}

func (s *memPaymentStore) ListAll(_ context.Context, statusFilter string) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payments []model.Payment
	for _, p := range s.payments {
		if statusFilter == "" || p.Status == statusFilter {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}

func (s *memPaymentStore) Review(_ context.Context, paymentID, newStatus, reviewerID, remarks string, at time.Time) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != model.PaymentPending {
		return nil, &AlreadyReviewedError{Status: payment.Status}
	}
	payment.Status = newStatus
	payment.ReviewedBy = reviewerID
	payment.ReviewedAt = at
	payment.Remarks = remarks
	copied := *payment
	return &copied, nil
}

func (s *memPaymentStore) Delete(_ context.Context, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payments, paymentID)
	return nil
}

type memPlanStore struct {
	mu    sync.Mutex
	plans map[string]*model.MembershipPlan
}

func newMemPlanStore(plans ...*model.MembershipPlan) *memPlanStore {
	s := &memPlanStore{plans: make(map[string]*model.MembershipPlan)}
	for _, p := range plans {
		s.plans[p.PlanID] = p
	}
	return s
}

func (s *memPlanStore) Create(_ context.Context, plan *model.MembershipPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.PlanID] = plan
	return nil
}

func (s *memPlanStore) GetByID(_ context.Context, planID string) (*model.MembershipPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan, ok := s.plans[planID]
	if !ok {
		return nil, ErrPlanNotFound
	}
	copied := *plan
	return &copied, nil
}

func (s *memPlanStore) List(_ context.Context) ([]model.MembershipPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plans := make([]model.MembershipPlan, 0, len(s.plans))
	for _, p := range s.plans {
		plans = append(plans, *p)
	}
	return plans, nil
}
