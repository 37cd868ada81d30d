package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"matchapp/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaymentSetup() (*PaymentService, *memUserStore, *memPaymentStore) {
	users := newMemUserStore(
		&model.User{UserID: "cust-1", Email: "c@example.com", Role: model.RoleCustomer, AccountStatus: model.AccountInactive},
		&model.User{UserID: "admin-1", Email: "a@example.com", Role: model.RoleAdmin, AccountStatus: model.AccountActive},
	)
	payments := newMemPaymentStore()
	plans := newMemPlanStore(
		&model.MembershipPlan{PlanID: "plan-premium", Name: "Premium", Price: 500, Duration: "Monthly", IsActive: true},
	)
	return NewPaymentService(payments, users, plans), users, payments
}

func TestSubmitDefaultsAmountAndMethod(t *testing.T) {
	svc, _, _ := testPaymentSetup()
	ctx := context.Background()

	payment, err := svc.Submit(ctx, "cust-1", "plan-premium", 0, "https://bucket/slip.jpg", "", "")
	require.NoError(t, err)

	assert.Equal(t, model.PaymentPending, payment.Status)
	assert.Equal(t, 500.0, payment.Amount)
	assert.Equal(t, "Bank Transfer", payment.PaymentMethod)
	assert.Equal(t, "cust-1", payment.UserID)
	assert.Empty(t, payment.ReviewedBy)
}

func TestSubmitUnknownPlan(t *testing.T) {
	svc, _, _ := testPaymentSetup()

	_, err := svc.Submit(context.Background(), "cust-1", "no-such-plan", 0, "https://bucket/slip.jpg", "", "")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSubmitUnknownUser(t *testing.T) {
	svc, _, _ := testPaymentSetup()

	_, err := svc.Submit(context.Background(), "ghost", "plan-premium", 0, "https://bucket/slip.jpg", "", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApproveActivatesMembership(t *testing.T) {
	svc, users, _ := testPaymentSetup()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "cust-1", "plan-premium", 500, "https://bucket/slip.jpg", "tx-1", "")
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, submitted.PaymentID, "admin-1", "looks good")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentApproved, approved.Status)
	assert.Equal(t, "admin-1", approved.ReviewedBy)
	assert.Equal(t, "looks good", approved.Remarks)
	assert.False(t, approved.ReviewedAt.IsZero())

	customer, err := users.GetByID(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, model.AccountActive, customer.AccountStatus)
	assert.Equal(t, "plan-premium", customer.MembershipPlanID)
}

func TestApproveIsTerminal(t *testing.T) {
	svc, _, payments := testPaymentSetup()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "cust-1", "plan-premium", 500, "https://bucket/slip.jpg", "", "")
	require.NoError(t, err)

	first, err := svc.Approve(ctx, submitted.PaymentID, "admin-1", "")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, submitted.PaymentID, "admin-2", "me too")
	var already *AlreadyReviewedError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, model.PaymentApproved, already.Status)

	// Reject after approve must fail the same way.
	_, err = svc.Reject(ctx, submitted.PaymentID, "admin-2", "")
	require.ErrorAs(t, err, &already)

	// The losing attempts never overwrite the first reviewer.
	stored, err := payments.GetByID(ctx, submitted.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, first.ReviewedBy, stored.ReviewedBy)
	assert.Equal(t, first.ReviewedAt, stored.ReviewedAt)
}

func TestRejectNeverTouchesAccount(t *testing.T) {
	svc, users, _ := testPaymentSetup()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "cust-1", "plan-premium", 500, "https://bucket/slip.jpg", "", "")
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, submitted.PaymentID, "admin-1", "")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRejected, rejected.Status)
	assert.Equal(t, "Payment rejected by admin", rejected.Remarks)

	customer, err := users.GetByID(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, model.AccountInactive, customer.AccountStatus)
	assert.Empty(t, customer.MembershipPlanID)
	assert.Zero(t, users.activations)
}

func TestApproveUnknownPayment(t *testing.T) {
	svc, _, _ := testPaymentSetup()

	_, err := svc.Approve(context.Background(), "no-such-payment", "admin-1", "")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestApprovalSurvivesActivationFailure(t *testing.T) {
	svc, users, payments := testPaymentSetup()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "cust-1", "plan-premium", 500, "https://bucket/slip.jpg", "", "")
	require.NoError(t, err)

	users.failActivation = true
	approved, err := svc.Approve(ctx, submitted.PaymentID, "admin-1", "")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentApproved, approved.Status)

	stored, err := payments.GetByID(ctx, submitted.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentApproved, stored.Status)
}

func TestConcurrentApprovalsExactlyOneWins(t *testing.T) {
	svc, users, _ := testPaymentSetup()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "cust-1", "plan-premium", 500, "https://bucket/slip.jpg", "", "")
	require.NoError(t, err)

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Approve(ctx, submitted.PaymentID, "admin-1", "")
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		var already *AlreadyReviewedError
		require.ErrorAs(t, err, &already)
		losses++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, losses)
	assert.Equal(t, 1, users.activations, "activator must run exactly once")
}

func TestActivateMembershipIsIdempotent(t *testing.T) {
	_, users, _ := testPaymentSetup()
	ctx := context.Background()

	require.NoError(t, users.ActivateMembership(ctx, "cust-1", "plan-premium"))
	require.NoError(t, users.ActivateMembership(ctx, "cust-1", "plan-premium"))

	customer, err := users.GetByID(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, model.AccountActive, customer.AccountStatus)
	assert.Equal(t, "plan-premium", customer.MembershipPlanID)
}

func TestReviewTimestampsAreSet(t *testing.T) {
	svc, _, _ := testPaymentSetup()
	ctx := context.Background()

	submitted, err := svc.Submit(ctx, "cust-1", "plan-premium", 500, "https://bucket/slip.jpg", "", "")
	require.NoError(t, err)

	before := time.Now()
	approved, err := svc.Approve(ctx, submitted.PaymentID, "admin-1", "")
	require.NoError(t, err)
	assert.False(t, approved.ReviewedAt.Before(before))
}
