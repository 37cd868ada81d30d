package services

import (
	"context"
	"log"
	"time"

	"matchapp/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const paymentCollection = "Payments"

// PaymentStore persists payment reviews. Review is the only mutation after
// creation and must be conditional: the transition applies only while the
// stored status is still pending, so concurrent reviewers cannot both win.
type PaymentStore interface {
	Create(ctx context.Context, payment *model.Payment) error
	GetByID(ctx context.Context, paymentID string) (*model.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Payment, error)
	ListAll(ctx context.Context, statusFilter string) ([]model.Payment, error)
	Review(ctx context.Context, paymentID, newStatus, reviewerID, remarks string, at time.Time) (*model.Payment, error)
	Delete(ctx context.Context, paymentID string) error
}

type FirestorePaymentStore struct {
	client *firestore.Client
}

func NewFirestorePaymentStore(client *firestore.Client) *FirestorePaymentStore {
	return &FirestorePaymentStore{client: client}
}

func (s *FirestorePaymentStore) Create(ctx context.Context, payment *model.Payment) error {
	_, err := s.client.Collection(paymentCollection).Doc(payment.PaymentID).Set(ctx, payment)
	return err
}

func (s *FirestorePaymentStore) GetByID(ctx context.Context, paymentID string) (*model.Payment, error) {
	doc, err := s.client.Collection(paymentCollection).Doc(paymentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	var payment model.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *FirestorePaymentStore) ListByUser(ctx context.Context, userID string) ([]model.Payment, error) {
	docs, err := s.client.Collection(paymentCollection).
		Where("userid", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return paymentsFromDocs(docs)
}

func (s *FirestorePaymentStore) ListAll(ctx context.Context, statusFilter string) ([]model.Payment, error) {
	query := s.client.Collection(paymentCollection).Query
	if statusFilter != "" {
		query = query.Where("status", "==", statusFilter)
	}
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return paymentsFromDocs(docs)
}

// Review runs the pending check and the status write inside one Firestore
// transaction. Two concurrent reviews of the same payment serialize here:
// the loser re-reads a non-pending status and gets AlreadyReviewedError.
func (s *FirestorePaymentStore) Review(ctx context.Context, paymentID, newStatus, reviewerID, remarks string, at time.Time) (*model.Payment, error) {
	ref := s.client.Collection(paymentCollection).Doc(paymentID)
	var reviewed model.Payment

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrPaymentNotFound
			}
			return err
		}
		var payment model.Payment
		if err := doc.DataTo(&payment); err != nil {
			return err
		}
		if payment.Status != model.PaymentPending {
			return &AlreadyReviewedError{Status: payment.Status}
		}

		if err := tx.Update(ref, []firestore.Update{
			{Path: "status", Value: newStatus},
			{Path: "reviewedby", Value: reviewerID},
			{Path: "reviewedat", Value: at},
			{Path: "remarks", Value: remarks},
		}); err != nil {
			return err
		}

		payment.Status = newStatus
		payment.ReviewedBy = reviewerID
		payment.ReviewedAt = at
		payment.Remarks = remarks
		reviewed = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reviewed, nil
}

func (s *FirestorePaymentStore) Delete(ctx context.Context, paymentID string) error {
	_, err := s.client.Collection(paymentCollection).Doc(paymentID).Delete(ctx)
	return err
}

func paymentsFromDocs(docs []*firestore.DocumentSnapshot) ([]model.Payment, error) {
	payments := make([]model.Payment, 0, len(docs))
	for _, doc := range docs {
		var payment model.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// PaymentService drives the review state machine on top of the stores.
type PaymentService struct {
	Payments PaymentStore
	Users    UserStore
	Plans    PlanStore
}

func NewPaymentService(payments PaymentStore, users UserStore, plans PlanStore) *PaymentService {
	return &PaymentService{Payments: payments, Users: users, Plans: plans}
}

// Submit creates a pending review for the given slip URL. Amount defaults
// to the plan price when the customer did not state one.
func (s *PaymentService) Submit(ctx context.Context, userID, planID string, amount float64, slipUrl, transactionID, method string) (*model.Payment, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	plan, err := s.Plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		amount = plan.Price
	}
	if method == "" {
		method = "Bank Transfer"
	}

	payment := &model.Payment{
		PaymentID:        uuid.New().String(),
		UserID:           userID,
		MembershipPlanID: planID,
		Amount:           amount,
		PaymentSlipUrl:   slipUrl,
		Status:           model.PaymentPending,
		PaymentMethod:    method,
		TransactionID:    transactionID,
		CreatedAt:        time.Now(),
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Approve moves the review to approved and then activates the membership.
// The approval is the system of record: if activation fails afterwards the
// approval stands and the failure is logged for admin follow-up.
func (s *PaymentService) Approve(ctx context.Context, paymentID, adminID, remarks string) (*model.Payment, error) {
	payment, err := s.Payments.Review(ctx, paymentID, model.PaymentApproved, adminID, remarks, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.Users.ActivateMembership(ctx, payment.UserID, payment.MembershipPlanID); err != nil {
		log.Printf("payment %s approved but membership activation failed for user %s: %v",
			payment.PaymentID, payment.UserID, err)
	}
	return payment, nil
}

// Reject moves the review to rejected. The account is never touched.
func (s *PaymentService) Reject(ctx context.Context, paymentID, adminID, remarks string) (*model.Payment, error) {
	if remarks == "" {
		remarks = "Payment rejected by admin"
	}
	return s.Payments.Review(ctx, paymentID, model.PaymentRejected, adminID, remarks, time.Now())
}
