package services

import (
	"context"

	"matchapp/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const planCollection = "MembershipPlans"

// PlanStore serves membership plans, which are read-only reference data for
// everything except the super admin who seeds them.
type PlanStore interface {
	Create(ctx context.Context, plan *model.MembershipPlan) error
	GetByID(ctx context.Context, planID string) (*model.MembershipPlan, error)
	List(ctx context.Context) ([]model.MembershipPlan, error)
}

type FirestorePlanStore struct {
	client *firestore.Client
}

func NewFirestorePlanStore(client *firestore.Client) *FirestorePlanStore {
	return &FirestorePlanStore{client: client}
}

func (s *FirestorePlanStore) Create(ctx context.Context, plan *model.MembershipPlan) error {
	_, err := s.client.Collection(planCollection).Doc(plan.PlanID).Set(ctx, plan)
	return err
}

func (s *FirestorePlanStore) GetByID(ctx context.Context, planID string) (*model.MembershipPlan, error) {
	doc, err := s.client.Collection(planCollection).Doc(planID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	var plan model.MembershipPlan
	if err := doc.DataTo(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *FirestorePlanStore) List(ctx context.Context) ([]model.MembershipPlan, error) {
	docs, err := s.client.Collection(planCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	plans := make([]model.MembershipPlan, 0, len(docs))
	for _, doc := range docs {
		var plan model.MembershipPlan
		if err := doc.DataTo(&plan); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
