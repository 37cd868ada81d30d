package services

import (
	"context"
	"time"

	"matchapp/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LookupKind names one taxonomy table. The set is closed: routes and
// collections are derived from this list at startup, never from request
// input.
type LookupKind struct {
	Path       string
	Collection string
}

var LookupKinds = []LookupKind{
	{Path: "maritalstatus", Collection: "MaritalStatuses"},
	{Path: "country", Collection: "Countries"},
	{Path: "religions", Collection: "Religions"},
	{Path: "professions", Collection: "Professions"},
	{Path: "cities", Collection: "Cities"},
	{Path: "communities", Collection: "Communities"},
	{Path: "motherTongues", Collection: "MotherTongues"},
	{Path: "edu", Collection: "EducationLevels"},
}

// LookupStore is one generic store shared by every lookup kind.
type LookupStore interface {
	Create(ctx context.Context, kind LookupKind, name, description string) (*model.Lookup, error)
	List(ctx context.Context, kind LookupKind) ([]model.Lookup, error)
	Update(ctx context.Context, kind LookupKind, id, name, description string) (*model.Lookup, error)
	Delete(ctx context.Context, kind LookupKind, id string) error
}

type FirestoreLookupStore struct {
	client *firestore.Client
}

func NewFirestoreLookupStore(client *firestore.Client) *FirestoreLookupStore {
	return &FirestoreLookupStore{client: client}
}

func (s *FirestoreLookupStore) Create(ctx context.Context, kind LookupKind, name, description string) (*model.Lookup, error) {
	docs, err := s.client.Collection(kind.Collection).
		Where("name", "==", name).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return nil, ErrNameTaken
	}

	item := &model.Lookup{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if _, err := s.client.Collection(kind.Collection).Doc(item.ID).Set(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FirestoreLookupStore) List(ctx context.Context, kind LookupKind) ([]model.Lookup, error) {
	docs, err := s.client.Collection(kind.Collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]model.Lookup, 0, len(docs))
	for _, doc := range docs {
		var item model.Lookup
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *FirestoreLookupStore) Update(ctx context.Context, kind LookupKind, id, name, description string) (*model.Lookup, error) {
	ref := s.client.Collection(kind.Collection).Doc(id)
	var updated model.Lookup

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrLookupNotFound
			}
			return err
		}
		var item model.Lookup
		if err := doc.DataTo(&item); err != nil {
			return err
		}
		if name != "" {
			item.Name = name
		}
		if description != "" {
			item.Description = description
		}
		item.UpdatedAt = time.Now()
		updated = item
		return tx.Set(ref, item)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *FirestoreLookupStore) Delete(ctx context.Context, kind LookupKind, id string) error {
	ref := s.client.Collection(kind.Collection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrLookupNotFound
		}
		return err
	}
	_, err := ref.Delete(ctx)
	return err
}
