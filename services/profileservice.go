package services

import (
	"context"

	"matchapp/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	profileCollection    = "Profiles"
	preferenceCollection = "PartnerPreferences"
)

type ProfileStore interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, profileID string) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	Update(ctx context.Context, profileID string, updates []firestore.Update) error
	Delete(ctx context.Context, profileID string) error
	SetImage(ctx context.Context, profileID, url string) error
}

type FirestoreProfileStore struct {
	client *firestore.Client
}

func NewFirestoreProfileStore(client *firestore.Client) *FirestoreProfileStore {
	return &FirestoreProfileStore{client: client}
}

func (s *FirestoreProfileStore) Create(ctx context.Context, profile *model.Profile) error {
	_, err := s.client.Collection(profileCollection).Doc(profile.ProfileID).Set(ctx, profile)
	return err
}

func (s *FirestoreProfileStore) GetByID(ctx context.Context, profileID string) (*model.Profile, error) {
	doc, err := s.client.Collection(profileCollection).Doc(profileID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	var profile model.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *FirestoreProfileStore) List(ctx context.Context) ([]model.Profile, error) {
	docs, err := s.client.Collection(profileCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	profiles := make([]model.Profile, 0, len(docs))
	for _, doc := range docs {
		var profile model.Profile
		if err := doc.DataTo(&profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (s *FirestoreProfileStore) Update(ctx context.Context, profileID string, updates []firestore.Update) error {
	_, err := s.client.Collection(profileCollection).Doc(profileID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrProfileNotFound
	}
	return err
}

func (s *FirestoreProfileStore) Delete(ctx context.Context, profileID string) error {
	_, err := s.client.Collection(profileCollection).Doc(profileID).Delete(ctx)
	return err
}

func (s *FirestoreProfileStore) SetImage(ctx context.Context, profileID, url string) error {
	return s.Update(ctx, profileID, []firestore.Update{
		{Path: "profileimageurl", Value: url},
	})
}

// PreferenceStore keeps one partner-preference document per profile, keyed
// by the profile id so create-or-update is a plain Set.
type PreferenceStore interface {
	Upsert(ctx context.Context, pref *model.PartnerPreference) (created bool, err error)
	GetByProfile(ctx context.Context, profileID string) (*model.PartnerPreference, error)
	DeleteByProfile(ctx context.Context, profileID string) error
}

type FirestorePreferenceStore struct {
	client *firestore.Client
}

func NewFirestorePreferenceStore(client *firestore.Client) *FirestorePreferenceStore {
	return &FirestorePreferenceStore{client: client}
}

func (s *FirestorePreferenceStore) Upsert(ctx context.Context, pref *model.PartnerPreference) (bool, error) {
	ref := s.client.Collection(preferenceCollection).Doc(pref.ProfileID)
	_, err := ref.Get(ctx)
	created := status.Code(err) == codes.NotFound
	if err != nil && !created {
		return false, err
	}
	if _, err := ref.Set(ctx, pref); err != nil {
		return false, err
	}
	return created, nil
}

func (s *FirestorePreferenceStore) GetByProfile(ctx context.Context, profileID string) (*model.PartnerPreference, error) {
	doc, err := s.client.Collection(preferenceCollection).Doc(profileID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}
	var pref model.PartnerPreference
	if err := doc.DataTo(&pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (s *FirestorePreferenceStore) DeleteByProfile(ctx context.Context, profileID string) error {
	_, err := s.client.Collection(preferenceCollection).Doc(profileID).Delete(ctx)
	return err
}
