package services

import (
	"context"
	"time"

	"matchapp/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const userCollection = "Users"

// UserStore is the credential store: everything the rest of the system
// knows about accounts goes through it. The authorization middleware calls
// GetByID on every protected request so role changes bite immediately.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, userID string) error
	SetPassword(ctx context.Context, userID, passwordHash string) error
	SetProfilePic(ctx context.Context, userID, url string) error
	SetLastLogin(ctx context.Context, userID string, at time.Time) error
	AddProfileID(ctx context.Context, userID, profileID string) error
	RemoveProfileID(ctx context.Context, userID, profileID string) error

	// ActivateMembership is the side effect of an approved payment: the
	// account gets the plan and becomes Active. Idempotent.
	ActivateMembership(ctx context.Context, userID, planID string) error
}

type FirestoreUserStore struct {
	client *firestore.Client
}

func NewFirestoreUserStore(client *firestore.Client) *FirestoreUserStore {
	return &FirestoreUserStore{client: client}
}

func (s *FirestoreUserStore) Create(ctx context.Context, user *model.User) error {
	_, err := s.client.Collection(userCollection).Doc(user.UserID).Set(ctx, user)
	return err
}

func (s *FirestoreUserStore) GetByID(ctx context.Context, userID string) (*model.User, error) {
	doc, err := s.client.Collection(userCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *FirestoreUserStore) FindByEmailOrPhone(ctx context.Context, email, phone string) (*model.User, error) {
	if email != "" {
		user, err := s.findOne(ctx, "email", email)
		if err == nil || err != ErrUserNotFound {
			return user, err
		}
	}
	if phone != "" {
		return s.findOne(ctx, "phonenumber", phone)
	}
	return nil, ErrUserNotFound
}

func (s *FirestoreUserStore) findOne(ctx context.Context, field, value string) (*model.User, error) {
	docs, err := s.client.Collection(userCollection).
		Where(field, "==", value).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrUserNotFound
	}
	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *FirestoreUserStore) List(ctx context.Context) ([]model.User, error) {
	docs, err := s.client.Collection(userCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		var user model.User
		if err := doc.DataTo(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *FirestoreUserStore) Delete(ctx context.Context, userID string) error {
	_, err := s.client.Collection(userCollection).Doc(userID).Delete(ctx)
	return err
}

func (s *FirestoreUserStore) SetPassword(ctx context.Context, userID, passwordHash string) error {
	return s.update(ctx, userID, []firestore.Update{
		{Path: "password", Value: passwordHash},
	})
}

func (s *FirestoreUserStore) SetProfilePic(ctx context.Context, userID, url string) error {
	return s.update(ctx, userID, []firestore.Update{
		{Path: "profilepicurl", Value: url},
	})
}

func (s *FirestoreUserStore) SetLastLogin(ctx context.Context, userID string, at time.Time) error {
	return s.update(ctx, userID, []firestore.Update{
		{Path: "lastloginat", Value: at},
	})
}

func (s *FirestoreUserStore) AddProfileID(ctx context.Context, userID, profileID string) error {
	return s.update(ctx, userID, []firestore.Update{
		{Path: "profileids", Value: firestore.ArrayUnion(profileID)},
	})
}

func (s *FirestoreUserStore) RemoveProfileID(ctx context.Context, userID, profileID string) error {
	return s.update(ctx, userID, []firestore.Update{
		{Path: "profileids", Value: firestore.ArrayRemove(profileID)},
	})
}

func (s *FirestoreUserStore) ActivateMembership(ctx context.Context, userID, planID string) error {
	return s.update(ctx, userID, []firestore.Update{
		{Path: "membershipplanid", Value: planID},
		{Path: "accountstatus", Value: model.AccountActive},
	})
}

func (s *FirestoreUserStore) update(ctx context.Context, userID string, updates []firestore.Update) error {
	_, err := s.client.Collection(userCollection).Doc(userID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrUserNotFound
	}
	return err
}
