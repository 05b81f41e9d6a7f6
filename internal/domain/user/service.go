package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

type tokenIssuer interface {
	GenerateToken(userID int64) (string, error)
}

// SubscriptionChecker отвечает на вопрос "подписан ли follower на author".
// Реализуется репозиторием подписок.
type SubscriptionChecker interface {
	IsSubscribed(ctx context.Context, followerID, authorID int64) (bool, error)
}

// Service contains business logic for registration, login and profiles
type Service struct {
	users Repository
	subs  SubscriptionChecker
	jwt   tokenIssuer
}

func NewService(users Repository, subs SubscriptionChecker, jwt tokenIssuer) *Service {
	return &Service{users: users, subs: subs, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if !ValidUsername(req.Username) {
		return nil, ErrInvalidUsername
	}

	taken, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == ErrNotFound {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(u.ID)
}

// Profile возвращает публичный профиль пользователя id глазами requesterID.
// requesterID == 0 означает анонимный запрос: is_subscribed всегда false.
func (s *Service) Profile(ctx context.Context, id, requesterID int64) (*Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subscribed := false
	if requesterID != 0 && requesterID != u.ID {
		subscribed, err = s.subs.IsSubscribed(ctx, requesterID, u.ID)
		if err != nil {
			return nil, err
		}
	}

	p := NewProfile(u, subscribed)
	return &p, nil
}

func (s *Service) ListProfiles(ctx context.Context, requesterID int64, limit, offset int) ([]Profile, int64, error) {
	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]Profile, 0, len(users))
	for i := range users {
		subscribed := false
		if requesterID != 0 && requesterID != users[i].ID {
			subscribed, err = s.subs.IsSubscribed(ctx, requesterID, users[i].ID)
			if err != nil {
				return nil, 0, err
			}
		}
		profiles = append(profiles, NewProfile(&users[i], subscribed))
	}

	return profiles, total, nil
}
