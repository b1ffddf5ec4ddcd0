package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bazaar/internal/auth"
	"bazaar/internal/domain"
	"bazaar/internal/repos"
)

type AccountService struct {
	Users  *repos.UserRepo
	Tokens *auth.TokenCodec
}

func NewAccountService(users *repos.UserRepo, tokens *auth.TokenCodec) *AccountService {
	return &AccountService{Users: users, Tokens: tokens}
}

func (s *AccountService) Register(username, email, password, role string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if role == "" {
		role = domain.RoleBuyer
	}
	if role != domain.RoleAdmin && role != domain.RoleSeller && role != domain.RoleBuyer {
		return nil, ErrInvalidRole
	}
	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Hash:     string(hash),
		Role:     role,
		Status:   domain.StatusActive,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies credentials and mints a bearer token. Unknown email,
// wrong password and blocked accounts each surface distinctly.
func (s *AccountService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrUnknownEmail
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	if u.Status == domain.StatusBlocked {
		return nil, "", ErrBlocked
	}
	token, err := s.Tokens.Sign(domain.Claims{ID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AccountService) Get(id string) (*domain.User, error) {
	u, err := s.Users.ByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *AccountService) List() ([]domain.User, error) {
	return s.Users.List()
}

// UpdateProfile applies the self-service fields (username, email, shop
// name) and returns the fresh record.
func (s *AccountService) UpdateProfile(id, username, email, shopName string) (*domain.User, error) {
	n, err := s.Users.UpdateProfile(id, username, email, shopName)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.Users.ByID(id)
}

func (s *AccountService) SetStatus(id, status string) (*domain.User, error) {
	n, err := s.Users.SetStatus(id, status)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.Users.ByID(id)
}

func (s *AccountService) Delete(id string) error {
	n, err := s.Users.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
