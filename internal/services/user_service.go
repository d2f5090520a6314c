package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shop-service/internal/auth"
	"shop-service/internal/domain"
	"shop-service/internal/repository"
)

type TokenIssuer interface {
	Issue(userID uint64) (string, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UserService struct {
	store  repository.Store
	tokens TokenIssuer
	// compared against when the email is unknown so both login failures
	// cost one bcrypt comparison
	dummyHash string
}

func NewUserService(store repository.Store, tokens TokenIssuer) *UserService {
	dummy, err := auth.HashPassword("not-a-real-password")
	if err != nil {
		log.Printf("Failed to prepare dummy password hash: %v", err)
	}
	return &UserService{
		store:     store,
		tokens:    tokens,
		dummyHash: dummy,
	}
}

// Register creates the user and its empty cart in one transaction.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, domain.Internal("registration failed", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	}

	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		existing, err := tx.Users().FindByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}

		if err := tx.Users().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return tx.Carts().Create(ctx, &domain.Cart{UserID: user.ID})
	})
	if err != nil {
		if !domain.IsDomain(err) {
			log.Printf("Register failed: %v", err)
		}
		return nil, domain.AsInternal(err, "registration failed")
	}

	log.Printf("User %d registered", user.ID)
	return user, nil
}

// Login returns a signed identity token. Unknown email and wrong password
// produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		return "", domain.Internal("login failed", err)
	}

	if u == nil {
		auth.CheckPassword(s.dummyHash, password)
		return "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", domain.Internal("login failed", err)
	}
	return token, nil
}

// DeleteAccount removes the user with its cart, wishlist and reviews.
// Orders are kept.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint64) error {
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}

		cart, err := tx.Carts().FindByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if cart != nil {
			if err := tx.Carts().ClearItems(ctx, cart.ID); err != nil {
				return err
			}
			if err := tx.Carts().Delete(ctx, cart.ID); err != nil {
				return err
			}
		}

		if err := tx.Wishlist().DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := tx.Catalog().DeleteReviewsByUser(ctx, userID); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, userID)
	})
	if err != nil {
		if !domain.IsDomain(err) {
			log.Printf("DeleteAccount %d failed: %v", userID, err)
		}
		return domain.AsInternal(err, "account deletion failed")
	}

	log.Printf("User %d deleted", userID)
	return nil
}
