package user

import (
	"context"
	"fmt"
	"strings"

	"plume.ink/plume-blog-server/app/utils/idgen"
	"plume.ink/plume-blog-server/app/utils/password"
	"plume.ink/plume-blog-server/app/utils/ptr"
)

const publicIDPrefix = "user"

type UserService struct {
	repo UserRepository
}

func NewService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, u *User) (*User, error) {
	publicID, err := idgen.GenerateSecureID(publicIDPrefix, 24)
	if err != nil {
		return nil, fmt.Errorf("failed to generate user public id: %w", err)
	}
	u.PublicID = publicID
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Username == "" {
		u.Username = strings.SplitN(u.Email, "@", 2)[0]
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, u *User) (*User, error) {
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) SetUserPassword(ctx context.Context, u *User, plainPassword string) error {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.PasswordHash = hash
	_, err = s.UpdateUser(ctx, u)
	return err
}

func (s *UserService) VerifyPassword(plainPassword, passwordHash string) (bool, error) {
	return password.Verify(plainPassword, passwordHash)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return s.repo.FindFirst(ctx, UserFilter{
		Email: &normalized,
	})
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindFirst(ctx, UserFilter{
		Username: ptr.ToString(username),
	})
}

func (s *UserService) FindByPublicID(ctx context.Context, publicID string) (*User, error) {
	return s.repo.FindFirst(ctx, UserFilter{
		PublicID: ptr.ToString(publicID),
	})
}
