package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"plume.ink/plume-blog-server/app/domain/user"
	"plume.ink/plume-blog-server/app/interfaces/http/requests"
	"plume.ink/plume-blog-server/app/interfaces/http/responses"
	"plume.ink/plume-blog-server/config/environment_variables"
)

type AuthService struct {
	userService *user.UserService
}

func NewAuthService(userService *user.UserService) *AuthService {
	return &AuthService{
		userService,
	}
}

const AccessTokenExpirationDuration = 15 * time.Minute
const RefreshTokenExpirationDuration = 7 * 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserContextKey string

const (
	UserContextKeyEntity UserContextKey = "UserContextKeyEntity"
	UserContextKeyID     UserContextKey = "UserContextKeyID"
)

// SeedAdmins registers the configured admin authors and sets the local
// password when one is provided. Called once at startup by the data
// initializer.
func (s *AuthService) SeedAdmins(ctx context.Context) error {
	emails := environment_variables.EnvironmentVariables.ADMIN_EMAILS
	for _, rawEmail := range emails {
		email := strings.TrimSpace(rawEmail)
		if email == "" {
			continue
		}

		admin, err := s.userService.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if admin == nil {
			admin, err = s.userService.RegisterUser(ctx, &user.User{
				Name:    "Admin",
				Email:   email,
				Enabled: true,
			})
			if err != nil {
				return err
			}
		}

		if pwd := environment_variables.EnvironmentVariables.LOCAL_ADMIN_PASSWORD; pwd != "" {
			if err := s.userService.SetUserPassword(ctx, admin, pwd); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *AuthService) AuthenticateLocalUser(ctx context.Context, email, plainPassword string) (*user.User, error) {
	normalized := strings.TrimSpace(strings.ToLower(email))
	if normalized == "" || strings.TrimSpace(plainPassword) == "" {
		return nil, ErrInvalidCredentials
	}

	userEntity, err := s.userService.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if userEntity == nil || userEntity.PasswordHash == "" || !userEntity.Enabled {
		return nil, ErrInvalidCredentials
	}
	match, err := s.userService.VerifyPassword(plainPassword, userEntity.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}
	return userEntity, nil
}

func NewUserClaim(u *user.User, expiration time.Duration) UserClaim {
	return UserClaim{
		Email: u.Email,
		Name:  u.Name,
		ID:    u.PublicID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.PublicID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

// AppUserAuthMiddleware requires a valid bearer JWT and records the caller's
// public ID on the gin context.
func (s *AuthService) AppUserAuthMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		userId, ok := s.getUserPublicIDFromJWT(reqCtx)
		if !ok {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "c3a7f1de-5b9e-4f57-9e41-2f63a8d1a0c4",
			})
			return
		}
		SetUserIDToContext(reqCtx, userId)
		reqCtx.Next()
	}
}

// OptionalAuthMiddleware records the caller when a valid JWT is present and
// stays silent otherwise.
func (s *AuthService) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		if userId, ok := s.getUserPublicIDFromJWT(reqCtx); ok {
			SetUserIDToContext(reqCtx, userId)
		}
		reqCtx.Next()
	}
}

// RegisteredUserMiddleware resolves the authenticated public ID to a user
// entity; runs after AppUserAuthMiddleware.
func (s *AuthService) RegisteredUserMiddleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		ctx := reqCtx.Request.Context()
		userPublicId, ok := GetUserIDFromContext(reqCtx)
		if !ok || userPublicId == "" {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "9b14c06e-7f14-4f0a-b5a8-4a1f0f6d2f77",
			})
			return
		}
		userEntity, err := s.userService.FindByPublicID(ctx, userPublicId)
		if err != nil {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "1d2ce1af-64c2-4c5e-90f2-2ddc8c25b1f7",
			})
			return
		}
		if userEntity == nil {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code: "5f8a9b07-e7ca-4b0a-bb52-7a59742f0d11",
			})
			return
		}
		SetUserToContext(reqCtx, userEntity)
		reqCtx.Next()
	}
}

func (s *AuthService) getUserPublicIDFromJWT(reqCtx *gin.Context) (string, bool) {
	tokenString, ok := requests.GetTokenFromBearer(reqCtx)
	if !ok {
		return "", false
	}
	token, err := jwt.ParseWithClaims(tokenString, &UserClaim{}, func(token *jwt.Token) (interface{}, error) {
		return environment_variables.EnvironmentVariables.JWT_SECRET, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(*UserClaim)
	if !ok {
		return "", false
	}
	return claims.ID, true
}

func GetUserFromContext(reqCtx *gin.Context) (*user.User, bool) {
	v, ok := reqCtx.Get(string(UserContextKeyEntity))
	if !ok {
		return nil, false
	}
	return v.(*user.User), true
}

func SetUserToContext(reqCtx *gin.Context, user *user.User) {
	reqCtx.Set(string(UserContextKeyEntity), user)
}

func GetUserIDFromContext(reqCtx *gin.Context) (string, bool) {
	userId, ok := reqCtx.Get(string(UserContextKeyID))
	if !ok {
		return "", false
	}
	v, ok := userId.(string)
	if !ok {
		return "", false
	}
	return v, true
}

func SetUserIDToContext(reqCtx *gin.Context, v string) {
	reqCtx.Set(string(UserContextKeyID), v)
}
