package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"plume.ink/plume-blog-server/app/domain/auth"
	"plume.ink/plume-blog-server/app/domain/user"
	"plume.ink/plume-blog-server/app/interfaces/http/responses"
)

type AuthRoute struct {
	userService *user.UserService
	authService *auth.AuthService
}

func NewAuthRoute(
	userService *user.UserService,
	authService *auth.AuthService) *AuthRoute {
	return &AuthRoute{
		userService,
		authService,
	}
}

func (authRoute *AuthRoute) RegisterRouter(router gin.IRouter) {
	authRouter := router.Group("/auth")
	authRouter.GET("/logout", authRoute.Logout)
	authRouter.GET("/refresh-token", authRoute.RefreshToken)
	authRouter.GET("/me",
		authRoute.authService.AppUserAuthMiddleware(),
		authRoute.authService.RegisteredUserMiddleware(),
		authRoute.GetMe,
	)
	authRouter.POST("/local/login", authRoute.LocalLogin)
}

// @Enum(access.token)
type AccessTokenResponseObjectType string

const AccessTokenResponseObjectTypeObject = "access.token"

type AccessTokenResponse struct {
	Object      AccessTokenResponseObjectType `json:"object"`
	AccessToken string                        `json:"access_token"`
	ExpiresIn   int                           `json:"expires_in"`
}

type LocalLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GetMeResponse struct {
	Object   string `json:"object"`
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// @Summary Get user profile
// @Description Retrieves the profile of the authenticated user based on the provided JWT.
// @Tags Authentication API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} GetMeResponse "Successfully retrieved user profile"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized (e.g., missing or invalid JWT)"
// @Router /v1/auth/me [get]
func (authRoute *AuthRoute) GetMe(reqCtx *gin.Context) {
	userEntity, _ := auth.GetUserFromContext(reqCtx)
	reqCtx.JSON(http.StatusOK, GetMeResponse{
		Object:   "me",
		ID:       userEntity.PublicID,
		Email:    userEntity.Email,
		Name:     userEntity.Name,
		Username: userEntity.Username,
	})
}

// @Summary Local credential login
// @Description Authenticates an author using email and password.
// @Tags Authentication API
// @Accept json
// @Produce json
// @Param request body LocalLoginRequest true "Local login credentials"
// @Success 200 {object} AccessTokenResponse "Successfully authenticated"
// @Failure 400 {object} responses.ErrorResponse "Invalid request payload"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /v1/auth/local/login [post]
func (authRoute *AuthRoute) LocalLogin(reqCtx *gin.Context) {
	var request LocalLoginRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "6c1f77f2-35a1-4c2c-bd44-18ad73c8c63e",
			Error: "invalid credentials payload",
		})
		return
	}

	ctx := reqCtx.Request.Context()
	userEntity, err := authRoute.authService.AuthenticateLocalUser(ctx, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Code:  "7e9de0aa-4b70-4fd7-9d35-19a8cc764c31",
				Error: "invalid email or password",
			})
			return
		}
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "2f2f7e43-0d4a-4b1a-a29a-4e3177ac06b5",
			Error: err.Error(),
		})
		return
	}

	accessTokenExp := time.Now().Add(auth.AccessTokenExpirationDuration)
	accessTokenString, err := auth.CreateJwtSignedString(auth.NewUserClaim(userEntity, auth.AccessTokenExpirationDuration))
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "86d8a0a5-22dd-42ad-a465-8a7564bd8047",
			Error: err.Error(),
		})
		return
	}

	refreshTokenExp := time.Now().Add(auth.RefreshTokenExpirationDuration)
	refreshTokenString, err := auth.CreateJwtSignedString(auth.NewUserClaim(userEntity, auth.RefreshTokenExpirationDuration))
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "9b1744fd-7b1f-4cf1-a46f-9563f505e0e6",
			Error: err.Error(),
		})
		return
	}

	http.SetCookie(reqCtx.Writer,
		responses.NewCookieWithSecurity(
			auth.RefreshTokenKey,
			refreshTokenString,
			refreshTokenExp,
		),
	)

	reqCtx.JSON(http.StatusOK, &AccessTokenResponse{
		Object:      AccessTokenResponseObjectTypeObject,
		AccessToken: accessTokenString,
		ExpiresIn:   int(time.Until(accessTokenExp).Seconds()),
	})
}

// @Summary Logout
// @Description Clears the refresh token cookie.
// @Tags Authentication API
// @Produce json
// @Success 200 {object} nil "Successfully logout"
// @Router /v1/auth/logout [get]
func (authRoute *AuthRoute) Logout(reqCtx *gin.Context) {
	http.SetCookie(reqCtx.Writer, responses.NewCookieWithSecurity(
		auth.RefreshTokenKey,
		"",
		time.Unix(0, 0),
	))
	reqCtx.Status(http.StatusOK)
}

// @Summary Refresh an access token
// @Description Use a valid refresh token to obtain a new access token. The refresh token is sent in a cookie.
// @Tags Authentication API
// @Accept json
// @Produce json
// @Success 200 {object} AccessTokenResponse "Successfully refreshed the access token"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized (e.g., expired or missing refresh token)"
// @Router /v1/auth/refresh-token [get]
func (authRoute *AuthRoute) RefreshToken(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	userClaim, ok := auth.GetUserClaimFromRefreshToken(reqCtx)
	if !ok {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "9c3de984-01ba-40de-a921-00b03bd29b05",
		})
		return
	}
	userEntity, err := authRoute.userService.FindByEmail(ctx, userClaim.Email)
	if err != nil || userEntity == nil || !userEntity.Enabled {
		reqCtx.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
			Code: "b014b618-0ae5-4a4f-b383-ab17a3b3e2a1",
		})
		return
	}

	accessTokenExp := time.Now().Add(auth.AccessTokenExpirationDuration)
	accessTokenString, err := auth.CreateJwtSignedString(auth.NewUserClaim(userEntity, auth.AccessTokenExpirationDuration))
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "e62e3bc2-9140-4a21-a0f6-cf4e83ff0ab6",
			Error: err.Error(),
		})
		return
	}

	refreshTokenExp := time.Now().Add(auth.RefreshTokenExpirationDuration)
	refreshTokenString, err := auth.CreateJwtSignedString(auth.NewUserClaim(userEntity, auth.RefreshTokenExpirationDuration))
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Code:  "3f4b4c70-0296-4bb8-ae61-7a1b2ae0bd83",
			Error: err.Error(),
		})
		return
	}

	http.SetCookie(reqCtx.Writer,
		responses.NewCookieWithSecurity(
			auth.RefreshTokenKey,
			refreshTokenString,
			refreshTokenExp,
		),
	)

	reqCtx.JSON(http.StatusOK, &AccessTokenResponse{
		Object:      AccessTokenResponseObjectTypeObject,
		AccessToken: accessTokenString,
		ExpiresIn:   int(time.Until(accessTokenExp).Seconds()),
	})
}
