package middleware

import (
	"github.com/gin-gonic/gin"

	apikeyusecases "github.com/pharris560/ace-attendance/internal/application/apikey/usecases"
	authusecases "github.com/pharris560/ace-attendance/internal/application/auth/usecases"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/constants"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/utils"
)

// AuthMiddleware authenticates requests by session cookie or API key header.
type AuthMiddleware struct {
	authenticateSession *authusecases.AuthenticateSessionUseCase
	verifyAPIKey        *apikeyusecases.VerifyAPIKeyUseCase
	logger              logger.Interface
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(
	authenticateSession *authusecases.AuthenticateSessionUseCase,
	verifyAPIKey *apikeyusecases.VerifyAPIKeyUseCase,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		authenticateSession: authenticateSession,
		verifyAPIKey:        verifyAPIKey,
		logger:              logger,
	}
}

// RequireAuth resolves the acting user from the session cookie, falling back
// to the X-Api-Key header. The failure responses never distinguish missing,
// unknown and expired credentials.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		actingUser, err := m.resolve(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, actingUser.ID)
		c.Set(constants.ContextKeyUser, actingUser)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*user.User, error) {
	if token := utils.GetSessionToken(c); token != "" {
		return m.authenticateSession.Execute(c.Request.Context(), token)
	}

	if rawKey := c.GetHeader(constants.HeaderAPIKey); rawKey != "" {
		return m.verifyAPIKey.Execute(c.Request.Context(), rawKey)
	}

	return nil, errors.NewSessionExpiredError()
}

// CurrentUserID returns the acting user's ID set by RequireAuth.
func CurrentUserID(c *gin.Context) string {
	id, _ := c.Get(constants.ContextKeyUserID)
	userID, _ := id.(string)
	return userID
}

// CurrentUser returns the acting user set by RequireAuth.
func CurrentUser(c *gin.Context) *user.User {
	value, _ := c.Get(constants.ContextKeyUser)
	actingUser, _ := value.(*user.User)
	return actingUser
}
