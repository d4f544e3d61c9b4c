package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/pkg/ctxutil"
)

// AuthMiddleware resolves the bearer token into request data. Requests
// without a token proceed anonymously; permission checks downstream
// reject mutations from anonymous users.
type AuthMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewAuthMiddleware(log *logger.Logger, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		log:    log.With("middleware", "AuthMiddleware"),
		secret: []byte(secret),
	}
}

type accessClaims struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	ManageDivisions   bool   `json:"manageDivisions"`
	ManageSeasons     bool   `json:"manageSeasons"`
	ManageTeams       bool   `json:"manageTeams"`
	ManageGames       bool   `json:"manageGames"`
	ManageTournaments bool   `json:"manageTournaments"`
	ManageNotes       bool   `json:"manageNotes"`
	RecordScores      bool   `json:"recordScores"`
	jwt.RegisteredClaims
}

func (am *AuthMiddleware) ResolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims := &accessClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return am.secret, nil
		})
		if err != nil || !token.Valid {
			am.log.Debug("Invalid token, continuing as anonymous", "error", err)
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			am.log.Debug("Token subject is not a uuid", "subject", claims.Subject)
			c.Next()
			return
		}

		rd := &ctxutil.RequestData{
			UserID: userID,
			Name:   claims.Name,
			Emails: claims.Email,
			Access: ctxutil.Access{
				ManageDivisions:   claims.ManageDivisions,
				ManageSeasons:     claims.ManageSeasons,
				ManageTeams:       claims.ManageTeams,
				ManageGames:       claims.ManageGames,
				ManageTournaments: claims.ManageTournaments,
				ManageNotes:       claims.ManageNotes,
				RecordScores:      claims.RecordScores,
			},
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), rd)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if qToken := c.Query("token"); qToken != "" {
		return qToken
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
