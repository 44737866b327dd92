package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shush-app/shush/internal/ai"
	"github.com/shush-app/shush/internal/store"
)

type Handler struct {
	logStore     *store.CycleLogStore
	content      *ai.ContentService
	secretKey    []byte
	cookieSecure bool
}

func NewHandler(logStore *store.CycleLogStore, content *ai.ContentService, secretKey string, cookieSecure bool) *Handler {
	return &Handler{
		logStore:     logStore,
		content:      content,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
	}
}

const (
	authCookieName = "shush_session"
	authTokenTTL   = 7 * 24 * time.Hour

	contextUserKey = "current_user"
)

type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Settings boundaries suggested for the tracker; the store itself stays
// validation-free.
const (
	minCycleLength  = 15
	maxCycleLength  = 60
	minPeriodLength = 1
	maxPeriodLength = 10
)
