package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carelink/internal/services"
)

// principalFromContext rebuilds the principal stored by the auth
// middleware. Handlers behind AuthMiddleware can rely on it being set.
func principalFromContext(c *gin.Context) (*services.Principal, bool) {
	accountID, err := uuid.Parse(c.GetString("account_id"))
	if err != nil {
		return nil, false
	}

	return &services.Principal{
		AccountID:   accountID,
		AccountType: c.GetString("account_type"),
		FirstName:   c.GetString("first_name"),
	}, true
}

// ownerFromQuery resolves the target owner account: the owner_account_id
// query parameter when present, otherwise the caller themselves.
func ownerFromQuery(c *gin.Context, principal *services.Principal) (uuid.UUID, bool) {
	raw := c.Query("owner_account_id")
	if raw == "" {
		return principal.AccountID, true
	}

	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return ownerID, true
}
