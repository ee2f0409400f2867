package v1

import (
	ww_uuid "github.com/walletwise/backend/internal/uuid"
)

type URIID struct {
	ID ww_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
