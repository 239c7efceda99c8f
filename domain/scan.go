package domain

import (
	"errors"
)

var (
	MessageSuccessRecordScan     = "scan recorded successfully"
	MessageSuccessUpdateScan     = "scan updated successfully"
	MessageSuccessSyncScans      = "pending scans synced successfully"
	MessageSuccessGetInventory   = "inventory retrieved successfully"
	MessageSuccessGetItemDetail  = "item detail retrieved successfully"
	MessageSuccessGetDashboard   = "dashboard statistics retrieved successfully"
	MessageSuccessDecodeFileScan = "barcode decoded and scan recorded successfully"

	MessageSuccessGetSettings    = "settings retrieved successfully"
	MessageSuccessUpdateSettings = "settings updated successfully"

	MessageFailedRecordScan     = "failed to record scan"
	MessageFailedUpdateScan     = "failed to update scan"
	MessageFailedSyncScans      = "failed to sync pending scans"
	MessageFailedGetInventory   = "failed to retrieve inventory"
	MessageFailedGetItemDetail  = "failed to retrieve item detail"
	MessageFailedGetDashboard   = "failed to retrieve dashboard statistics"
	MessageFailedDecodeFileScan = "failed to decode barcode from image"
	MessageFailedUpdateSettings = "failed to update settings"

	ErrScanNotFound          = errors.New("scan record not found")
	ErrEmptyBarcodeValue     = errors.New("barcode value is empty")
	ErrInvalidExpiresAt      = errors.New("expires_at must be a finite millisecond timestamp")
	ErrLookupFailure         = errors.New("no barcode detected")
	ErrDecoderUnavailable    = errors.New("barcode decoder service unavailable")
	ErrStorageFailure        = errors.New("local storage failure")
	ErrRemoteUnauthenticated = errors.New("remote store requires an authenticated session")
	ErrRemoteUnconfigured    = errors.New("remote store is not configured")
	ErrRemoteProvider        = errors.New("remote store provider error")
)

// Freshness statuses derived from expires_at and the current time.
const (
	StatusFresh    = "fresh"
	StatusExpiring = "expiring"
	StatusExpired  = "expired"
	StatusNone     = "none"
)

type (
	RecordScanRequest struct {
		Value     string `json:"value" validate:"required"`
		Format    string `json:"format" validate:"omitempty"`
		Source    string `json:"source" validate:"required,oneof=camera file"`
		ExpiresAt *int64 `json:"expires_at" validate:"omitempty,gt=0"`
		Notes     string `json:"notes" validate:"omitempty,max=500"`
	}

	// SaveResult mirrors the write contract of the reconciliation layer: a
	// failed write carries exactly one actionable flag and is never raised as
	// a transport error.
	SaveResult struct {
		Error          error  `json:"-"`
		ErrorMessage   string `json:"error,omitempty"`
		ScanID         string `json:"scan_id,omitempty"`
		RequiresAuth   bool   `json:"requires_auth,omitempty"`
		RequiresRemote bool   `json:"requires_remote,omitempty"`
		SavedLocally   bool   `json:"saved_locally,omitempty"`
	}

	UpdateScanRequest struct {
		ExpiresAt *int64 `json:"expires_at" validate:"omitempty,gt=0"`
		Notes     string `json:"notes" validate:"omitempty,max=500"`
	}

	SyncResult struct {
		SyncedCount int `json:"synced_count"`
	}

	InventoryItem struct {
		ID             string `json:"id,omitempty"`
		Value          string `json:"value"`
		Format         string `json:"format,omitempty"`
		Title          string `json:"title,omitempty"`
		Brand          string `json:"brand,omitempty"`
		Description    string `json:"description,omitempty"`
		ImageURL       string `json:"image_url,omitempty"`
		ScannedAt      int64  `json:"scanned_at"`
		ExpiresAt      *int64 `json:"expires_at,omitempty"`
		Notes          string `json:"notes,omitempty"`
		Source         string `json:"source"`
		HasProductInfo bool   `json:"has_product_info"`
		Remote         bool   `json:"remote"`

		Status        string `json:"status"`
		DaysLeft      *int   `json:"days_left,omitempty"`
		CountdownText string `json:"countdown_text"`
	}

	InventoryResponse struct {
		Items    []InventoryItem `json:"items"`
		Total    int             `json:"total"`
		Degraded bool            `json:"degraded"` // remote fetch failed, local-only view
	}

	DashboardStatsResponse struct {
		TotalScans   int      `json:"total_scans"`
		ActiveItems  int      `json:"active_items"`
		ExpiringSoon int      `json:"expiring_soon"`
		ExpiredItems int      `json:"expired_items"`
		NoExpiry     int      `json:"no_expiry"`
		Insights     []string `json:"insights"`
	}

	FileScanRequest struct {
		// Multipart image forwarded to the external decoder service.
		ExpiresAt *int64 `json:"expires_at" validate:"omitempty,gt=0"`
		Notes     string `json:"notes" validate:"omitempty,max=500"`
	}
)
