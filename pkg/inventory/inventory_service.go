package inventory

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/entities"
	"Scanstock-Backend/internal/utils"
	"Scanstock-Backend/pkg/expiration"
	"Scanstock-Backend/pkg/localstore"
	"Scanstock-Backend/pkg/product"
	"Scanstock-Backend/pkg/scan"
)

type (
	// InventoryService reconciles the remote per-user scan collection and
	// the local store into one de-duplicated view, and routes writes to
	// whichever store the current session allows.
	InventoryService interface {
		RecordScan(ctx context.Context, req domain.RecordScanRequest, userID string) domain.SaveResult
		RecordFileScan(ctx context.Context, image *multipart.FileHeader, req domain.FileScanRequest, userID string) domain.SaveResult
		UpdateScan(ctx context.Context, id string, req domain.UpdateScanRequest, userID string) error
		SyncPendingScans(ctx context.Context, userID string) (domain.SyncResult, error)
		GetInventory(ctx context.Context, userID string) domain.InventoryResponse
		GetItemDetail(ctx context.Context, userID string, value string) (domain.InventoryItem, error)
		DashboardStats(ctx context.Context, userID string) domain.DashboardStatsResponse
	}

	inventoryService struct {
		scanRepository scan.ScanRepository
		local          localstore.Store
		lookup         product.LookupClient
		decoder        scan.BarcodeDecoder

		// Injected for tests; default to the config layer and wall clock.
		remoteConfigured func() bool
		requireRemote    func() bool
		now              func() int64
	}
)

func NewInventoryService(
	scanRepository scan.ScanRepository,
	local localstore.Store,
	lookup product.LookupClient,
	decoder scan.BarcodeDecoder,
) InventoryService {
	return &inventoryService{
		scanRepository:   scanRepository,
		local:            local,
		lookup:           lookup,
		decoder:          decoder,
		remoteConfigured: utils.IsRemoteConfigured,
		requireRemote:    utils.RequireRemote,
		now:              func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *inventoryService) remoteAvailable() bool {
	return s.scanRepository != nil && s.remoteConfigured()
}

func (s *inventoryService) RecordScan(ctx context.Context, req domain.RecordScanRequest, userID string) domain.SaveResult {
	if req.Value == "" {
		return failed(domain.ErrEmptyBarcodeValue)
	}

	source := req.Source
	if source == "" {
		source = "camera"
	}

	rec := localstore.Record{
		Value:     req.Value,
		Format:    req.Format,
		ScannedAt: s.now(),
		ExpiresAt: req.ExpiresAt,
		Notes:     req.Notes,
		Source:    source,
	}

	// Product lookup is best-effort enrichment; a miss or a lookup failure
	// never blocks the save.
	if s.lookup != nil {
		if info, err := s.lookup.Lookup(ctx, req.Value); err == nil && info != nil {
			rec.Title = info.Title
			rec.Brand = info.Brand
			rec.Description = info.Description
			rec.ImageURL = info.ImageURL
			rec.HasProductInfo = true
		}
	}

	return s.routeWrite(ctx, rec, userID)
}

func (s *inventoryService) RecordFileScan(ctx context.Context, image *multipart.FileHeader, req domain.FileScanRequest, userID string) domain.SaveResult {
	decoded, err := s.decoder.Decode(ctx, image)
	if err != nil {
		return failed(err)
	}

	return s.RecordScan(ctx, domain.RecordScanRequest{
		Value:     decoded.Value,
		Format:    decoded.Format,
		Source:    "file",
		ExpiresAt: req.ExpiresAt,
		Notes:     req.Notes,
	}, userID)
}

func (s *inventoryService) routeWrite(ctx context.Context, rec localstore.Record, userID string) domain.SaveResult {
	if s.remoteAvailable() {
		if userID == "" {
			res := failed(domain.ErrRemoteUnauthenticated)
			res.RequiresAuth = true
			return res
		}
		return s.saveRemote(ctx, rec, userID)
	}

	if s.requireRemote() {
		res := failed(domain.ErrRemoteUnconfigured)
		res.RequiresRemote = true
		return res
	}

	if err := s.local.Append(ctx, rec); err != nil {
		return failed(err)
	}
	return domain.SaveResult{SavedLocally: true}
}

func (s *inventoryService) saveRemote(ctx context.Context, rec localstore.Record, userID string) domain.SaveResult {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return failed(domain.ErrParseUUID)
	}

	entity := recordToEntity(rec, userUUID)
	if err := s.scanRepository.Save(ctx, entity); err != nil {
		return failed(scan.TranslateProviderError(err))
	}
	return domain.SaveResult{ScanID: entity.ID.String()}
}

func (s *inventoryService) UpdateScan(ctx context.Context, id string, req domain.UpdateScanRequest, userID string) error {
	if !s.remoteAvailable() {
		return domain.ErrRemoteUnconfigured
	}

	rec, err := s.scanRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScanNotFound
		}
		return scan.TranslateProviderError(err)
	}

	if rec.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if req.ExpiresAt != nil {
		rec.ExpiresAt = req.ExpiresAt
	}
	if req.Notes != "" {
		rec.Notes = req.Notes
	}

	if err := s.scanRepository.Update(ctx, rec); err != nil {
		return scan.TranslateProviderError(err)
	}
	return nil
}

// SyncPendingScans pushes every local record not already present remotely (by
// barcode value) to the remote store, then prunes migrated records locally.
// The existence check makes the call idempotent: a second run with no new
// local scans reports a synced count of zero.
func (s *inventoryService) SyncPendingScans(ctx context.Context, userID string) (domain.SyncResult, error) {
	if !s.remoteAvailable() {
		return domain.SyncResult{}, domain.ErrRemoteUnconfigured
	}
	if userID == "" {
		return domain.SyncResult{}, domain.ErrRemoteUnauthenticated
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SyncResult{}, domain.ErrParseUUID
	}

	pending, err := s.local.List(ctx)
	if err != nil {
		return domain.SyncResult{}, err
	}

	synced := 0
	for _, rec := range pending {
		exists, err := s.scanRepository.ExistsByValue(ctx, userID, rec.Value)
		if err != nil {
			return domain.SyncResult{SyncedCount: synced}, scan.TranslateProviderError(err)
		}
		if exists {
			// Already migrated; the merged view de-duplicates by value, so the
			// stale local copy can simply be dropped.
			_ = s.local.Remove(ctx, rec.Value)
			continue
		}

		if err := s.scanRepository.Save(ctx, recordToEntity(rec, userUUID)); err != nil {
			return domain.SyncResult{SyncedCount: synced}, scan.TranslateProviderError(err)
		}
		synced++
		_ = s.local.Remove(ctx, rec.Value)
	}

	return domain.SyncResult{SyncedCount: synced}, nil
}

// GetInventory merges the remote page and the full local list into one view,
// remote records first. It never fails: a remote fetch error degrades the
// view to local-only results.
func (s *inventoryService) GetInventory(ctx context.Context, userID string) domain.InventoryResponse {
	var (
		wg        sync.WaitGroup
		remote    []*entities.ScanRecord
		remoteErr error
		local     []localstore.Record
		localErr  error
	)

	fetchRemote := s.remoteAvailable() && userID != ""
	if fetchRemote {
		wg.Add(1)
		go func() {
			defer wg.Done()
			remote, remoteErr = s.scanRepository.List(ctx, userID, scan.DefaultListLimit)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		local, localErr = s.local.List(ctx)
	}()

	wg.Wait()

	if localErr != nil {
		local = nil
	}

	now := s.now()
	seen := make(map[string]bool)
	items := make([]domain.InventoryItem, 0, len(remote)+len(local))

	if remoteErr == nil {
		for _, rec := range remote {
			if rec.Value == "" || seen[rec.Value] {
				continue
			}
			seen[rec.Value] = true
			items = append(items, entityToItem(rec, now))
		}
	}

	for _, rec := range local {
		if seen[rec.Value] {
			continue
		}
		seen[rec.Value] = true
		items = append(items, localToItem(rec, now))
	}

	return domain.InventoryResponse{
		Items:    items,
		Total:    len(items),
		Degraded: fetchRemote && remoteErr != nil,
	}
}

// GetItemDetail resolves a single item the same way the merged view would:
// the remote copy wins, a remote miss or failure falls through to the local
// store.
func (s *inventoryService) GetItemDetail(ctx context.Context, userID string, value string) (domain.InventoryItem, error) {
	if s.remoteAvailable() && userID != "" {
		rec, err := s.scanRepository.GetByValue(ctx, userID, value)
		if err == nil {
			return entityToItem(rec, s.now()), nil
		}
	}

	local, err := s.local.List(ctx)
	if err == nil {
		for _, rec := range local {
			if rec.Value == value {
				return localToItem(rec, s.now()), nil
			}
		}
	}
	return domain.InventoryItem{}, domain.ErrScanNotFound
}

func (s *inventoryService) DashboardStats(ctx context.Context, userID string) domain.DashboardStatsResponse {
	view := s.GetInventory(ctx, userID)

	stats := domain.DashboardStatsResponse{TotalScans: len(view.Items)}
	for _, item := range view.Items {
		switch item.Status {
		case domain.StatusExpired:
			stats.ExpiredItems++
		case domain.StatusExpiring:
			stats.ActiveItems++
			stats.ExpiringSoon++
		case domain.StatusFresh:
			stats.ActiveItems++
		case domain.StatusNone:
			stats.ActiveItems++
			stats.NoExpiry++
		}
	}

	stats.Insights = buildInsights(stats)
	return stats
}

func buildInsights(stats domain.DashboardStatsResponse) []string {
	var insights []string

	if stats.ExpiringSoon > 0 {
		insights = append(insights, fmt.Sprintf(
			"You have %d item%s expiring within 7 days.",
			stats.ExpiringSoon, plural(stats.ExpiringSoon)))
	}
	if stats.ExpiredItems > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d item%s expired. Consider removing them from your list.",
			stats.ExpiredItems, plural(stats.ExpiredItems)))
	}

	switch {
	case stats.TotalScans == 0:
		insights = append(insights, "Start scanning items to track your inventory.")
	case stats.TotalScans < 5:
		insights = append(insights, fmt.Sprintf(
			"You've scanned %d item%s. Keep going!",
			stats.TotalScans, plural(stats.TotalScans)))
	default:
		insights = append(insights, fmt.Sprintf(
			"You're tracking %d items. Keep managing your inventory!", stats.TotalScans))
	}

	if stats.NoExpiry > 0 && stats.TotalScans > 0 {
		insights = append(insights, fmt.Sprintf(
			"Tip: set expiration dates for %d item%s to get better tracking.",
			stats.NoExpiry, plural(stats.NoExpiry)))
	}

	return insights
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func failed(err error) domain.SaveResult {
	return domain.SaveResult{Error: err, ErrorMessage: err.Error()}
}

func recordToEntity(rec localstore.Record, userID uuid.UUID) *entities.ScanRecord {
	return &entities.ScanRecord{
		ID:             uuid.New(),
		UserID:         userID,
		Value:          rec.Value,
		Format:         rec.Format,
		Title:          rec.Title,
		Brand:          rec.Brand,
		Description:    rec.Description,
		ImageURL:       rec.ImageURL,
		ScannedAt:      rec.ScannedAt,
		ExpiresAt:      rec.ExpiresAt,
		Notes:          rec.Notes,
		Source:         rec.Source,
		HasProductInfo: rec.HasProductInfo,
	}
}

func entityToItem(rec *entities.ScanRecord, now int64) domain.InventoryItem {
	item := domain.InventoryItem{
		ID:             rec.ID.String(),
		Value:          rec.Value,
		Format:         rec.Format,
		Title:          rec.Title,
		Brand:          rec.Brand,
		Description:    rec.Description,
		ImageURL:       rec.ImageURL,
		ScannedAt:      rec.ScannedAt,
		ExpiresAt:      rec.ExpiresAt,
		Notes:          rec.Notes,
		Source:         rec.Source,
		HasProductInfo: rec.HasProductInfo,
		Remote:         true,
	}
	classify(&item, now)
	return item
}

func localToItem(rec localstore.Record, now int64) domain.InventoryItem {
	item := domain.InventoryItem{
		Value:          rec.Value,
		Format:         rec.Format,
		Title:          rec.Title,
		Brand:          rec.Brand,
		Description:    rec.Description,
		ImageURL:       rec.ImageURL,
		ScannedAt:      rec.ScannedAt,
		ExpiresAt:      rec.ExpiresAt,
		Notes:          rec.Notes,
		Source:         rec.Source,
		HasProductInfo: rec.HasProductInfo,
	}
	classify(&item, now)
	return item
}

func classify(item *domain.InventoryItem, now int64) {
	result := expiration.Classify(item.ExpiresAt, now)
	item.Status = result.Status
	item.DaysLeft = result.DaysLeft
	item.CountdownText = expiration.CountdownText(result)
}
