package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
)

type snapshotService struct {
	BaseService
	snapshotRepo portsrepo.SnapshotRepository
}

// NewSnapshotService creates a new snapshot service.
func NewSnapshotService(snapshotRepo portsrepo.SnapshotRepository) portssvc.SnapshotSvc {
	return &snapshotService{snapshotRepo: snapshotRepo}
}

var _ portssvc.SnapshotSvc = (*snapshotService)(nil)

func (s *snapshotService) Export(ctx context.Context) (domain.Snapshot, error) {
	snapshot, err := s.snapshotRepo.ExportCollections(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to export snapshot")
		return domain.Snapshot{}, err
	}
	s.LogInfo(ctx, "Exported snapshot",
		slog.Int("transactions", len(snapshot.Transactions)),
		slog.Int("accounts", len(snapshot.ChartOfAccounts)),
		slog.Int("register_entries", len(snapshot.RegisterEntries)),
		slog.Int("templates", len(snapshot.Templates)))
	return snapshot, nil
}

func (s *snapshotService) ExportJSON(ctx context.Context, w io.Writer) error {
	snapshot, err := s.Export(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *snapshotService) Import(ctx context.Context, snapshot domain.Snapshot) error {
	if err := s.validateSnapshot(snapshot); err != nil {
		s.LogError(ctx, err, "Rejected snapshot import")
		return err
	}
	if err := s.snapshotRepo.ReplaceCollections(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "Failed to replace collections")
		return err
	}
	s.LogInfo(ctx, "Imported snapshot", slog.String("version", snapshot.Version))
	return nil
}

func (s *snapshotService) ImportJSON(ctx context.Context, r io.Reader) error {
	var snapshot domain.Snapshot
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&snapshot); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidSnapshot, err)
	}
	return s.Import(ctx, snapshot)
}

// validateSnapshot checks the backup before anything touches the store:
// version compatibility, structural validity of each record, and the
// balance rule on every transaction and posted register entry. Failing any
// check leaves the current data untouched.
func (s *snapshotService) validateSnapshot(snapshot domain.Snapshot) error {
	if snapshot.Version == "" {
		return fmt.Errorf("%w: missing version", apperrors.ErrInvalidSnapshot)
	}
	if majorVersion(snapshot.Version) != majorVersion(domain.SnapshotVersion) {
		return fmt.Errorf("%w: incompatible version %q", apperrors.ErrInvalidSnapshot, snapshot.Version)
	}
	if err := validate.Struct(snapshot); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidSnapshot, err)
	}
	for _, tx := range snapshot.Transactions {
		if err := domain.ValidatePostings(tx.Postings); err != nil {
			return fmt.Errorf("%w: transaction %s: %v", apperrors.ErrInvalidSnapshot, tx.TransactionID, err)
		}
	}
	for _, acc := range snapshot.ChartOfAccounts {
		if !acc.Type.Valid() {
			return fmt.Errorf("%w: account %s: unknown type %q", apperrors.ErrInvalidSnapshot, acc.AccountID, acc.Type)
		}
	}
	for _, entry := range snapshot.RegisterEntries {
		if entry.Status != domain.StatusPosted {
			continue
		}
		if err := domain.ValidatePostings(entry.Postings); err != nil {
			return fmt.Errorf("%w: register entry %s: %v", apperrors.ErrInvalidSnapshot, entry.EntryID, err)
		}
	}
	return nil
}

func majorVersion(version string) string {
	major, _, _ := strings.Cut(version, ".")
	return major
}
