// Package bolt is the optional persistence mirror, playing the role the
// browser's local storage played in the original: it keeps settings, a
// capped copy of the audit trail, and scheduled report configurations
// across restarts. The in-memory store remains the source of truth; the
// mirror is written best effort and never gates a mutation.
package bolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// Bucket names.
const (
	bucketSettings         = "settings"
	bucketAudit            = "audit_log"
	bucketScheduledReports = "scheduled_reports"
)

const settingsKey = "current"

// AuditCap bounds the mirrored audit trail; the canonical in-store trail is
// unbounded.
const AuditCap = 500

// Mirror wraps the bbolt database.
type Mirror struct {
	db *bolt.DB
}

// Open opens (or creates) the mirror database and its buckets.
func Open(path string) (*Mirror, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open mirror database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{bucketSettings, bucketAudit, bucketScheduledReports} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Mirror{db: db}, nil
}

// Close closes the database.
func (m *Mirror) Close() error {
	return m.db.Close()
}

// SaveSettings persists the current preferences.
func (m *Mirror) SaveSettings(settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSettings)).Put([]byte(settingsKey), data)
	})
}

// LoadSettings returns the persisted preferences; ok is false when none
// have been saved yet.
func (m *Mirror) LoadSettings() (settings domain.Settings, ok bool, err error) {
	err = m.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketSettings)).Get([]byte(settingsKey))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &settings); err != nil {
			return err
		}
		ok = true
		return nil
	})
	return settings, ok, err
}

// AppendAudit stores an audit entry and prunes the oldest entries beyond
// AuditCap.
func (m *Mirror) AppendAudit(entry domain.AuditEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return m.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketAudit))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(seqKey(seq), data); err != nil {
			return err
		}

		excess := b.Stats().KeyN + 1 - AuditCap
		if excess <= 0 {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil && excess > 0; k, _ = c.Next() {
			if err := b.Delete(k); err != nil {
				return err
			}
			excess--
		}
		return nil
	})
}

// ListAudit returns mirrored audit entries newest first.
func (m *Mirror) ListAudit() ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry
	err := m.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketAudit)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var entry domain.AuditEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

// SaveScheduledReport stores a report delivery configuration, assigning an
// id when absent.
func (m *Mirror) SaveScheduledReport(report domain.ScheduledReport) (domain.ScheduledReport, error) {
	if report.ReportID == "" {
		report.ReportID = "SCH-" + uuid.NewString()
	}
	data, err := json.Marshal(report)
	if err != nil {
		return domain.ScheduledReport{}, err
	}
	err = m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketScheduledReports)).Put([]byte(report.ReportID), data)
	})
	if err != nil {
		return domain.ScheduledReport{}, err
	}
	return report, nil
}

// DeleteScheduledReport removes a configuration by id.
func (m *Mirror) DeleteScheduledReport(reportID string) error {
	return m.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketScheduledReports))
		if b.Get([]byte(reportID)) == nil {
			return fmt.Errorf("%w: scheduled report %s", apperrors.ErrNotFound, reportID)
		}
		return b.Delete([]byte(reportID))
	})
}

// ListScheduledReports returns every stored configuration.
func (m *Mirror) ListScheduledReports() ([]domain.ScheduledReport, error) {
	var reports []domain.ScheduledReport
	err := m.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketScheduledReports)).ForEach(func(_, v []byte) error {
			var report domain.ScheduledReport
			if err := json.Unmarshal(v, &report); err != nil {
				return err
			}
			reports = append(reports, report)
			return nil
		})
	})
	return reports, err
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
