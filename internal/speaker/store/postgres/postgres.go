package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"speakerreg/internal/speaker/models"
	"speakerreg/internal/speaker/store/postgres/migrations"
	id "speakerreg/pkg/domain"
	"speakerreg/pkg/platform/sentinel"
	txcontext "speakerreg/pkg/platform/tx"
)

// PostgresStore persists speaker registrations in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed speaker store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema applies the embedded migrations in file name order. Every
// statement is idempotent, so running it at each start is safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		body, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// SaveSpeaker inserts the speaker row and its sessions in one transaction.
// An outer transaction carried in ctx is joined instead.
func (s *PostgresStore) SaveSpeaker(ctx context.Context, reg *models.SpeakerRegistration) (id.SpeakerID, error) {
	if reg == nil {
		return id.SpeakerID{}, fmt.Errorf("speaker registration is required")
	}
	speakerID := id.NewSpeakerID()

	var browserName sql.NullString
	var browserVersion sql.NullInt32
	if reg.Browser != nil {
		browserName = sql.NullString{String: string(reg.Browser.Name), Valid: true}
		browserVersion = sql.NullInt32{Int32: int32(reg.Browser.MajorVersion), Valid: true}
	}
	certifications := reg.Certifications
	if certifications == nil {
		certifications = []string{}
	}

	err := txcontext.Run(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO speakers (
				id, first_name, last_name, email, years_experience, has_blog, blog_url,
				browser_name, browser_major_version, certifications, employer,
				registration_fee, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			uuid.UUID(speakerID), reg.FirstName, reg.LastName, reg.Email, reg.YearsExperience,
			reg.HasBlog, reg.BlogURL, browserName, browserVersion, pq.Array(certifications),
			reg.Employer, reg.RegistrationFee, reg.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert speaker: %w", err)
		}

		for position, session := range reg.Sessions {
			if session == nil {
				continue
			}
			talkID := session.ID
			if talkID.IsNil() {
				talkID = id.NewTalkID()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO speaker_sessions (id, speaker_id, position, title, description, approved)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, uuid.UUID(talkID), uuid.UUID(speakerID), position, session.Title, session.Description, session.Approved)
			if err != nil {
				return fmt.Errorf("insert session %d: %w", position, err)
			}
		}
		return nil
	})
	if err != nil {
		return id.SpeakerID{}, fmt.Errorf("save speaker: %w", err)
	}
	return speakerID, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) queryer(ctx context.Context) queryer {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) FindByID(ctx context.Context, speakerID id.SpeakerID) (*models.SpeakerRegistration, error) {
	q := s.queryer(ctx)

	var (
		reg            models.SpeakerRegistration
		rawID          uuid.UUID
		browserName    sql.NullString
		browserVersion sql.NullInt32
		certifications []string
	)
	err := q.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, years_experience, has_blog, blog_url,
			browser_name, browser_major_version, certifications, employer,
			registration_fee, created_at
		FROM speakers
		WHERE id = $1
	`, uuid.UUID(speakerID)).Scan(
		&rawID, &reg.FirstName, &reg.LastName, &reg.Email, &reg.YearsExperience,
		&reg.HasBlog, &reg.BlogURL, &browserName, &browserVersion,
		pq.Array(&certifications), &reg.Employer, &reg.RegistrationFee, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("speaker %s: %w", speakerID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find speaker: %w", err)
	}
	reg.ID = id.SpeakerID(rawID)
	reg.Certifications = certifications
	if browserName.Valid {
		reg.Browser = &models.BrowserInfo{
			Name:         models.ParseBrowserName(browserName.String),
			MajorVersion: int(browserVersion.Int32),
		}
	}

	sessions, err := s.findSessions(ctx, q, speakerID)
	if err != nil {
		return nil, err
	}
	reg.Sessions = sessions
	return &reg, nil
}

func (s *PostgresStore) findSessions(ctx context.Context, q queryer, speakerID id.SpeakerID) ([]*models.Session, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, title, description, approved
		FROM speaker_sessions
		WHERE speaker_id = $1
		ORDER BY position
	`, uuid.UUID(speakerID))
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var (
			session models.Session
			rawID   uuid.UUID
		)
		if err := rows.Scan(&rawID, &session.Title, &session.Description, &session.Approved); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.ID = id.TalkID(rawID)
		sessions = append(sessions, &session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// Count returns the number of stored registrations.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.queryer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM speakers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count speakers: %w", err)
	}
	return n, nil
}
