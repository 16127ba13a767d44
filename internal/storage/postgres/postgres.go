package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"ticketGate/internal/config"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return s, nil
}

func (s *Storage) bootstrap() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			username      TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS logins (
			user_id    BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			email      TEXT NOT NULL,
			token      TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS events (
			id          BIGSERIAL PRIMARY KEY,
			owner_id    BIGINT NOT NULL REFERENCES users(id),
			title       TEXT NOT NULL,
			webhook_url TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS tickets (
			id             BIGSERIAL PRIMARY KEY,
			event_id       BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			owner_id       BIGINT REFERENCES users(id),
			name           TEXT NOT NULL DEFAULT '',
			scan_code      TEXT NOT NULL UNIQUE,
			display_fields JSONB NOT NULL DEFAULT '{}',
			scanned        BOOLEAN NOT NULL DEFAULT FALSE,
			qr_data_uri    TEXT NOT NULL DEFAULT '',
			qr_image_url   TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS scan_records (
			id            BIGSERIAL PRIMARY KEY,
			ticket_id     BIGINT NOT NULL UNIQUE REFERENCES tickets(id) ON DELETE CASCADE,
			user_id       BIGINT REFERENCES users(id),
			check_in_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`

	_, err := s.DB.Exec(schema)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (s *Storage) CreateUser(email, username, passwordHash string) (int64, error) {
	query := `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, email, username, passwordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrEmailTaken
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// SaveLoginToken rotates the stored token for the user: one row per
// user, replaced on every login.
func (s *Storage) SaveLoginToken(userID int64, email, token string) error {
	query := `
		INSERT INTO logins (user_id, email, token)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET token = EXCLUDED.token, email = EXCLUDED.email, updated_at = NOW()`

	_, err := s.DB.Exec(query, userID, email, token)
	if err != nil {
		return fmt.Errorf("failed to save login token: %w", err)
	}

	return nil
}

func (s *Storage) CreateEvent(ownerID int64, title, webhookURL string) (*models.Event, error) {
	query := `
		INSERT INTO events (owner_id, title, webhook_url)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, title, webhook_url, created_at`

	var event models.Event
	err := s.DB.QueryRow(query, ownerID, title, webhookURL).Scan(
		&event.ID,
		&event.OwnerID,
		&event.Title,
		&event.WebhookURL,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetEvent(id int64) (*models.Event, error) {
	query := `
		SELECT id, owner_id, title, webhook_url, created_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.OwnerID,
		&event.Title,
		&event.WebhookURL,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// UpdateEvent patches title and/or webhook URL. Ownership is immutable
// and not part of the update surface.
func (s *Storage) UpdateEvent(id int64, title, webhookURL *string) (*models.Event, error) {
	query := `
		UPDATE events
		SET title = COALESCE($2, title),
		    webhook_url = COALESCE($3, webhook_url)
		WHERE id = $1
		RETURNING id, owner_id, title, webhook_url, created_at`

	var event models.Event
	err := s.DB.QueryRow(query, id, title, webhookURL).Scan(
		&event.ID,
		&event.OwnerID,
		&event.Title,
		&event.WebhookURL,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(id int64) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) ListEvents(ownerID int64, page, limit int) ([]models.Event, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM events WHERE owner_id = $1`, ownerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := `
		SELECT id, owner_id, title, webhook_url, created_at
		FROM events
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.DB.Query(query, ownerID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.OwnerID,
			&event.Title,
			&event.WebhookURL,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating events: %w", err)
	}

	return events, total, nil
}

const ticketColumns = `id, event_id, COALESCE(owner_id, 0), name, scan_code, display_fields, scanned, qr_data_uri, qr_image_url, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicketRow(row rowScanner) (*models.Ticket, error) {
	var ticket models.Ticket
	var fieldsRaw []byte

	err := row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.OwnerID,
		&ticket.Name,
		&ticket.ScanCode,
		&fieldsRaw,
		&ticket.Scanned,
		&ticket.QRDataURI,
		&ticket.QRImageURL,
		&ticket.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(fieldsRaw) > 0 {
		if err = json.Unmarshal(fieldsRaw, &ticket.DisplayFields); err != nil {
			return nil, fmt.Errorf("failed to decode display fields: %w", err)
		}
	}

	return &ticket, nil
}

func (s *Storage) CreateTicket(t models.Ticket) (*models.Ticket, error) {
	fieldsRaw, err := json.Marshal(t.DisplayFields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode display fields: %w", err)
	}
	if t.DisplayFields == nil {
		fieldsRaw = []byte(`{}`)
	}

	query := `
		INSERT INTO tickets (event_id, owner_id, name, scan_code, display_fields, qr_data_uri, qr_image_url)
		VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7)
		RETURNING ` + ticketColumns

	ticket, err := scanTicketRow(s.DB.QueryRow(query,
		t.EventID,
		t.OwnerID,
		t.Name,
		t.ScanCode,
		fieldsRaw,
		t.QRDataURI,
		t.QRImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return ticket, nil
}

func (s *Storage) GetTicket(id int64) (*models.Ticket, error) {
	ticket, err := scanTicketRow(s.DB.QueryRow(
		`SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

// UpdateTicket patches the ticket name and merges display fields.
// Scan code, scanned flag, event and ownership are not updatable.
func (s *Storage) UpdateTicket(id int64, name *string, fields map[string]string) (*models.Ticket, error) {
	fieldsRaw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode display fields: %w", err)
	}
	if fields == nil {
		fieldsRaw = []byte(`{}`)
	}

	query := `
		UPDATE tickets
		SET name = COALESCE($2, name),
		    display_fields = display_fields || $3::jsonb
		WHERE id = $1
		RETURNING ` + ticketColumns

	ticket, err := scanTicketRow(s.DB.QueryRow(query, id, name, fieldsRaw))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return ticket, nil
}

func (s *Storage) DeleteTicket(id int64) error {
	result, err := s.DB.Exec(`DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	if affected == 0 {
		return storage.ErrTicketNotFound
	}

	return nil
}

func (s *Storage) ListEventTickets(eventID int64) ([]models.Ticket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE event_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		ticket, err := scanTicketRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, *ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

// ListTickets pages over the caller's tickets, optionally filtered to
// one event. eventID 0 means no filter.
func (s *Storage) ListTickets(ownerID, eventID int64, page, limit int) ([]models.Ticket, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM tickets
		WHERE owner_id = $1 AND ($2 = 0 OR event_id = $2)`

	err := s.DB.QueryRow(countQuery, ownerID, eventID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query := `
		SELECT ` + ticketColumns + `
		FROM tickets
		WHERE owner_id = $1 AND ($2 = 0 OR event_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.DB.Query(query, ownerID, eventID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		ticket, err := scanTicketRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, *ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, total, nil
}

// ScanTicket performs the check-in state transition. The serialization
// point is the conditional update on the scanned flag: of any number of
// concurrent scans of one code, exactly one wins the update and creates
// the single scan record; the rest observe the existing record. The
// UNIQUE constraint on scan_records.ticket_id backstops the invariant.
func (s *Storage) ScanTicket(code string, userID *int64) (*storage.ScanResult, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	casQuery := `
		UPDATE tickets
		SET scanned = true
		WHERE scan_code = $1 AND scanned = false
		RETURNING ` + ticketColumns

	ticket, err := scanTicketRow(tx.QueryRow(casQuery, code))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to mark ticket scanned: %w", err)
	}

	won := err == nil

	if !won {
		// Lost the transition: either the code is unknown or the
		// ticket was checked in earlier.
		ticket, err = scanTicketRow(tx.QueryRow(
			`SELECT `+ticketColumns+` FROM tickets WHERE scan_code = $1`, code))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, storage.ErrTicketNotFound
			}
			return nil, fmt.Errorf("failed to get ticket: %w", err)
		}
	}

	var event models.Event
	err = tx.QueryRow(
		`SELECT id, owner_id, title, webhook_url, created_at FROM events WHERE id = $1`,
		ticket.EventID,
	).Scan(&event.ID, &event.OwnerID, &event.Title, &event.WebhookURL, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get owning event: %w", err)
	}

	record := models.ScanRecord{TicketID: ticket.ID, UserID: userID}
	already := false

	if won {
		insertQuery := `
			INSERT INTO scan_records (ticket_id, user_id)
			VALUES ($1, $2)
			RETURNING id, check_in_time`

		var uid sql.NullInt64
		if userID != nil {
			uid = sql.NullInt64{Int64: *userID, Valid: true}
		}

		err = tx.QueryRow(insertQuery, ticket.ID, uid).Scan(&record.ID, &record.CheckInTime)
		if err != nil {
			return nil, fmt.Errorf("failed to create scan record: %w", err)
		}
	} else {
		err = s.loadScanRecord(tx, ticket.ID, &record)
		if errors.Is(err, sql.ErrNoRows) {
			// Flag set but no record: reconcile by creating the
			// missing record so the record stays the source of
			// truth for "checked in".
			err = tx.QueryRow(
				`INSERT INTO scan_records (ticket_id, user_id) VALUES ($1, $2) RETURNING id, check_in_time`,
				ticket.ID, userID,
			).Scan(&record.ID, &record.CheckInTime)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile scan record: %w", err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("failed to get scan record: %w", err)
		} else {
			already = true
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit scan: %w", err)
	}

	return &storage.ScanResult{
		Ticket:         *ticket,
		Record:         record,
		Event:          event,
		AlreadyScanned: already,
	}, nil
}

func (s *Storage) loadScanRecord(tx *sql.Tx, ticketID int64, record *models.ScanRecord) error {
	var uid sql.NullInt64

	err := tx.QueryRow(
		`SELECT id, ticket_id, user_id, check_in_time FROM scan_records WHERE ticket_id = $1`,
		ticketID,
	).Scan(&record.ID, &record.TicketID, &uid, &record.CheckInTime)
	if err != nil {
		return err
	}

	if uid.Valid {
		record.UserID = &uid.Int64
	} else {
		record.UserID = nil
	}

	return nil
}
