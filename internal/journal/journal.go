// Package journal persists evolution cycles to SQLite so sessions can be
// inspected and re-exported after the process ends. The core itself never
// touches it; the surrounding system records each cycle after Evolve
// returns.
package journal

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kurohane/phenomenal-oracle/internal/nodestate"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id   TEXT PRIMARY KEY,
	description  TEXT,
	started_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cycles (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	generation    INTEGER NOT NULL,
	phi           REAL NOT NULL,
	level         TEXT NOT NULL,
	axes_json     TEXT,
	node_values   BLOB NOT NULL,
	active_flags  BLOB NOT NULL,
	stimulus_json TEXT,
	description   TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region journal-struct

// Journal manages cycle history in SQLite.
type Journal struct {
	db *sql.DB
}

// Open opens a SQLite database and runs migrations.
func Open(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// DB returns the underlying *sql.DB for read-only reporting tools.
func (j *Journal) DB() *sql.DB {
	return j.db
}

// #endregion journal-struct

// #region sessions

// BeginSession creates a new session row and returns its id.
func (j *Journal) BeginSession(description string) (string, error) {
	id := uuid.New().String()
	_, err := j.db.Exec(
		`INSERT INTO sessions (session_id, description, started_at) VALUES (?, ?, ?)`,
		id, nullIfEmpty(description), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	return id, nil
}

// Sessions returns the most recent sessions.
func (j *Journal) Sessions(limit int) ([]Session, error) {
	rows, err := j.db.Query(
		`SELECT session_id, description, started_at FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var desc sql.NullString
		var started string
		if err := rows.Scan(&s.ID, &desc, &started); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if desc.Valid {
			s.Description = desc.String
		}
		s.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// #endregion sessions

// #region record

// Record appends one completed cycle to the journal.
func (j *Journal) Record(rec CycleRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	axesJSON, err := json.Marshal(rec.Axes)
	if err != nil {
		return fmt.Errorf("marshal axes: %w", err)
	}

	_, err = j.db.Exec(
		`INSERT INTO cycles (session_id, generation, phi, level, axes_json, node_values, active_flags, stimulus_json, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Generation, rec.Phi, rec.Level, string(axesJSON),
		encodeValues(rec.Values), encodeFlags(rec.Active),
		nullIfEmpty(rec.StimulusJSON), nullIfEmpty(rec.Description),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record cycle: %w", err)
	}
	return nil
}

// #endregion record

// #region queries

// Cycles returns a session's cycles in generation order.
func (j *Journal) Cycles(sessionID string, limit int) ([]CycleRecord, error) {
	rows, err := j.db.Query(
		`SELECT session_id, generation, phi, level, axes_json, node_values, active_flags, stimulus_json, description, created_at
		 FROM cycles WHERE session_id = ? ORDER BY generation ASC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	defer rows.Close()

	var records []CycleRecord
	for rows.Next() {
		var rec CycleRecord
		var axesJSON, stimJSON, desc sql.NullString
		var valuesBlob, flagsBlob []byte
		var created string

		if err := rows.Scan(&rec.SessionID, &rec.Generation, &rec.Phi, &rec.Level,
			&axesJSON, &valuesBlob, &flagsBlob, &stimJSON, &desc, &created); err != nil {
			return nil, fmt.Errorf("scan cycle: %w", err)
		}
		if axesJSON.Valid {
			if err := json.Unmarshal([]byte(axesJSON.String), &rec.Axes); err != nil {
				return nil, fmt.Errorf("unmarshal axes: %w", err)
			}
		}
		rec.Values = decodeValues(valuesBlob)
		rec.Active = decodeFlags(flagsBlob)
		if stimJSON.Valid {
			rec.StimulusJSON = stimJSON.String
		}
		if desc.Valid {
			rec.Description = desc.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Trajectory returns a session's Φ values in generation order.
func (j *Journal) Trajectory(sessionID string) ([]float64, error) {
	rows, err := j.db.Query(
		`SELECT phi FROM cycles WHERE session_id = ? ORDER BY generation ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("trajectory: %w", err)
	}
	defer rows.Close()

	var trajectory []float64
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan phi: %w", err)
		}
		trajectory = append(trajectory, p)
	}
	return trajectory, rows.Err()
}

// #endregion queries

// #region encoding

func encodeValues(v [nodestate.NodeCount]float64) []byte {
	buf := make([]byte, nodestate.NodeCount*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeValues(b []byte) [nodestate.NodeCount]float64 {
	var v [nodestate.NodeCount]float64
	for i := range v {
		if i*8+8 <= len(b) {
			v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
		}
	}
	return v
}

func encodeFlags(flags [nodestate.NodeCount]bool) []byte {
	buf := make([]byte, nodestate.NodeCount)
	for i, on := range flags {
		if on {
			buf[i] = 1
		}
	}
	return buf
}

func decodeFlags(b []byte) [nodestate.NodeCount]bool {
	var flags [nodestate.NodeCount]bool
	for i := range flags {
		if i < len(b) && b[i] == 1 {
			flags[i] = true
		}
	}
	return flags
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion encoding
