package store

import (
	"database/sql"
	"encoding/json"

	_ "github.com/glebarez/go-sqlite"
)

// PlanRecord is one persisted pipeline run.
type PlanRecord struct {
	ID        int            `json:"id"`
	Request   string         `json:"request"`
	Injury    string         `json:"injury"`
	Goals     []string       `json:"goals"`
	Plan      map[string]any `json:"plan"`
	CreatedAt string         `json:"created_at"`
}

// PlanStore persists completed plans so past sessions can be reviewed.
type PlanStore struct {
	DB *sql.DB
}

func NewPlanStore(dbPath string) (*PlanStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if not exist
	query := `CREATE TABLE IF NOT EXISTS plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request TEXT,
		injury TEXT,
		goals TEXT,
		plan TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(query); err != nil {
		return nil, err
	}

	return &PlanStore{DB: db}, nil
}

func (s *PlanStore) SavePlan(request, injury string, goals []string, plan map[string]any) error {
	if goals == nil {
		goals = []string{}
	}
	goalsJSON, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	query := `INSERT INTO plans (request, injury, goals, plan) VALUES (?, ?, ?, ?)`
	_, err = s.DB.Exec(query, request, injury, string(goalsJSON), string(planJSON))
	return err
}

// ListRecent returns the newest plans first.
func (s *PlanStore) ListRecent(limit int) ([]PlanRecord, error) {
	query := `SELECT id, request, injury, goals, plan, created_at FROM plans ORDER BY id DESC LIMIT ?`
	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		var goalsJSON, planJSON string
		if err := rows.Scan(&rec.ID, &rec.Request, &rec.Injury, &goalsJSON, &planJSON, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(goalsJSON), &rec.Goals); err != nil {
			rec.Goals = nil
		}
		if err := json.Unmarshal([]byte(planJSON), &rec.Plan); err != nil {
			rec.Plan = nil
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *PlanStore) Close() error {
	return s.DB.Close()
}
