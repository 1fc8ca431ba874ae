package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Scenario is a saved set of model input parameters. Only inputs are
// stored; results are always recomputed from them.
type Scenario struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Params    json.RawMessage `json:"params"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveScenario(ctx context.Context, userID int, name string, params json.RawMessage) (int, error)
	ListScenarios(ctx context.Context, userID int) ([]Scenario, error)
	GetScenario(ctx context.Context, userID, id int) (Scenario, error)
	DeleteScenario(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveScenario(ctx context.Context, userID int, name string, params json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO scenarios (user_id, name, params, created_at) VALUES ($1, $2, $3, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, params).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListScenarios(ctx context.Context, userID int) ([]Scenario, error) {
	query := "SELECT id, name, params, created_at FROM scenarios WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scenarios []Scenario
	for rows.Next() {
		var s Scenario
		if err := rows.Scan(&s.ID, &s.Name, &s.Params, &s.CreatedAt); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, rows.Err()
}

func (r *PostgresRepository) GetScenario(ctx context.Context, userID, id int) (Scenario, error) {
	var s Scenario
	query := "SELECT id, name, params, created_at FROM scenarios WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&s.ID, &s.Name, &s.Params, &s.CreatedAt)
	return s, err
}

func (r *PostgresRepository) DeleteScenario(ctx context.Context, userID, id int) error {
	query := "DELETE FROM scenarios WHERE user_id=$1 AND id=$2"
	_, err := r.db.ExecContext(ctx, query, userID, id)
	return err
}
