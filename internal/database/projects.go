package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kreator-projektow/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateProjectName = errors.New("a project with the same name already exists")

type CreateProjectParams struct {
	ID      string
	OwnerID int64
	Name    string
	Tree    json.RawMessage
}

func (s *PostgresStore) CreateProject(ctx context.Context, arg CreateProjectParams) (*models.Project, error) {
	query := `
		INSERT INTO projects (id, owner_id, name, tree, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, name, tree, selected_node_id, created_at, modified_at
	`
	now := time.Now()

	tree := arg.Tree
	if len(tree) == 0 {
		tree = json.RawMessage("[]")
	}

	row := s.pool.QueryRow(ctx, query, arg.ID, arg.OwnerID, arg.Name, tree, now, now)

	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.OwnerID,
		&project.Name,
		&project.Tree,
		&project.SelectedNodeID,
		&project.CreatedAt,
		&project.ModifiedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateProjectName
		}
		return nil, err
	}

	return &project, nil
}

func (s *PostgresStore) GetProjectByID(ctx context.Context, id string, ownerID int64) (*models.Project, error) {
	query := `
		SELECT id, owner_id, name, tree, selected_node_id, created_at, modified_at
		FROM projects
		WHERE id = $1 AND owner_id = $2
	`
	var project models.Project

	err := s.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&project.ID,
		&project.OwnerID,
		&project.Name,
		&project.Tree,
		&project.SelectedNodeID,
		&project.CreatedAt,
		&project.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (s *PostgresStore) ListProjects(ctx context.Context, ownerID int64) ([]models.Project, error) {
	query := `
		SELECT id, owner_id, name, tree, selected_node_id, created_at, modified_at
		FROM projects
		WHERE owner_id = $1
		ORDER BY modified_at DESC
	`
	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.OwnerID,
			&project.Name,
			&project.Tree,
			&project.SelectedNodeID,
			&project.CreatedAt,
			&project.ModifiedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if projects == nil {
		return []models.Project{}, nil
	}

	return projects, nil
}

// UpdateProjectTree replaces the stored forest document and the selection
// in one statement. Pass selected as nil to clear the selection.
func (s *PostgresStore) UpdateProjectTree(ctx context.Context, id string, ownerID int64, tree json.RawMessage, selected *string) (bool, error) {
	query := `
		UPDATE projects
		SET tree = $1, selected_node_id = $2, modified_at = $3
		WHERE id = $4 AND owner_id = $5
	`
	res, err := s.pool.Exec(ctx, query, tree, selected, time.Now(), id, ownerID)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}

func (s *PostgresStore) RenameProject(ctx context.Context, id string, ownerID int64, newName string) (bool, error) {
	query := `
		UPDATE projects
		SET name = $1, modified_at = $2
		WHERE id = $3 AND owner_id = $4
	`
	res, err := s.pool.Exec(ctx, query, newName, time.Now(), id, ownerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, ErrDuplicateProjectName
		}
		return false, err
	}

	return res.RowsAffected() > 0, nil
}

func (s *PostgresStore) UpdateSelectedNode(ctx context.Context, id string, ownerID int64, selected *string) (bool, error) {
	query := `
		UPDATE projects
		SET selected_node_id = $1, modified_at = $2
		WHERE id = $3 AND owner_id = $4
	`
	res, err := s.pool.Exec(ctx, query, selected, time.Now(), id, ownerID)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}

func (s *PostgresStore) DeleteProject(ctx context.Context, id string, ownerID int64) (bool, error) {
	query := `DELETE FROM projects WHERE id = $1 AND owner_id = $2`
	res, err := s.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}

func (s *PostgresStore) ProjectExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)"
	err := s.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
