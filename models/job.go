package models

import (
	"database/sql"
	"time"
)

type Job struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Requirements string    `json:"requirements"`
	CreatedBy    int       `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type JobModel struct {
	DB *sql.DB
}

func NewJobModel(db *sql.DB) *JobModel {
	return &JobModel{DB: db}
}

func (m *JobModel) Create(title, requirements string, createdBy int) (*Job, error) {
	job := &Job{}
	query := `
		INSERT INTO jobs (title, requirements, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, requirements, created_by, created_at
	`
	err := m.DB.QueryRow(query, title, requirements, createdBy, time.Now()).Scan(
		&job.ID, &job.Title, &job.Requirements, &job.CreatedBy, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (m *JobModel) GetByID(id int) (*Job, error) {
	job := &Job{}
	query := `
		SELECT id, title, requirements, created_by, created_at
		FROM jobs WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(
		&job.ID, &job.Title, &job.Requirements, &job.CreatedBy, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (m *JobModel) List() ([]Job, error) {
	query := `
		SELECT id, title, requirements, created_by, created_at
		FROM jobs ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.Title, &job.Requirements, &job.CreatedBy, &job.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Delete removes a job; candidates and reports cascade at the database level.
func (m *JobModel) Delete(id int) error {
	_, err := m.DB.Exec(`DELETE FROM jobs WHERE id = $1`, id)
	return err
}
