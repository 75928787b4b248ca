package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Candidate is one screened resume stored under its anonymous resume code.
// The phone reference never appears in report output; it exists only for
// duplicate detection and confidential lookup.
type Candidate struct {
	ID             int             `json:"id"`
	JobID          int             `json:"job_id"`
	ResumeCode     string          `json:"resume_code"`
	PhoneReference string          `json:"-"`
	Profile        json.RawMessage `json:"profile"`
	FileKey        string          `json:"file_key,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type CandidateModel struct {
	DB *sql.DB
}

func NewCandidateModel(db *sql.DB) *CandidateModel {
	return &CandidateModel{DB: db}
}

func (m *CandidateModel) Create(jobID int, resumeCode, phoneReference string, profile json.RawMessage, fileKey string) (*Candidate, error) {
	candidate := &Candidate{}
	query := `
		INSERT INTO candidates (job_id, resume_code, phone_reference, profile, file_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, job_id, resume_code, phone_reference, profile, file_key, created_at
	`
	err := m.DB.QueryRow(query, jobID, resumeCode, phoneReference, profile, fileKey, time.Now()).Scan(
		&candidate.ID, &candidate.JobID, &candidate.ResumeCode, &candidate.PhoneReference,
		&candidate.Profile, &candidate.FileKey, &candidate.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

func (m *CandidateModel) GetByCode(jobID int, resumeCode string) (*Candidate, error) {
	candidate := &Candidate{}
	query := `
		SELECT id, job_id, resume_code, phone_reference, profile, file_key, created_at
		FROM candidates WHERE job_id = $1 AND resume_code = $2
	`
	err := m.DB.QueryRow(query, jobID, resumeCode).Scan(
		&candidate.ID, &candidate.JobID, &candidate.ResumeCode, &candidate.PhoneReference,
		&candidate.Profile, &candidate.FileKey, &candidate.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// FindByPhone supports the confidential lookup flow: a candidate proves
// ownership with the phone number used on the resume.
func (m *CandidateModel) FindByPhone(phoneReference string) ([]Candidate, error) {
	query := `
		SELECT id, job_id, resume_code, phone_reference, profile, file_key, created_at
		FROM candidates WHERE phone_reference = $1 ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, phoneReference)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.JobID, &c.ResumeCode, &c.PhoneReference, &c.Profile, &c.FileKey, &c.CreatedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// ExistsForJob reports whether the same person was already screened for this
// job, matching on phone reference first and resume code as fallback.
func (m *CandidateModel) ExistsForJob(jobID int, phoneReference, resumeCode string) (bool, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM candidates
		WHERE job_id = $1 AND (
			(phone_reference <> '' AND phone_reference = $2) OR resume_code = $3
		)
	`
	err := m.DB.QueryRow(query, jobID, phoneReference, resumeCode).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *CandidateModel) ListByJob(jobID int) ([]Candidate, error) {
	query := `
		SELECT id, job_id, resume_code, phone_reference, profile, file_key, created_at
		FROM candidates WHERE job_id = $1 ORDER BY created_at
	`
	rows, err := m.DB.Query(query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.JobID, &c.ResumeCode, &c.PhoneReference, &c.Profile, &c.FileKey, &c.CreatedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (m *CandidateModel) DeleteByCode(jobID int, resumeCode string) error {
	_, err := m.DB.Exec(`DELETE FROM candidates WHERE job_id = $1 AND resume_code = $2`, jobID, resumeCode)
	return err
}
