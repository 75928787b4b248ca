package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Report struct {
	ID           int             `json:"id"`
	JobID        int             `json:"job_id"`
	CandidateID  int             `json:"candidate_id"`
	ResumeCode   string          `json:"resume_code"`
	OverallScore float64         `json:"overall_score"`
	Report       json.RawMessage `json:"report"`
	CreatedAt    time.Time       `json:"created_at"`
}

// JobStats summarizes screening results for one job posting.
type JobStats struct {
	JobID        int     `json:"job_id"`
	Screened     int     `json:"screened"`
	AverageScore float64 `json:"average_score"`
	Recommended  int     `json:"recommended"`  // overall >= 70
	Borderline   int     `json:"borderline"`   // 50 <= overall < 70
	NotSuitable  int     `json:"not_suitable"` // overall < 50
}

type ReportModel struct {
	DB *sql.DB
}

func NewReportModel(db *sql.DB) *ReportModel {
	return &ReportModel{DB: db}
}

func (m *ReportModel) Create(jobID, candidateID int, resumeCode string, overallScore float64, report json.RawMessage) (*Report, error) {
	stored := &Report{}
	query := `
		INSERT INTO reports (job_id, candidate_id, resume_code, overall_score, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (job_id, candidate_id)
		DO UPDATE SET resume_code = $3, overall_score = $4, report = $5, created_at = $6
		RETURNING id, job_id, candidate_id, resume_code, overall_score, report, created_at
	`
	err := m.DB.QueryRow(query, jobID, candidateID, resumeCode, overallScore, report, time.Now()).Scan(
		&stored.ID, &stored.JobID, &stored.CandidateID, &stored.ResumeCode,
		&stored.OverallScore, &stored.Report, &stored.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ListByJobRanked returns a job's reports ordered best first. Ties keep the
// earlier screening first so rankings never reshuffle between reads.
func (m *ReportModel) ListByJobRanked(jobID int) ([]Report, error) {
	query := `
		SELECT id, job_id, candidate_id, resume_code, overall_score, report, created_at
		FROM reports WHERE job_id = $1 ORDER BY overall_score DESC, created_at ASC
	`
	rows, err := m.DB.Query(query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.JobID, &r.CandidateID, &r.ResumeCode, &r.OverallScore, &r.Report, &r.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func (m *ReportModel) GetByCode(jobID int, resumeCode string) (*Report, error) {
	report := &Report{}
	query := `
		SELECT id, job_id, candidate_id, resume_code, overall_score, report, created_at
		FROM reports WHERE job_id = $1 AND resume_code = $2
	`
	err := m.DB.QueryRow(query, jobID, resumeCode).Scan(
		&report.ID, &report.JobID, &report.CandidateID, &report.ResumeCode,
		&report.OverallScore, &report.Report, &report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (m *ReportModel) StatsByJob(jobID int) (*JobStats, error) {
	stats := &JobStats{JobID: jobID}
	query := `
		SELECT COUNT(*),
			COALESCE(AVG(overall_score), 0),
			COUNT(*) FILTER (WHERE overall_score >= 70),
			COUNT(*) FILTER (WHERE overall_score >= 50 AND overall_score < 70),
			COUNT(*) FILTER (WHERE overall_score < 50)
		FROM reports WHERE job_id = $1
	`
	err := m.DB.QueryRow(query, jobID).Scan(
		&stats.Screened, &stats.AverageScore, &stats.Recommended, &stats.Borderline, &stats.NotSuitable,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
