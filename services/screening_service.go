package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"hirescreen/models"
	"hirescreen/parsers"
	"hirescreen/scoring"
	"hirescreen/utils"
)

// Duplicate handling policies for a screening batch.
const (
	DuplicateSkip    = "skip"
	DuplicateReplace = "replace"
)

// Document outcome statuses.
const (
	OutcomeScreened  = "screened"
	OutcomeDuplicate = "duplicate_skipped"
	OutcomeReplaced  = "replaced"
	OutcomeFailed    = "failed"
)

// Document is one uploaded CV in a screening batch.
type Document struct {
	FileName string
	Type     string
	Data     []byte
}

// DocumentOutcome reports what happened to one document. A failed document
// never carries identifying data, only the file name the recruiter uploaded.
type DocumentOutcome struct {
	FileName   string               `json:"file_name"`
	Status     string               `json:"status"`
	ResumeCode string               `json:"resume_code,omitempty"`
	Score      float64              `json:"score,omitempty"`
	Report     *scoring.ScoreReport `json:"report,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// Storage boundaries the pipeline writes through. models.CandidateModel,
// models.ReportModel and S3Service satisfy them in production.
type candidateStore interface {
	Create(jobID int, resumeCode, phoneReference string, profile json.RawMessage, fileKey string) (*models.Candidate, error)
	ExistsForJob(jobID int, phoneReference, resumeCode string) (bool, error)
	DeleteByCode(jobID int, resumeCode string) error
}

type reportStore interface {
	Create(jobID, candidateID int, resumeCode string, overallScore float64, report json.RawMessage) (*models.Report, error)
}

type cvStore interface {
	UploadCV(resumeCode string, data []byte, contentType string) (string, error)
}

// ScreeningService runs the extract-score-persist pipeline over batches of
// uploaded CVs. The extractors and engine are read-only, so one service
// instance serves every request concurrently.
type ScreeningService struct {
	documents  *parsers.DocumentExtractor
	profiles   *parsers.ProfileExtractor
	engine     *scoring.Engine
	candidates candidateStore
	reports    reportStore
	cvs        cvStore
	workers    int
}

func NewScreeningService(tax *parsers.Taxonomy, candidates candidateStore, reports reportStore, cvs cvStore, workers int) *ScreeningService {
	if workers < 1 {
		workers = 1
	}
	return &ScreeningService{
		documents:  parsers.NewDocumentExtractor(),
		profiles:   parsers.NewProfileExtractor(tax, nil),
		engine:     scoring.NewEngine(tax),
		candidates: candidates,
		reports:    reports,
		cvs:        cvs,
		workers:    workers,
	}
}

// ScreenBatch processes every document in the batch through a bounded worker
// pool. One bad document never aborts the batch: its outcome records the
// failure and the rest continue. Outcomes keep the upload order.
func (s *ScreeningService) ScreenBatch(ctx context.Context, job *models.Job, documents []Document, policy string) []DocumentOutcome {
	if policy != DuplicateReplace {
		policy = DuplicateSkip
	}

	outcomes := make([]DocumentOutcome, len(documents))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					outcomes[i] = DocumentOutcome{
						FileName: documents[i].FileName,
						Status:   OutcomeFailed,
						Error:    "screening cancelled",
					}
					continue
				}
				outcomes[i] = s.screenOne(job, documents[i], policy)
			}
		}()
	}
	for i := range documents {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return outcomes
}

// ScreenText scores already-extracted resume text without persistence, used
// for ad hoc single-resume checks.
func (s *ScreeningService) ScreenText(text, jobRequirements string) (*scoring.ScoreReport, error) {
	profile, err := s.profiles.ExtractProfile(text)
	if err != nil {
		return nil, err
	}
	report := s.engine.Score(profile, jobRequirements)
	return &report, nil
}

func (s *ScreeningService) screenOne(job *models.Job, doc Document, policy string) DocumentOutcome {
	fail := func(stage string, err error) DocumentOutcome {
		utils.LogWarn("Document screening failed", map[string]interface{}{
			"file": doc.FileName, "stage": stage, "error": err.Error(),
		})
		return DocumentOutcome{
			FileName: doc.FileName,
			Status:   OutcomeFailed,
			Error:    fmt.Sprintf("%s: %v", stage, err),
		}
	}

	text, err := s.documents.ExtractText(doc.Data, documentType(doc))
	if err != nil {
		return fail("extract", err)
	}

	profile, err := s.profiles.ExtractProfile(text)
	if err != nil {
		return fail("parse", err)
	}

	status := OutcomeScreened
	exists, err := s.candidates.ExistsForJob(job.ID, profile.PhoneReference, profile.ContactCode)
	if err != nil {
		return fail("duplicate check", err)
	}
	if exists {
		if policy == DuplicateSkip {
			return DocumentOutcome{
				FileName:   doc.FileName,
				Status:     OutcomeDuplicate,
				ResumeCode: profile.ContactCode,
			}
		}
		if err := s.candidates.DeleteByCode(job.ID, profile.ContactCode); err != nil {
			return fail("replace", err)
		}
		status = OutcomeReplaced
	}

	report := s.engine.Score(profile, job.Requirements)

	fileKey := ""
	if s.cvs != nil {
		fileKey, err = s.cvs.UploadCV(profile.ContactCode, doc.Data, contentType(documentType(doc)))
		if err != nil {
			// Storage is best-effort; the screening result still stands.
			utils.LogWarn("CV upload failed", map[string]interface{}{
				"file": doc.FileName, "error": err.Error(),
			})
			fileKey = ""
		}
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fail("encode profile", err)
	}
	candidate, err := s.candidates.Create(job.ID, profile.ContactCode, profile.PhoneReference, profileJSON, fileKey)
	if err != nil {
		return fail("store candidate", err)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fail("encode report", err)
	}
	if _, err := s.reports.Create(job.ID, candidate.ID, profile.ContactCode, report.OverallScore, reportJSON); err != nil {
		return fail("store report", err)
	}

	utils.LogInfo("Document screened", map[string]interface{}{
		"file": doc.FileName, "resume_code": profile.ContactCode, "score": report.OverallScore,
	})
	return DocumentOutcome{
		FileName:   doc.FileName,
		Status:     status,
		ResumeCode: profile.ContactCode,
		Score:      report.OverallScore,
		Report:     &report,
	}
}

// documentType prefers the declared type and falls back to the file
// extension.
func documentType(doc Document) string {
	if doc.Type != "" {
		return strings.ToLower(doc.Type)
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(doc.FileName)), ".")
}

func contentType(docType string) string {
	switch docType {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}
