package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"hirescreen/models"
	"hirescreen/parsers"
)

const screeningResume = `Tendai Moyo
Phone: 0772345678

EDUCATION
Bachelor of Science in Computer Science, University of Zimbabwe, 2015

SKILLS
- Python programming
- SQL and PostgreSQL
- Docker

EXPERIENCE
Software Engineer at Econet Wireless
Jan 2016 - Dec 2020
- Built billing pipelines in python
`

type fakeCandidateStore struct {
	mu      sync.Mutex
	nextID  int
	created []*models.Candidate
	deleted []string
	failOn  string
}

func (f *fakeCandidateStore) Create(jobID int, resumeCode, phoneReference string, profile json.RawMessage, fileKey string) (*models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "create" {
		return nil, errors.New("insert failed")
	}
	f.nextID++
	candidate := &models.Candidate{
		ID:             f.nextID,
		JobID:          jobID,
		ResumeCode:     resumeCode,
		PhoneReference: phoneReference,
		Profile:        profile,
		FileKey:        fileKey,
	}
	f.created = append(f.created, candidate)
	return candidate, nil
}

func (f *fakeCandidateStore) ExistsForJob(jobID int, phoneReference, resumeCode string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.created {
		if c.JobID != jobID {
			continue
		}
		if phoneReference != "" && c.PhoneReference == phoneReference {
			return true, nil
		}
		if c.ResumeCode == resumeCode {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCandidateStore) DeleteByCode(jobID int, resumeCode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, resumeCode)
	kept := f.created[:0]
	for _, c := range f.created {
		if c.JobID == jobID && c.ResumeCode == resumeCode {
			continue
		}
		kept = append(kept, c)
	}
	f.created = kept
	return nil
}

type fakeReportStore struct {
	mu      sync.Mutex
	created []*models.Report
}

func (f *fakeReportStore) Create(jobID, candidateID int, resumeCode string, overallScore float64, report json.RawMessage) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := &models.Report{
		ID:           len(f.created) + 1,
		JobID:        jobID,
		CandidateID:  candidateID,
		ResumeCode:   resumeCode,
		OverallScore: overallScore,
		Report:       report,
	}
	f.created = append(f.created, r)
	return r, nil
}

type fakeCVStore struct {
	mu   sync.Mutex
	keys []string
	fail bool
}

func (f *fakeCVStore) UploadCV(resumeCode string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("bucket unavailable")
	}
	key := "cv/" + resumeCode
	f.keys = append(f.keys, key)
	return key, nil
}

func newTestService(candidates *fakeCandidateStore, reports *fakeReportStore, cvs *fakeCVStore, workers int) *ScreeningService {
	// Pass a true nil interface when no fake is supplied; a typed nil
	// *fakeCVStore would defeat the service's nil check.
	var store cvStore
	if cvs != nil {
		store = cvs
	}
	return NewScreeningService(parsers.DefaultTaxonomy(), candidates, reports, store, workers)
}

func testJob() *models.Job {
	return &models.Job{
		ID:           1,
		Title:        "Software Engineer",
		Requirements: "Python and SQL developer with 3 years experience. Bachelors degree in computer science required.",
	}
}

func textDoc(name, text string) Document {
	return Document{FileName: name, Type: "txt", Data: []byte(text)}
}

func TestScreenBatch_PreservesUploadOrder(t *testing.T) {
	candidates := &fakeCandidateStore{}
	reports := &fakeReportStore{}
	service := newTestService(candidates, reports, nil, 3)

	docs := []Document{
		textDoc("cv-a.txt", screeningResume),
		textDoc("cv-b.txt", ""),
		textDoc("cv-c.txt", "unreadable"),
	}
	outcomes := service.ScreenBatch(context.Background(), testJob(), docs, DuplicateSkip)

	assert.Len(t, outcomes, 3)
	assert.Equal(t, "cv-a.txt", outcomes[0].FileName)
	assert.Equal(t, "cv-b.txt", outcomes[1].FileName)
	assert.Equal(t, "cv-c.txt", outcomes[2].FileName)
}

func TestScreenBatch_FailedDocumentDoesNotAbortBatch(t *testing.T) {
	candidates := &fakeCandidateStore{}
	reports := &fakeReportStore{}
	service := newTestService(candidates, reports, nil, 2)

	docs := []Document{
		textDoc("good.txt", screeningResume),
		textDoc("empty.txt", "   "),
	}
	outcomes := service.ScreenBatch(context.Background(), testJob(), docs, DuplicateSkip)

	assert.Equal(t, OutcomeScreened, outcomes[0].Status)
	assert.NotEmpty(t, outcomes[0].ResumeCode)
	assert.NotNil(t, outcomes[0].Report)

	assert.Equal(t, OutcomeFailed, outcomes[1].Status)
	assert.NotEmpty(t, outcomes[1].Error)
	assert.Empty(t, outcomes[1].ResumeCode)

	assert.Len(t, candidates.created, 1)
	assert.Len(t, reports.created, 1)
}

func TestScreenBatch_DuplicateSkip(t *testing.T) {
	candidates := &fakeCandidateStore{}
	reports := &fakeReportStore{}
	service := newTestService(candidates, reports, nil, 1)

	docs := []Document{
		textDoc("first.txt", screeningResume),
		textDoc("second.txt", screeningResume),
	}
	outcomes := service.ScreenBatch(context.Background(), testJob(), docs, DuplicateSkip)

	assert.Equal(t, OutcomeScreened, outcomes[0].Status)
	assert.Equal(t, OutcomeDuplicate, outcomes[1].Status)
	assert.Equal(t, outcomes[0].ResumeCode, outcomes[1].ResumeCode)
	assert.Nil(t, outcomes[1].Report)

	assert.Len(t, candidates.created, 1)
	assert.Len(t, reports.created, 1)
	assert.Empty(t, candidates.deleted)
}

func TestScreenBatch_DuplicateReplace(t *testing.T) {
	candidates := &fakeCandidateStore{}
	reports := &fakeReportStore{}
	service := newTestService(candidates, reports, nil, 1)

	docs := []Document{
		textDoc("first.txt", screeningResume),
		textDoc("second.txt", screeningResume),
	}
	outcomes := service.ScreenBatch(context.Background(), testJob(), docs, DuplicateReplace)

	assert.Equal(t, OutcomeScreened, outcomes[0].Status)
	assert.Equal(t, OutcomeReplaced, outcomes[1].Status)
	assert.NotNil(t, outcomes[1].Report)

	assert.Len(t, candidates.deleted, 1)
	assert.Len(t, candidates.created, 2)
	assert.Len(t, reports.created, 2)
}

func TestScreenBatch_CancelledContext(t *testing.T) {
	candidates := &fakeCandidateStore{}
	reports := &fakeReportStore{}
	service := newTestService(candidates, reports, nil, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := []Document{
		textDoc("one.txt", screeningResume),
		textDoc("two.txt", screeningResume),
	}
	outcomes := service.ScreenBatch(ctx, testJob(), docs, DuplicateSkip)

	for _, outcome := range outcomes {
		assert.Equal(t, OutcomeFailed, outcome.Status)
		assert.Equal(t, "screening cancelled", outcome.Error)
	}
	assert.Empty(t, candidates.created)
}

func TestScreenBatch_UploadFailureIsBestEffort(t *testing.T) {
	candidates := &fakeCandidateStore{}
	reports := &fakeReportStore{}
	cvs := &fakeCVStore{fail: true}
	service := newTestService(candidates, reports, cvs, 1)

	outcomes := service.ScreenBatch(context.Background(), testJob(),
		[]Document{textDoc("cv.txt", screeningResume)}, DuplicateSkip)

	assert.Equal(t, OutcomeScreened, outcomes[0].Status)
	assert.Len(t, candidates.created, 1)
	assert.Empty(t, candidates.created[0].FileKey)
}

func TestScreenBatch_StoresCVKey(t *testing.T) {
	candidates := &fakeCandidateStore{}
	reports := &fakeReportStore{}
	cvs := &fakeCVStore{}
	service := newTestService(candidates, reports, cvs, 1)

	outcomes := service.ScreenBatch(context.Background(), testJob(),
		[]Document{textDoc("cv.txt", screeningResume)}, DuplicateSkip)

	assert.Equal(t, OutcomeScreened, outcomes[0].Status)
	assert.Len(t, cvs.keys, 1)
	assert.Equal(t, "cv/"+outcomes[0].ResumeCode, candidates.created[0].FileKey)
}

func TestScreenText(t *testing.T) {
	service := newTestService(&fakeCandidateStore{}, &fakeReportStore{}, nil, 1)

	report, err := service.ScreenText(screeningResume, testJob().Requirements)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, report.OverallScore, 0.0)
	assert.LessOrEqual(t, report.OverallScore, 100.0)
	assert.NotEmpty(t, report.ContactCode)
}

func TestScreenText_EmptyText(t *testing.T) {
	service := newTestService(&fakeCandidateStore{}, &fakeReportStore{}, nil, 1)

	_, err := service.ScreenText("   ", "Python developer")
	assert.Error(t, err)
}
