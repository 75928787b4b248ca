package controllers

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hirescreen/models"
	"hirescreen/services"
	"hirescreen/utils"
)

// ScreeningController exposes the batch screening pipeline and the
// confidential result surfaces. Report responses never include names,
// emails or phone numbers; candidates are addressed by resume code only.
type ScreeningController struct {
	screening      *services.ScreeningService
	jobModel       *models.JobModel
	candidateModel *models.CandidateModel
	reportModel    *models.ReportModel
	s3Service      *services.S3Service
}

func NewScreeningController(
	screening *services.ScreeningService,
	jobModel *models.JobModel,
	candidateModel *models.CandidateModel,
	reportModel *models.ReportModel,
	s3Service *services.S3Service,
) *ScreeningController {
	return &ScreeningController{
		screening:      screening,
		jobModel:       jobModel,
		candidateModel: candidateModel,
		reportModel:    reportModel,
		s3Service:      s3Service,
	}
}

func (c *ScreeningController) jobFromParam(ctx *gin.Context) *models.Job {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job id", err)
		return nil
	}
	job, err := c.jobModel.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		utils.NotFoundError(ctx, "Job not found")
		return nil
	}
	if err != nil {
		utils.InternalServerError(ctx, "Failed to fetch job", err)
		return nil
	}
	return job
}

// ScreenBatch accepts a multipart batch of CV documents and screens each one
// against the job's requirements. The response lists one outcome per file in
// upload order; failed documents report their error without stopping the rest.
func (c *ScreeningController) ScreenBatch(ctx *gin.Context) {
	job := c.jobFromParam(ctx)
	if job == nil {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		utils.BadRequestError(ctx, "Expected a multipart upload", err)
		return
	}
	files := form.File["documents"]
	if len(files) == 0 {
		utils.BadRequestError(ctx, "No documents uploaded", nil)
		return
	}

	var documents []services.Document
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.BadRequestError(ctx, "Failed to read upload: "+header.Filename, err)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			utils.BadRequestError(ctx, "Failed to read upload: "+header.Filename, err)
			return
		}
		documents = append(documents, services.Document{
			FileName: header.Filename,
			Type:     strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), "."),
			Data:     data,
		})
	}

	policy := ctx.DefaultQuery("duplicates", services.DuplicateSkip)
	outcomes := c.screening.ScreenBatch(ctx.Request.Context(), job, documents, policy)

	screened := 0
	for _, outcome := range outcomes {
		if outcome.Status == services.OutcomeScreened || outcome.Status == services.OutcomeReplaced {
			screened++
		}
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Batch screened", gin.H{
		"job_id":   job.ID,
		"total":    len(outcomes),
		"screened": screened,
		"outcomes": outcomes,
	})
}

type ScreenTextRequest struct {
	ResumeText   string `json:"resume_text" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
}

// ScreenText scores pasted resume text without persisting anything. Useful
// for checking a job description against a single anonymized resume.
func (c *ScreeningController) ScreenText(ctx *gin.Context) {
	var req ScreenTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, err)
		return
	}

	report, err := c.screening.ScreenText(req.ResumeText, req.Requirements)
	if err != nil {
		utils.BadRequestError(ctx, "Could not screen resume text", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Resume screened", report)
}

// ListReports returns a job's reports ranked best first.
func (c *ScreeningController) ListReports(ctx *gin.Context) {
	job := c.jobFromParam(ctx)
	if job == nil {
		return
	}

	reports, err := c.reportModel.ListByJobRanked(job.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to list reports", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Reports fetched", gin.H{
		"job_id":  job.ID,
		"reports": reports,
	})
}

// GetReport fetches one report by resume code.
func (c *ScreeningController) GetReport(ctx *gin.Context) {
	job := c.jobFromParam(ctx)
	if job == nil {
		return
	}

	code := ctx.Param("code")
	report, err := c.reportModel.GetByCode(job.ID, code)
	if errors.Is(err, sql.ErrNoRows) {
		utils.NotFoundError(ctx, "No report for this resume code")
		return
	}
	if err != nil {
		utils.InternalServerError(ctx, "Failed to fetch report", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Report fetched", report)
}

// JobStats summarizes a job's screening results.
func (c *ScreeningController) JobStats(ctx *gin.Context) {
	job := c.jobFromParam(ctx)
	if job == nil {
		return
	}

	stats, err := c.reportModel.StatsByJob(job.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to compute stats", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Stats computed", stats)
}

type LookupRequest struct {
	ResumeCode string `json:"resume_code" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

// Lookup resolves a candidate by resume code plus the phone number used on
// the resume. Both must match: the code alone is public on reports, the
// phone alone identifies nobody. On success it returns a presigned CV link.
func (c *ScreeningController) Lookup(ctx *gin.Context) {
	var req LookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, err)
		return
	}

	candidates, err := c.candidateModel.FindByPhone(normalizePhone(req.Phone))
	if err != nil {
		utils.InternalServerError(ctx, "Lookup failed", err)
		return
	}

	for _, candidate := range candidates {
		if candidate.ResumeCode != req.ResumeCode {
			continue
		}
		payload := gin.H{
			"resume_code": candidate.ResumeCode,
			"job_id":      candidate.JobID,
			"profile":     candidate.Profile,
		}
		if c.s3Service != nil && candidate.FileKey != "" {
			if url, err := c.s3Service.PresignedURL(candidate.FileKey); err == nil {
				payload["download_url"] = url
			}
		}
		utils.SuccessResponse(ctx, http.StatusOK, "Candidate found", payload)
		return
	}

	// Same answer whether the code or the phone was wrong.
	utils.NotFoundError(ctx, "No candidate matches this code and phone number")
}

// DeleteCandidate withdraws a screened candidate and their stored CV.
func (c *ScreeningController) DeleteCandidate(ctx *gin.Context) {
	job := c.jobFromParam(ctx)
	if job == nil {
		return
	}

	code := ctx.Param("code")
	candidate, err := c.candidateModel.GetByCode(job.ID, code)
	if errors.Is(err, sql.ErrNoRows) {
		utils.NotFoundError(ctx, "No candidate with this resume code")
		return
	}
	if err != nil {
		utils.InternalServerError(ctx, "Failed to fetch candidate", err)
		return
	}

	if c.s3Service != nil && candidate.FileKey != "" {
		if err := c.s3Service.DeleteCV(candidate.FileKey); err != nil {
			utils.LogWarn("Failed to delete stored CV", map[string]interface{}{"file_key": candidate.FileKey, "error": err.Error()})
		}
	}
	if err := c.candidateModel.DeleteByCode(job.ID, code); err != nil {
		utils.InternalServerError(ctx, "Failed to delete candidate", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Candidate deleted", gin.H{"resume_code": code})
}

// normalizePhone reduces user input to the stored phone reference form,
// digits plus any leading plus sign.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
