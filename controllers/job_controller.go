package controllers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hirescreen/middleware"
	"hirescreen/models"
	"hirescreen/utils"
)

type JobController struct {
	jobModel *models.JobModel
}

func NewJobController(jobModel *models.JobModel) *JobController {
	return &JobController{jobModel: jobModel}
}

type CreateJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
}

func (c *JobController) CreateJob(ctx *gin.Context) {
	var req CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, err)
		return
	}

	userID, _ := ctx.Get(middleware.ContextUserID)
	job, err := c.jobModel.Create(req.Title, req.Requirements, userID.(int))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to create job", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Job created", job)
}

func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.jobModel.List()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to list jobs", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Jobs fetched", jobs)
}

func (c *JobController) GetJob(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job id", err)
		return
	}

	job, err := c.jobModel.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		utils.NotFoundError(ctx, "Job not found")
		return
	}
	if err != nil {
		utils.InternalServerError(ctx, "Failed to fetch job", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Job fetched", job)
}

func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job id", err)
		return
	}

	if err := c.jobModel.Delete(id); err != nil {
		utils.InternalServerError(ctx, "Failed to delete job", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Job deleted", gin.H{"id": id})
}
