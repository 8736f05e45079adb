package controllers

import (
	"net/http"
	"strconv"

	"github.com/NguyenDinhPhat-22CT112/healthAI/services"

	"github.com/gin-gonic/gin"
)

// POST /training/feedback
func SubmitFeedback(c *gin.Context) {
	var input services.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sample, err := trainingSvc.Collect(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sample_id": sample.SampleID})
}

// GET /training/feedback?limit=50
func ListFeedback(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	samples, err := trainingSvc.List(c.GetUint("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, samples)
}

// GET /training/export?min_rating=4 — JSONL dump for fine-tuning runs.
func ExportDataset(c *gin.Context) {
	minRating, err := strconv.Atoi(c.DefaultQuery("min_rating", "4"))
	if err != nil || minRating < 1 || minRating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_rating must be between 1 and 5"})
		return
	}

	data, count, err := trainingSvc.ExportJSONL(minRating)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("X-Sample-Count", strconv.Itoa(count))
	c.Header("Content-Disposition", "attachment; filename=dataset.jsonl")
	c.Data(http.StatusOK, "application/jsonl", data)
}
