package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/dtos"
	"github.com/justsurfingit/job-mailer/internal/extract"
	"github.com/justsurfingit/job-mailer/internal/services"
)

const resumeField = "resume"

type ResumeHandler struct {
	Resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes}
}

// UploadResume is the POST /resume endpoint. Only PDF content is accepted,
// judged by the bytes rather than the declared type.
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	fh, err := c.FormFile(resumeField)
	if err != nil {
		respondError(c, apperrors.Request("required field missing: "+resumeField))
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, apperrors.Internal(err))
		return
	}
	defer f.Close()

	var sniff [512]byte
	n, err := io.ReadFull(f, sniff[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		respondError(c, apperrors.Internal(err))
		return
	}
	if http.DetectContentType(sniff[:n]) != extract.MimePDF {
		respondError(c, apperrors.UnsupportedMedia("only PDF resumes are supported"))
		return
	}

	profile, err := h.Resumes.Upload(c.Request.Context(), fh.Filename, io.MultiReader(bytes.NewReader(sniff[:n]), f))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos.UploadResumeResponse{
		Success:  true,
		Message:  "Resume uploaded successfully",
		FileName: profile.ResumeFileName,
	})
}
