package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/devfolio/pkg/endpoint"
)

const resumeFileName = "resume.pdf"

type ResumeHandler struct {
	filesDir string
}

func MakeResumeHandler(filesDir string) ResumeHandler {
	return ResumeHandler{
		filesDir: filesDir,
	}
}

// Handle streams the resume as a download. The URL is stable; the file on
// disk is the single source of truth.
func (h ResumeHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	path := filepath.Join(h.filesDir, resumeFileName)

	info, err := os.Stat(path)

	if err != nil || info.IsDir() {
		return endpoint.NotFound("resume is not available")
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+resumeFileName+`"`)

	http.ServeFile(w, r, path)

	return nil
}
