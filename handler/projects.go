package handler

import (
	"log/slog"
	"net/http"

	"github.com/devfolio/handler/payload"
	"github.com/devfolio/pkg/endpoint"
	"github.com/devfolio/pkg/portal"
)

type ProjectsHandler struct {
	filePath string
}

func MakeProjectsHandler(filePath string) ProjectsHandler {
	return ProjectsHandler{
		filePath: filePath,
	}
}

func (h ProjectsHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	data, err := portal.ParseJsonFile[payload.ProjectsResponse](h.filePath)

	if err != nil {
		slog.Error("Error reading projects file", "error", err)

		return endpoint.InternalError("could not read projects data")
	}

	resp := endpoint.NewResponseFrom(data.Version, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for projects response", "error", err)

		return nil
	}

	return nil
}
