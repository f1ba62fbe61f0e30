package handler

import (
	"log/slog"
	"net/http"

	"github.com/devfolio/handler/payload"
	"github.com/devfolio/pkg/endpoint"
	"github.com/devfolio/pkg/portal"
)

type ExperienceHandler struct {
	filePath string
}

func MakeExperienceHandler(filePath string) ExperienceHandler {
	return ExperienceHandler{
		filePath: filePath,
	}
}

func (h ExperienceHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	data, err := portal.ParseJsonFile[payload.ExperienceResponse](h.filePath)

	if err != nil {
		slog.Error("Error reading experience file", "error", err)

		return endpoint.InternalError("could not read experience data")
	}

	resp := endpoint.NewResponseFrom(data.Version, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for experience response", "error", err)

		return nil
	}

	return nil
}
