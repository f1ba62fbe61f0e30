package handler

import (
	"log/slog"
	"net/http"

	"github.com/devfolio/handler/payload"
	"github.com/devfolio/pkg/endpoint"
	"github.com/devfolio/pkg/portal"
)

type ProfileHandler struct {
	filePath string
}

func MakeProfileHandler(filePath string) ProfileHandler {
	return ProfileHandler{
		filePath: filePath,
	}
}

func (h ProfileHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	data, err := portal.ParseJsonFile[payload.ProfileResponse](h.filePath)

	if err != nil {
		slog.Error("Error reading profile file", "error", err)

		return endpoint.InternalError("could not read profile data")
	}

	resp := endpoint.NewResponseFrom(data.Version, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		slog.Error("Error marshaling JSON for profile response", "error", err)

		return nil
	}

	return nil
}
