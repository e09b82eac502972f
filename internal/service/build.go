package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/earthly-ai/backend/internal/model"
	"github.com/earthly-ai/backend/internal/store"
)

// ErrNotFound is returned when a lookup misses the store.
var ErrNotFound = errors.New("not found")

type BuildService struct {
	builds store.Store[model.BuildRecord]
	logger zerolog.Logger
}

func NewBuildService(builds store.Store[model.BuildRecord], logger zerolog.Logger) *BuildService {
	return &BuildService{builds: builds, logger: logger}
}

// Create stores the build request with status "running" and reports it
// queued. No build executes; nothing later moves the record out of
// "running".
func (s *BuildService) Create(req model.BuildRequest) model.BuildResponse {
	id := s.builds.NextID()

	args := req.AdditionalArgs
	if args == nil {
		args = []string{}
	}
	s.builds.Put(id, model.BuildRecord{
		ID:         id,
		Name:       req.BuildName,
		Dockerfile: req.DockerfileContent,
		Target:     req.Target,
		Args:       args,
		Status:     model.BuildStatusRunning,
	})

	s.logger.Info().Str("build_id", id).Str("name", req.BuildName).Msg("build created")

	return model.BuildResponse{
		Success: true,
		BuildID: id,
		Message: fmt.Sprintf("Build '%s' has been queued for execution", req.BuildName),
	}
}

// Status reports the stored status of a build, or ErrNotFound.
func (s *BuildService) Status(id string) (model.BuildResponse, error) {
	rec, ok := s.builds.Get(id)
	if !ok {
		return model.BuildResponse{}, fmt.Errorf("build %s: %w", id, ErrNotFound)
	}
	return model.BuildResponse{
		Success: rec.Status == model.BuildStatusCompleted,
		BuildID: id,
		Message: fmt.Sprintf("Build status: %s", rec.Status),
	}, nil
}
