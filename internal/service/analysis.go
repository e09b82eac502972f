package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/earthly-ai/backend/internal/model"
	"github.com/earthly-ai/backend/internal/store"
)

// defaultAnalysisType applies only when the request omits the type
// field; an explicit empty string is kept and falls through to the zero
// profile like any other unknown type.
const defaultAnalysisType = "optimization"

type analysisProfile struct {
	recommendations []string
	score           float64
}

// analysisProfiles is the fixed recommendation table. Types without an
// entry, "general" included, fall through to the zero profile: score
// 0.0 and no recommendations.
var analysisProfiles = map[string]analysisProfile{
	"optimization": {
		recommendations: []string{
			"Use multi-stage builds to reduce image size",
			"Combine RUN commands to reduce layer count",
			"Use .dockerignore to exclude unnecessary files",
		},
		score: 0.75,
	},
	"security": {
		recommendations: []string{
			"Use specific base image tags instead of 'latest'",
			"Run containers as non-root user",
			"Scan image for vulnerabilities",
		},
		score: 0.65,
	},
	"performance": {
		recommendations: []string{
			"Cache dependencies before adding application code",
			"Use minimal base images",
			"Optimize layer ordering",
		},
		score: 0.80,
	},
}

type AnalysisService struct {
	analyses store.Store[model.AnalysisRecord]
	logger   zerolog.Logger
}

func NewAnalysisService(analyses store.Store[model.AnalysisRecord], logger zerolog.Logger) *AnalysisService {
	return &AnalysisService{analyses: analyses, logger: logger}
}

// Analyze looks up the recommendation profile for the requested type,
// stores the finalized record, and returns the response. The Dockerfile
// content itself is never inspected.
func (s *AnalysisService) Analyze(req model.AnalysisRequest) model.AnalysisResponse {
	analysisType := defaultAnalysisType
	if req.AnalysisType != nil {
		analysisType = *req.AnalysisType
	}

	profile := analysisProfiles[analysisType]
	recs := profile.recommendations
	if recs == nil {
		recs = []string{}
	}

	id := s.analyses.NextID()
	s.analyses.Put(id, model.AnalysisRecord{
		ID:              id,
		Type:            analysisType,
		Recommendations: recs,
		Score:           profile.score,
	})

	s.logger.Info().
		Str("analysis_id", id).
		Str("type", analysisType).
		Int("recommendations", len(recs)).
		Msg("analysis completed")

	return model.AnalysisResponse{
		AnalysisType:    analysisType,
		Recommendations: recs,
		Score:           profile.score,
		Details:         fmt.Sprintf("Analysis completed with %d recommendations", len(recs)),
	}
}
