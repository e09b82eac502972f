package model

// AnalysisRequest distinguishes an omitted analysis_type (nil, takes
// the default) from an explicit empty string (honored as-is).
type AnalysisRequest struct {
	DockerfileContent string  `json:"dockerfile_content" binding:"required"`
	AnalysisType      *string `json:"analysis_type"`
}

// AnalysisRecord is created and finalized in one step; content is
// selected purely by Type.
type AnalysisRecord struct {
	ID              string
	Type            string
	Recommendations []string
	Score           float64
}

type AnalysisResponse struct {
	AnalysisType    string   `json:"analysis_type"`
	Recommendations []string `json:"recommendations"`
	Score           float64  `json:"score"`
	Details         string   `json:"details,omitempty"`
}
