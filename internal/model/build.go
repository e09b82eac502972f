package model

type BuildRequest struct {
	DockerfileContent string   `json:"dockerfile_content" binding:"required"`
	BuildName         string   `json:"build_name" binding:"required"`
	Target            string   `json:"target,omitempty"`
	AdditionalArgs    []string `json:"additional_args,omitempty"`
}

type BuildStatus string

const (
	BuildStatusRunning   BuildStatus = "running"
	BuildStatusCompleted BuildStatus = "completed"
)

// BuildRecord is the stored form of a build request. Nothing updates
// Status after creation; no build actually executes.
type BuildRecord struct {
	ID         string
	Name       string
	Dockerfile string
	Target     string
	Args       []string
	Status     BuildStatus
}

type BuildResponse struct {
	Success bool   `json:"success"`
	BuildID string `json:"build_id"`
	Message string `json:"message"`
	Output  string `json:"output,omitempty"`
}
