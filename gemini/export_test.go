package gemini

// NewWithCaller constructs a Client around a fake model caller for tests.
func NewWithCaller(m ModelCaller, model string) *Client {
	return &Client{models: m, model: model}
}

// Truncate exposes preview truncation for tests.
func Truncate(s string, n int) string { return truncate(s, n) }
