package request

// GatewayUpdateRequest is the payload for configuring one gateway type.
// Fields is keyed by registry field key; unknown keys are ignored.

type GatewayUpdateRequest struct {
	Fields    map[string]string `json:"fields"`
	IsDefault bool              `json:"is_default"`
}
