package hook

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/skillhook/pkg/errors"
)

// Input is the JSON payload the host sends on stdin
type Input struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
	PermissionMode string `json:"permission_mode"`
	Prompt         string `json:"prompt"`
}

// inputWire tells an absent or null prompt apart from an empty one
type inputWire struct {
	SessionID      string  `json:"session_id"`
	TranscriptPath string  `json:"transcript_path"`
	Cwd            string  `json:"cwd"`
	PermissionMode string  `json:"permission_mode"`
	Prompt         *string `json:"prompt"`
}

// ReadInput reads all of r and decodes it as a hook payload. The payload
// must be a JSON object carrying a string prompt.
func ReadInput(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read stdin")
	}

	var wire *inputWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse hook input")
	}
	if wire == nil {
		return nil, errors.New(errors.ErrInvalidInput, "hook input must be a JSON object")
	}
	if wire.Prompt == nil {
		return nil, errors.New(errors.ErrInvalidInput, "hook input has no prompt")
	}

	return &Input{
		SessionID:      wire.SessionID,
		TranscriptPath: wire.TranscriptPath,
		Cwd:            wire.Cwd,
		PermissionMode: wire.PermissionMode,
		Prompt:         *wire.Prompt,
	}, nil
}
