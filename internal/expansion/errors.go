package expansion

import (
	"errors"

	"github.com/askewbot/askew-trainer/internal/llm"
)

// Expansion failure kinds. Every error returned by Provider.ExpandViaAPI
// matches exactly one of these under errors.Is.
var (
	// ErrProviderUnavailable covers a missing credential, an unusable client,
	// or a provider that is switched off.
	ErrProviderUnavailable = llm.ErrProviderUnavailable

	// ErrNetworkOrAPI covers failures of the API call itself.
	ErrNetworkOrAPI = errors.New("generative api call failed")

	// ErrUnparsableResponse means no JSON object could be recovered from the reply.
	ErrUnparsableResponse = errors.New("could not parse JSON from model output")

	// ErrEmptyExpansion means the parsed object had no usable patterns or responses.
	ErrEmptyExpansion = errors.New("model returned empty patterns or responses")
)
