package assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxMessageLength = 500

func validateRequest(req *Request) error {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(message) > maxMessageLength {
		return fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, maxMessageLength)
	}

	return nil
}
