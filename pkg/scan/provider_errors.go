package scan

import (
	"strings"

	"Scanstock-Backend/domain"
	"Scanstock-Backend/internal/utils"
)

// TranslateProviderError maps low-level store errors onto the scan error
// taxonomy. An invalid-credential failure additionally resets the stored
// remote configuration, so subsequent calls see the remote store as
// unconfigured until the operator fixes it.
func TranslateProviderError(err error) error {
	if err == nil {
		return nil
	}

	if isInvalidCredential(err) {
		utils.ResetRemoteConfig()
	}
	return domain.ErrRemoteProvider
}

func isInvalidCredential(err error) bool {
	msg := err.Error()
	// Postgres invalid_password / invalid_authorization_specification.
	return strings.Contains(msg, "28P01") ||
		strings.Contains(msg, "28000") ||
		strings.Contains(msg, "password authentication failed")
}
