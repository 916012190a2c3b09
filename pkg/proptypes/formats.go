package proptypes

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// isUUID accepts the canonical 36 character form only.
func isUUID(value string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}

// isEmail accepts bare RFC 5322 addresses with a dotted domain.
func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// isURL accepts absolute URLs with a scheme and host.
func isURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
