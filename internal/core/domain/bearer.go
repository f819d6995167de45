package domain

import "strings"

// BearerToken extracts the credential from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively. Only a
// missing scheme is an error; "Bearer " with nothing after it yields "".
func BearerToken(header string) (string, error) {
	scheme, token, _ := strings.Cut(strings.TrimSpace(header), " ")
	if !strings.EqualFold(scheme, "bearer") {
		return "", ErrMalformedAuthHeader
	}
	return strings.TrimSpace(token), nil
}
