package domain

// CanMutate reports whether the principal may update or delete a resource
// authored by authorEmail. Emails are compared exactly as stored.
func CanMutate(principalEmail, authorEmail string) bool {
	return principalEmail == authorEmail
}

// AuthorizeMutation returns ErrNotAuthor when CanMutate denies access.
func AuthorizeMutation(principalEmail, authorEmail string) error {
	if !CanMutate(principalEmail, authorEmail) {
		return ErrNotAuthor
	}
	return nil
}
