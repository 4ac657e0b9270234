package names

// Anonymizer maps raw usernames to the display names the dashboard renders.
// Implementations must be deterministic for the lifetime of the process: the
// same input always yields the same output, so a player keeps one pseudonym
// across every page.
type Anonymizer interface {
	Anonymize(username string) string
}
