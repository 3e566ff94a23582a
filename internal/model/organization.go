package model

// Organization is a GitHub organization profile.
type Organization struct {
	Login       string
	Name        string
	Description string
	Email       string
	Blog        string
	Location    string
	PublicRepos int
	HTMLURL     string
}
