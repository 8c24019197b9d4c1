package dto

// Claims identifies the operator behind a request. It is read from a bearer token
// issued by the plant's identity provider and recorded as submitted_by on print
// batches.
type Claims struct {
	Subject string   `json:"sub"`
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}

// Operator returns the most readable identifier available.
func (c *Claims) Operator() string {
	if c == nil {
		return ""
	}
	switch {
	case c.Email != "":
		return c.Email
	case c.Name != "":
		return c.Name
	default:
		return c.Subject
	}
}
