package oauth

// ORCIDResourceOwner is a read-only view over an ORCID v2.0 record document.
// Every accessor tolerates missing keys at any depth and returns "" or an
// empty slice instead.
type ORCIDResourceOwner struct {
	raw map[string]any
}

// NewORCIDResourceOwner wraps a decoded record. A nil document is treated as empty.
func NewORCIDResourceOwner(raw map[string]any) *ORCIDResourceOwner {
	if raw == nil {
		raw = map[string]any{}
	}
	return &ORCIDResourceOwner{raw: raw}
}

// ID returns the full ORCID iD URI, e.g. "https://orcid.org/0000-0002-1825-0097".
func (o *ORCIDResourceOwner) ID() string {
	return lookupString(o.raw, "orcid-identifier", "uri")
}

// Name returns the published ("credit") name.
func (o *ORCIDResourceOwner) Name() string {
	return lookupString(o.raw, "person", "name", "credit-name", "value")
}

// GivenName returns the given names.
func (o *ORCIDResourceOwner) GivenName() string {
	return lookupString(o.raw, "person", "name", "given-names", "value")
}

// FirstName is an alias for GivenName.
func (o *ORCIDResourceOwner) FirstName() string {
	return o.GivenName()
}

// FamilyName returns the family name.
func (o *ORCIDResourceOwner) FamilyName() string {
	return lookupString(o.raw, "person", "name", "family-name", "value")
}

// LastName is an alias for FamilyName.
func (o *ORCIDResourceOwner) LastName() string {
	return o.FamilyName()
}

// OtherNames returns the "also known as" names. Entries without content are skipped.
func (o *ORCIDResourceOwner) OtherNames() []string {
	names := []string{}
	for _, item := range lookupList(o.raw, "person", "other-names", "other-name") {
		if name, ok := lookup(item, "content").(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// Email returns the address flagged primary. Without a primary address it
// falls back to the last address listed.
func (o *ORCIDResourceOwner) Email() string {
	var last string
	for _, item := range o.emailItems() {
		email := lookupString(item, "email")
		if !isEmpty(lookup(item, "primary")) {
			return email
		}
		last = email
	}
	return last
}

// PrimaryEmail returns the address flagged primary, or "" if none is.
func (o *ORCIDResourceOwner) PrimaryEmail() string {
	for _, item := range o.emailItems() {
		if !isEmpty(lookup(item, "primary")) {
			return lookupString(item, "email")
		}
	}
	return ""
}

// Emails returns every listed address in document order.
func (o *ORCIDResourceOwner) Emails() []string {
	emails := []string{}
	for _, item := range o.emailItems() {
		if email, ok := lookup(item, "email").(string); ok {
			emails = append(emails, email)
		}
	}
	return emails
}

// ToMap returns the raw record document.
func (o *ORCIDResourceOwner) ToMap() map[string]any {
	return o.raw
}

func (o *ORCIDResourceOwner) emailItems() []any {
	return lookupList(o.raw, "person", "emails", "email")
}

// lookup walks nested objects and returns nil at the first missing segment.
func lookup(v any, path ...string) any {
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}
	return v
}

func lookupString(v any, path ...string) string {
	s, _ := lookup(v, path...).(string)
	return s
}

func lookupList(v any, path ...string) []any {
	list, _ := lookup(v, path...).([]any)
	return list
}
