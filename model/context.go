package model

// Context carries the optional contextual metadata of a statement.
//
// A Context is immutable: every With/Without method returns a modified copy
// and leaves the receiver untouched. Nested values are copied on the way in
// and out, so slices held by callers never alias the Context. The zero value
// is a Context with no fields set.
type Context struct {
	registration      *string
	instructor        Actor
	team              *Group
	contextActivities *ContextActivities
	revision          *string
	platform          *string
	language          *string
	statement         *StatementReference
	extensions        *Extensions
}

// EntityKind reports KindContext.
func (Context) EntityKind() Kind { return KindContext }

// IsEmpty reports whether no field is set.
func (c Context) IsEmpty() bool {
	return c.registration == nil &&
		c.instructor == nil &&
		c.team == nil &&
		c.contextActivities == nil &&
		c.revision == nil &&
		c.platform == nil &&
		c.language == nil &&
		c.statement == nil &&
		c.extensions == nil
}

func ptr[T any](v T) *T { return &v }

func get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Registration returns the registration UUID.
func (c Context) Registration() (string, bool) { return get(c.registration) }

// Instructor returns the instructing actor, an Agent or a Group.
func (c Context) Instructor() (Actor, bool) {
	if c.instructor == nil {
		return nil, false
	}
	return c.instructor.cloneActor(), true
}

// Team returns the team that took part in the experience.
func (c Context) Team() (Group, bool) {
	if c.team == nil {
		return Group{}, false
	}
	return c.team.clone(), true
}

// ContextActivities returns the related activities grouped by role.
func (c Context) ContextActivities() (ContextActivities, bool) {
	if c.contextActivities == nil {
		return ContextActivities{}, false
	}
	return c.contextActivities.clone(), true
}

// Revision returns the revision of the learning activity.
func (c Context) Revision() (string, bool) { return get(c.revision) }

// Platform returns the platform the experience happened on.
func (c Context) Platform() (string, bool) { return get(c.platform) }

// Language returns the RFC 5646 language tag of the statement's content.
func (c Context) Language() (string, bool) { return get(c.language) }

// Statement returns the referenced statement.
func (c Context) Statement() (StatementReference, bool) { return get(c.statement) }

// Extensions returns the context extensions.
func (c Context) Extensions() (Extensions, bool) { return get(c.extensions) }

// WithRegistration returns a copy with the registration set.
func (c Context) WithRegistration(registration string) Context {
	c.registration = ptr(registration)
	return c
}

// WithInstructor returns a copy with the instructor set. A nil actor clears it.
func (c Context) WithInstructor(instructor Actor) Context {
	if instructor != nil {
		instructor = instructor.cloneActor()
	}
	c.instructor = instructor
	return c
}

// WithTeam returns a copy with the team set.
func (c Context) WithTeam(team Group) Context {
	c.team = ptr(team.clone())
	return c
}

// WithContextActivities returns a copy with the context activities set.
func (c Context) WithContextActivities(activities ContextActivities) Context {
	c.contextActivities = ptr(activities.clone())
	return c
}

// WithRevision returns a copy with the revision set.
func (c Context) WithRevision(revision string) Context {
	c.revision = ptr(revision)
	return c
}

// WithPlatform returns a copy with the platform set.
func (c Context) WithPlatform(platform string) Context {
	c.platform = ptr(platform)
	return c
}

// WithLanguage returns a copy with the language tag set.
func (c Context) WithLanguage(language string) Context {
	c.language = ptr(language)
	return c
}

// WithStatement returns a copy with the statement reference set.
func (c Context) WithStatement(statement StatementReference) Context {
	c.statement = ptr(statement)
	return c
}

// WithExtensions returns a copy with the extensions set.
func (c Context) WithExtensions(extensions Extensions) Context {
	c.extensions = ptr(extensions)
	return c
}

// WithoutRegistration returns a copy with the registration cleared.
func (c Context) WithoutRegistration() Context {
	c.registration = nil
	return c
}

// WithoutInstructor returns a copy with the instructor cleared.
func (c Context) WithoutInstructor() Context {
	c.instructor = nil
	return c
}

// WithoutTeam returns a copy with the team cleared.
func (c Context) WithoutTeam() Context {
	c.team = nil
	return c
}

// WithoutContextActivities returns a copy with the context activities cleared.
func (c Context) WithoutContextActivities() Context {
	c.contextActivities = nil
	return c
}

// WithoutRevision returns a copy with the revision cleared.
func (c Context) WithoutRevision() Context {
	c.revision = nil
	return c
}

// WithoutPlatform returns a copy with the platform cleared.
func (c Context) WithoutPlatform() Context {
	c.platform = nil
	return c
}

// WithoutLanguage returns a copy with the language cleared.
func (c Context) WithoutLanguage() Context {
	c.language = nil
	return c
}

// WithoutStatement returns a copy with the statement cleared.
func (c Context) WithoutStatement() Context {
	c.statement = nil
	return c
}

// WithoutExtensions returns a copy with the extensions cleared.
func (c Context) WithoutExtensions() Context {
	c.extensions = nil
	return c
}
