package model

import (
	"maps"
	"reflect"
	"slices"
)

// Actor is either an Agent or a Group.
type Actor interface {
	Entity
	ObjectType() string
	cloneActor() Actor
}

// Account identifies an actor by an account on an existing system.
type Account struct {
	HomePage string
	Name     string
}

// Identifier is the inverse functional identifier shared by agents and groups.
// At most one of the fields is expected to be set.
type Identifier struct {
	Mbox        string
	MboxSHA1Sum string
	OpenID      string
	Account     *Account
}

func (id Identifier) clone() Identifier {
	if id.Account != nil {
		a := *id.Account
		id.Account = &a
	}
	return id
}

// Agent is an individual actor.
type Agent struct {
	Identifier
	Name string
}

func (Agent) EntityKind() Kind   { return KindActor }
func (Agent) ObjectType() string { return "Agent" }

func (a Agent) clone() Agent {
	a.Identifier = a.Identifier.clone()
	return a
}

func (a Agent) cloneActor() Actor { return a.clone() }

// Group is an identified or anonymous collection of agents.
type Group struct {
	Identifier
	Name    string
	Members []Agent
}

func (Group) EntityKind() Kind   { return KindGroup }
func (Group) ObjectType() string { return "Group" }

func (g Group) clone() Group {
	g.Identifier = g.Identifier.clone()
	if g.Members != nil {
		members := make([]Agent, len(g.Members))
		for i, m := range g.Members {
			members[i] = m.clone()
		}
		g.Members = members
	}
	return g
}

func (g Group) cloneActor() Actor { return g.clone() }

// Activity is referenced by its IRI.
type Activity struct {
	ID string
}

// ContextActivities groups the activities related to a statement by role.
type ContextActivities struct {
	Parent   []Activity
	Grouping []Activity
	Category []Activity
	Other    []Activity
}

func (ContextActivities) EntityKind() Kind { return KindContextActivities }

func (ca ContextActivities) clone() ContextActivities {
	ca.Parent = slices.Clone(ca.Parent)
	ca.Grouping = slices.Clone(ca.Grouping)
	ca.Category = slices.Clone(ca.Category)
	ca.Other = slices.Clone(ca.Other)
	return ca
}

// StatementReference points at another statement by its id.
type StatementReference struct {
	StatementID string
}

func (StatementReference) EntityKind() Kind { return KindStatementReference }

// Extensions maps IRI keys to arbitrary values. The zero value is empty.
// The underlying map is copied on the way in and out so an Extensions value
// can be shared freely.
type Extensions struct {
	m map[string]any
}

// NewExtensions copies m into a new Extensions value.
func NewExtensions(m map[string]any) Extensions {
	return Extensions{m: maps.Clone(m)}
}

func (Extensions) EntityKind() Kind { return KindExtensions }

// Get returns the value stored under key.
func (e Extensions) Get(key string) (any, bool) {
	v, ok := e.m[key]
	return v, ok
}

// Keys returns the extension keys in sorted order.
func (e Extensions) Keys() []string {
	return slices.Sorted(maps.Keys(e.m))
}

func (e Extensions) Len() int { return len(e.m) }

// Map returns a copy of the extension values.
func (e Extensions) Map() map[string]any {
	if e.m == nil {
		return map[string]any{}
	}
	return maps.Clone(e.m)
}

// Equal reports whether both values hold the same keys and values.
func (e Extensions) Equal(o Extensions) bool {
	if len(e.m) != len(o.m) {
		return false
	}
	return reflect.DeepEqual(e.Map(), o.Map())
}
