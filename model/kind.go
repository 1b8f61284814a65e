// Package model holds the in-memory xAPI values handled by goxapi.
//
// Only Context is owned by this module. The sibling entities (Agent, Group,
// ContextActivities, StatementReference, Extensions) are plain values whose
// wire encoding is supplied by the embedding system through a NestedCodec.
package model

// Kind identifies the entity a nested sub-document is decoded into.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindActor
	KindGroup
	KindContextActivities
	KindStatementReference
	KindExtensions
	KindContext
)

var kindNames = [...]string{
	KindUnknown:            "Unknown",
	KindActor:              "Actor",
	KindGroup:              "Group",
	KindContextActivities:  "ContextActivities",
	KindStatementReference: "StatementReference",
	KindExtensions:         "Extensions",
	KindContext:            "Context",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// Entity is implemented by every value that can be nested in a document.
type Entity interface {
	EntityKind() Kind
}
