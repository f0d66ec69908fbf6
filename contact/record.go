package contact

import (
	"time"

	"github.com/google/uuid"
)

// Record is a contact-database record. The concrete type determines which
// field collections exist; see [Generic], [Entity], [Person], and
// [Organization]. Records are read-only during rendering.
type Record interface {
	Kind() RecordKind
	UUID() uuid.UUID
	DisplayName() string
}

// Generic is the base record variant: identity and bookkeeping only.
type Generic struct {
	ID      uuid.UUID
	Name    string
	Notes   string
	Created time.Time
	Updated time.Time
}

func (g *Generic) Kind() RecordKind    { return RecordGeneric }
func (g *Generic) UUID() uuid.UUID     { return g.ID }
func (g *Generic) DisplayName() string { return g.Name }

// Entity extends Generic with reachability fields.
type Entity struct {
	Generic
	Mails     []*Mail
	Phones    []*Phone
	Addresses []*Address
	Image     *Image
}

func (e *Entity) Kind() RecordKind { return RecordEntity }

// Person extends Entity with alternate names, organization roles, and
// relations to other records.
type Person struct {
	Entity
	AKA       []*Name
	Roles     []*Role
	Relations []*Relation
}

func (p *Person) Kind() RecordKind { return RecordPerson }

// Organization extends Entity with a domain and the reverse lookup of roles
// held at it. Affiliations is maintained by the database, keyed by the
// organization's UUID, so it stays correct regardless of insert order.
type Organization struct {
	Entity
	Domain       *Domain
	Affiliations []*Role
}

func (o *Organization) Kind() RecordKind { return RecordOrganization }

// genericOf returns the embedded base of any record variant.
func genericOf(r Record) *Generic {
	switch v := r.(type) {
	case *Generic:
		return v
	case *Entity:
		return &v.Generic
	case *Person:
		return &v.Generic
	case *Organization:
		return &v.Generic
	}
	return nil
}

// entityOf returns the embedded entity level, or nil for plain generics.
func entityOf(r Record) *Entity {
	switch v := r.(type) {
	case *Entity:
		return v
	case *Person:
		return &v.Entity
	case *Organization:
		return &v.Entity
	}
	return nil
}
