package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field is a single typed datum attached to a record. String returns the
// full display value, which may span multiple lines (addresses, notes).
type Field interface {
	Kind() Kind
	String() string
}

// Labeled is implemented by field variants that carry an instance label in
// addition to their value, such as a phone's location or a role's title.
type Labeled interface {
	Field
	Label() string
}

// Mail is an email address. At most one mail per record is flagged primary.
type Mail struct {
	Address string
	Primary bool
}

func (m Mail) Kind() Kind     { return KindMail }
func (m Mail) String() string { return m.Address }

// Phone is a phone number with a location label ("home", "work", ...).
type Phone struct {
	Loc    string
	Number string
}

func (p Phone) Kind() Kind     { return KindPhone }
func (p Phone) String() string { return p.Number }
func (p Phone) Label() string  { return p.Loc }

// Address is a postal address with a location label. Its display value is
// multi-line: one line per street, then "City, Region PostCode", then the
// country, empty pieces omitted.
type Address struct {
	Loc      string
	Streets  []string
	City     string
	Region   string
	PostCode string
	Country  string
}

func (a Address) Kind() Kind    { return KindAddress }
func (a Address) Label() string { return a.Loc }

func (a Address) String() string {
	var lines []string
	for _, s := range a.Streets {
		if s != "" {
			lines = append(lines, s)
		}
	}
	var locality []string
	if a.City != "" {
		locality = append(locality, a.City)
	}
	if rp := strings.TrimSpace(a.Region + " " + a.PostCode); rp != "" {
		locality = append(locality, rp)
	}
	if len(locality) > 0 {
		lines = append(lines, strings.Join(locality, ", "))
	}
	if a.Country != "" {
		lines = append(lines, a.Country)
	}
	return strings.Join(lines, "\n")
}

// Name is an alternate name (AKA) for a person.
type Name struct {
	Name string
}

func (n Name) Kind() Kind     { return KindName }
func (n Name) String() string { return n.Name }

// Role ties a person to an organization under a title. Holder and HolderID
// identify the person the role belongs to; the database fills them at insert
// so an organization render needs no lookup.
type Role struct {
	Title    string
	Org      uuid.UUID
	OrgName  string
	Holder   string
	HolderID uuid.UUID
}

func (r Role) Kind() Kind     { return KindRole }
func (r Role) String() string { return r.OrgName }
func (r Role) Label() string  { return r.Title }

// Relation links a record to another record ("spouse", "manager", ...).
type Relation struct {
	Rel        string
	Target     uuid.UUID
	TargetName string
}

func (r Relation) Kind() Kind    { return KindRelation }
func (r Relation) Label() string { return r.Rel }

func (r Relation) String() string {
	if r.TargetName != "" {
		return r.TargetName
	}
	return r.Target.String()
}

// Domain is an organization's internet domain.
type Domain struct {
	Host string
}

func (d Domain) Kind() Kind     { return KindDomain }
func (d Domain) String() string { return d.Host }

// Notes is free text attached to a record, possibly multi-line.
type Notes struct {
	Text string
}

func (n Notes) Kind() Kind     { return KindNotes }
func (n Notes) String() string { return n.Text }

// ID exposes a record's UUID as a renderable field.
type ID struct {
	UUID uuid.UUID
}

func (i ID) Kind() Kind     { return KindUUID }
func (i ID) String() string { return i.UUID.String() }

// Creation is a record's creation date.
type Creation struct {
	At time.Time
}

func (c Creation) Kind() Kind     { return KindCreation }
func (c Creation) String() string { return c.At.Format("2006-01-02") }

// Timestamp is a record's last-modified time.
type Timestamp struct {
	At time.Time
}

func (t Timestamp) Kind() Kind     { return KindTimestamp }
func (t Timestamp) String() string { return t.At.Format("2006-01-02 15:04:05") }

// Image is a portrait or logo, as a file path or URL.
type Image struct {
	Path string
}

func (i Image) Kind() Kind     { return KindImage }
func (i Image) String() string { return i.Path }
