package contact

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownKind       = errors.New("unknown field kind")
	ErrUnknownRecordKind = errors.New("unknown record kind")
	ErrDuplicateRecord   = errors.New("duplicate record")
)

// Kind identifies a field's semantic class.
type Kind string

const (
	KindMail      Kind = "mail"
	KindPhone     Kind = "phone"
	KindAddress   Kind = "address"
	KindName      Kind = "name"
	KindRole      Kind = "role"
	KindRelation  Kind = "relation"
	KindDomain    Kind = "domain"
	KindNotes     Kind = "notes"
	KindUUID      Kind = "uuid"
	KindCreation  Kind = "creation-date"
	KindTimestamp Kind = "timestamp"
	KindImage     Kind = "image"
)

var kinds = []Kind{
	KindMail, KindPhone, KindAddress, KindName, KindRole, KindRelation,
	KindDomain, KindNotes, KindUUID, KindCreation, KindTimestamp, KindImage,
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Display returns the human-readable label for the kind, used when a field
// entry has no instance label of its own.
func (k Kind) Display() string {
	switch k {
	case KindMail:
		return "Mail"
	case KindPhone:
		return "Phone"
	case KindAddress:
		return "Address"
	case KindName:
		return "AKA"
	case KindRole:
		return "Role"
	case KindRelation:
		return "Relation"
	case KindDomain:
		return "Domain"
	case KindNotes:
		return "Notes"
	case KindUUID:
		return "UUID"
	case KindCreation:
		return "Created"
	case KindTimestamp:
		return "Updated"
	case KindImage:
		return "Image"
	default:
		return string(k)
	}
}

// Kinds returns all field kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a field kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// RecordKind identifies a record's variant.
type RecordKind string

const (
	RecordGeneric      RecordKind = "generic"
	RecordEntity       RecordKind = "entity"
	RecordPerson       RecordKind = "person"
	RecordOrganization RecordKind = "organization"
)

var recordKinds = []RecordKind{RecordGeneric, RecordEntity, RecordPerson, RecordOrganization}

// String returns the record kind name.
func (k RecordKind) String() string { return string(k) }

// RecordKinds returns all record kinds.
func RecordKinds() []RecordKind {
	out := make([]RecordKind, len(recordKinds))
	copy(out, recordKinds)
	return out
}

// ParseRecordKind parses a record kind name.
func ParseRecordKind(s string) (RecordKind, error) {
	for _, k := range recordKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRecordKind, s)
}
