package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carddex/contact"
)

const contactsYAML = `
records:
  - kind: person
    name: Jane Doe
    uuid: 11111111-1111-1111-1111-111111111111
    notes: met at conference
    created: 2024-01-02T03:04:05Z
    mails:
      - address: jane@example.com
        primary: true
      - address: jd@work.example
    phones:
      - loc: work
        number: 555-0100
    addresses:
      - loc: home
        streets: [123 Main St]
        city: Springfield
        region: IL
        postcode: "62704"
        country: USA
    image: jane.png
    aka: [JD]
    roles:
      - title: CTO
        org: Acme
    relations:
      - rel: spouse
        target: John Doe
  - kind: organization
    name: Acme
    domain: acme.example
  - kind: person
    name: John Doe
    mails:
      - address: john@example.com
  - kind: generic
    name: Lost Property Office
`

func TestLoadYAML(t *testing.T) {
	t.Parallel()
	db, err := contact.LoadYAML(strings.NewReader(contactsYAML))
	require.NoError(t, err)
	recs := db.Records()
	require.Len(t, recs, 4)

	jane, ok := recs[0].(*contact.Person)
	require.True(t, ok)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", jane.UUID().String())
	assert.Equal(t, "met at conference", jane.Notes)
	assert.Equal(t, 2024, jane.Created.Year())
	require.Len(t, jane.Mails, 2)
	assert.True(t, jane.Mails[0].Primary)
	require.Len(t, jane.Addresses, 1)
	assert.Equal(t, "123 Main St\nSpringfield, IL 62704\nUSA", jane.Addresses[0].String())
	require.Len(t, jane.AKA, 1)
	assert.Equal(t, "JD", jane.AKA[0].Name)

	org, ok := recs[1].(*contact.Organization)
	require.True(t, ok)
	require.NotNil(t, org.Domain)
	assert.Equal(t, "acme.example", org.Domain.Host)

	_, ok = recs[3].(*contact.Generic)
	assert.True(t, ok)
}

func TestLoadYAMLResolvesNameReferences(t *testing.T) {
	t.Parallel()
	db, err := contact.LoadYAML(strings.NewReader(contactsYAML))
	require.NoError(t, err)
	recs := db.Records()

	jane := recs[0].(*contact.Person)
	org := recs[1].(*contact.Organization)
	john := recs[2].(*contact.Person)

	// Role resolved against the org declared after the person.
	require.Len(t, jane.Roles, 1)
	assert.Equal(t, org.UUID(), jane.Roles[0].Org)
	assert.Equal(t, "Acme", jane.Roles[0].OrgName)
	assert.Equal(t, "Jane Doe", jane.Roles[0].Holder)

	// Reverse index linked through the name reference.
	roles := db.RolesFor(org.UUID())
	require.Len(t, roles, 1)
	assert.Equal(t, jane.UUID(), roles[0].HolderID)

	// Relation resolved to John's generated UUID.
	require.Len(t, jane.Relations, 1)
	assert.Equal(t, john.UUID(), jane.Relations[0].Target)
	assert.Equal(t, "John Doe", jane.Relations[0].TargetName)
}

func TestLoadYAMLUUIDReference(t *testing.T) {
	t.Parallel()
	const data = `
records:
  - kind: organization
    name: Acme
    uuid: 22222222-2222-2222-2222-222222222222
  - kind: person
    name: Jane
    roles:
      - title: CEO
        org: 22222222-2222-2222-2222-222222222222
`
	db, err := contact.LoadYAML(strings.NewReader(data))
	require.NoError(t, err)
	recs := db.Records()
	jane := recs[1].(*contact.Person)
	require.Len(t, jane.Roles, 1)
	assert.Equal(t, "Acme", jane.Roles[0].OrgName)
	assert.Equal(t, recs[0].UUID(), jane.Roles[0].Org)
}

func TestLoadYAMLErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data    string
		wantErr error
	}{
		"unknown record kind": {
			data:    "records:\n  - kind: starship\n    name: X\n",
			wantErr: contact.ErrUnknownRecordKind,
		},
		"duplicate uuid": {
			data: "records:\n" +
				"  - kind: person\n    name: A\n    uuid: 11111111-1111-1111-1111-111111111111\n" +
				"  - kind: person\n    name: B\n    uuid: 11111111-1111-1111-1111-111111111111\n",
			wantErr: contact.ErrDuplicateRecord,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := contact.LoadYAML(strings.NewReader(tt.data))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadYAMLMalformed(t *testing.T) {
	t.Parallel()
	_, err := contact.LoadYAML(strings.NewReader("records: ["))
	require.Error(t, err)
}

func TestLoadYAMLBadUUID(t *testing.T) {
	t.Parallel()
	_, err := contact.LoadYAML(strings.NewReader("records:\n  - kind: person\n    name: A\n    uuid: not-a-uuid\n"))
	require.Error(t, err)
}
