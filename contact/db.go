package contact

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DB is an in-memory, insertion-ordered contact database. It owns the
// records handed to [DB.Add] and maintains the organization affiliation
// reverse index. All methods are safe for concurrent use.
type DB struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]Record
}

// NewDB returns an empty database.
func NewDB() *DB {
	return &DB{byID: make(map[uuid.UUID]Record)}
}

// Add inserts records. It assigns a fresh UUID when the record has none,
// stamps zero Created/Updated times, marks the first mail primary when no
// mail is, fills each role's holder, and links roles into the owning
// organization's affiliation index in both insert orders.
func (db *DB) Add(recs ...Record) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	now := time.Now()
	for _, rec := range recs {
		g := genericOf(rec)
		if g == nil {
			return fmt.Errorf("%w: nil record", ErrUnknownRecordKind)
		}
		if g.ID == uuid.Nil {
			g.ID = uuid.New()
		}
		if _, ok := db.byID[g.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRecord, g.ID)
		}
		if g.Created.IsZero() {
			g.Created = now
		}
		if g.Updated.IsZero() {
			g.Updated = now
		}
		if e := entityOf(rec); e != nil {
			markPrimary(e.Mails)
		}
		db.byID[g.ID] = rec
		db.order = append(db.order, g.ID)

		switch v := rec.(type) {
		case *Person:
			db.linkRoles(v)
		case *Organization:
			db.backfillAffiliations(v)
		}
	}
	return nil
}

func markPrimary(mails []*Mail) {
	for _, m := range mails {
		if m.Primary {
			return
		}
	}
	if len(mails) > 0 {
		mails[0].Primary = true
	}
}

// linkRoles resolves a person's roles against organizations already in the
// database and appends them to the owning org's affiliation index.
func (db *DB) linkRoles(p *Person) {
	for _, role := range p.Roles {
		role.Holder = p.Name
		role.HolderID = p.ID
		org := db.findOrg(role.Org, role.OrgName)
		if org == nil {
			continue
		}
		role.Org = org.ID
		role.OrgName = org.Name
		org.Affiliations = append(org.Affiliations, role)
	}
}

// backfillAffiliations links roles of persons that were added before their
// organization existed.
func (db *DB) backfillAffiliations(o *Organization) {
	for _, id := range db.order {
		p, ok := db.byID[id].(*Person)
		if !ok {
			continue
		}
		for _, role := range p.Roles {
			if role.Org == o.ID || (role.Org == uuid.Nil && role.OrgName == o.Name) {
				role.Org = o.ID
				role.OrgName = o.Name
				o.Affiliations = append(o.Affiliations, role)
			}
		}
	}
}

func (db *DB) findOrg(id uuid.UUID, name string) *Organization {
	if id != uuid.Nil {
		if o, ok := db.byID[id].(*Organization); ok {
			return o
		}
		return nil
	}
	if name == "" {
		return nil
	}
	for _, oid := range db.order {
		if o, ok := db.byID[oid].(*Organization); ok && o.Name == name {
			return o
		}
	}
	return nil
}

// Records returns all records in insertion order.
func (db *DB) Records() []Record {
	db.mu.RLock()
	defer db.mu.RUnlock()
	out := make([]Record, 0, len(db.order))
	for _, id := range db.order {
		out = append(out, db.byID[id])
	}
	return out
}

// Get returns the record with the given UUID.
func (db *DB) Get(id uuid.UUID) (Record, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	rec, ok := db.byID[id]
	return rec, ok
}

// RolesFor returns the affiliation index of the organization with the given
// UUID, or nil when the UUID names no organization.
func (db *DB) RolesFor(orgID uuid.UUID) []*Role {
	db.mu.RLock()
	defer db.mu.RUnlock()
	o, ok := db.byID[orgID].(*Organization)
	if !ok {
		return nil
	}
	out := make([]*Role, len(o.Affiliations))
	copy(out, o.Affiliations)
	return out
}

// CompleteMail returns "Name <address>" candidates for every mail whose
// record name or address matches the prefix case-insensitively, sorted.
func (db *DB) CompleteMail(prefix string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	prefix = strings.ToLower(prefix)
	seen := make(map[string]bool)
	var out []string
	for _, id := range db.order {
		rec := db.byID[id]
		e := entityOf(rec)
		if e == nil {
			continue
		}
		name := rec.DisplayName()
		for _, m := range e.Mails {
			if !strings.HasPrefix(strings.ToLower(name), prefix) &&
				!strings.HasPrefix(strings.ToLower(m.Address), prefix) {
				continue
			}
			cand := fmt.Sprintf("%s <%s>", name, m.Address)
			if !seen[cand] {
				seen[cand] = true
				out = append(out, cand)
			}
		}
	}
	sort.Strings(out)
	return out
}
