package contact

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Records []yamlRecord `yaml:"records"`
}

type yamlRecord struct {
	Kind      string         `yaml:"kind"`
	UUID      string         `yaml:"uuid"`
	Name      string         `yaml:"name"`
	Notes     string         `yaml:"notes"`
	Created   time.Time      `yaml:"created"`
	Updated   time.Time      `yaml:"updated"`
	Mails     []yamlMail     `yaml:"mails"`
	Phones    []yamlPhone    `yaml:"phones"`
	Addresses []yamlAddress  `yaml:"addresses"`
	Image     string         `yaml:"image"`
	AKA       []string       `yaml:"aka"`
	Roles     []yamlRole     `yaml:"roles"`
	Relations []yamlRelation `yaml:"relations"`
	Domain    string         `yaml:"domain"`
}

type yamlMail struct {
	Address string `yaml:"address"`
	Primary bool   `yaml:"primary"`
}

type yamlPhone struct {
	Loc    string `yaml:"loc"`
	Number string `yaml:"number"`
}

type yamlAddress struct {
	Loc      string   `yaml:"loc"`
	Streets  []string `yaml:"streets"`
	City     string   `yaml:"city"`
	Region   string   `yaml:"region"`
	PostCode string   `yaml:"postcode"`
	Country  string   `yaml:"country"`
}

type yamlRole struct {
	Title string `yaml:"title"`
	Org   string `yaml:"org"` // UUID or record name
}

type yamlRelation struct {
	Rel    string `yaml:"rel"`
	Target string `yaml:"target"` // UUID or record name
}

// LoadYAML reads a contact file and returns a populated database. Role org
// and relation target references accept either a UUID or a record name;
// names are resolved after all records have been read, so forward
// references work.
func LoadYAML(r io.Reader) (*DB, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse contacts: %w", err)
	}

	byName := make(map[string]uuid.UUID)
	nameByID := make(map[uuid.UUID]string)
	recs := make([]Record, 0, len(file.Records))
	raw := make([]yamlRecord, 0, len(file.Records))
	for _, yr := range file.Records {
		rec, err := buildRecord(yr)
		if err != nil {
			return nil, err
		}
		byName[yr.Name] = rec.UUID()
		nameByID[rec.UUID()] = yr.Name
		recs = append(recs, rec)
		raw = append(raw, yr)
	}

	// Second pass: resolve role/relation references now that every record
	// has an identity.
	for i, rec := range recs {
		switch v := rec.(type) {
		case *Person:
			for j, role := range v.Roles {
				id, name := resolveRef(raw[i].Roles[j].Org, byName, nameByID)
				role.Org = id
				role.OrgName = name
			}
			for j, rel := range v.Relations {
				id, name := resolveRef(raw[i].Relations[j].Target, byName, nameByID)
				rel.Target = id
				rel.TargetName = name
			}
		}
	}

	db := NewDB()
	if err := db.Add(recs...); err != nil {
		return nil, err
	}
	return db, nil
}

func buildRecord(yr yamlRecord) (Record, error) {
	kind, err := ParseRecordKind(yr.Kind)
	if err != nil {
		return nil, err
	}
	g := Generic{
		Name:    yr.Name,
		Notes:   yr.Notes,
		Created: yr.Created,
		Updated: yr.Updated,
	}
	if yr.UUID != "" {
		id, err := uuid.Parse(yr.UUID)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", yr.Name, err)
		}
		g.ID = id
	} else {
		g.ID = uuid.New()
	}

	e := Entity{Generic: g}
	for _, m := range yr.Mails {
		e.Mails = append(e.Mails, &Mail{Address: m.Address, Primary: m.Primary})
	}
	for _, p := range yr.Phones {
		e.Phones = append(e.Phones, &Phone{Loc: p.Loc, Number: p.Number})
	}
	for _, a := range yr.Addresses {
		e.Addresses = append(e.Addresses, &Address{
			Loc: a.Loc, Streets: a.Streets, City: a.City,
			Region: a.Region, PostCode: a.PostCode, Country: a.Country,
		})
	}
	if yr.Image != "" {
		e.Image = &Image{Path: yr.Image}
	}

	switch kind {
	case RecordGeneric:
		return &g, nil
	case RecordEntity:
		return &e, nil
	case RecordPerson:
		p := Person{Entity: e}
		for _, n := range yr.AKA {
			p.AKA = append(p.AKA, &Name{Name: n})
		}
		for _, r := range yr.Roles {
			p.Roles = append(p.Roles, &Role{Title: r.Title, OrgName: r.Org})
		}
		for _, r := range yr.Relations {
			p.Relations = append(p.Relations, &Relation{Rel: r.Rel, TargetName: r.Target})
		}
		return &p, nil
	case RecordOrganization:
		o := Organization{Entity: e}
		if yr.Domain != "" {
			o.Domain = &Domain{Host: yr.Domain}
		}
		return &o, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRecordKind, yr.Kind)
}

// resolveRef maps a UUID-or-name reference to an identity. An unknown name
// is kept as the display name with a zero UUID; the database may still
// resolve it against records added later.
func resolveRef(ref string, byName map[string]uuid.UUID, nameByID map[uuid.UUID]string) (uuid.UUID, string) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nameByID[id]
	}
	if id, ok := byName[ref]; ok {
		return id, ref
	}
	return uuid.Nil, ref
}
