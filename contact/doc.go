// Package contact holds the record and field type model consumed by the
// rendering pipeline, plus a small in-memory database.
//
// Records form a closed variant set expressed by struct embedding:
// [Generic] carries identity and bookkeeping, [Entity] adds mail/phone/
// address collections, [Person] adds alternate names, roles, and relations,
// and [Organization] adds a domain and the reverse lookup of roles held at
// it. Fields are a closed set of [Field] implementations identified by
// [Kind]; variants with an instance label (phone location, role title)
// additionally implement [Labeled].
//
// [DB] keeps records in insertion order, assigns identities, marks a
// primary mail, and maintains each organization's affiliation index in both
// insert orders. [LoadYAML] reads a contact file, resolving role and
// relation references given as UUIDs or record names. [DB.CompleteMail]
// serves mail-address completion over names and addresses.
package contact
