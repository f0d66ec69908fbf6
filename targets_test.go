package carddex_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carddex"
	"carddex/contact"
)

func renderOne(t *testing.T, target carddex.Target, rec contact.Record, opts ...carddex.Option) string {
	t.Helper()
	rend := carddex.New(mustConfig(t, opts...), target)
	var buf bytes.Buffer
	require.NoError(t, rend.Render(&buf, rec))
	return buf.String()
}

// ============================================================
// Plain
// ============================================================

func TestPlainAlignsLabels(t *testing.T) {
	t.Parallel()
	p := richPerson()
	p.Roles = nil
	p.Image = nil
	got := renderOne(t, carddex.Plain{}, p)
	want := strings.Join([]string{
		"Jane Doe",
		"",
		"Mail:   jane@example.com",
		"Mail:   jd@example.org",
		"work:   555-0100",
		"home:   123 Main St",
		"AKA:    JD",
		"spouse: John Doe",
		"Notes:  met at conference",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestPlainCollapsedAddress(t *testing.T) {
	t.Parallel()
	p := namedPerson("A", "a@x.com")
	p.Addresses = []*contact.Address{{
		Loc: "home", Streets: []string{"123 Main St"}, City: "Springfield",
	}}
	got := renderOne(t, carddex.Plain{}, p, carddex.WithCollapse(contact.KindAddress))
	assert.Contains(t, got, "home: 123 Main St ...\n")
	assert.NotContains(t, got, "Springfield")
}

// ============================================================
// Markdown
// ============================================================

func TestMarkdownTable(t *testing.T) {
	t.Parallel()
	got := renderOne(t, carddex.Markdown{}, testPerson())
	want := strings.Join([]string{
		"## Jane Doe",
		"",
		"**CTO**: Acme",
		"",
		"| Field | Value            |",
		"| ----- | ---------------- |",
		"| Mail  | jane@example.com |",
		"| work  | 555-0100         |",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestMarkdownEscapesPipes(t *testing.T) {
	t.Parallel()
	p := namedPerson("A|B", "a@x.com")
	got := renderOne(t, carddex.Markdown{}, p)
	assert.Contains(t, got, `## A\|B`)
}

// ============================================================
// HTML
// ============================================================

func TestHTMLPage(t *testing.T) {
	t.Parallel()
	got := renderOne(t, carddex.HTML{}, testPerson(), carddex.WithCoding("iso-8859-1"))
	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>\n"))
	assert.Contains(t, got, `<meta charset="iso-8859-1">`)
	assert.Contains(t, got, "<h2>Jane Doe</h2>")
	assert.Contains(t, got, `<dl class="header">`)
	assert.Contains(t, got, "<dt>CTO</dt>\n    <dd>Acme</dd>")
	assert.Contains(t, got, "<dt>Mail</dt>\n    <dd>jane@example.com</dd>")
	assert.True(t, strings.HasSuffix(got, "</body>\n</html>\n"))
}

func TestHTMLEscapes(t *testing.T) {
	t.Parallel()
	p := namedPerson("Mme <Ampersand> & Co", "a@x.com")
	got := renderOne(t, carddex.HTML{}, p)
	assert.Contains(t, got, "<h2>Mme &lt;Ampersand&gt; &amp; Co</h2>")
	assert.NotContains(t, got, "<Ampersand>")
}

// ============================================================
// LaTeX
// ============================================================

func TestLaTeXDocument(t *testing.T) {
	t.Parallel()
	got := renderOne(t, carddex.LaTeX{}, testPerson())
	want := strings.Join([]string{
		`\documentclass{article}`,
		`\usepackage[utf8]{inputenc}`,
		`\begin{document}`,
		`\subsection*{Jane Doe}`,
		`\textbf{CTO}: Acme\\`,
		`\begin{tabular}{ll}`,
		`Mail & jane@example.com \\`,
		`work & 555-0100 \\`,
		`\end{tabular}`,
		`\end{document}`,
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestLaTeXEscapes(t *testing.T) {
	t.Parallel()
	p := namedPerson("Smith & Jones_100%", "a@x.com")
	got := renderOne(t, carddex.LaTeX{}, p)
	assert.Contains(t, got, `\subsection*{Smith \& Jones\_100\%}`)
}

// ============================================================
// vCard
// ============================================================

func TestVCardStructure(t *testing.T) {
	t.Parallel()
	got := renderOne(t, carddex.VCard{}, testPerson())
	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Jane Doe",
		"UID:11111111-1111-1111-1111-111111111111",
		"ORG:Acme",
		"TITLE:CTO",
		"EMAIL;TYPE=INTERNET,PREF:jane@example.com",
		"TEL;TYPE=work:555-0100",
		"END:VCARD",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestVCardOrganization(t *testing.T) {
	t.Parallel()
	got := renderOne(t, carddex.VCard{}, testOrg())
	assert.Contains(t, got, "FN:Acme\n")
	assert.Contains(t, got, "ORG:Acme\n")
	assert.Contains(t, got, "URL:acme.example\n")
	assert.Contains(t, got, "ROLE:Jane Doe (CTO)\n")
}

func TestVCardEscaping(t *testing.T) {
	t.Parallel()
	p := namedPerson("Doe; Jane, PhD", "a@x.com")
	p.Notes = "line one\nline two"
	got := renderOne(t, carddex.VCard{}, p)
	assert.Contains(t, got, `FN:Doe\; Jane\, PhD`)
	assert.Contains(t, got, `NOTE:line one\nline two`)
}

func TestVCardAddress(t *testing.T) {
	t.Parallel()
	p := namedPerson("A", "a@x.com")
	p.Addresses = []*contact.Address{{
		Loc: "home", Streets: []string{"123 Main St"},
		City: "Springfield", Region: "IL", PostCode: "62704", Country: "USA",
	}}
	got := renderOne(t, carddex.VCard{}, p)
	assert.Contains(t, got, "ADR;TYPE=home:;;123 Main St;Springfield;IL;62704;USA\n")
}

func TestVCardBatchConcatenatesDirectly(t *testing.T) {
	t.Parallel()
	rend := carddex.New(mustConfig(t), carddex.VCard{})
	var buf bytes.Buffer
	require.NoError(t, rend.Render(&buf, namedPerson("A", "a@x.com"), namedPerson("B", "b@x.com")))
	assert.Contains(t, buf.String(), "END:VCARD\nBEGIN:VCARD\n")
}

// ============================================================
// JSON lines
// ============================================================

func TestJSONLinesRecord(t *testing.T) {
	t.Parallel()
	got := renderOne(t, carddex.JSONLines{}, testPerson())
	require.True(t, strings.HasSuffix(got, "\n"))

	var obj struct {
		Kind   string `json:"kind"`
		UUID   string `json:"uuid"`
		Name   string `json:"name"`
		Header []struct {
			Kind  string `json:"kind"`
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"header"`
		Fields []struct {
			Kind  string `json:"kind"`
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &obj))
	assert.Equal(t, "person", obj.Kind)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", obj.UUID)
	assert.Equal(t, "Jane Doe", obj.Name)
	require.Len(t, obj.Header, 1)
	assert.Equal(t, "role", obj.Header[0].Kind)
	assert.Equal(t, "CTO", obj.Header[0].Label)
	assert.Equal(t, "Acme", obj.Header[0].Value)
	require.Len(t, obj.Fields, 2)
	assert.Equal(t, "Mail", obj.Fields[0].Label)
	assert.Equal(t, "jane@example.com", obj.Fields[0].Value)
}

func TestJSONLinesOnePerLine(t *testing.T) {
	t.Parallel()
	rend := carddex.New(mustConfig(t), carddex.JSONLines{})
	var buf bytes.Buffer
	require.NoError(t, rend.Render(&buf, namedPerson("A", "a@x.com"), namedPerson("B", "b@x.com")))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.NoError(t, json.Unmarshal([]byte(line), &map[string]any{}))
	}
}

// ============================================================
// Target plumbing
// ============================================================

func TestBuiltins(t *testing.T) {
	t.Parallel()
	names := make([]string, 0)
	for _, target := range carddex.Builtins() {
		names = append(names, target.Name())
	}
	assert.Equal(t, []string{"plain", "markdown", "html", "latex", "vcard", "json"}, names)
}

func TestLookupTarget(t *testing.T) {
	t.Parallel()
	target, err := carddex.LookupTarget("vcard")
	require.NoError(t, err)
	assert.Equal(t, "vcard", target.Name())

	_, err = carddex.LookupTarget("punchcard")
	require.ErrorIs(t, err, carddex.ErrUnknownTarget)

	custom := shoutTarget{}
	target, err = carddex.LookupTarget("shout", custom)
	require.NoError(t, err)
	assert.Equal(t, "shout", target.Name())
}
