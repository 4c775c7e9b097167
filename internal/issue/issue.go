// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	MalformedPatternId Id = iota + 1
	DuplicateSlotId
	PatternSyntaxId
	ArityMismatchId
	InsufficientElementsId
	InputParseFailedId
	CatalogLoadFailedId
	PatternNotFoundId
	ConfigLoadFailedId
	InvalidCountId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	slug  string      // stable name accepted by `easify explain`
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Slug() string {
	return i.slug
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue page with glamour using the given style
// ("auto", "dark", "light" or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	malformedPatternIssue = &Issue{
		id:   MalformedPatternId,
		slug: "malformed-pattern",
		mdMsg: `
# Malformed pattern!

A pattern may contain at most **one** rest slot (a slot written with ` + "`*`" + `).
With two rest slots there is no single way to divide the elements between them.

## Things you can try:
- Keep one ` + "`*name`" + ` slot and turn the others into plain slots
- Unpack the rest slot again with a second pattern:
~~~
$ easify unpack 'first, *middle' 1 2 3 4
$ easify unpack 'a, *b' 2 3 4
~~~`,
	}

	duplicateSlotIssue = &Issue{
		id:   DuplicateSlotId,
		slug: "duplicate-slot",
		mdMsg: `
# Duplicate slot name!

Unique slot names are enforced (` + "`--unique-names`" + ` or ` + "`unique_names: true`" + `) and two
slots in the pattern share a name.

## Things you can try:
- Rename one of the slots
- Use ` + "`_`" + `-prefixed names for elements you do not care about
- Drop ` + "`unique_names`" + ` to let later slots shadow earlier ones`,
	}

	patternSyntaxIssue = &Issue{
		id:   PatternSyntaxId,
		slug: "pattern-syntax",
		mdMsg: `
# Pattern syntax error!

The slot list could not be parsed.

## Pattern syntax:
~~~
slot, slot, ...
  name        plain slot
  *name       rest slot (at most one)
  mut name    mutable slot
  mut *name   mutable rest slot
~~~

Names start with an ASCII letter or ` + "`_`" + ` and continue with ASCII letters, digits or ` + "`_`" + `.
` + "`mut`" + ` is reserved.`,
	}

	arityMismatchIssue = &Issue{
		id:   ArityMismatchId,
		slug: "arity-mismatch",
		mdMsg: `
# Arity mismatch!

The pattern has no rest slot, so the sequence must have **exactly** as many elements as
the pattern has slots. Elements are never silently dropped or padded.

## Things you can try:
- Add a rest slot to absorb extra elements:
~~~
$ easify unpack 'a, b, *others' 1 2 3 4
~~~
- Check how your input was split with ` + "`--input`" + ` and ` + "`--delimiter`",
	}

	insufficientElementsIssue = &Issue{
		id:   InsufficientElementsId,
		slug: "insufficient-elements",
		mdMsg: `
# Not enough elements!

A pattern with a rest slot needs at least one element for every other slot. The rest slot
itself may be empty.

## Things you can try:
- Inspect the minimum length of the pattern:
~~~
$ easify check 'a, *b, c'
~~~
- Remove slots you do not need`,
	}

	inputParseFailedIssue = &Issue{
		id:   InputParseFailedId,
		slug: "input-parse",
		mdMsg: `
# Could not read the sequence!

The elements could not be parsed with the selected input format.

## Input formats:
- ` + "`shell`" + `: words split like a POSIX shell, quotes group words
- ` + "`delimited`" + `: text split on ` + "`--delimiter`" + `
- ` + "`json`" + `: a single JSON array`,
	}

	catalogLoadFailedIssue = &Issue{
		id:   CatalogLoadFailedId,
		slug: "catalog-load",
		mdMsg: `
# Failed to load the pattern catalog!

Catalog files map pattern names to slot lists, in CUE or TOML.

## Example (patterns.cue):
~~~cue
patterns: {
	pair:   "first, *rest"
	triple: "x, y, z"
}
~~~

## Example (patterns.toml):
~~~toml
[patterns]
pair = "first, *rest"
~~~`,
	}

	patternNotFoundIssue = &Issue{
		id:   PatternNotFoundId,
		slug: "pattern-not-found",
		mdMsg: `
# Pattern not found!

The ` + "`@name`" + ` reference does not match any entry in the catalog.

## Things you can try:
~~~
$ easify catalog list
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		slug: "config-load",
		mdMsg: `
# Failed to load configuration!

Could not load the easify configuration file.

## Things you can try:
- Recreate the default file:
~~~
$ easify config init
~~~
- Show where configuration is read from:
~~~
$ easify config path
~~~`,
	}

	invalidCountIssue = &Issue{
		id:   InvalidCountId,
		slug: "invalid-count",
		mdMsg: `
# Invalid count!

` + "`repeat`" + ` needs a count of zero or more and ` + "`split`" + ` needs at least one part. ` + "`split`" + `
fails when the text has fewer parts than requested.`,
	}

	issues = map[Id]*Issue{
		malformedPatternIssue.Id():     malformedPatternIssue,
		duplicateSlotIssue.Id():        duplicateSlotIssue,
		patternSyntaxIssue.Id():        patternSyntaxIssue,
		arityMismatchIssue.Id():        arityMismatchIssue,
		insufficientElementsIssue.Id(): insufficientElementsIssue,
		inputParseFailedIssue.Id():     inputParseFailedIssue,
		catalogLoadFailedIssue.Id():    catalogLoadFailedIssue,
		patternNotFoundIssue.Id():      patternNotFoundIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		invalidCountIssue.Id():         invalidCountIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}

// BySlug looks an issue up by its slug.
func BySlug(slug string) *Issue {
	all := Values()
	if i := slices.IndexFunc(all, func(is *Issue) bool { return is.slug == slug }); i >= 0 {
		return all[i]
	}
	return nil
}
