// SPDX-License-Identifier: MPL-2.0

package seqio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/easify/easify/internal/config"
	"github.com/easify/easify/pkg/unpack"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

type (
	// Result is the serialized form of an unpack: the pattern text and one
	// entry per slot in pattern order.
	Result struct {
		Pattern  string  `json:"pattern" toml:"pattern"`
		Bindings []Entry `json:"bindings" toml:"bindings"`
	}

	// Entry is one slot binding. Scalar slots set Value, the rest slot sets
	// Values. An empty rest still serializes as an empty list.
	Entry struct {
		Name    string    `json:"name" toml:"name"`
		Role    string    `json:"role" toml:"role"`
		Mutable bool      `json:"mutable,omitempty" toml:"mutable,omitempty"`
		Value   *string   `json:"value,omitempty" toml:"value,omitempty"`
		Values  *[]string `json:"values,omitempty" toml:"values,omitempty"`
	}

	// TextStyles styles the text output format.
	TextStyles struct {
		Name  lipgloss.Style
		Rest  lipgloss.Style
		Value lipgloss.Style
		Punct lipgloss.Style
	}
)

// DefaultTextStyles returns unstyled text output.
func DefaultTextStyles() TextStyles {
	return TextStyles{
		Name:  lipgloss.NewStyle(),
		Rest:  lipgloss.NewStyle(),
		Value: lipgloss.NewStyle(),
		Punct: lipgloss.NewStyle(),
	}
}

// NewResult converts bindings into their serialized form.
func NewResult(p *unpack.Pattern, bs *unpack.Bindings[string]) Result {
	res := Result{Pattern: p.String(), Bindings: make([]Entry, 0, bs.Len())}
	for i := range bs.Len() {
		b := bs.At(i)
		e := Entry{Name: b.Name(), Role: b.Slot().Role.String(), Mutable: b.Slot().Mutable}
		if b.IsRest() {
			vs := append([]string{}, b.Values()...)
			e.Values = &vs
		} else {
			v := b.Value()
			e.Value = &v
		}
		res.Bindings = append(res.Bindings, e)
	}
	return res
}

// Write renders res in the given output format.
func Write(w io.Writer, res Result, f config.OutputFormat, styles TextStyles) error {
	switch f {
	case config.OutputText, "":
		_, err := io.WriteString(w, FormatText(res, styles))
		return err
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.OutputTOML:
		return toml.NewEncoder(w).Encode(res)
	default:
		_, errs := f.IsValid()
		return errs[0]
	}
}

// FormatText renders one aligned line per binding:
//
//	head  = 1
//	*rest = [2, 3]
func FormatText(res Result, styles TextStyles) string {
	labels := make([]string, len(res.Bindings))
	width := 0
	for i, e := range res.Bindings {
		label := e.Name
		if e.Value == nil {
			label = "*" + label
		}
		if e.Mutable {
			label = "mut " + label
		}
		labels[i] = label
		width = max(width, lipgloss.Width(label))
	}

	var sb strings.Builder
	for i, e := range res.Bindings {
		pad := strings.Repeat(" ", width-lipgloss.Width(labels[i]))
		nameStyle := styles.Name
		if e.Value == nil {
			nameStyle = styles.Rest
		}
		sb.WriteString(nameStyle.Render(labels[i]))
		sb.WriteString(pad)
		sb.WriteString(styles.Punct.Render(" = "))
		if e.Value != nil {
			sb.WriteString(styles.Value.Render(*e.Value))
		} else {
			var values []string
			if e.Values != nil {
				values = *e.Values
			}
			parts := make([]string, len(values))
			for j, v := range values {
				parts[j] = styles.Value.Render(v)
			}
			fmt.Fprintf(&sb, "%s%s%s",
				styles.Punct.Render("["),
				strings.Join(parts, styles.Punct.Render(", ")),
				styles.Punct.Render("]"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// list is the serialized form of a plain sequence.
type list struct {
	Values []string `json:"values" toml:"values"`
}

// WriteList renders a plain sequence: one element per line as text, or a
// `values` array in JSON and TOML.
func WriteList(w io.Writer, values []string, f config.OutputFormat, style lipgloss.Style) error {
	if values == nil {
		values = []string{}
	}
	switch f {
	case config.OutputText, "":
		var sb strings.Builder
		for _, v := range values {
			sb.WriteString(style.Render(v))
			sb.WriteByte('\n')
		}
		_, err := io.WriteString(w, sb.String())
		return err
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list{Values: values})
	case config.OutputTOML:
		return toml.NewEncoder(w).Encode(list{Values: values})
	default:
		_, errs := f.IsValid()
		return errs[0]
	}
}
