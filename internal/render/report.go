// Package render turns a compiled regexlib.Regex into something a person
// can read: text tables, JSON or YAML reports, and Graphviz DOT.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"redfa/regexlib"
)

// Format selects the report encoding. It implements flag.Value.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f *Format) String() string { return string(*f) }

func (f *Format) Set(s string) error {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		*f = Format(s)
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Root summarizes the attributes of the augmented tree's root.
type Root struct {
	Nullable bool  `json:"nullable" yaml:"nullable"`
	Firstpos []int `json:"firstpos" yaml:"firstpos"`
	Lastpos  []int `json:"lastpos" yaml:"lastpos"`
}

// FollowRow is one line of the followpos table.
type FollowRow struct {
	Symbol    string `json:"symbol" yaml:"symbol"`
	Followpos []int  `json:"followpos" yaml:"followpos"`
}

// FollowTable is keyed by position, in ascending position order.
type FollowTable struct {
	*orderedmap.OrderedMap[string, FollowRow]
}

// StateRow describes one DFA state.
type StateRow struct {
	Positions   []int             `json:"positions" yaml:"positions"`
	Final       bool              `json:"final" yaml:"final"`
	Transitions map[string]string `json:"transitions" yaml:"transitions"`
}

// StateTable is keyed by state label, in construction order.
type StateTable struct {
	*orderedmap.OrderedMap[string, StateRow]
}

// Report is everything the build command shows for one pattern.
type Report struct {
	Pattern   string      `json:"pattern" yaml:"pattern" jsonschema:"description=Pattern as given"`
	Explicit  string      `json:"explicit" yaml:"explicit" jsonschema:"description=Pattern with concatenation written as '.'"`
	Tree      string      `json:"tree" yaml:"tree" jsonschema:"description=Augmented syntax tree in prefix form"`
	Root      Root        `json:"root" yaml:"root"`
	Followpos FollowTable `json:"followpos" yaml:"followpos"`
	Alphabet  []string    `json:"alphabet" yaml:"alphabet"`
	Start     string      `json:"start" yaml:"start"`
	Finals    []string    `json:"finals" yaml:"finals"`
	States    StateTable  `json:"states" yaml:"states"`
}

// NewReport collects the display data of re.
func NewReport(re *regexlib.Regex) Report {
	root := re.Tree()
	d := re.DFA()

	follow := FollowTable{orderedmap.New[string, FollowRow]()}
	for _, p := range re.Follow().Positions() {
		follow.Set(strconv.Itoa(int(p)), FollowRow{
			Symbol:    string(re.Symbols().Symbol(p)),
			Followpos: re.Follow().Of(p).Ints(),
		})
	}

	states := StateTable{orderedmap.New[string, StateRow]()}
	for _, s := range d.States {
		row := StateRow{
			Positions:   s.Set.Ints(),
			Final:       s.Final,
			Transitions: make(map[string]string),
		}
		for _, sym := range s.Symbols() {
			to, _ := s.Next(sym)
			row.Transitions[string(sym)] = d.States[to].Label
		}
		states.Set(s.Label, row)
	}

	finals := []string{}
	for _, s := range d.Finals() {
		finals = append(finals, s.Label)
	}
	alphabet := make([]string, len(d.Alphabet))
	for i, sym := range d.Alphabet {
		alphabet[i] = string(sym)
	}

	return Report{
		Pattern:  re.Pattern(),
		Explicit: re.Explicit(),
		Tree:     root.String(),
		Root: Root{
			Nullable: root.Nullable,
			Firstpos: root.First.Ints(),
			Lastpos:  root.Last.Ints(),
		},
		Followpos: follow,
		Alphabet:  alphabet,
		Start:     d.Start().Label,
		Finals:    finals,
		States:    states,
	}
}

// Write encodes the report of re to w.
func Write(w io.Writer, re *regexlib.Regex, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewReport(re))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReport(re)); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return WriteText(w, re)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
