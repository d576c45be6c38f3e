// Package ladder renders parsed logic statements as relay ladder-diagram
// text, with vendor-specific timer/counter block formatting.
package ladder

import (
	"sort"
	"strings"
)

// DefaultPlatform is the fallback for platform names the table does not
// know. Its plain format prints type, name and parameter unadorned.
const DefaultPlatform = "omron"

// Formats holds the timer and counter line templates for one platform.
// Templates use {type}, {name} and {param} placeholders.
type Formats struct {
	Timer   string
	Counter string
}

// Table maps platform names to their block formats.
type Table map[string]Formats

var builtin = Table{
	"siemens":       {Timer: "{type} {name} Time: {param}", Counter: "{type} {name} Count: {param}"},
	"allen-bradley": {Timer: "{type} {name} Preset: {param}", Counter: "{type} {name} Preset: {param}"},
	"mitsubishi":    {Timer: "{type} {name} K{param}", Counter: "{type} {name} K{param}"},
	"omron":         {Timer: "{type} {name} {param}", Counter: "{type} {name} {param}"},
}

// Builtin returns a copy of the built-in platform table.
func Builtin() Table {
	t := make(Table, len(builtin))
	for name, f := range builtin {
		t[name] = f
	}
	return t
}

// Lookup resolves a platform name, falling back to the default format for
// names the table does not carry.
func (t Table) Lookup(platform string) Formats {
	if f, ok := t[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return f
	}
	return builtin[DefaultPlatform]
}

// Platforms returns the sorted names in the table.
func (t Table) Platforms() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func expand(tmpl, typ, name, param string) string {
	return strings.NewReplacer(
		"{type}", typ,
		"{name}", name,
		"{param}", param,
	).Replace(tmpl)
}
