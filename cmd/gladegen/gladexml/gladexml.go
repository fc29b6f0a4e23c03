// Package gladexml loads GtkBuilder/Glade XML documents into the
// format-agnostic raw document consumed by the glade package.
package gladexml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"gladegen/cmd/gladegen/glade"
)

// ---- Internal XML parsing structs ------------------------------------------
//
// These types mirror the public glade raw types but carry encoding/xml
// struct tags and handle format-specific concerns: the <child> wrapper
// level, attribute-based fields, and the ignored elements (<property>,
// <packing>, <placeholder>, anything unknown). They are converted to
// glade types before being returned to callers.

// xmlInterface is the document root, <interface>.
type xmlInterface struct {
	XMLName  xml.Name     `xml:"interface"`
	Requires []xmlRequire `xml:"requires"`
	Objects  []xmlObject  `xml:"object"`
}

type xmlRequire struct {
	Lib     string `xml:"lib,attr"`
	Version string `xml:"version,attr"`
}

type xmlObject struct {
	ID       string      `xml:"id,attr"`
	Class    string      `xml:"class,attr"`
	Signals  []xmlSignal `xml:"signal"`
	Children []xmlChild  `xml:"child"`
}

// xmlChild is the wrapper element between an object and its nested objects.
// It is flattened away during conversion: the wrapper carries packing and
// placeholder details the code generator has no use for.
type xmlChild struct {
	Objects []xmlObject `xml:"object"`
}

type xmlSignal struct {
	Name    string `xml:"name,attr"`
	Handler string `xml:"handler,attr"`
}

// ---- Parse -----------------------------------------------------------------

// Parse parses GtkBuilder XML into a raw document. Malformed input returns
// an error wrapping glade.ErrParse, with the decoder's line number when one
// is available.
func Parse(in []byte) (glade.RawDocument, error) {
	return parse(in, "<doc>")
}

// ParseFile reads and parses a file, carrying the path in error context.
func ParseFile(path string) (glade.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return glade.RawDocument{}, fmt.Errorf("phase=parse path=%s: %w", path, err)
	}
	return parse(data, path)
}

func parse(in []byte, where string) (glade.RawDocument, error) {
	var doc xmlInterface
	if err := xml.Unmarshal(in, &doc); err != nil {
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			return glade.RawDocument{}, fmt.Errorf(
				"phase=parse path=%s: line %d: %s: %w", where, syn.Line, syn.Msg, glade.ErrParse)
		}
		return glade.RawDocument{}, fmt.Errorf("phase=parse path=%s: %v: %w", where, err, glade.ErrParse)
	}
	return convertDocument(doc), nil
}

// ---- Convert: xml types → glade types --------------------------------------

func convertDocument(doc xmlInterface) glade.RawDocument {
	var out glade.RawDocument
	for _, r := range doc.Requires {
		out.Requires = append(out.Requires, glade.Requirement{Lib: r.Lib, Version: r.Version})
	}
	for _, o := range doc.Objects {
		out.Objects = append(out.Objects, convertObject(o))
	}
	return out
}

func convertObject(o xmlObject) glade.RawElement {
	el := glade.RawElement{ID: o.ID, Class: o.Class}
	for _, s := range o.Signals {
		el.Signals = append(el.Signals, glade.RawSignal{Event: s.Name, Handler: s.Handler})
	}
	for _, c := range o.Children {
		for _, obj := range c.Objects {
			el.Children = append(el.Children, convertObject(obj))
		}
	}
	return el
}

// ---- Public build functions ------------------------------------------------

// Build parses a single document and returns the fully built model.
func Build(in []byte, opts glade.Options) (*glade.Model, error) {
	doc, err := Parse(in)
	if err != nil {
		return nil, err
	}
	return glade.Build(doc, opts)
}

// BuildFile reads, parses and builds in one call.
func BuildFile(path string, opts glade.Options) (*glade.Model, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return glade.Build(doc, opts)
}
