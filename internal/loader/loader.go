// Package loader reads type model documents and assembles the
// in-memory model that reference pages are generated from.
//
// A model document is a YAML file describing the types of one
// package: their members, access levels, supertypes, and raw
// documentation comments. Comments are split into body and block
// tags here, so the rest of the program only sees structured
// [comment.Doc] values.
package loader

import (
	"fmt"
	"os"
	"strings"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/typeref/typeref/internal/comment"
	"github.com/typeref/typeref/internal/model"
	"github.com/typeref/typeref/internal/sliceutil"
)

// typeDoc mirrors the YAML layout of one type declaration.
type typeDoc struct {
	Name       string      `yaml:"name"`
	Access     string      `yaml:"access"`
	Annotation bool        `yaml:"annotation"`
	Extends    []string    `yaml:"extends"`
	Members    []memberDoc `yaml:"members"`
}

type memberDoc struct {
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"`
	Access string     `yaml:"access"`
	Return string     `yaml:"return"`
	Params []paramDoc `yaml:"params"`
	Doc    string     `yaml:"doc"`
}

type paramDoc struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	TypeVariable bool   `yaml:"typevar"`
}

type packageDoc struct {
	Package string    `yaml:"package"`
	Types   []typeDoc `yaml:"types"`
}

var _memberKinds = map[string]model.Kind{
	"nested-type":         model.KindNestedTypes,
	"enum-constant":       model.KindEnumConstants,
	"field":               model.KindFields,
	"property":            model.KindProperties,
	"constructor":         model.KindConstructors,
	"method":              model.KindMethods,
	"annotation-field":    model.KindAnnotationFields,
	"annotation-required": model.KindAnnotationRequired,
	"annotation-optional": model.KindAnnotationOptional,
}

var _accessLevels = map[string]model.Access{
	"":                model.Public,
	"public":          model.Public,
	"protected":       model.Protected,
	"package-private": model.PackagePrivate,
	"private":         model.Private,
}

// Loader assembles a model from YAML documents.
// Types may reference supertypes in other documents;
// references are resolved after all files are read.
type Loader struct {
	types []*model.Type
	names map[string]*model.Type            // qualified name -> type
	super map[*model.Type][]string          // unresolved supertype names
}

// New returns an empty Loader.
func New() *Loader {
	return &Loader{
		names: make(map[string]*model.Type),
		super: make(map[*model.Type][]string),
	}
}

// LoadFile reads one model document from disk.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if err := l.load(data); err != nil {
		return fmt.Errorf("%v: %w", path, err)
	}
	return nil
}

func (l *Loader) load(data []byte) error {
	var doc packageDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errtrace.Wrap(err)
	}

	for _, td := range doc.Types {
		access, err := accessLevel(td.Access)
		if err != nil {
			return fmt.Errorf("type %v: %w", td.Name, err)
		}

		typ := &model.Type{
			Name:       td.Name,
			Package:    doc.Package,
			Access:     access,
			Annotation: td.Annotation,
			Linkable:   access == model.Public || access == model.Protected,
		}
		for _, md := range td.Members {
			member, err := l.member(md)
			if err != nil {
				return fmt.Errorf("type %v: member %v: %w", td.Name, md.Name, err)
			}
			member.Enclosing = typ
			typ.Members = append(typ.Members, member)
		}

		l.types = append(l.types, typ)
		l.names[typ.QualifiedName()] = typ
		l.super[typ] = td.Extends
	}
	return nil
}

func (l *Loader) member(md memberDoc) (*model.Element, error) {
	kind, ok := _memberKinds[md.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown member kind %q", md.Kind)
	}
	access, err := accessLevel(md.Access)
	if err != nil {
		return nil, err
	}

	params := sliceutil.Transform(md.Params, func(pd paramDoc) model.Param {
		return model.Param{
			Name:         pd.Name,
			Type:         pd.Type,
			TypeVariable: pd.TypeVariable,
		}
	})

	return &model.Element{
		Name:   md.Name,
		Kind:   kind,
		Access: access,
		Return: md.Return,
		Params: params,
		Doc:    parseDoc(md.Doc),
	}, nil
}

// Types resolves all supertype references and returns the loaded
// types in document order. Unknown supertype names are an error.
func (l *Loader) Types() ([]*model.Type, error) {
	for typ, supers := range l.super {
		for _, name := range supers {
			sup, ok := l.names[name]
			if !ok {
				// Bare names resolve within the same package.
				sup, ok = l.names[typ.Package+"."+name]
			}
			if !ok {
				return nil, fmt.Errorf("type %v: unknown supertype %q", typ.QualifiedName(), name)
			}
			typ.Supertypes = append(typ.Supertypes, sup)
		}
	}
	clear(l.super)
	return l.types, nil
}

func accessLevel(name string) (model.Access, error) {
	access, ok := _accessLevels[name]
	if !ok {
		return 0, fmt.Errorf("unknown access level %q", name)
	}
	return access, nil
}

// parseDoc splits a raw comment into body text and block tags.
// Block tags are lines starting with '@', the tag name ending at the
// first space. A nil Doc means the member has no comment at all.
func parseDoc(raw string) *comment.Doc {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var (
		body strings.Builder
		tags []comment.Tag
	)
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "@") {
			if len(tags) > 0 {
				// Continuation of the previous tag.
				last := &tags[len(tags)-1]
				last.Text = strings.TrimSpace(last.Text + " " + trimmed)
				continue
			}
			if body.Len() > 0 {
				body.WriteString("\n")
			}
			body.WriteString(line)
			continue
		}

		name, text, _ := strings.Cut(trimmed[1:], " ")
		tags = append(tags, comment.Tag{
			Name: name,
			Text: strings.TrimSpace(text),
		})
	}

	return &comment.Doc{
		Body: strings.TrimSpace(body.String()),
		Tags: tags,
	}
}
