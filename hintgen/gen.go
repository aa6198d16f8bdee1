package main

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/pkg/errors"
)

const (
	hintsPath = "github.com/lido333/openvm/hints"
	irPath    = "github.com/lido333/openvm/ir"
)

// builtin maps element types with a fixed codec: {codec, variable type}.
var builtin = map[string][2]string{
	"int":           {"hints.Usize", "ir.Var"},
	"babybear.Felt": {"hints.Base", "ir.Felt"},
	"babybear.Ext":  {"hints.Extension", "ir.Ext"},
	"hints.Digest":  {"hints.DigestCodec", "hints.DigestVariable"},
}

type Generator struct {
	pkgName string
	structs map[string]*ast.StructType
	imports map[string]string
}

func NewGenerator() *Generator {
	return &Generator{
		structs: make(map[string]*ast.StructType),
		imports: make(map[string]string),
	}
}

// ParseDir loads every non-test Go file in dir except skip.
func (g *Generator) ParseDir(dir, skip string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "reading package dir")
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == skip {
			continue
		}
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}
		if err := g.ParseSource(name, src); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) ParseSource(name string, src []byte) error {
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.SkipObjectResolution)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", name)
	}
	if g.pkgName != "" && g.pkgName != f.Name.Name {
		return errors.Errorf("%s: package %s, expected %s", name, f.Name.Name, g.pkgName)
	}
	g.pkgName = f.Name.Name

	for _, imp := range f.Imports {
		path, _ := strconv.Unquote(imp.Path.Value)
		local := filepath.Base(path)
		if imp.Name != nil {
			local = imp.Name.Name
		}
		g.imports[local] = path
	}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			if st, ok := ts.Type.(*ast.StructType); ok {
				g.structs[ts.Name.Name] = st
			}
		}
	}
	return nil
}

type field struct {
	Name    string
	Wire    string
	Codec   string
	VarType string
}

type record struct {
	Name      string
	CodecType string
	Fields    []field
}

// Generate renders the codecs for the named records, in the given order.
func (g *Generator) Generate(names []string) ([]byte, error) {
	used := map[string]bool{hintsPath: true, irPath: true}
	var records []record
	for _, name := range names {
		name = strings.TrimSpace(name)
		st, ok := g.structs[name]
		if !ok {
			return nil, errors.Errorf("struct %s not found in package %s", name, g.pkgName)
		}
		r, err := g.record(name, st, used)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	imports := make([]string, 0, len(used))
	for path := range used {
		imports = append(imports, path)
	}
	sort.Strings(imports)

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Imports []string
		Records []record
	}{g.pkgName, imports, records})
	if err != nil {
		return nil, errors.Wrap(err, "rendering")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting generated code:\n%s", buf.String())
	}
	return src, nil
}

func (g *Generator) record(name string, st *ast.StructType, used map[string]bool) (record, error) {
	r := record{Name: name, CodecType: lowerFirst(name) + "Codec"}
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			return r, errors.Errorf("%s: embedded fields are not supported", name)
		}
		var tag reflect.StructTag
		if f.Tag != nil {
			raw, _ := strconv.Unquote(f.Tag.Value)
			tag = reflect.StructTag(raw)
		}
		hint := tag.Get("hint")
		if hint == "-" {
			continue
		}

		var codec, varType string
		for _, opt := range strings.Split(hint, ",") {
			switch {
			case strings.HasPrefix(opt, "codec="):
				codec = strings.TrimPrefix(opt, "codec=")
			case strings.HasPrefix(opt, "var="):
				varType = strings.TrimPrefix(opt, "var=")
			}
		}
		// A full override skips type mapping, so it also covers types
		// mapType rejects.
		if codec == "" || varType == "" {
			mappedCodec, mappedVar, err := g.mapType(f.Type, used)
			if err != nil {
				return r, errors.Wrapf(err, "%s.%s", name, f.Names[0].Name)
			}
			if codec == "" {
				codec = mappedCodec
			}
			if varType == "" {
				varType = mappedVar
			}
		}

		for _, ident := range f.Names {
			if !ident.IsExported() {
				continue
			}
			wire := strings.Split(tag.Get("json"), ",")[0]
			if wire == "" {
				wire = ident.Name
			}
			r.Fields = append(r.Fields, field{
				Name:    ident.Name,
				Wire:    wire,
				Codec:   codec,
				VarType: varType,
			})
		}
	}
	if len(r.Fields) == 0 {
		return r, errors.Errorf("%s has no encodable fields", name)
	}
	return r, nil
}

func (g *Generator) mapType(expr ast.Expr, used map[string]bool) (string, string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if m, ok := builtin[t.Name]; ok {
			return m[0], m[1], nil
		}
		if ast.IsExported(t.Name) {
			return t.Name + "Codec", t.Name + "Variable", nil
		}
		return "", "", errors.Errorf("unsupported type %s", t.Name)

	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return "", "", errors.Errorf("unsupported selector type")
		}
		key := pkg.Name + "." + t.Sel.Name
		if m, ok := builtin[key]; ok {
			return m[0], m[1], nil
		}
		path, ok := g.imports[pkg.Name]
		if !ok {
			return "", "", errors.Errorf("unknown package %s", pkg.Name)
		}
		used[path] = true
		return key + "Codec", key + "Variable", nil

	case *ast.ArrayType:
		if t.Len != nil {
			return "", "", errors.Errorf("fixed-size arrays need a hint:\"codec=...,var=...\" tag")
		}
		codec, varType, err := g.mapType(t.Elt, used)
		if err != nil {
			return "", "", err
		}
		return "hints.Vec(" + codec + ")", "ir.Array[" + varType + "]", nil

	default:
		return "", "", errors.Errorf("unsupported type %T", expr)
	}
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by hintgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range .Records}}
// {{.Name}}Variable is the circuit form of {{.Name}}.
type {{.Name}}Variable struct {
{{- range .Fields}}
	{{.Name}} {{.VarType}}
{{- end}}
}

func (v {{.Name}}Variable) Leaves() []ir.Leaf {
	var leaves []ir.Leaf
{{- range .Fields}}
	leaves = append(leaves, v.{{.Name}}.Leaves()...)
{{- end}}
	return leaves
}

func ({{.Name}}Variable) Uninit(b *ir.Builder) {{.Name}}Variable {
	var v {{.Name}}Variable
{{- range .Fields}}
	v.{{.Name}} = v.{{.Name}}.Uninit(b)
{{- end}}
	return v
}

// {{.Name}}Codec writes and reads {{.Name}} field by field.
var {{.Name}}Codec hints.Codec[{{.Name}}, {{.Name}}Variable] = {{.CodecType}}{}

type {{.CodecType}} struct{}

func ({{.CodecType}}) Write(x {{.Name}}) (hints.Stream, error) {
	w := hints.NewWriter()
{{- range .Fields}}
	hints.WriteField(w, "{{.Wire}}", {{.Codec}}, x.{{.Name}})
{{- end}}
	return w.Stream()
}

func ({{.CodecType}}) Read(b *ir.Builder) {{.Name}}Variable {
	var v {{.Name}}Variable
{{- range .Fields}}
	v.{{.Name}} = {{.Codec}}.Read(b)
{{- end}}
	return v
}
{{end}}`))
