package javaindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restscope/cli/internal/annotation"
	"github.com/restscope/cli/internal/host"
)

type testScope string

func (s testScope) String() string { return string(s) }

type staticSources map[string][]string

func (s staticSources) SourceFiles(sc host.Scope) []string { return s[sc.String()] }

func writeJava(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const pathsJava = `package com.example.api;

public final class Paths {
    public static final String ROOT = "/api";
    public static final String USERS = ROOT + "/users";
    public static final int VERSION = 2;
    public static final String VERSIONED = "/v" + VERSION;
    static final String NOT_PUBLIC = "/np";
    public String instance = "/ignored";
}
`

const userControllerJava = `package com.example.web;

import com.example.api.Paths;
import org.springframework.web.bind.annotation.*;
import static org.springframework.web.bind.annotation.RequestMethod.DELETE;

@RestController
@RequestMapping(Paths.USERS)
public class UserController {

    @GetMapping
    public String list() { return ""; }

    @RequestMapping(value = {"/a", Paths.VERSIONED, Missing.PATH}, method = {RequestMethod.POST, DELETE})
    public void write() {}

    @PostMapping(path = "/ids/" + Paths.ROOT)
    public void concat() {}

    @GetMapping(Paths.class)
    public void klass() {}

    public void helper() {}

    @RestController
    public static class Inner {
        private static final String LOCAL = "/local";

        @GetMapping(LOCAL)
        public void nested() {}
    }
}
`

func newTestIndex(t *testing.T) (*Index, host.Scope, string) {
	t.Helper()
	dir := t.TempDir()
	paths := writeJava(t, dir, "api/Paths.java", pathsJava)
	controller := writeJava(t, dir, "web/UserController.java", userControllerJava)

	sc := testScope("app")
	idx, err := New(staticSources{"app": {paths, controller}})
	require.NoError(t, err)
	return idx, sc, controller
}

func TestParse_Declarations(t *testing.T) {
	f, err := Parse("UserController.java", []byte(userControllerJava))
	require.NoError(t, err)

	assert.Equal(t, "com.example.web", f.Package)
	assert.Equal(t, []Import{
		{Name: "com.example.api.Paths"},
		{Name: "org.springframework.web.bind.annotation", Wildcard: true},
		{Name: "org.springframework.web.bind.annotation.RequestMethod.DELETE", Static: true},
	}, f.Imports)

	require.Len(t, f.Types, 1)
	td := f.Types[0]
	assert.Equal(t, "com.example.web.UserController", td.Qualified)
	assert.Equal(t, 7, td.Line)
	require.Len(t, td.Annotations, 2)
	assert.Equal(t, "RestController", td.Annotations[0].Name)
	assert.Equal(t, "RequestMapping", td.Annotations[1].Name)
	assert.Equal(t, Name{Parts: []string{"Paths", "USERS"}, Text: "Paths.USERS"}, td.Annotations[1].Args["value"])

	names := make([]string, 0, len(td.Methods))
	for _, m := range td.Methods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"list", "write", "concat", "klass", "helper"}, names)

	require.Len(t, td.Nested, 1)
	assert.Equal(t, "com.example.web.UserController.Inner", td.Nested[0].Qualified)
	assert.Contains(t, td.Nested[0].Constants, "LOCAL")
}

func TestParse_ConstantsAndEnums(t *testing.T) {
	src := `package p;
public enum Verb { GET, POST; public static final String X = "x"; }
interface Api { String BASE = "/base"; }
`
	f, err := Parse("Verb.java", []byte(src))
	require.NoError(t, err)
	require.Len(t, f.Types, 2)

	assert.Equal(t, KindEnum, f.Types[0].Kind)
	assert.Equal(t, []string{"GET", "POST"}, f.Types[0].EnumConstants)
	assert.Contains(t, f.Types[0].Constants, "X")

	assert.Equal(t, KindInterface, f.Types[1].Kind)
	assert.Equal(t, Literal{Value: "/base", Text: `"/base"`}, f.Types[1].Constants["BASE"])
}

func TestParse_Literals(t *testing.T) {
	src := `package p;
class C {
    static final int HEX = 0x1F;
    static final long BIG = 1_000L;
    static final boolean FLAG = true;
    static final String ESC = "a\tb";
}
`
	f, err := Parse("C.java", []byte(src))
	require.NoError(t, err)
	c := f.Types[0].Constants
	assert.Equal(t, int64(31), c["HEX"].(Literal).Value)
	assert.Equal(t, int64(1000), c["BIG"].(Literal).Value)
	assert.Equal(t, true, c["FLAG"].(Literal).Value)
	assert.Equal(t, "a\tb", c["ESC"].(Literal).Value)
}

func TestFindAnnotatedSymbols(t *testing.T) {
	idx, sc, controller := newTestIndex(t)

	got := idx.FindAnnotatedSymbols(sc, "org.springframework.web.bind.annotation.RestController")
	require.Len(t, got, 2)
	assert.Equal(t, "com.example.web.UserController", got[0].QualifiedName)
	assert.Equal(t, host.SymbolClass, got[0].Kind)
	assert.Equal(t, controller, got[0].File)
	assert.Equal(t, "com.example.web.UserController.Inner", got[1].QualifiedName)

	methods := idx.FindAnnotatedSymbols(sc, "org.springframework.web.bind.annotation.GetMapping")
	require.Len(t, methods, 3)
	assert.Equal(t, "com.example.web.UserController#list", methods[0].QualifiedName)
	assert.Equal(t, host.SymbolMethod, methods[0].Kind)
	assert.Equal(t, "com.example.web.UserController.Inner#nested", methods[2].QualifiedName)

	assert.Empty(t, idx.FindAnnotatedSymbols(sc, "javax.ws.rs.Path"))
	assert.Empty(t, idx.FindAnnotatedSymbols(sc, "com.other.RestController"))
}

func TestAnnotationAttributes_Resolution(t *testing.T) {
	idx, sc, _ := newTestIndex(t)
	classes := idx.FindAnnotatedSymbols(sc, "org.springframework.web.bind.annotation.RestController")
	require.NotEmpty(t, classes)

	attrs, ok := idx.AnnotationAttributes(classes[0], "org.springframework.web.bind.annotation.RequestMapping")
	require.True(t, ok)
	assert.Equal(t, annotation.Constant{Payload: "/api/users"}, attrs["value"])

	members := idx.Members(classes[0])
	require.Len(t, members, 5)
	byName := map[string]host.Symbol{}
	for _, m := range members {
		byName[m.Name] = m
	}

	_, ok = idx.AnnotationAttributes(byName["helper"], "org.springframework.web.bind.annotation.GetMapping")
	assert.False(t, ok)

	attrs, ok = idx.AnnotationAttributes(byName["list"], "org.springframework.web.bind.annotation.GetMapping")
	require.True(t, ok)
	assert.Empty(t, attrs)

	attrs, ok = idx.AnnotationAttributes(byName["write"], "org.springframework.web.bind.annotation.RequestMapping")
	require.True(t, ok)
	assert.Equal(t, annotation.Array{Elements: []annotation.Value{
		annotation.Constant{Payload: "/a"},
		annotation.Constant{Payload: "/v2"},
		annotation.Unresolvable{Text: "Missing.PATH"},
	}}, attrs["value"])
	assert.Equal(t, annotation.Array{Elements: []annotation.Value{
		annotation.EnumMember{Type: "RequestMethod", Name: "POST"},
		annotation.EnumMember{Type: "RequestMethod", Name: "DELETE"},
	}}, attrs["method"])

	attrs, ok = idx.AnnotationAttributes(byName["concat"], "org.springframework.web.bind.annotation.PostMapping")
	require.True(t, ok)
	assert.Equal(t, annotation.Constant{Payload: "/ids//api"}, attrs["path"])

	attrs, ok = idx.AnnotationAttributes(byName["klass"], "org.springframework.web.bind.annotation.GetMapping")
	require.True(t, ok)
	assert.Equal(t, annotation.ClassReference{QualifiedName: "com.example.api.Paths"}, attrs["value"])
}

func TestAnnotationAttributes_NestedClassConstant(t *testing.T) {
	idx, sc, _ := newTestIndex(t)
	methods := idx.FindAnnotatedSymbols(sc, "org.springframework.web.bind.annotation.GetMapping")
	require.Len(t, methods, 3)

	attrs, ok := idx.AnnotationAttributes(methods[2], "org.springframework.web.bind.annotation.GetMapping")
	require.True(t, ok)
	assert.Equal(t, annotation.Constant{Payload: "/local"}, attrs["value"])
}

func TestAnnotationAttributes_UnknownSymbol(t *testing.T) {
	idx, _, _ := newTestIndex(t)
	_, ok := idx.AnnotationAttributes(host.Symbol{ID: "nope"}, "x.Y")
	assert.False(t, ok)
	assert.Empty(t, idx.Members(host.Symbol{ID: "nope"}))
}

func TestConstantCycleTerminates(t *testing.T) {
	dir := t.TempDir()
	path := writeJava(t, dir, "Loop.java", `package p;
import javax.ws.rs.Path;
@Path(Loop.A)
class Loop {
    static final String A = B + "/a";
    static final String B = A + "/b";
}
`)
	idx, err := New(staticSources{"s": {path}})
	require.NoError(t, err)

	classes := idx.FindAnnotatedSymbols(testScope("s"), "javax.ws.rs.Path")
	require.Len(t, classes, 1)
	attrs, ok := idx.AnnotationAttributes(classes[0], "javax.ws.rs.Path")
	require.True(t, ok)
	assert.Equal(t, annotation.Unresolvable{Text: "Loop.A"}, attrs["value"])
}

func TestCache_ReparsesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeJava(t, dir, "R.java", "package p;\n@javax.ws.rs.Path(\"/one\")\nclass R {}\n")
	idx, err := New(staticSources{"s": {path}}, WithCacheSize(8))
	require.NoError(t, err)

	first := idx.FindAnnotatedSymbols(testScope("s"), "javax.ws.rs.Path")
	require.Len(t, first, 1)
	assert.Equal(t, 1, idx.CachedFiles())

	writeJava(t, dir, "R.java", "package p;\nclass R {}\n\n\n")
	assert.Empty(t, idx.FindAnnotatedSymbols(testScope("s"), "javax.ws.rs.Path"))
	assert.Equal(t, 1, idx.CachedFiles())

	require.NoError(t, os.Remove(path))
	assert.Empty(t, idx.FindAnnotatedSymbols(testScope("s"), "javax.ws.rs.Path"))
	assert.Zero(t, idx.CachedFiles())
}

func TestMatches(t *testing.T) {
	f := &File{
		Package: "com.example",
		Imports: []Import{
			{Name: "javax.ws.rs.Path"},
			{Name: "org.springframework.web.bind.annotation", Wildcard: true},
		},
	}
	tests := []struct {
		written, qualified string
		want               bool
	}{
		{"Path", "javax.ws.rs.Path", true},
		{"Path", "jakarta.ws.rs.Path", false},
		{"jakarta.ws.rs.Path", "jakarta.ws.rs.Path", true},
		{"GetMapping", "org.springframework.web.bind.annotation.GetMapping", true},
		{"Local", "com.example.Local", true},
		{"Other", "com.other.Other", false},
		{"rs.Path", "javax.ws.rs.Path", false},
	}
	for _, tt := range tests {
		t.Run(tt.written+"->"+tt.qualified, func(t *testing.T) {
			assert.Equal(t, tt.want, matches(f, tt.written, tt.qualified))
		})
	}
}
