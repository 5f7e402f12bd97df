package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restscope/cli/internal/annotation"
	"github.com/restscope/cli/internal/host/hosttest"
	"github.com/restscope/cli/internal/route"
)

func target(h *hosttest.Host, m *hosttest.Module) Target {
	return Target{Project: h, Module: m, Scope: h.ModuleScope(m, false)}
}

type simpleRoute struct {
	Method  route.Method
	Path    string
	Handler string
}

func simplify(ds []route.Descriptor) []simpleRoute {
	out := make([]simpleRoute, 0, len(ds))
	for _, d := range ds {
		out = append(out, simpleRoute{Method: d.Method, Path: d.Path, Handler: d.Symbol.Name})
	}
	return out
}

func TestJAXRS_ClassAndMethodPaths(t *testing.T) {
	mod := &hosttest.Module{ModName: "api", Classes: []*hosttest.Class{{
		Name: "UserResource",
		Annotations: map[string]hosttest.Attrs{
			"javax.ws.rs.Path": {"value": hosttest.Str("/users")},
		},
		Methods: []*hosttest.Method{
			{Name: "list", Annotations: map[string]hosttest.Attrs{"javax.ws.rs.GET": nil}},
			{Name: "get", Annotations: map[string]hosttest.Attrs{
				"javax.ws.rs.GET":  nil,
				"javax.ws.rs.Path": {"value": hosttest.Str("{id}")},
			}},
			{Name: "locator", Annotations: map[string]hosttest.Attrs{
				"javax.ws.rs.Path": {"value": hosttest.Str("sub")},
			}},
			{Name: "helper"},
		},
	}}}
	h := &hosttest.Host{ProjectName: "demo", Modules: []*hosttest.Module{mod}}

	got := simplify(NewJAXRS(h).Scan(target(h, mod)))
	assert.Equal(t, []simpleRoute{
		{Method: route.MethodGet, Path: "/users", Handler: "list"},
		{Method: route.MethodGet, Path: "/users/{id}", Handler: "get"},
	}, got)
}

func TestJAXRS_JakartaNamespace(t *testing.T) {
	mod := &hosttest.Module{ModName: "api", Classes: []*hosttest.Class{{
		Name:        "OrderResource",
		Annotations: map[string]hosttest.Attrs{"jakarta.ws.rs.Path": {"value": hosttest.Str("orders/")}},
		Methods: []*hosttest.Method{
			{Name: "create", Annotations: map[string]hosttest.Attrs{"jakarta.ws.rs.POST": nil}},
			{Name: "wrongNamespace", Annotations: map[string]hosttest.Attrs{"javax.ws.rs.DELETE": nil}},
		},
	}}}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}

	got := simplify(NewJAXRS(h).Scan(target(h, mod)))
	assert.Equal(t, []simpleRoute{{Method: route.MethodPost, Path: "/orders", Handler: "create"}}, got)
}

func TestJAXRS_NoResourcesYieldsEmpty(t *testing.T) {
	mod := &hosttest.Module{ModName: "empty"}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}

	assert.Empty(t, NewJAXRS(h).Scan(target(h, mod)))
	assert.Empty(t, NewJAXRS(nil).Scan(target(h, mod)))
}

func TestSpring_ShortcutAndRequestMapping(t *testing.T) {
	mod := &hosttest.Module{ModName: "web", Classes: []*hosttest.Class{{
		Name: "UserController",
		Annotations: map[string]hosttest.Attrs{
			springRest:     nil,
			requestMapping: {"value": hosttest.Str("/api/users")},
		},
		Methods: []*hosttest.Method{
			{Name: "list", Annotations: map[string]hosttest.Attrs{springWeb + ".GetMapping": nil}},
			{Name: "save", Annotations: map[string]hosttest.Attrs{
				requestMapping: {
					"path":   hosttest.Str("/save"),
					"method": hosttest.Arr(hosttest.Enum("RequestMethod", "POST"), hosttest.Enum("RequestMethod", "PUT")),
				},
			}},
			{Name: "any", Annotations: map[string]hosttest.Attrs{
				requestMapping: {"value": hosttest.Str("any")},
			}},
		},
	}}}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}

	got := simplify(NewSpring(h).Scan(target(h, mod)))
	assert.Equal(t, []simpleRoute{
		{Method: route.MethodGet, Path: "/api/users", Handler: "list"},
		{Method: route.MethodPost, Path: "/api/users/save", Handler: "save"},
		{Method: route.MethodPut, Path: "/api/users/save", Handler: "save"},
		{Method: route.MethodAny, Path: "/api/users/any", Handler: "any"},
	}, got)
}

func TestSpring_ArrayPathsFanOut(t *testing.T) {
	mod := &hosttest.Module{ModName: "web", Classes: []*hosttest.Class{{
		Name: "HomeController",
		Annotations: map[string]hosttest.Attrs{
			springController: nil,
			requestMapping:   {"value": hosttest.Arr(hosttest.Str("/v1"), hosttest.Str("/v2"))},
		},
		Methods: []*hosttest.Method{
			{Name: "home", Annotations: map[string]hosttest.Attrs{
				springWeb + ".GetMapping": {"value": hosttest.Arr(hosttest.Str("/"), hosttest.Str("/index"))},
			}},
		},
	}}}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}

	got := NewSpring(h).Scan(target(h, mod))
	require.Len(t, got, 4)
	paths := make([]string, 0, len(got))
	for _, d := range got {
		paths = append(paths, d.Path)
		assert.Equal(t, route.MethodGet, d.Method)
		assert.Equal(t, "home", d.Symbol.Name, "all fan-out routes share the declaring symbol")
	}
	assert.Equal(t, []string{"/v1", "/v1/index", "/v2", "/v2/index"}, paths)
}

func TestSpring_ClassLevelVerbsApplyToPlainMappings(t *testing.T) {
	mod := &hosttest.Module{ModName: "web", Classes: []*hosttest.Class{{
		Name: "ReadOnlyController",
		Annotations: map[string]hosttest.Attrs{
			springRest:     nil,
			requestMapping: {"value": hosttest.Str("/ro"), "method": hosttest.Enum("RequestMethod", "GET")},
		},
		Methods: []*hosttest.Method{
			{Name: "all", Annotations: map[string]hosttest.Attrs{requestMapping: nil}},
		},
	}}}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}

	got := simplify(NewSpring(h).Scan(target(h, mod)))
	assert.Equal(t, []simpleRoute{{Method: route.MethodGet, Path: "/ro", Handler: "all"}}, got)
}

func TestSpring_UnresolvablePathElementsAreDropped(t *testing.T) {
	mod := &hosttest.Module{ModName: "web", Classes: []*hosttest.Class{{
		Name:        "C",
		Annotations: map[string]hosttest.Attrs{springRest: nil},
		Methods: []*hosttest.Method{
			{Name: "m", Annotations: map[string]hosttest.Attrs{
				springWeb + ".PostMapping": {"value": hosttest.Arr(
					hosttest.Str("/a"),
					annotation.Unresolvable{},
					annotation.Unresolvable{Text: "Paths.C"},
				)},
			}},
		},
	}}}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}

	got := simplify(NewSpring(h).Scan(target(h, mod)))
	assert.Equal(t, []simpleRoute{
		{Method: route.MethodPost, Path: "/a", Handler: "m"},
		{Method: route.MethodPost, Path: "/Paths.C", Handler: "m"},
	}, got)
}

func TestSpring_ControllerWithoutMappingsIsEmpty(t *testing.T) {
	mod := &hosttest.Module{ModName: "web", Classes: []*hosttest.Class{{
		Name:        "Plain",
		Annotations: map[string]hosttest.Attrs{springController: nil},
		Methods:     []*hosttest.Method{{Name: "helper"}},
	}}}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}

	assert.Empty(t, NewSpring(h).Scan(target(h, mod)))
}

func TestMergeClasses_DedupAndOrder(t *testing.T) {
	mod := &hosttest.Module{ModName: "web", Classes: []*hosttest.Class{
		{Name: "A", Annotations: map[string]hosttest.Attrs{springController: nil, springRest: nil}},
		{Name: "B", Annotations: map[string]hosttest.Attrs{springRest: nil}},
	}}
	h := &hosttest.Host{Modules: []*hosttest.Module{mod}}
	scope := h.ModuleScope(mod, false)

	merged := mergeClasses(
		h.FindAnnotatedSymbols(scope, springRest),
		h.FindAnnotatedSymbols(scope, springController),
	)
	require.Len(t, merged, 2)
	assert.Equal(t, "A", merged[0].Name)
	assert.Equal(t, "B", merged[1].Name)
}

func TestDefaults_Order(t *testing.T) {
	scanners := Defaults(nil)
	require.Len(t, scanners, 2)
	assert.Equal(t, "jax-rs", scanners[0].Name())
	assert.Equal(t, "spring", scanners[1].Name())
}
