package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restscope/cli/internal/catalog"
	oerrors "github.com/restscope/cli/internal/errors"
	"github.com/restscope/cli/internal/host/hosttest"
)

func buildCatalog(t *testing.T, modules ...*hosttest.Module) *catalog.Catalog {
	t.Helper()
	h := &hosttest.Host{Modules: modules}
	return catalog.NewBuilder(h).Build(h, true)
}

func resource(mod, path string, verbs ...string) *hosttest.Module {
	var methods []*hosttest.Method
	for _, v := range verbs {
		methods = append(methods, &hosttest.Method{
			Name:        "handle" + v,
			Annotations: map[string]hosttest.Attrs{"javax.ws.rs." + v: nil},
		})
	}
	return &hosttest.Module{ModName: mod, Classes: []*hosttest.Class{{
		Name:        "Resource",
		Annotations: map[string]hosttest.Attrs{"javax.ws.rs.Path": {"value": hosttest.Str(path)}},
		Methods:     methods,
	}}}
}

func TestFromCatalog_RoundTrip(t *testing.T) {
	cat := buildCatalog(t, resource("api", "/users", "GET", "POST"), &hosttest.Module{ModName: "empty"})

	snap := FromCatalog("shop", cat)
	require.Len(t, snap.Modules, 2)
	assert.Equal(t, Endpoint{Method: "GET", URL: "http://localhost:8080/users", Handler: "com.example.Resource#handleGET"}, snap.Modules[0].Endpoints[0])
	assert.Empty(t, snap.Modules[1].Endpoints)

	data, err := snap.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "project: shop")

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, snap, parsed)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("modules: []\nextra: true\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("modules: {not: a list}\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`modules:
- name: api
  endpoints:
  - method: GET
    url: http://localhost:8080/users
    handler: a.B#c
`), 0o644))
	snap, err := Load(good)
	require.NoError(t, err)
	m, ok := snap.Module("api")
	require.True(t, ok)
	assert.Len(t, m.Endpoints, 1)
}

func TestDiff(t *testing.T) {
	old := FromCatalog("shop", buildCatalog(t,
		resource("api", "/users", "GET"),
		resource("legacy", "/old", "GET"),
		resource("stable", "/same", "GET"),
	))
	current := FromCatalog("shop", buildCatalog(t,
		resource("api", "/users", "GET", "DELETE"),
		resource("stable", "/same", "GET"),
		resource("billing", "/invoices", "GET"),
	))

	r, err := Diff(old, current, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"billing"}, r.Added)
	assert.Equal(t, []string{"legacy"}, r.Removed)
	require.Len(t, r.Modified, 1)
	assert.Equal(t, "api", r.Modified[0].Name)
	assert.NotEmpty(t, r.Modified[0].Diff)
	assert.Equal(t, "1 added, 1 removed, 1 modified", r.Summary())
}

func TestDiff_NoChanges(t *testing.T) {
	snap := FromCatalog("shop", buildCatalog(t, resource("api", "/users", "GET")))

	r, err := Diff(snap, snap, true)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, "No changes", r.Summary())
}
