package cmdutil

import (
	"fmt"
	"io"
	"strconv"

	"github.com/restscope/cli/internal/catalog"
	oerrors "github.com/restscope/cli/internal/errors"
	"github.com/restscope/cli/internal/output"
	"github.com/restscope/cli/internal/snapshot"
)

// WriteCatalog writes cat in the given format. YAML output is a snapshot
// that `restscope diff` can read back.
func WriteCatalog(w io.Writer, format output.Format, project string, cat *catalog.Catalog) error {
	switch format {
	case output.FormatYAML, output.FormatJSON:
		return output.WriteDocument(w, format, snapshot.FromCatalog(project, cat))
	case output.FormatTree:
		_, err := io.WriteString(w, output.RenderTree(CatalogTree(project, cat)))
		return err
	default:
		return writeCatalogTable(w, cat)
	}
}

func writeCatalogTable(w io.Writer, cat *catalog.Catalog) error {
	tbl := output.NewTable("MODULE", "METHOD", "URL", "HANDLER")
	for _, m := range cat.Entries() {
		if len(m.Endpoints) == 0 {
			tbl.Row(output.StyleNoun.Render(m.Name), "", output.StyleDim.Render("(no endpoints)"), "")
			continue
		}
		for _, e := range m.Endpoints {
			tbl.Row(
				output.StyleNoun.Render(m.Name),
				output.FormatMethod(e.Method),
				e.URL,
				output.StyleDim.Render(e.Handler),
			)
		}
	}

	if tbl.Len() == 0 {
		_, err := fmt.Fprintln(w, "No endpoints found.")
		return err
	}
	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, output.FormatCheckmark(
		output.StyleSummary.Render(fmt.Sprintf("%d endpoints in %d modules", cat.Total(), cat.Len()))))
	return err
}

// CatalogTree builds a project → module → endpoint tree.
func CatalogTree(project string, cat *catalog.Catalog) *output.TreeNode {
	root := &output.TreeNode{Name: project}
	for _, m := range cat.Entries() {
		node := root.Add(output.StyleNoun.Render(m.Name), "")
		for _, e := range m.Endpoints {
			node.Add(output.FormatMethod(e.Method)+" "+e.URL, e.Handler)
		}
	}
	return root
}

// WriteSettings writes per-module server settings in the given format.
func WriteSettings(w io.Writer, format output.Format, settings []catalog.ModuleSettings) error {
	switch format {
	case output.FormatYAML, output.FormatJSON:
		if settings == nil {
			settings = []catalog.ModuleSettings{}
		}
		return output.WriteDocument(w, format, settings)
	case output.FormatTree:
		return oerrors.NewValidationError("tree output is not supported by this command", "", "output",
			"Use table, yaml or json.")
	}

	tbl := output.NewTable("MODULE", "PROTOCOL", "PORT", "CONTEXT PATH", "SOURCE")
	for _, s := range settings {
		contextPath := output.StyleDim.Render("(none)")
		if s.HasContextPath {
			contextPath = s.ContextPath
		}
		source := output.StyleDim.Render("(defaults)")
		if s.Source != "" {
			source = s.Source
		}
		tbl.Row(output.StyleNoun.Render(s.Module), s.Protocol, strconv.Itoa(s.Port), contextPath, source)
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

// WriteDiff writes a snapshot diff result.
func WriteDiff(w io.Writer, result *snapshot.Result) error {
	modified := make([]output.ModifiedItem, 0, len(result.Modified))
	for _, m := range result.Modified {
		modified = append(modified, output.ModifiedItem{Name: m.Name, Diff: m.Diff})
		output.ModuleLogger(m.Name).Debug("endpoints changed")
	}
	_, err := io.WriteString(w, output.RenderDiff(result.Added, result.Removed, modified, result.Summary()))
	return err
}
