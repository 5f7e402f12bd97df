package cmd

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/restscope/cli/internal/testutil"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// isolate points HOME at a temp dir and neutralises RESTSCOPE_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{
		"RESTSCOPE_CONFIG", "RESTSCOPE_OUTPUT", "RESTSCOPE_LOG_TIMESTAMPS",
		"RESTSCOPE_SCAN_WITHLIBRARY", "RESTSCOPE_SCAN_INCLUDEEMPTY",
		"RESTSCOPE_SCAN_LIBRARYPATHS", "RESTSCOPE_SCAN_WORKERS",
	} {
		t.Setenv(name, "")
	}
	return home
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return ansi.ReplaceAllString(out.String(), ""), err
}

const catalogResource = `package com.shop.catalog;

import javax.ws.rs.*;

@Path("/products")
public class ProductResource {
    @GET
    public String list() { return ""; }

    @PUT
    @Path("{id}")
    public void update() {}
}
`

const billingController = `package com.shop.billing;

import org.springframework.web.bind.annotation.*;

@RestController
@RequestMapping("/invoices")
public class InvoiceController {
    @PostMapping
    public void create() {}
}
`

// newProject writes a Gradle project with a JAX-RS catalog module on
// https://localhost:8443 and a Spring billing module with YAML settings.
func newProject(t *testing.T) string {
	t.Helper()
	return testutil.NewProject(t, "shop").
		File("settings.gradle", "").
		Module("catalog", "build.gradle").
		Properties("catalog", "server.port=8443\nserver.ssl.enabled=true\n").
		Java("catalog", "com/shop/catalog/ProductResource.java", catalogResource).
		Module("billing", "build.gradle.kts").
		YAML("billing", "server:\n  port: 9100\n  servlet:\n    context-path: /billing\n").
		Java("billing", "com/shop/billing/InvoiceController.java", billingController).
		Root
}
