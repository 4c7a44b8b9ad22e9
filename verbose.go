package main

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-resty/resty/v2"
)

const (
	bodyDumpLimit    = 500
	contentDumpLimit = 100
	tokenEdgeLen     = 10
)

// truncate shortens s to at most n characters, marking the cut.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// tokenPreview renders a CSRF token as its first and last ten characters so
// console output never carries a usable token.
func tokenPreview(token string) string {
	if len(token) <= 2*tokenEdgeLen {
		return token
	}
	return fmt.Sprintf("%s...%s (truncated)", token[:tokenEdgeLen], token[len(token)-tokenEdgeLen:])
}

func dumpRequest(endpoint string, headers, form map[string]string) {
	fmt.Println("\n=== Request Details ===")
	fmt.Printf("URL: %s\n", endpoint)
	fmt.Println("Headers:")
	for _, k := range sortedKeys(headers) {
		fmt.Printf("  %s: %s\n", k, headers[k])
	}
	fmt.Println("Form Data:")
	for _, k := range sortedKeys(form) {
		v := form[k]
		switch k {
		case "lml_upload[content]":
			v = truncate(v, contentDumpLimit)
		case tokenFieldName:
			v = tokenPreview(v)
		}
		fmt.Printf("  %s: %s\n", k, v)
	}
}

func dumpResponse(res *resty.Response) {
	fmt.Println("\n=== Response Details ===")
	fmt.Printf("Status Code: %d\n", res.StatusCode())
	fmt.Println("Response Headers:")
	dumpHeaders(res.Header())
	if body := res.String(); body != "" {
		dumpBody("Response Body", body)
	}
}

func dumpHeaders(h http.Header) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range h[k] {
			fmt.Printf("  %s: %s\n", k, v)
		}
	}
}

func dumpBody(label, body string) {
	fmt.Printf("%s (first %d chars):\n%s\n", label, bodyDumpLimit, truncate(body, bodyDumpLimit))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
