package main

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/domthu/bioseq/cmd"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootHeader = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childHeader = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	navOrder int
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"bioseq":            {"bioseq", 0},
	"bioseq_comp":       {"comp", 0},
	"bioseq_complement": {"complement", 1},
	"bioseq_translate":  {"translate", 2},
	"bioseq_stats":      {"stats", 3},
	"bioseq_splice":     {"splice", 4},
	"bioseq_window":     {"window", 5},
	"bioseq_random":     {"random", 6},
	"bioseq_fasta":      {"fasta", 7},
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTreeCustom(cmd.RootCmd, "./docs", filePrepender, linkHandler); err != nil {
		fmt.Println(err.Error())
	}
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := metaMap[base]

	if base == "bioseq" {
		return fmt.Sprintf(rootHeader, m.title, m.navOrder)
	}
	return fmt.Sprintf(childHeader, m.title, "bioseq", m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "bioseq" {
		return "/"
	}
	return base
}
