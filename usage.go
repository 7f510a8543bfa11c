package rangeropt

import (
	"fmt"
	"strings"

	"github.com/imbs-hl/rangeropt/util"
)

// ToolVersion is the released version reported by --version
const ToolVersion = "0.3.8"

const (
	usageIndent   = "    "
	usageDescCol  = 34
	usageMinWidth = usageDescCol + 20
)

// Usage renders the option summary for program, one entry per grammar row
// in declaration order. Descriptions are wrapped to the current terminal
// width, falling back to 80 columns when stdout is not a terminal.
func (p *Parser) Usage(program string) string {
	return p.usage(program, util.TerminalWidth(80))
}

func (p *Parser) usage(program string, width int) string {
	if width < usageMinWidth {
		width = usageMinWidth
	}
	descWidth := width - usageDescCol

	var b strings.Builder
	fmt.Fprintf(&b, "Usage:\n%s%s [options]\n\nOptions:\n", usageIndent, program)

	for pair := p.grammar.Oldest(); pair != nil; pair = pair.Next() {
		opt := pair.Value.(*option)

		head := usageIndent + "--" + opt.long
		if opt.metavar != "" {
			head += " " + opt.metavar
		}

		first := true
		// forced breaks in the help text start their own wrapped block
		for _, block := range strings.Split(opt.help, "\n") {
			for _, line := range util.WrapText(block, descWidth) {
				if first {
					if len(head) >= usageDescCol {
						fmt.Fprintf(&b, "%s\n%s%s\n", head, strings.Repeat(" ", usageDescCol), line)
					} else {
						fmt.Fprintf(&b, "%-*s%s\n", usageDescCol, head, line)
					}
					first = false
					continue
				}
				fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", usageDescCol), line)
			}
		}
	}

	b.WriteString("\nSee README file for details and examples.\n")

	return b.String()
}

// VersionInfo renders the version banner with citation information
func VersionInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ranger version: %s\n\n", ToolVersion)
	b.WriteString("Please cite Ranger:\n")
	b.WriteString("Wright, M. N. & Ziegler, A. (2016). ranger: A Fast Implementation of Random Forests for High Dimensional Data in C++ and R. Journal of Statistical Software, in press.\n\n")
	b.WriteString("BibTeX:\n")
	b.WriteString("@Article{,\n")
	b.WriteString("    title = {ranger: {{A}} fast implementation of random forests for high dimensional data in {{C}}++ and {{R}}},\n")
	b.WriteString("    author = {Wright, Marvin N. and Ziegler, Andreas},\n")
	b.WriteString("    journal = {Journal of Statistical Software},\n")
	b.WriteString("    year = {2016},\n")
	b.WriteString("}\n")

	return b.String()
}
