package dispatchers

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/serumstudio/hype.cli/pkg/command"
	"github.com/serumstudio/hype.cli/pkg/style"
)

// RenderRootHelp writes the command listing for the whole application.
func RenderRootHelp(out io.Writer, prog string, reg *command.Registry, sheet *style.Sheet) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s %s %s\n", sheet.Header("Usage:"), sheet.Info(prog), sheet.Muted("<command> [--options]"))

	if reg.Len() > 0 {
		fmt.Fprintf(&b, "\n%s\n", sheet.Header("Commands:"))
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, d := range reg.All() {
			name := d.Name
			if len(d.Aliases) > 0 {
				name += " (" + strings.Join(d.Aliases, ", ") + ")"
			}
			fmt.Fprintf(tw, "  %s\t%s\n", sheet.Info(name), d.Help)
		}
		tw.Flush()
	}

	fmt.Fprintf(&b, "\nRun '%s help <command>' for details on a command.\n", prog)
	out.Write(b.Bytes())
}

// RenderCommandHelp writes the usage, aliases and option table for one
// command.
func RenderCommandHelp(out io.Writer, prog string, d *command.Descriptor, sheet *style.Sheet) {
	var b bytes.Buffer

	usageLine := d.Usage
	if usageLine == "" {
		usageLine = synthesizeUsage(prog, d)
	}
	fmt.Fprintf(&b, "%s %s\n", sheet.Header("Usage:"), formatUsage(usageLine, sheet))

	if d.Help != "" {
		fmt.Fprintf(&b, "\n%s\n", d.Help)
	}
	if len(d.Aliases) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", sheet.Header("Aliases:"), strings.Join(d.Aliases, ", "))
	}

	if len(d.Options) > 0 {
		fmt.Fprintf(&b, "\n%s\n", sheet.Header("Options:"))
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, opt := range d.Options {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", sheet.Info(flagForms(opt)), opt.Kind.String(), sheet.Muted(optionNote(opt)))
		}
		tw.Flush()
	}

	out.Write(b.Bytes())
}

// synthesizeUsage builds a usage line from the option list when the command
// was registered without one.
func synthesizeUsage(prog string, d *command.Descriptor) string {
	parts := []string{prog, d.Name}
	for _, opt := range d.Options {
		if opt.Kind == command.KindBool {
			if opt.Required {
				parts = append(parts, opt.Flag)
			} else {
				parts = append(parts, "["+opt.Flag+"]")
			}
			continue
		}
		placeholder := opt.Flag + " <" + opt.Dest + ">"
		if opt.Required {
			parts = append(parts, placeholder)
		} else {
			parts = append(parts, "["+placeholder+"]")
		}
	}
	return strings.Join(parts, " ")
}

// formatUsage styles the usage line with the command part in Info color and
// the argument placeholders muted.
func formatUsage(usage string, sheet *style.Sheet) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' || c == '-' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return sheet.Info(cmd)
	}
	return sheet.Info(cmd) + " " + sheet.Muted(rest)
}

func flagForms(opt command.Option) string {
	if opt.Short != "" {
		return "-" + opt.Short + ", " + opt.Flag
	}
	return opt.Flag
}

func optionNote(opt command.Option) string {
	if opt.Required {
		return "(required)"
	}
	return fmt.Sprintf("(default: %v)", opt.Default)
}
