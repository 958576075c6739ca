package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/casualjim/vibecheck"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/k0kubun/pp/v3"
)

const (
	outputText  = "text"
	outputJSON  = "json"
	outputTable = "table"
	outputDebug = "debug"
)

type renderFunc func(io.Writer, []vibecheck.Result) error

var renderers = map[string]renderFunc{
	outputText:  renderText,
	outputJSON:  renderJSON,
	outputTable: renderTable,
	outputDebug: renderDebug,
}

func renderText(w io.Writer, results []vibecheck.Result) error {
	for _, res := range results {
		verdict := color.YellowString("odd")
		if res.IsEven {
			verdict = color.GreenString("even")
		}
		fmt.Fprintf(w, "%s is %s %s\n", color.CyanString("%d", res.Number), verdict,
			color.HiBlackString("(confidence %.2f, %s)", res.Confidence, res.Source))
		fmt.Fprintf(w, "  %s\n", res.Reasoning)
		if res.Vibe != "" {
			fmt.Fprintf(w, "  %s\n", color.MagentaString(res.Vibe))
		}
	}
	return nil
}

func renderJSON(w io.Writer, results []vibecheck.Result) error {
	var v any = results
	if len(results) == 1 {
		v = results[0]
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func renderTable(w io.Writer, results []vibecheck.Result) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(markdownTable(results))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func renderDebug(w io.Writer, results []vibecheck.Result) error {
	_, err := pp.Fprintln(w, results)
	return err
}

func markdownTable(results []vibecheck.Result) string {
	withVibes := false
	for _, res := range results {
		if res.Vibe != "" {
			withVibes = true
			break
		}
	}

	var b strings.Builder
	b.WriteString("| Number | Parity | Confidence | Source | Reasoning |")
	if withVibes {
		b.WriteString(" Vibe |")
	}
	b.WriteString("\n|---:|---|---:|---|---|")
	if withVibes {
		b.WriteString("---|")
	}
	b.WriteByte('\n')

	for _, res := range results {
		fmt.Fprintf(&b, "| %d | %s | %.2f | %s | %s |", res.Number, res.Parity(), res.Confidence, res.Source, cell(res.Reasoning))
		if withVibes {
			fmt.Fprintf(&b, " %s |", cell(res.Vibe))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func cell(s string) string {
	return cellReplacer.Replace(s)
}
