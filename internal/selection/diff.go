package selection

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffOptions controls how a selection diff is labeled and rendered.
type DiffOptions struct {
	FromName string
	ToName   string
	UseColor bool
}

// Diff renders a human-readable structural diff between two selections.
// An empty string means the selections are identical.
func Diff(from, to State, opts DiffOptions) (string, error) {
	if opts.FromName == "" {
		opts.FromName = "from"
	}
	if opts.ToName == "" {
		opts.ToName = "to"
	}

	fromFile, err := diffInput(opts.FromName, from)
	if err != nil {
		return "", err
	}
	toFile, err := diffInput(opts.ToName, to)
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(fromFile, toFile)
	if err != nil {
		return "", fmt.Errorf("comparing selections: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !opts.UseColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("rendering selection diff: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// diffInput encodes a selection the same way Save persists it so the diff
// reflects exactly what a reader of the file would see.
func diffInput(name string, s State) (ytbx.InputFile, error) {
	data, err := Encode(s)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("loading %s selection: %w", name, err)
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
