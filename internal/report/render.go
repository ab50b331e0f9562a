package report

import (
	"fmt"
	"io"
)

// labelWidth is the column at which values start in default-mode output.
const labelWidth = 16

// InfoFunc yields a module's raw metadata records. It is invoked at most
// once per Render call, and only after the synthetic filename line has been
// written, so a retrieval failure aborts the report mid-stream exactly the
// way a streaming source would.
type InfoFunc func() ([]Info, error)

// Render writes one module's report to w. Output is a pure function of
// (records, path, opts): rendering the same inputs twice yields
// byte-identical output, and no state survives between calls.
//
// The returned slice holds the malformed parameter records that were
// skipped; a non-nil error means the report was aborted and the lines
// already written stand.
func Render(w io.Writer, path string, load InfoFunc, opts Options) ([]error, error) {
	sep := opts.separator()

	// Filtering on the synthetic filename field needs no metadata at all.
	if opts.Field == KeyFilename {
		_, err := fmt.Fprintf(w, "%s%c", path, sep)
		return nil, err
	}

	if opts.Field == "" {
		if _, err := fmt.Fprintf(w, "%-*s%s%c", labelWidth, "filename:", path, sep); err != nil {
			return nil, err
		}
	}

	infos, err := load()
	if err != nil {
		return nil, err
	}

	if opts.Field != "" {
		return nil, renderFiltered(w, infos, opts.Field, sep)
	}

	params, malformed := Params(infos)

	for _, in := range infos {
		if in.Key == KeyParm || in.Key == KeyParmType {
			continue
		}
		if opts.Null {
			_, err = fmt.Fprintf(w, "%s=%s%c", in.Key, in.Value, sep)
		} else {
			_, err = fmt.Fprintf(w, "%-*s%s%c", labelWidth, in.Key+":", in.Value, sep)
		}
		if err != nil {
			return malformed, err
		}
	}

	if err := renderParams(w, params, sep); err != nil {
		return malformed, err
	}
	return malformed, nil
}

// renderFiltered emits the bare value of every record whose key equals
// field, one line per match. Matching is literal, including on "parm" and
// "parmtype": filtered mode never consults the merged parameter table, so
// requesting "parm" yields the raw unmerged "name:description" values. That
// mirrors the historical tool behavior and keeps filtered output a plain
// projection of the record stream. No match means no output, not an error.
func renderFiltered(w io.Writer, infos []Info, field string, sep byte) error {
	for _, in := range infos {
		if in.Key != field {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%c", in.Value, sep); err != nil {
			return err
		}
	}
	return nil
}

// renderParams writes the merged parameter table in first-seen order. The
// "parm:" label keeps its padded form even with a NUL separator; only plain
// records switch to key=value in that mode.
func renderParams(w io.Writer, params []Param, sep byte) error {
	for _, p := range params {
		var err error
		switch {
		case p.Description == "" && p.Type != "":
			_, err = fmt.Fprintf(w, "%-*s%s:%s%c", labelWidth, "parm:", p.Name, p.Type, sep)
		case p.Type == "":
			_, err = fmt.Fprintf(w, "%-*s%s%c", labelWidth, "parm:", p.Name, sep)
		default:
			_, err = fmt.Fprintf(w, "%-*s%s %s (%s)%c", labelWidth, "parm:", p.Name, p.Description, p.Type, sep)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
