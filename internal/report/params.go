package report

import "strings"

// Params builds the merged parameter table from the raw record sequence.
// Only "parm" and "parmtype" records participate. Entries are keyed by exact
// parameter name and returned in first-seen order; a later record for the
// same name and same sub-field overwrites the earlier value.
//
// Malformed records are collected and skipped; the table built from the
// well-formed records is returned regardless.
func Params(infos []Info) ([]Param, []error) {
	var (
		params    []Param
		malformed []error
	)
	index := make(map[string]int)

	for _, in := range infos {
		if in.Key != KeyParm && in.Key != KeyParmType {
			continue
		}

		name, rest, ok := strings.Cut(in.Value, ":")
		if !ok {
			malformed = append(malformed, &MalformedRecordError{Key: in.Key, Value: in.Value})
			continue
		}

		i, ok := index[name]
		if !ok {
			params = append(params, Param{Name: name})
			i = len(params) - 1
			index[name] = i
		}

		if in.Key == KeyParm {
			params[i].Description = rest
		} else {
			params[i].Type = rest
		}
	}

	return params, malformed
}
