package opcodes

import (
	_ "embed"
	"encoding/json"

	"github.com/retrocore/sh4dc/xerrors"
)

//go:embed definitions.json
var definitionsJSON []byte

// rawDefinition mirrors one row of definitions.json, matching the field
// names opcodes/generator/main.go writes.
type rawDefinition struct {
	Operator   string `json:"operator"`
	Pattern    string `json:"pattern"`
	Mask       uint16 `json:"mask"`
	Value      uint16 `json:"value"`
	Group      string `json:"group"`
	Issue      uint8  `json:"issue"`
	PCRelative bool   `json:"pc_relative"`
}

func parseGroup(s string) (Group, error) {
	switch s {
	case "MT":
		return GroupMT, nil
	case "EX":
		return GroupEX, nil
	case "BR":
		return GroupBR, nil
	case "LS":
		return GroupLS, nil
	case "FE":
		return GroupFE, nil
	case "CO":
		return GroupCO, nil
	default:
		return 0, xerrors.Errorf("opcodes: unknown group %q", s)
	}
}

// loadDefinitions parses the embedded JSON table into Definition values.
// It is called once by Build(); a malformed table is an implementation bug,
// not a runtime condition callers should expect to recover from.
func loadDefinitions() ([]Definition, error) {
	var raw []rawDefinition
	if err := json.Unmarshal(definitionsJSON, &raw); err != nil {
		return nil, xerrors.Errorf("opcodes: parse definitions.json: %v", err)
	}
	out := make([]Definition, 0, len(raw))
	for _, r := range raw {
		g, err := parseGroup(r.Group)
		if err != nil {
			return nil, err
		}
		out = append(out, Definition{
			Operator:   Operator(r.Operator),
			Pattern:    r.Pattern,
			Mask:       r.Mask,
			Value:      r.Value,
			Group:      g,
			Issue:      r.Issue,
			PCRelative: r.PCRelative,
		})
	}
	return out, nil
}
