// Package typename cleans up reflective type-name captures. Enum meta-vars
// carry the compiler's pretty-function string; the manifest and the
// interpreter runtime agree on the cleaned-up form produced here.
package typename

import "strings"

// frameworkNamespace is the prefix considered redundant in every capture.
const frameworkNamespace = "PochiVM::"

// Parse extracts the canonical type name from raw. Accepted inputs are the
// bare qualified name ("PochiVM::AstArithmeticExprType") and the
// pretty-function capture forms of gcc and clang
// ("... [with T = PochiVM::AstArithmeticExprType]", "... [T = ...]").
func Parse(raw string) string {
	name := raw
	if open := strings.LastIndexByte(name, '['); open >= 0 {
		inner := name[open+1:]
		if close := strings.IndexByte(inner, ']'); close >= 0 {
			inner = inner[:close]
		}
		if eq := strings.Index(inner, "= "); eq >= 0 {
			name = inner[eq+2:]
		}
	}
	name = strings.ReplaceAll(name, frameworkNamespace, "")
	return normalizeSpacing(name)
}

// normalizeSpacing collapses whitespace runs and removes the compiler's
// spacing noise around template/pointer punctuation, keeping the single
// space after commas.
func normalizeSpacing(s string) string {
	fields := strings.Fields(s)
	joined := strings.Join(fields, " ")

	replacer := strings.NewReplacer(
		" <", "<",
		"< ", "<",
		" >", ">",
		" ,", ",",
		" *", "*",
		" &", "&",
	)
	// Пунктуация может «слипаться» в несколько проходов: "T < U > >"…
	for {
		next := replacer.Replace(joined)
		if next == joined {
			break
		}
		joined = next
	}
	joined = strings.ReplaceAll(joined, ",", ", ")
	joined = strings.ReplaceAll(joined, ",  ", ", ")
	return strings.TrimSpace(joined)
}
