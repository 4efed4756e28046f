package sanakko

import "github.com/louhiala/sanakko/pkg/morph"

// enumeratedAttributes lists the closed-class analysis attributes and
// their possible values. Open-class attributes like BASEFORM or
// STRUCTURE take arbitrary values and are not listed.
var enumeratedAttributes = map[string][]string{
	morph.AttrClass: {
		"nimisana", "laatusana", "nimisana_laatusana", "teonsana",
		"seikkasana", "asemosana", "suhdesana", "huudahdussana",
		"sidesana", "etuliite", "lukusana", "lyhenne", "kieltosana",
		"etunimi", "sukunimi", "paikannimi", "nimi",
	},
	morph.AttrNumber: {"singular", "plural"},
	morph.AttrPerson: {"1", "2", "3", "4"},
	morph.AttrMood: {
		"indicative", "conditional", "potential", "imperative",
		"A-infinitive", "E-infinitive", "MA-infinitive",
		"MINEN-infinitive", "MAINEN-infinitive",
	},
	morph.AttrTense:      {"present_simple", "past_imperfective"},
	morph.AttrComparison: {"positive", "comparative", "superlative"},
	morph.AttrNegative:   {"false", "true", "both"},
	morph.AttrParticiple: {
		"present_active", "present_passive", "past_active",
		"past_passive", "agent", "negation",
	},
	morph.AttrPossessive: {"1s", "2s", "1p", "2p", "3"},
	morph.AttrSijamuoto: {
		"nimento", "omanto", "osanto", "olento", "tulento", "kohdanto",
		"sisaolento", "sisaeronto", "sisatulento", "ulkoolento",
		"ulkoeronto", "ulkotulento", "vajanto", "seuranto", "keinonto",
		"kerrontosti",
	},
	morph.AttrFocus:        {"läs", "kAAn", "kin", "hAn", "pA", "s"},
	morph.AttrKysymysliite: {"true"},
}

// AttributeValues returns the possible values of an enumerated analysis
// attribute, or nil for open-class or unknown attributes.
func (h *Handle) AttributeValues(name string) []string {
	values, ok := enumeratedAttributes[name]
	if !ok {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
