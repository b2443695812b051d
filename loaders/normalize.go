package loaders

import "strings"

// NameKind selects which canonical vocabulary a raw name belongs to.
type NameKind int

const (
	KindZone NameKind = iota
	KindOrgDistrict
	KindAC
)

// The source spreadsheets were filled in by hand across many field offices,
// so the same zone or constituency shows up under several spellings. Each
// table maps a lowercased variant to the single canonical form. Canonical
// names map to themselves so normalization is idempotent.
var zoneAliases = buildAliases(map[string][]string{
	"Thiruvananthapuram": {"trivandrum", "tvm", "thiruvanathapuram"},
	"Kollam":             {"quilon", "kollam zone"},
	"Alappuzha":          {"alleppey", "allapuzha", "alapuzha"},
	"Ernakulam":          {"kochi", "cochin", "ekm"},
	"Palakkad":           {"palghat", "palakad"},
	"Kozhikode":          {"calicut", "kozhikkode"},
	"Kannur":             {"cannanore", "kannoor"},
})

var orgDistrictAliases = buildAliases(map[string][]string{
	"Thiruvananthapuram City":  {"tvm city", "trivandrum city"},
	"Thiruvananthapuram North": {"tvm north", "trivandrum north"},
	"Thiruvananthapuram South": {"tvm south", "trivandrum south"},
	"Kollam East":              {"quilon east"},
	"Kollam West":              {"quilon west"},
	"Pathanamthitta":           {"pathanamthita", "patthanamthitta"},
	"Alappuzha North":          {"alleppey north"},
	"Alappuzha South":          {"alleppey south"},
	"Kottayam East":            {"kottayam e"},
	"Kottayam West":            {"kottayam w"},
	"Idukki North":             {"idukky north"},
	"Idukki South":             {"idukky south"},
	"Ernakulam City":           {"kochi city", "cochin city", "ekm city"},
	"Ernakulam East":           {"ekm east"},
	"Ernakulam North":          {"ekm north"},
	"Thrissur City":            {"trichur city"},
	"Thrissur North":           {"trichur north"},
	"Thrissur South":           {"trichur south"},
	"Palakkad East":            {"palghat east"},
	"Palakkad West":            {"palghat west"},
	"Malappuram East":          {"malapuram east"},
	"Malappuram West":          {"malapuram west"},
	"Kozhikode City":           {"calicut city"},
	"Kozhikode North":          {"calicut north"},
	"Kozhikode Rural":          {"calicut rural"},
	"Wayanad":                  {"wayanadu", "wynad"},
	"Kannur North":             {"cannanore north"},
	"Kannur South":             {"cannanore south"},
	"Kasaragod":                {"kasargod", "kasaragode", "kasargode"},
})

var acAliases = buildAliases(map[string][]string{
	"Kazhakkoottam":      {"kazhakuttam", "kazhakootam", "kazhakkuttam"},
	"Nemom":              {"nemam"},
	"Vattiyoorkavu":      {"vattiyurkavu", "vattiyoorkav"},
	"Thiruvananthapuram": {"trivandrum", "tvm"},
	"Chathannur":         {"chathannoor"},
	"Punalur":            {"punaloor"},
	"Haripad":            {"harippad"},
	"Cherthala":          {"shertallai", "cherthalai"},
	"Ernakulam":          {"ekm"},
	"Thrippunithura":     {"tripunithura", "thripunithura"},
	"Puthukkad":          {"puthukad"},
	"Palakkad":           {"palghat"},
	"Manjeshwar":         {"manjeswaram", "manjeshwaram"},
	"Kasaragod":          {"kasargod", "kasargode"},
	"Udma":               {"udma ac"},
	"Thalassery":         {"tellicherry", "thalasserry"},
	"Kozhikode North":    {"calicut north"},
	"Kozhikode South":    {"calicut south"},
})

// Normalize canonicalizes a free-text geographic name. It is pure and
// total: when no mapping exists the trimmed input is returned unchanged, so
// an unknown name still round-trips between insert and lookup.
func Normalize(raw string, kind NameKind) string {
	name := collapseSpaces(strings.TrimSpace(raw))
	if name == "" {
		return name
	}

	var table map[string]string
	switch kind {
	case KindZone:
		table = zoneAliases
	case KindOrgDistrict:
		table = orgDistrictAliases
	case KindAC:
		table = acAliases
	default:
		return name
	}

	if canonical, ok := table[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

func buildAliases(entries map[string][]string) map[string]string {
	table := make(map[string]string, len(entries)*2)
	for canonical, variants := range entries {
		table[strings.ToLower(canonical)] = canonical
		for _, v := range variants {
			table[strings.ToLower(v)] = canonical
		}
	}
	return table
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
