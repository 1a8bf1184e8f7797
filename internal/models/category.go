package models

// Built-in category names. Labels are Czech because the supported
// statement exports are Czech bank formats.
const (
	CategoryGroceries     = "Potraviny"
	CategoryRestaurants   = "Restaurace"
	CategoryFuel          = "Pohonné hmoty"
	CategoryEnergy        = "Energie"
	CategoryTelecom       = "Telekomunikace"
	CategoryHomeGoods     = "Domácnost"
	CategoryHousing       = "Bydlení"
	CategoryInstallments  = "Splátky"
	CategoryTransport     = "Doprava"
	CategoryHealth        = "Zdraví"
	CategoryEntertainment = "Zábava"
	CategoryShopping      = "Nákupy"

	// CategoryOther is the inference fallback when no keyword rule
	// matches a description.
	CategoryOther = "Ostatní"

	// CategoryUncategorized is the sentinel for rows whose source file
	// has a category column but an empty or unusable value.
	CategoryUncategorized = "Nezařazeno"
)

// CategoryDef describes one built-in category: display color and icon
// for downstream UI plus the keyword list used by the inferencer.
type CategoryDef struct {
	Name     string
	Color    string
	Icon     string
	Keywords []string
}

// Categories is the built-in taxonomy in inference priority order:
// the first definition whose keyword matches a description wins.
// The table is process-wide constant state; user-defined categories
// are merged separately by AllCategories and never written here.
var Categories = []CategoryDef{
	{
		Name:  CategoryGroceries,
		Color: "#4caf50", Icon: "shopping-cart",
		Keywords: []string{"albert", "lidl", "kaufland", "billa", "tesco", "penny", "globus", "rohlik", "kosik", "potraviny"},
	},
	{
		Name:  CategoryRestaurants,
		Color: "#ff9800", Icon: "utensils",
		Keywords: []string{"restaurace", "restaurant", "pizza", "kebab", "kfc", "mcdonald", "burger", "bistro", "kavarna", "café", "damejidlo", "wolt", "bolt food", "foodora"},
	},
	{
		Name:  CategoryFuel,
		Color: "#795548", Icon: "gas-pump",
		Keywords: []string{"benzina", "shell", "omv", "mol ", "eurooil", "cerpaci", "čerpací", "tank ono", "orlen"},
	},
	{
		Name:  CategoryEnergy,
		Color: "#ffc107", Icon: "bolt",
		Keywords: []string{"čez", "cez prodej", "e.on", "eon energie", "pre ", "pražská energetika", "innogy", "plyn", "elektřina", "elektrina"},
	},
	{
		Name:  CategoryTelecom,
		Color: "#2196f3", Icon: "phone",
		Keywords: []string{"o2 ", "t-mobile", "vodafone", "internet", "mobil", "tarif"},
	},
	{
		Name:  CategoryHomeGoods,
		Color: "#9c27b0", Icon: "couch",
		Keywords: []string{"ikea", "jysk", "obi", "hornbach", "bauhaus", "sconto", "möbelix", "mobelix"},
	},
	{
		Name:  CategoryHousing,
		Color: "#3f51b5", Icon: "home",
		Keywords: []string{"najem", "nájem", "najemne", "nájemné", "hypoteka", "hypotéka", "sipo", "svj", "fond oprav"},
	},
	{
		Name:  CategoryInstallments,
		Color: "#607d8b", Icon: "file-invoice",
		Keywords: []string{"splatka", "splátka", "uver", "úvěr", "leasing", "cetelem", "home credit", "provident", "zonky"},
	},
	{
		Name:  CategoryTransport,
		Color: "#00bcd4", Icon: "bus",
		Keywords: []string{"dpp", "lítačka", "litacka", "mhd", "ceske drahy", "české dráhy", "cd.cz", "regiojet", "flixbus", "uber", "bolt", "liftago", "parkovani", "parkování"},
	},
	{
		Name:  CategoryHealth,
		Color: "#f44336", Icon: "heartbeat",
		Keywords: []string{"lekarna", "lékárna", "dr.max", "dr. max", "benu", "poliklinika", "nemocnice", "zubni", "zubní", "optika"},
	},
	{
		Name:  CategoryEntertainment,
		Color: "#e91e63", Icon: "film",
		Keywords: []string{"netflix", "spotify", "hbo", "disney", "kino", "cinema city", "cinestar", "steam", "playstation", "divadlo"},
	},
	{
		Name:  CategoryShopping,
		Color: "#673ab7", Icon: "shopping-bag",
		Keywords: []string{"alza", "mall.cz", "czc", "datart", "zalando", "about you", "amazon", "aliexpress", "notino", "dm drogerie", "rossmann"},
	},
}

// BuiltinCategoryNames returns the built-in category names in taxonomy
// order, followed by the two fallback labels.
func BuiltinCategoryNames() []string {
	names := make([]string, 0, len(Categories)+2)
	for _, c := range Categories {
		names = append(names, c.Name)
	}
	return append(names, CategoryOther, CategoryUncategorized)
}

// AllCategories merges the built-in taxonomy with user-defined names.
// User names that shadow a built-in are dropped; the built-in table is
// never mutated.
func AllCategories(userDefined []string) []string {
	names := BuiltinCategoryNames()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range userDefined {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names
}
