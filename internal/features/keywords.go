package features

// Keyword tables and sender-domain indicators are fixed configuration data.
// Matching is plain substring matching over the lower-cased subject+body, so
// short tokens like "mt" or "tc" also match inside larger words, and "tanker"
// matches inside "chemical tanker". Each phrase counts once per email no
// matter how often it occurs.

var cargoKeywords = []string{
	"cargo", "shipment", "loading", "discharge", "commodity", "mt", "metric tons",
	"teu", "container", "bulk", "breakbulk", "project cargo", "reefer",
	"grain", "coal", "iron ore", "steel", "chemical", "oil", "lng", "cement",
	"timber", "logs", "rice", "wheat", "sugar", "fertilizer", "bauxite",
	"alumina", "copper", "nickel", "scrap", "metal", "frozen", "food",
	"electronics", "automotive", "parts", "machinery", "equipment",
	"need vessel", "looking for vessel", "require vessel", "booking",
	"freight rate", "laycan", "load port", "discharge port", "destination",
}

var vesselKeywords = []string{
	"vessel", "ship", "mv", "m/v", "dwt", "draft", "loa", "beam", "open",
	"available", "position", "charter", "hire", "tc", "time charter",
	"voyage charter", "spot", "panamax", "capesize", "handymax", "handysize",
	"supramax", "ultramax", "vlcc", "suezmax", "aframax", "tanker",
	"bulk carrier", "container vessel", "general cargo", "multipurpose",
	"mpp", "heavy lift", "chemical tanker", "product tanker", "lng carrier",
	"lpg carrier", "car carrier", "pctc", "roro", "reefer vessel",
	"crane", "gear", "geared", "gearless", "holds", "hatches",
	"ice class", "double hull", "certificates", "class", "flag",
}

// Sender indicators are matched case-sensitively on the raw sender address.
var shippingDomainHints = []string{"shipping", "maritime", "vessel", "fleet", "tanker", "bulk"}

var cargoDomainHints = []string{"cargo", "logistics", "export", "import", "trade", "commodity"}
