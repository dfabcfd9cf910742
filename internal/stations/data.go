package stations

// Reference deployment: the four Penge-area stations, keyed by CRS code.
var monitoredStations = []Station{
	{Code: "PNW", Name: "Penge West", Line: "Southern", WalkMinutes: 4},
	{Code: "PNE", Name: "Penge East", Line: "Southeastern", WalkMinutes: 5},
	{Code: "ANR", Name: "Anerley", Line: "Overground", WalkMinutes: 7},
	{Code: "BKB", Name: "Birkbeck", Line: "Tram", WalkMinutes: 10},
}

// locationAliases maps TIPLOC spellings seen in the feed to the canonical
// CRS code. CRS self-aliases are installed by New.
var locationAliases = map[string]string{
	"ANERLEY": "ANR",
	"BKBY":    "BKB",
	"PNGEW":   "PNW",
	"PENGEWT": "PNW",
	"PNGEE":   "PNE",
	"PENGEET": "PNE",
}

// destinationNames maps raw destination TIPLOCs to display names. This is a
// superset of the monitored stations: destinations are only displayed and
// searched, never boarded.
var destinationNames = map[string]string{
	"ANERLEY": "Anerley",
	"BKBY":    "Birkbeck",
	"PNGEW":   "Penge West",
	"PENGEWT": "Penge West",
	"PNGEE":   "Penge East",
	"PENGEET": "Penge East",

	// Victoria variations
	"VICTRIC": "Victoria",
	"VICTRIA": "Victoria",
	"VICTRIE": "Victoria",
	"VICTRI":  "Victoria",
	// London Bridge variations
	"LNDNBDE": "London Bridge",
	"LNDNBDG": "London Bridge",
	"LONBDGE": "London Bridge",
	"LONDONB": "London Bridge",
	// Charing Cross
	"CHRX":    "Charing Cross",
	"CHARING": "Charing Cross",
	"CHARX":   "Charing Cross",
	// Cannon Street
	"CANNON":  "Cannon Street",
	"CANNS":   "Cannon Street",
	"CANONST": "Cannon Street",
	// Orpington
	"ORPNGTN": "Orpington",
	"ORPINTN": "Orpington",
	"ORPINGT": "Orpington",
	// Beckenham
	"BCKJN":   "Beckenham Jct",
	"BNKCHSX": "Beckenham Jct",
	"BCKHMJN": "Beckenham Jct",
	"BCKNHMJ": "Beckenham Jct",
	"BECKHM":  "Beckenham Jct",
	// Wimbledon
	"WIMBLDN": "Wimbledon",
	"WMBLEDN": "Wimbledon",
	"WIMBLED": "Wimbledon",
	// Crystal Palace
	"CRYSTLP": "Crystal Palace",
	"CRYSTPL": "Crystal Palace",
	"CRSTLPL": "Crystal Palace",
	// West Croydon
	"WCROYDN": "West Croydon",
	"WSTCROY": "West Croydon",
	"WCRDON":  "West Croydon",
	// Other stations
	"HGHBYIS": "Highbury & Islington",
	"HIGHBRY": "Highbury & Islington",
	"CATFORD": "Catford",
	"CTFD":    "Catford",
	"HAYES":   "Hayes",
	"HAYESRL": "Hayes",
	"BROMLEY": "Bromley South",
	"BRMLEYS": "Bromley South",
	"BICKLEY": "Bickley",
	"BICKLYJ": "Bickley",
	"STNBS":   "St Johns",
	"STJOHNS": "St Johns",
	"ELTHAM":  "Eltham",
	"ELTNHMR": "Eltham",
	"GRWICH":  "Greenwich",
	"GREENW":  "Greenwich",
	"BLKHTH":  "Blackheath",
	"BLCKHTH": "Blackheath",
	"LEWISHM": "Lewisham",
	"LEWISHJ": "Lewisham",
	"LADWELL": "Ladywell",
	"CTFDBGE": "Catford Bridge",
	"CATFDBR": "Catford Bridge",
	"BELNGHM": "Bellingham",
	"RAVPRKS": "Ravensbourne",
	"SHORTLD": "Shortlands",
	"BRMLYNS": "Bromley North",
	"SNDRSTD": "Sanderstead",
	"NRWD JN": "Norwood Jct",
	"NRWDJN":  "Norwood Jct",
	"SYDENHM": "Sydenham",
	"SYDENH":  "Sydenham",
	"FORHILL": "Forest Hill",
	"FRSTHL":  "Forest Hill",
	"HONROPK": "Honor Oak Park",
	"BROCKY":  "Brockley",
	"NEWXGTE": "New Cross Gate",
	"NEWX":    "New Cross",
	"SURREYQ": "Surrey Quays",
	"DENMARKH": "Denmark Hill",
	"PCKHMRY": "Peckham Rye",
	"NUNHEAD": "Nunhead",
	"CROFTON": "Crofton Park",
	"ECROYDN": "East Croydon",
	"EASTCRY": "East Croydon",
	// Overground destinations
	"HGHI":    "Highbury & Islington",
	"HIGHBIS": "Highbury & Islington",
	"HIGHBYI": "Highbury & Islington",
	"WCROYDO": "West Croydon",
	"WESTCRO": "West Croydon",
	"WSTCRDN": "West Croydon",
	// London terminals
	"EUSTON":  "Euston",
	"EUSTNMS": "Euston",
	"STPX":    "St Pancras",
	"STPANCI": "St Pancras",
	"STPANCR": "St Pancras",
	"KNGX":    "Kings Cross",
	"KGXMSLS": "Kings Cross",
	"KNGSCRS": "Kings Cross",
	"LIVST":   "Liverpool Street",
	"LIVSTLL": "Liverpool Street",
	"LVRPLST": "Liverpool Street",
	"WATRLMN": "Waterloo",
	"WATERLM": "Waterloo",
	"WATERLE": "Waterloo",
	"PADTON":  "Paddington",
	"PADTONL": "Paddington",
	"PADDNTN": "Paddington",
	"FENCHST": "Fenchurch Street",
	"FENCHRC": "Fenchurch Street",
	"MRGT":    "Moorgate",
	"MOORGAT": "Moorgate",
	// South London
	"CLPHMJN": "Clapham Junction",
	"CLPHMJC": "Clapham Junction",
	"CLAPHMJ": "Clapham Junction",
	"BATRSEA": "Battersea Park",
	"BATSPK":  "Battersea Park",
	"PCKHMQS": "Peckham Queens Road",
	"QNSRDPK": "Queens Road Peckham",
	"BERMSEY": "Bermondsey",
	"CWATERJ": "Canada Water",
	"CANWATE": "Canada Water",
	"SURQYS":  "Surrey Quays",
	"SUREYQY": "Surrey Quays",
	"ROTHRTH": "Rotherhithe",
	"WAPING":  "Wapping",
	"WAPPING": "Wapping",
	"SHADWEL": "Shadwell",
	"WHTCHPL": "Whitechapel",
	"WHTECHP": "Whitechapel",
	"SHOREDH": "Shoreditch High Street",
	"SHRDHST": "Shoreditch High Street",
	"HOXTN":   "Hoxton",
	"HOXTON":  "Hoxton",
	"HGGRSTN": "Haggerston",
	"DALSTNK": "Dalston Kingsland",
	"DALSKNG": "Dalston Kingsland",
	"DALSTJN": "Dalston Junction",
	"DALSJN":  "Dalston Junction",
	"CNNONBY": "Canonbury",
	"CANONBY": "Canonbury",
	// Croydon area
	"NRWDJCT": "Norwood Junction",
	"CRDONCS": "Croydon Central",
	"STHCROY": "South Croydon",
	"PURLEY":  "Purley",
	"PURLEYO": "Purley Oaks",
	"SANDRST": "Sanderstead",
	"RIDDLSD": "Riddlesdown",
	"UPPERWA": "Upper Warlingham",
	"WARLNGH": "Warlingham",
	"WHYTELF": "Whyteleafe",
	"CATHAMS": "Caterham",
	// Tram destinations
	"ELMERSD": "Elmers End",
	"ELMERSE": "Elmers End",
	"BECKROD": "Beckenham Road",
	"BCKROAD": "Beckenham Road",
	"AVENUE":  "Avenue Road",
	"AVENURD": "Avenue Road",
	"WOODSID": "Woodside",
	"BLKHRSE": "Blackhorse Lane",
	"ADDSCMB": "Addiscombe",
	"ADDISCO": "Addiscombe",
	"LLOYD":   "Lloyd Park",
	"LLYDPRK": "Lloyd Park",
	"COOMBE":  "Coombe Lane",
	"GRNGWOD": "Gravel Hill",
	"ADNGTNV": "Addington Village",
	"KING HY": "King Henrys Drive",
	"NEWADNG": "New Addington",
	// Kent / south-east
	"THBDGS":  "Theobalds Grove",
	"GRVRBGJ": "Grove Park",
	"GROVEPK": "Grove Park",
	"GRVPKJN": "Grove Park",
	"GRAVSND": "Gravesend",
	"GRVSEND": "Gravesend",
	"DARTFRD": "Dartford",
	"DARTFD":  "Dartford",
	"GILLGM":  "Gillingham",
	"GILNGHM": "Gillingham",
	"RAINHM":  "Rainham",
	"SLADE":   "Slade Green",
	"SLDEGRN": "Slade Green",
	"ELTHAMW": "Eltham Well Hall",
	"KIDBRKE": "Kidbrooke",
	"CHARLTN": "Charlton",
	"WOLWCHA": "Woolwich Arsenal",
	"WOLWCHD": "Woolwich Dockyard",
	"ABYWOOD": "Abbey Wood",
	"ABBEYW":  "Abbey Wood",
	"BELVDER": "Belvedere",
	"ERITH":   "Erith",
	"BARNHRS": "Barnehurst",
	"BEXLEYH": "Bexleyheath",
	"WELLING": "Welling",
	"FALCONW": "Falconwood",
}
