// internal/events/data.go
//
// The shipped Bahn-Bingo event catalog: 13 categories, weighted for
// balanced boards. Higher weight means the category shows up on more
// cells. Display strings are German on purpose.

package events

// Catalog is the static event pool. Order matters for deterministic
// iteration in tests; do not sort.
var Catalog = []Category{
	{
		Key:    "verspaetung",
		Name:   "Verspätungen",
		Icon:   "⏰",
		Weight: 1.2,
		Events: []string{
			"Verspätung 5+ Min",
			"Verspätung 10+ Min",
			"Verspätung 15+ Min",
			"Verspätung 20+ Min",
			"Verspätung 30+ Min",
			"Verspätung 60+ Min",
			"Pünktliche Abfahrt",
			"Pünktliche Ankunft",
			"Aufgeholte Verspätung",
		},
	},
	{
		Key:    "technik",
		Name:   "Technik",
		Icon:   "🔧",
		Weight: 1.0,
		Events: []string{
			"Defekte Klimaanlage",
			"Klimaanlage zu kalt",
			"Klimaanlage zu heiß",
			"Defekte Heizung",
			"Defekte Tür",
			"Tür schließt nicht",
			"Tür öffnet nicht",
			"Defektes WC",
			"Kein Wasser im WC",
			"Verstopftes WC",
			"Kein WLAN",
			"Langsames WLAN",
			"Keine Steckdose",
			"Steckdose defekt",
			"Licht flackert",
			"Beleuchtung defekt",
			"Fenster klemmt",
			"Fenster undicht",
		},
	},
	{
		Key:    "durchsagen",
		Name:   "Durchsagen",
		Icon:   "📢",
		Weight: 1.1,
		Events: []string{
			"Durchsage unverständlich",
			"Durchsage zu leise",
			"Durchsage zu laut",
			"Durchsage wiederholt 3x",
			"Keine Durchsage bei Halt",
			"Englische Durchsage",
			"Lokführer macht Witz",
			"Entschuldigung vom Lokführer",
			"Durchsage mitten im Schlaf",
		},
	},
	{
		Key:    "mitreisende",
		Name:   "Mitreisende",
		Icon:   "👥",
		Weight: 1.3,
		Events: []string{
			"Lautes Telefonat",
			"Telefonat auf Lautsprecher",
			"Schreiende Kinder",
			"Weinendes Baby",
			"Laute Musik ohne Kopfhörer",
			"Essensgeruch",
			"Döner im Abteil",
			"Füße auf dem Sitz",
			"Ausgebreitete Taschen",
			"Betrunkene",
			"Laute Gruppe",
			"Fußballfans",
			"Schnarcher",
			"Jemand telefoniert im Ruhebereich",
		},
	},
	{
		Key:    "sitzplaetze",
		Name:   "Sitzplätze",
		Icon:   "💺",
		Weight: 1.0,
		Events: []string{
			"Kein freier Sitzplatz",
			"Reservierung nicht angezeigt",
			"Falscher Sitzplatz belegt",
			"Sitz defekt",
			"Sitz klebrig",
			"Tisch klebrig",
			"Müll am Platz",
			"Gegen Fahrtrichtung",
			"Reservierung für 1 Min",
			"Fensterplatz blockiert",
		},
	},
	{
		Key:    "zugwagen",
		Name:   "Zug & Wagen",
		Icon:   "🚃",
		Weight: 1.0,
		Events: []string{
			"Zugausfall",
			"Zug fährt durch",
			"Falscher Zugtyp",
			"Ersatzverkehr",
			"Zug überfüllt",
			"Fehlende Wagen",
			"Falsche Wagenreihung",
			"Kurzzug statt Langzug",
			"Erste Klasse überfüllt",
			"Speisewagen geschlossen",
			"Bistro ohne Kaffee",
			"Kein Bordrestaurant",
		},
	},
	{
		Key:    "gleise",
		Name:   "Gleise & Halte",
		Icon:   "🛤️",
		Weight: 0.9,
		Events: []string{
			"Gleisänderung",
			"Kurzfristige Gleisänderung",
			"Bahnsteig zu kurz",
			"Aufzug defekt",
			"Rolltreppe defekt",
			"Halt entfällt",
			"Außerplanmäßiger Halt",
			"Halt auf freier Strecke",
			"Türen öffnen nicht am Bahnsteig",
		},
	},
	{
		Key:    "anschluesse",
		Name:   "Anschlüsse",
		Icon:   "🔄",
		Weight: 1.1,
		Events: []string{
			"Anschluss verpasst",
			"Anschluss wartet",
			"Rennen zum Anschluss",
			"Anschluss auf anderem Bahnhof",
			"Umstieg in 2 Min",
			"Anschluss fällt aus",
			"Kein Ersatzzug",
		},
	},
	{
		Key:    "stoerungen",
		Name:   "Störungen",
		Icon:   "⚠️",
		Weight: 0.8,
		Events: []string{
			"Signalstörung",
			"Weichenstörung",
			"Streckensperrung",
			"Personen im Gleis",
			"Notarzteinsatz",
			"Polizeieinsatz",
			"Feuerwehreinsatz",
			"Unwetter",
			"Sturm",
			"Schnee auf Gleisen",
			"Laub auf Gleisen",
			"Tiere auf Gleisen",
		},
	},
	{
		Key:    "personal",
		Name:   "Personal",
		Icon:   "👮",
		Weight: 0.7,
		Events: []string{
			"Fahrkartenkontrolle",
			"Keine Kontrolle",
			"Freundlicher Schaffner",
			"Unfreundliches Personal",
			"Personal fehlt",
			"Reinigung während Fahrt",
		},
	},
	{
		Key:    "komfort",
		Name:   "Komfort",
		Icon:   "✨",
		Weight: 0.6,
		Events: []string{
			"Guter Kaffee im Bistro",
			"Ruhebereich wirklich ruhig",
			"Leerer Wagen",
			"Upgrade in 1. Klasse",
			"Netter Sitznachbar",
			"Schöne Aussicht",
		},
	},
	{
		Key:    "digital",
		Name:   "Digital",
		Icon:   "📱",
		Weight: 0.8,
		Events: []string{
			"DB Navigator stürzt ab",
			"Ticket nicht ladbar",
			"QR-Code nicht scannbar",
			"Akku leer, kein Ticket",
			"WLAN Login funktioniert nicht",
			"Verspätungsalarm zu spät",
		},
	},
	{
		Key:    "absurd",
		Name:   "Absurdes",
		Icon:   "🤯",
		Weight: 0.5,
		Events: []string{
			"Zug verschwindet aus App",
			"Verspätung wegen Verspätung",
			"3 Gleisänderungen",
			"Lokführer verfahren",
			"Zug zu schnell",
			"Falsches Ziel angezeigt",
			"Zeitreise (Ankunft vor Abfahrt)",
		},
	},
}
