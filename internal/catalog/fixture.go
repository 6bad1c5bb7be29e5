package catalog

// defaultCatalog is the stock catalog served until a real inventory backend
// exists. Order matters: Featured returns the first qualifying entries in
// storage order.
var defaultCatalog = []Product{
	{
		ID:          "1",
		Name:        "CORT G110 Open Pore Black Cherry",
		Brand:       "Cort",
		Model:       "G110",
		Price:       299,
		Description: "The Cort G110 electric guitar features a comfortable body shape with excellent playability. Open Pore Black Cherry finish gives it a modern, sophisticated look while maintaining the natural feel of the wood.",
		ImageURL:    "/images/guitars/cort.png",
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Basswood",
			NeckMaterial: "Maple",
			Fingerboard:  "Rosewood",
			Pickups:      "2 Humbuckers",
			Strings:      6,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       4.3,
		ReviewsCount: 87,
	},
	{
		ID:          "2",
		Name:        "CORT KX300 Raw Burst",
		Brand:       "Cort",
		Model:       "KX300",
		Price:       449,
		Description: "The Cort KX300 offers exceptional value with professional features. Raw Burst finish showcases beautiful wood grain patterns while delivering powerful tone and sustain.",
		ImageURL:    "/images/guitars/cort_kx300.png",
		Images:      []string{"/images/guitars/cort_kx300.png", "/images/guitars/cort_kx300_back.png"},
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Mahogany",
			NeckMaterial: "Maple",
			Fingerboard:  "Rosewood",
			Pickups:      "2 Humbuckers",
			Strings:      6,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       4.5,
		ReviewsCount: 134,
	},
	{
		ID:          "3",
		Name:        "IBANEZ GRX70QA TRB",
		Brand:       "Ibanez",
		Model:       "GRX70QA",
		Price:       279,
		Description: "The Ibanez GRX70QA features quilted maple art grain top with transparent red burst finish. Perfect for beginners and intermediate players seeking quality and style.",
		ImageURL:    "/images/guitars/ibanez.png",
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Poplar with Quilted Maple Art Grain top",
			NeckMaterial: "Maple",
			Fingerboard:  "Purpleheart",
			Pickups:      "2 Infinity R + 1 Infinity RS",
			Strings:      6,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       4.4,
		ReviewsCount: 203,
	},
	{
		ID:          "4",
		Name:        "IBANEZ GRG7221QA TKS",
		Brand:       "Ibanez",
		Model:       "GRG7221QA",
		Price:       399,
		Description: "7-string electric guitar with quilted maple art grain top. The GRG7221QA delivers extended range for modern metal and progressive styles with exceptional playability.",
		ImageURL:    "/images/guitars/ibanez_tks.png",
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Poplar with Quilted Maple Art Grain top",
			NeckMaterial: "Maple",
			Fingerboard:  "Purpleheart",
			Pickups:      "2 Infinity R7 Humbuckers",
			Strings:      7,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       4.6,
		ReviewsCount: 156,
	},
	{
		ID:          "5",
		Name:        "JACKSON JS12 AR Metallic Blue",
		Brand:       "Jackson",
		Model:       "JS12",
		Price:       199,
		Description: "The Jackson JS12 Dinky features a striking metallic blue finish with classic Jackson styling. Great entry-level guitar with authentic Jackson DNA and aggressive tone.",
		ImageURL:    "/images/guitars/jackson.png",
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Poplar",
			NeckMaterial: "Maple",
			Fingerboard:  "Amaranth",
			Pickups:      "2 Jackson High-Output Humbuckers",
			Strings:      6,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       4.2,
		ReviewsCount: 89,
	},
	{
		ID:          "6",
		Name:        "Jay Turser JT30 MRD",
		Brand:       "Jay Turser",
		Model:       "JT30",
		Price:       159,
		Description: "The Jay Turser JT30 in metallic red delivers classic electric guitar tone at an affordable price. Perfect for students and budget-conscious musicians.",
		ImageURL:    "/images/guitars/jay_turser.png",
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Basswood",
			NeckMaterial: "Maple",
			Fingerboard:  "Rosewood",
			Pickups:      "3 Single-Coil",
			Strings:      6,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       4.0,
		ReviewsCount: 67,
	},
	{
		ID:          "7",
		Name:        "PARKSONS ST-40 3-Tone Sunburst",
		Brand:       "Parksons",
		Model:       "ST-40",
		Price:       129,
		Description: "The Parksons ST-40 features classic 3-tone sunburst finish with traditional styling. An excellent choice for beginners looking for authentic electric guitar experience.",
		ImageURL:    "/images/guitars/parkons.png",
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Basswood",
			NeckMaterial: "Maple",
			Fingerboard:  "Rosewood",
			Pickups:      "3 Single-Coil",
			Strings:      6,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       3.9,
		ReviewsCount: 45,
	},
	{
		ID:          "8",
		Name:        "YAMAHA PACIFICA 112J L",
		Brand:       "Yamaha",
		Model:       "PACIFICA 112J",
		Price:       349,
		Description: "The Yamaha Pacifica 112J Left-handed version delivers legendary Yamaha quality and tone. Features HSS pickup configuration for versatile sound options.",
		ImageURL:    "/images/guitars/yamaha.png",
		Category:    CategoryElectric,
		Specs: Specs{
			BodyMaterial: "Alder",
			NeckMaterial: "Maple",
			Fingerboard:  "Rosewood",
			Pickups:      "1 Humbucker + 2 Single-Coil",
			Strings:      6,
			Scale:        `25.5"`,
		},
		InStock:      true,
		Rating:       4.7,
		ReviewsCount: 298,
	},
	{
		ID:          "9",
		Name:        "Martin D-28 Standard Series",
		Brand:       "Martin",
		Model:       "D-28",
		Price:       3199,
		Description: "The Martin D-28 is the cornerstone of the Martin line. The bold, booming voice of the D-28 can be heard on countless recordings by the biggest names in music.",
		ImageURL:    "/images/guitars/Martin D-28.png",
		Category:    CategoryAcoustic,
		Specs: Specs{
			BodyMaterial: "East Indian Rosewood Back and Sides, Sitka Spruce Top",
			NeckMaterial: "Select Hardwood",
			Fingerboard:  "East Indian Rosewood",
			Strings:      6,
			Scale:        `25.4"`,
		},
		InStock:      true,
		Rating:       4.9,
		ReviewsCount: 156,
	},
	{
		ID:          "10",
		Name:        "Fender Player Precision Bass",
		Brand:       "Fender",
		Model:       "Player Precision Bass",
		Price:       879,
		Description: "The inspiring sound of a Precision Bass is one of the foundations of Fender. Featuring the classic split-coil pickup design.",
		ImageURL:    "/images/guitars/bas-gitara-fender-player-precision-bass.png",
		Category:    CategoryBass,
		Specs: Specs{
			BodyMaterial: "Alder",
			NeckMaterial: "Maple",
			Fingerboard:  "Pau Ferro",
			Pickups:      "Player Series Split Single-Coil Precision Bass",
			Strings:      4,
			Scale:        `34"`,
		},
		InStock:      true,
		Rating:       4.7,
		ReviewsCount: 234,
	},
	{
		ID:          "11",
		Name:        "Yamaha C40 Classical Guitar",
		Brand:       "Yamaha",
		Model:       "C40",
		Price:       149,
		Description: "The C40 features a spruce top with meranti back and sides that deliver a bright, clear tone perfect for classical playing.",
		ImageURL:    "/images/guitars/c40-II-main-yamaha.png",
		Category:    CategoryClassical,
		Specs: Specs{
			BodyMaterial: "Meranti Back/Sides, Spruce Top",
			NeckMaterial: "Nato",
			Fingerboard:  "Rosewood",
			Strings:      6,
			Scale:        `25.6"`,
		},
		InStock:      true,
		Rating:       4.3,
		ReviewsCount: 1247,
	},
	{
		ID:          "12",
		Name:        "Music Man StingRay Bass",
		Brand:       "Music Man",
		Model:       "StingRay",
		Price:       2199,
		Description: "The Music Man StingRay bass is an icon in the bass world, known for its distinctive tone and high-quality construction.",
		ImageURL:    "/images/guitars/MusicmanStingray.png",
		Category:    CategoryBass,
		Specs: Specs{
			BodyMaterial: "Ash",
			NeckMaterial: "Maple",
			Fingerboard:  "Maple",
			Pickups:      "Music Man Humbucker",
			Strings:      4,
			Scale:        `34"`,
		},
		InStock:      false,
		Rating:       4.8,
		ReviewsCount: 92,
	},
}

// DefaultCatalog returns a copy of the stock catalog.
func DefaultCatalog() []Product {
	return append([]Product(nil), defaultCatalog...)
}
