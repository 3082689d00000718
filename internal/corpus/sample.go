package corpus

import "github.com/seabroker/email-classifier/internal/core"

// Sample returns the built-in labeled corpus: 15 cargo inquiries and 15
// vessel position emails from a shipping brokerage inbox. Order is fixed.
func Sample() []core.EmailRecord {
	return []core.EmailRecord{
		// CARGO emails
		{
			Subject: "New Cargo Inquiry - 500 MT Steel Pipes",
			Body:    "We have a cargo of 500 metric tons of steel pipes ready for shipment from Shanghai to Rotterdam. Looking for suitable vessel.",
			Sender:  "cargo@logistics.com",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Urgent: Container booking needed",
			Body:    "Need to book 20 TEU containers for electronics shipment. Origin: Shenzhen, Destination: Hamburg",
			Sender:  "shipper@export.cn",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Bulk cargo - Grain shipment",
			Body:    "50,000 MT wheat cargo available ex Brazil ports. Looking for Panamax vessel for voyage to Mediterranean",
			Sender:  "graintrader@agri.br",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Project cargo inquiry",
			Body:    "Heavy lift cargo consisting of turbines and generators. Total weight 200 MT. Need specialized vessel with cranes",
			Sender:  "project@energy.de",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Chemical tanker cargo",
			Body:    "5000 MT caustic soda solution for shipment. IMO Class 8. Need chemical tanker with stainless steel tanks",
			Sender:  "chemical@trade.com",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Coal shipment inquiry",
			Body:    "Steam coal cargo 75,000 MT available at Indonesian ports. Looking for Capesize vessel",
			Sender:  "coal@mining.id",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Reefer cargo - Frozen food",
			Body:    "1000 MT frozen chicken cargo. Temperature requirement -18C. Need reefer vessel or containers",
			Sender:  "food@export.th",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Iron ore cargo tender",
			Body:    "Iron ore fines 170,000 MT from Australia to China. Capesize vessel required",
			Sender:  "ironore@resources.au",
			Label:   core.LabelCargo,
		},
		{
			Subject: "LNG cargo spot sale",
			Body:    "LNG cargo 145,000 cbm available for spot sale. Loading port: Qatar, discharge options Asia",
			Sender:  "lng@energy.qa",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Cement cargo booking",
			Body:    "Bulk cement 10,000 MT in bags. From Vietnam to Philippines. Need geared vessel",
			Sender:  "cement@construction.vn",
			Label:   core.LabelCargo,
		},

		// VESSEL emails
		{
			Subject: "MV Pacific Dream - Open for cargo",
			Body:    "Vessel MV Pacific Dream, Handymax bulk carrier, DWT 58,000 MT, open at Singapore from next week. Ready for grain/coal cargoes",
			Sender:  "operations@shipping.sg",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Container vessel available",
			Body:    "Container vessel 8,500 TEU capacity available for charter. Current position Mediterranean. Can accommodate reefer containers",
			Sender:  "chartering@maritime.gr",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Tanker vessel for spot charter",
			Body:    "Product tanker, 50,000 DWT, double hull, available for spot charter. All certificates valid. Position: Persian Gulf",
			Sender:  "tanker@fleet.ae",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Bulk carrier open position",
			Body:    "Panamax bulk carrier, 75,000 DWT, 5 holds/5 hatches, geared with 4x30T cranes. Open Japan next month",
			Sender:  "bulkops@vessel.jp",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Chemical tanker available",
			Body:    "Chemical tanker 20,000 DWT, stainless steel tanks, IMO II/III. Valid certificates. Open Houston area",
			Sender:  "chemical@tankers.us",
			Label:   core.LabelVessel,
		},
		{
			Subject: "VLCC for time charter",
			Body:    "VLCC 300,000 DWT available for 1-year time charter. Double hull, 15 years old. All surveys passed",
			Sender:  "vlcc@supertanker.no",
			Label:   core.LabelVessel,
		},
		{
			Subject: "General cargo vessel",
			Body:    "General cargo vessel 12,000 DWT with box-shaped holds. Good for project cargo. Open Mediterranean",
			Sender:  "general@cargo.it",
			Label:   core.LabelVessel,
		},
		{
			Subject: "LNG carrier available",
			Body:    "LNG carrier 155,000 cbm capacity, membrane type, available for spot or term charter",
			Sender:  "lng@carriers.kr",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Capesize bulk carrier",
			Body:    "Capesize vessel 180,000 DWT open Brazil. Suitable for iron ore and coal shipments",
			Sender:  "cape@bulk.cn",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Multipurpose vessel MPP",
			Body:    "MPP vessel 8,000 DWT with 2x120T cranes. Suitable for containers, bulk and breakbulk cargo",
			Sender:  "mpp@versatile.nl",
			Label:   core.LabelVessel,
		},

		// More CARGO examples with variations
		{
			Subject: "Scrap metal cargo",
			Body:    "HMS 1&2 scrap metal 5,000 MT ready for loading. Need bulk carrier with grabs",
			Sender:  "scrap@recycling.in",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Timber logs shipment",
			Body:    "Timber logs from West Africa to China. Volume 15,000 cbm. Need log carrier",
			Sender:  "timber@forestry.cm",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Bagged rice cargo",
			Body:    "Rice in 50kg bags, total 8,000 MT. From Thailand to West Africa ports",
			Sender:  "rice@agri.th",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Automotive parts in containers",
			Body:    "Auto parts shipment, 40 x 40ft containers. From Germany to USA East Coast",
			Sender:  "auto@parts.de",
			Label:   core.LabelCargo,
		},
		{
			Subject: "Crude oil cargo tender",
			Body:    "Crude oil cargo 2 million barrels available. Loading at Middle East ports",
			Sender:  "crude@petroleum.sa",
			Label:   core.LabelCargo,
		},

		// More VESSEL examples with variations
		{
			Subject: "Feeder vessel 1,700 TEU",
			Body:    "Small container vessel 1,700 TEU available for charter. Ideal for feeder service",
			Sender:  "feeder@container.dk",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Oil tanker Aframax size",
			Body:    "Aframax tanker 115,000 DWT, ice class, available Baltic Sea area",
			Sender:  "aframax@tanker.fi",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Car carrier PCTC available",
			Body:    "Pure car truck carrier 6,500 cars capacity. Available for charter Asia-Europe trade",
			Sender:  "pctc@roro.jp",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Heavy lift vessel with cranes",
			Body:    "Heavy lift vessel with 2x400T cranes. Suitable for project cargo and offshore equipment",
			Sender:  "heavylift@special.de",
			Label:   core.LabelVessel,
		},
		{
			Subject: "Handysize bulk carrier prompt",
			Body:    "Handysize 35,000 DWT prompt vessel available South America east coast",
			Sender:  "handy@bulk.ar",
			Label:   core.LabelVessel,
		},
	}
}
