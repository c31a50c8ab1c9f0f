/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

func fixed(code string, length int) Definition {
	return Definition{Code: code, MinLength: length, MaxLength: length}
}

func ranged(code string, min, max int) Definition {
	return Definition{Code: code, MinLength: min, MaxLength: max}
}

// family appends the ten members of a measure family (prefix + final digit
// '0' through '9'). The final digit of each member gives the position of
// the field's implied decimal point; the values themselves are always six
// digits.
func family(defs []Definition, prefix string) []Definition {
	for c := byte('0'); c <= '9'; c++ {
		defs = append(defs, fixed(prefix+string(c), 6))
	}
	return defs
}

// defaultDefinitions lists the Application Identifiers of the GS1 General
// Specifications. Dates are YYMMDD. The set must stay prefix-free; NewTable
// enforces that, so a bad addition fails the first Default() call rather
// than silently misparsing payloads.
func defaultDefinitions() []Definition {
	defs := []Definition{
		fixed("00", 18), // SSCC
		fixed("01", 14), // GTIN
		fixed("02", 14), // GTIN of contained trade items

		ranged("10", 1, 20), // batch or lot number

		fixed("11", 6), // production date
		fixed("12", 6), // due date
		fixed("13", 6), // packaging date
		fixed("15", 6), // best before date
		fixed("17", 6), // expiration date

		fixed("20", 2),       // internal product variant
		ranged("21", 1, 20),  // serial number
		ranged("22", 1, 29),  // consumer product variant
		ranged("240", 1, 30), // additional product identification
		ranged("241", 1, 30), // customer part number
		ranged("250", 1, 30), // secondary serial number
		ranged("251", 1, 30), // reference to source entity

		ranged("30", 1, 8), // variable count of items
		ranged("37", 1, 8), // count of trade items in a logistic unit

		ranged("400", 1, 30), // customer purchase order number
		ranged("401", 1, 30), // consignment number
		fixed("402", 17),     // shipment identification number
		ranged("403", 1, 30), // routing code

		fixed("410", 13), // ship-to GLN
		fixed("411", 13), // bill-to GLN
		fixed("412", 13), // purchased-from GLN
		fixed("413", 13), // ship-for GLN
		fixed("414", 13), // physical location GLN
		fixed("415", 13), // invoicing party GLN

		ranged("420", 1, 20), // ship-to postal code
		ranged("421", 3, 15), // ship-to postal code with ISO country code
		fixed("422", 3),      // country of origin

		fixed("8001", 14),      // roll products
		ranged("8002", 1, 20),  // cellular mobile telephone identifier
		ranged("8003", 14, 30), // GRAI
		ranged("8004", 1, 30),  // GIAI
		fixed("8005", 6),       // price per unit of measure
		fixed("8006", 18),      // component of a trade item
		ranged("8007", 1, 30),  // IBAN
		ranged("8008", 8, 12),  // date and time of production
		fixed("8018", 18),      // GSRN
		ranged("8020", 1, 25),  // payment slip reference number
		fixed("8100", 6),       // coupon extended code
		fixed("8101", 10),      // coupon extended code
		fixed("8102", 2),       // coupon extended code
	}

	// 90-99: company-internal information
	for c := byte('0'); c <= '9'; c++ {
		defs = append(defs, ranged("9"+string(c), 1, 30))
	}

	// 310x-316x: metric trade measures (net weight, dimensions, area, volume)
	for _, prefix := range []string{"310", "311", "312", "313", "314", "315", "316"} {
		defs = family(defs, prefix)
	}
	// 320x-329x: non-metric trade measures
	for _, prefix := range []string{"320", "321", "322", "323", "324",
		"325", "326", "327", "328", "329"} {
		defs = family(defs, prefix)
	}
	// 330x-339x: logistic measures (gross weight, dimensions, area, volume)
	for _, prefix := range []string{"330", "331", "332", "333", "334",
		"335", "336", "337", "338", "339"} {
		defs = family(defs, prefix)
	}

	return defs
}
